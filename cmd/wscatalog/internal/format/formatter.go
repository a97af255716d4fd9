package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nfrund/wscatalog/internal/topicmgr"
)

// Output formats accepted by the list commands.
const (
	Table = "table"
	JSON  = "json"
)

// Row is one leaf of a registry tree for display purposes.
type Row struct {
	Name   string `json:"name"`
	Group  string `json:"group"`
	Path   string `json:"path"`
	Action string `json:"action,omitempty"`
}

// Rows flattens root in tree order. When group is non-empty only leaves below
// that top-level group are returned. Command rows carry their wire action.
func Rows(root *topicmgr.Node, group string, commands bool) []Row {
	var rows []Row
	root.Walk(func(path []string, value string) {
		if group != "" && path[0] != group {
			return
		}
		row := Row{Name: value, Group: path[0], Path: strings.Join(path, "/")}
		if commands {
			row.Action = topicmgr.ActionOf(value)
		}
		rows = append(rows, row)
	})
	return rows
}

// Valid reports whether f is a supported output format.
func Valid(f string) bool {
	return f == Table || f == JSON
}

// Write renders rows in the requested format.
func Write(w io.Writer, f string, rows []Row) error {
	switch f {
	case JSON:
		return WriteJSON(w, rows)
	case Table:
		return WriteTable(w, rows)
	default:
		return fmt.Errorf("unsupported output format %q, use table or json", f)
	}
}

// WriteTable renders rows as an aligned table.
func WriteTable(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	withAction := len(rows) > 0 && rows[0].Action != ""
	if withAction {
		fmt.Fprintln(tw, "NAME\tACTION\tGROUP\tPATH")
		fmt.Fprintln(tw, "----\t------\t-----\t----")
	} else {
		fmt.Fprintln(tw, "NAME\tGROUP\tPATH")
		fmt.Fprintln(tw, "----\t-----\t----")
	}

	if len(rows) == 0 {
		fmt.Fprintln(tw, "No entries found")
	}
	for _, r := range rows {
		if withAction {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Action, r.Group, truncateString(r.Path, 50))
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, r.Group, truncateString(r.Path, 50))
	}
	return tw.Flush()
}

// WriteJSON renders rows with a count.
func WriteJSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	output := struct {
		Entries []Row `json:"entries"`
		Count   int   `json:"count"`
	}{
		Entries: rows,
		Count:   len(rows),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// TopicDetails describes a single topic.
type TopicDetails struct {
	Name       string   `json:"name"`
	Group      string   `json:"group"`
	Path       string   `json:"path"`
	Dependents []string `json:"analytics_dependents,omitempty"`
}

// WriteDetails renders one topic in the requested format.
func WriteDetails(w io.Writer, f string, d TopicDetails) error {
	if f == JSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(d)
	}

	fmt.Fprintf(w, "Name:   %s\n", d.Name)
	fmt.Fprintf(w, "Group:  %s\n", d.Group)
	fmt.Fprintf(w, "Path:   %s\n", d.Path)
	if len(d.Dependents) > 0 {
		fmt.Fprintf(w, "Refreshes analytics:\n")
		for _, dep := range d.Dependents {
			fmt.Fprintf(w, "  %s\n", dep)
		}
	}
	return nil
}

// truncateString truncates a string to maxLen characters, adding "..." if truncated
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return s[:maxLen-3] + "..."
}
