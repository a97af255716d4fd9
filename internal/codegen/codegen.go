// Package codegen renders the topic and command registry as typed Go
// constants.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/afero"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"

	"github.com/nfrund/wscatalog/internal/topicmgr"
)

// ErrStale is returned by Check when the file on disk differs from what the
// registry renders.
var ErrStale = errors.New("generated file is stale")

// DefaultPackage is the package name rendered when none is given.
const DefaultPackage = "names"

type constant struct {
	Name  string
	Value string
}

type templateData struct {
	Package  string
	Topics   []constant
	Commands []constant
}

var fileTemplate = template.Must(template.New("names").Parse(`// Code generated by wscatalog gen. DO NOT EDIT.

package {{ .Package }}

// Topic is a registered WebSocket topic.
type Topic string

// Command is a registered WebSocket command.
type Command string

const (
{{- range .Topics }}
	{{ .Name }} Topic = {{ printf "%q" .Value }}
{{- end }}
)

const (
{{- range .Commands }}
	{{ .Name }} Command = {{ printf "%q" .Value }}
{{- end }}
)

// AllTopics lists every registered topic in catalog order.
var AllTopics = []Topic{
{{- range .Topics }}
	{{ .Name }},
{{- end }}
}

// AllCommands lists every registered command in catalog order.
var AllCommands = []Command{
{{- range .Commands }}
	{{ .Name }},
{{- end }}
}
`))

// Generator renders and writes the names file.
type Generator struct {
	fs    afero.Fs
	pkg   string
	caser cases.Caser
}

// New returns a generator writing to fs. An empty pkg selects DefaultPackage.
func New(fs afero.Fs, pkg string) *Generator {
	if pkg == "" {
		pkg = DefaultPackage
	}
	return &Generator{
		fs:    fs,
		pkg:   pkg,
		caser: cases.Title(language.Und, cases.NoLower),
	}
}

// Identifier turns a topic or command into an exported Go name, for example
// "section-objects.list" with prefix "Topic" becomes "TopicSectionObjectsList".
// The "command." prefix is dropped from commands.
func (g *Generator) Identifier(prefix, value string) string {
	value = strings.TrimPrefix(value, topicmgr.CommandPrefix)
	words := strings.FieldsFunc(value, func(r rune) bool {
		return r == '.' || r == '-' || r == '_'
	})
	var b strings.Builder
	b.WriteString(prefix)
	for _, w := range words {
		b.WriteString(g.caser.String(w))
	}
	return b.String()
}

// Render returns the formatted Go source for reg. Constants follow tree order.
func (g *Generator) Render(reg *topicmgr.Registry) ([]byte, error) {
	data := templateData{Package: g.pkg}

	var errs []string
	seen := make(map[string]string)
	collect := func(prefix string, root *topicmgr.Node) []constant {
		var out []constant
		root.Walk(func(_ []string, value string) {
			name := g.Identifier(prefix, value)
			if other, dup := seen[name]; dup {
				errs = append(errs, fmt.Sprintf("%s and %s both render as %s", other, value, name))
				return
			}
			seen[name] = value
			out = append(out, constant{Name: name, Value: value})
		})
		return out
	}
	data.Topics = collect("Topic", reg.Topics())
	data.Commands = collect("Command", reg.Commands())
	if len(errs) > 0 {
		return nil, fmt.Errorf("identifier collision: %s", strings.Join(errs, "; "))
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	src, err := imports.Process(g.pkg+"_gen.go", buf.Bytes(), &imports.Options{Comments: true, TabIndent: true, TabWidth: 8, FormatOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return src, nil
}

// Write renders reg into path, creating parent directories as needed.
func (g *Generator) Write(path string, reg *topicmgr.Registry) error {
	src, err := g.Render(reg)
	if err != nil {
		return err
	}
	if err := g.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	return afero.WriteFile(g.fs, path, src, 0o644)
}

// Check compares path with a fresh rendering of reg. When they differ it
// returns a line diff and ErrStale. A missing file counts as stale.
func (g *Generator) Check(path string, reg *topicmgr.Registry) (string, error) {
	want, err := g.Render(reg)
	if err != nil {
		return "", err
	}
	got, err := afero.ReadFile(g.fs, path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if bytes.Equal(got, want) {
		return "", nil
	}
	return lineDiff(string(got), string(want)), fmt.Errorf("%s: %w", path, ErrStale)
}

func lineDiff(got, want string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(got, want)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		var mark string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			mark = "+"
		case diffmatchpatch.DiffDelete:
			mark = "-"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(mark + line)
			if !strings.HasSuffix(line, "\n") {
				out.WriteString("\n")
			}
		}
	}
	return out.String()
}
