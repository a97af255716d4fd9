package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nfrund/wscatalog/cmd/wscatalog/internal/format"
)

var (
	listOutputFormat string
	listGroupFilter  string
	getOutputFormat  string
)

// topicsCmd represents the topics command
var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Explore server-to-client topics",
	Long: `The topics command lists and inspects the topics the gateway publishes.

Examples:
  # List all topics
  wscatalog topics list

  # List the lifecycle topics of one entity
  wscatalog topics list --group tables

  # Show one topic and the analytics streams its entity refreshes
  wscatalog topics get tables.updated`,
}

// topicsListCmd represents the topics list command
var topicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered topics",
	Long: `List every topic in tree order, optionally limited to one top-level group
("system", "analytics" or an entity key).

Output formats:
  table - Human-readable table format (default)
  json  - Machine-readable JSON format with a count`,
	Args: cobra.NoArgs,
	RunE: topicsListHandler,
}

func topicsListHandler(cmd *cobra.Command, _ []string) error {
	if !format.Valid(listOutputFormat) {
		return fmt.Errorf("unsupported output format '%s', use 'table' or 'json'", listOutputFormat)
	}
	reg, err := registry()
	if err != nil {
		return err
	}

	if listGroupFilter != "" {
		if _, ok := reg.Topics().Child(listGroupFilter); !ok {
			return fmt.Errorf("unknown group '%s', valid groups: %s", listGroupFilter, strings.Join(reg.Groups(), ", "))
		}
		if listOutputFormat == format.Table {
			fmt.Fprintf(cmd.OutOrStdout(), "Topics for group '%s':\n\n", listGroupFilter)
		}
	}

	return format.Write(cmd.OutOrStdout(), listOutputFormat, format.Rows(reg.Topics(), listGroupFilter, false))
}

// topicsGetCmd represents the topics get command
var topicsGetCmd = &cobra.Command{
	Use:   "get <topic>",
	Short: "Show details for a single topic",
	Args:  cobra.ExactArgs(1),
	RunE:  topicsGetHandler,
}

func topicsGetHandler(cmd *cobra.Command, args []string) error {
	name := args[0]
	reg, err := registry()
	if err != nil {
		return err
	}
	if err := reg.ValidateTopic(name); err != nil {
		return fmt.Errorf("%w\n\nUse 'wscatalog topics list' to see all available topics", err)
	}

	var details format.TopicDetails
	for _, row := range format.Rows(reg.Topics(), "", false) {
		if row.Name == name {
			details = format.TopicDetails{Name: row.Name, Group: row.Group, Path: row.Path}
			break
		}
	}
	if entity, ok := reg.NormalizeEntity(details.Group); ok {
		details.Dependents = reg.AnalyticsDependents(entity)
	}

	return format.WriteDetails(cmd.OutOrStdout(), getOutputFormat, details)
}

func init() {
	rootCmd.AddCommand(topicsCmd)
	topicsCmd.AddCommand(topicsListCmd)
	topicsCmd.AddCommand(topicsGetCmd)

	topicsListCmd.Flags().StringVarP(&listOutputFormat, "format", "f", format.Table, "Output format (table, json)")
	topicsListCmd.Flags().StringVarP(&listGroupFilter, "group", "g", "", "Only list topics below this group")
	topicsGetCmd.Flags().StringVarP(&getOutputFormat, "format", "f", format.Table, "Output format (table, json)")
}
