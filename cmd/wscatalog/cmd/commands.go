package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfrund/wscatalog/cmd/wscatalog/internal/format"
)

var commandsOutputFormat string

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "Explore client-to-server commands",
}

var commandsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every command with the wire action clients send",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !format.Valid(commandsOutputFormat) {
			return fmt.Errorf("unsupported output format '%s', use 'table' or 'json'", commandsOutputFormat)
		}
		reg, err := registry()
		if err != nil {
			return err
		}
		return format.Write(cmd.OutOrStdout(), commandsOutputFormat, format.Rows(reg.Commands(), "", true))
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
	commandsCmd.AddCommand(commandsListCmd)

	commandsListCmd.Flags().StringVarP(&commandsOutputFormat, "format", "f", format.Table, "Output format (table, json)")
}
