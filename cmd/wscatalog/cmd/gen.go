package cmd

import (
	"errors"
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/nfrund/wscatalog/internal/codegen"
)

var (
	genOut   string
	genCheck bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate typed Go constants for every topic and command",
	Long: `Gen renders one Topic and one Command constant per leaf of the catalog.

With --check nothing is written; the command prints a diff and fails when the
file on disk is out of date.

Examples:
  wscatalog gen
  wscatalog gen --check`,
	Args: cobra.NoArgs,
	RunE: genHandler,
}

func genHandler(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	reg, err := registry()
	if err != nil {
		return err
	}
	gen, err := do.Invoke[*codegen.Generator](injector)
	if err != nil {
		return err
	}

	if genCheck {
		diff, err := gen.Check(genOut, reg)
		if errors.Is(err, codegen.ErrStale) {
			fmt.Fprint(out, diff)
			return fmt.Errorf("%w, run 'wscatalog gen'", err)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "✅ %s is up to date\n", genOut)
		return nil
	}

	if err := gen.Write(genOut, reg); err != nil {
		return err
	}
	fmt.Fprintf(out, "✅ wrote %s\n", genOut)
	return nil
}

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().StringVarP(&genOut, "out", "o", "internal/topicmgr/names/names_gen.go", "Path of the generated file")
	genCmd.Flags().BoolVar(&genCheck, "check", false, "Fail with a diff instead of writing when the file is stale")
}
