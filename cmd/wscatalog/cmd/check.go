package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/nfrund/wscatalog/internal/docs"
	"github.com/nfrund/wscatalog/internal/storage"
	"github.com/nfrund/wscatalog/internal/topicmgr"
)

var checkWatch bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Build the catalog and report construction errors",
	Long: `Check builds the registry from the built-in catalog, or from --catalog when
given, and prints its leaf counts. Construction errors are listed one per line.

With --watch the catalog file is rebuilt on every change until interrupted.

Examples:
  wscatalog check
  wscatalog check --catalog catalog.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: checkHandler,
}

func checkHandler(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	reg, err := registry()
	if err != nil {
		return err
	}
	if err := reportRegistry(out, reg); err != nil {
		return err
	}

	if !checkWatch {
		return nil
	}
	if catalogPath == "" {
		return errors.New("--watch needs --catalog")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := do.MustInvoke[*storage.CatalogStore](injector)
	err = store.Watch(ctx, catalogPath, func(reg *topicmgr.Registry, err error) {
		if err != nil {
			fmt.Fprintf(out, "❌ reload failed: %v\n", err)
			return
		}
		fmt.Fprintln(out, "🔄 catalog reloaded")
		_ = reportRegistry(out, reg)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Watching %s, press Ctrl+C to stop\n", catalogPath)
	<-ctx.Done()
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil
	}
	return ctx.Err()
}

func reportRegistry(out io.Writer, reg *topicmgr.Registry) error {
	stats := reg.Stats()
	fmt.Fprintf(out, "✅ catalog builds: %d topics, %d commands\n", stats.Topics, stats.Commands)
	fmt.Fprintf(out, "   Entities: %d\n", stats.Entities)
	fmt.Fprintf(out, "   Analytics streams: %d\n", stats.AnalyticsPairs)

	scopes := make([]string, 0, len(stats.AnalyticsByScope))
	for scope := range stats.AnalyticsByScope {
		scopes = append(scopes, string(scope))
	}
	sort.Strings(scopes)
	for _, scope := range scopes {
		fmt.Fprintf(out, "     %s: %d\n", scope, stats.AnalyticsByScope[topicmgr.Scope(scope)])
	}

	if !stats.Complete() {
		return fmt.Errorf("leaf counts do not match the catalog: want %d topics and %d commands",
			stats.ExpectedTopics, stats.ExpectedCommands)
	}

	if err := docs.Verify(reg, docs.Examples()); err != nil {
		fmt.Fprintf(out, "⚠️  documentation examples do not match this catalog: %v\n", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "Rebuild whenever the --catalog file changes")
}
