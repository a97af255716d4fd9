package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/nfrund/wscatalog/internal/config"
	"github.com/nfrund/wscatalog/internal/server"
)

var docsAddr string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Catalog documentation",
}

var docsServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTML and JSON catalog documentation",
	Long: `Serve starts a read-only documentation server:

  GET /catalog                        HTML catalog with a topic filter
  GET /catalog/topics?group=<group>   topics as JSON
  GET /catalog/commands               commands and wire actions as JSON
  GET /catalog/examples               client examples as JSON
  GET /catalog/validate/<identifier>  identifier lookup
  GET /metrics                        prometheus metrics`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		srv, err := do.Invoke[*server.Server](injector)
		if err != nil {
			return err
		}
		addr := docsAddr
		if addr == "" {
			addr = do.MustInvoke[*config.Config](injector).DocsAddr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Start(ctx, addr)
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
	docsCmd.AddCommand(docsServeCmd)

	docsServeCmd.Flags().StringVar(&docsAddr, "addr", "", "Listen address (default DOCS_ADDR)")
}
