package cmd

import (
	"fmt"
	"os"

	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nfrund/wscatalog/internal/app"
	"github.com/nfrund/wscatalog/internal/config"
	"github.com/nfrund/wscatalog/internal/topicmgr"
)

var (
	envFile     string
	catalogPath string

	// injector is built before every command runs and shut down after.
	injector *do.RootScope
)

var rootCmd = &cobra.Command{
	Use:   "wscatalog",
	Short: "WebSocket topic and command catalog",
	Long: `wscatalog is the command-line interface for the WebSocket topic and command
catalog shared by the gateway and its clients.

Available commands:
  topics      List and inspect server-to-client topics
  commands    List client-to-server commands and their wire actions
  validate    Check whether an identifier is a known topic, command or action
  check       Build a catalog and report construction errors
  gen         Generate typed Go constants for every topic and command
  docs        Serve the HTML and JSON catalog documentation
  emit        Publish an event through the guarded bus

Use "wscatalog [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var files []string
		if envFile != "" {
			files = append(files, envFile)
		}
		cfg, err := config.Load(files...)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if catalogPath != "" {
			cfg.CatalogPath = catalogPath
		}
		injector = app.New(cfg, afero.NewOsFs(), cmd.ErrOrStderr())
		return nil
	},
}

// Execute executes the root command
func Execute() {
	err := rootCmd.Execute()
	shutdown()
	if err != nil {
		os.Exit(1)
	}
}

func shutdown() {
	if injector == nil {
		return
	}
	if report := injector.Shutdown(); report != nil && !report.Succeed {
		fmt.Fprintf(os.Stderr, "Error: shutdown: %v\n", report)
	}
	injector = nil
}

func registry() (*topicmgr.Registry, error) {
	return do.Invoke[*topicmgr.Registry](injector)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Read configuration from this .env file (default .env)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML catalog to load instead of the built-in one (overrides CATALOG_PATH)")
}
