// Package cmd provides Cobra CLI commands for viewspace.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/viewspace/internal/cli"
	"github.com/bnema/viewspace/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	configDir string
	rootCmd   = &cobra.Command{
		Use:   "viewspace [file...]",
		Short: "A split-pane document viewer for the terminal",
		Long: `Viewspace - open documents in panes you split, close and resize from the keyboard.

Every pane (a view space) keeps its own stack of views. Splitting a pane
opens the same document next to it, closing a pane gives its room back to
its neighbours and focus returns to the pane you used before.

Running 'viewspace' with files opens the editor; the subcommands cover
configuration and scripted layout replays.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "__complete":
				return nil
			}

			var err error
			app, err = cli.NewApp(configDir)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
		RunE:         runEdit,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"directory holding config.toml (default $XDG_CONFIG_HOME/viewspace)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.Short()
}
