package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/viewspace/internal/cli/styles"
	"github.com/bnema/viewspace/internal/infrastructure/config"
)

var schemaStdout bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show where configuration and logs live, and generate the JSON schema for editor completion.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config and log file paths",
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write config.schema.json next to the config file",
	Long: `Write the JSON schema of config.toml next to it, or print it with --stdout.

Editors with TOML schema support (taplo, Even Better TOML) can use it for
completion and validation.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().BoolVar(&schemaStdout, "stdout", false, "print the schema instead of writing it")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logFile := app.Config.Logging.File
	if logFile == "" {
		var err error
		if logFile, err = config.GetLogFile(); err != nil {
			return fmt.Errorf("resolve log file: %w", err)
		}
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderPaths(app.ConfigManager.GetConfigFile(), logFile))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if schemaStdout {
		data, err := config.Schema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	path, err := app.ConfigManager.WriteSchemaFile()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderSchemaWritten(path))
	return nil
}
