package cmd

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/bnema/favbuddy/internal/cli/styles"
	"github.com/bnema/favbuddy/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where favbuddy keeps its files and print the effective configuration.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config, cache, history and log locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configSchemaCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	path := configFile
	if app.ConfigManager != nil {
		path = app.ConfigManager.GetConfigFile()
	}
	logFile, err := config.GetLogFile()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPaths(path, app.Config.Cache.Path, app.Config.Database.Path, logFile))
	if app.ConfigErr != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(app.ConfigErr))
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if app.ConfigErr != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), styles.NewConfigRenderer(app.Theme).RenderError(app.ConfigErr))
	}

	data, err := toml.Marshal(app.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(schema))
	return err
}
