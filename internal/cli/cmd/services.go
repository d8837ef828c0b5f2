package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/favbuddy/internal/cli"
	"github.com/bnema/favbuddy/internal/cli/styles"
	"github.com/bnema/favbuddy/internal/infrastructure/config"
)

var servicesCmd = &cobra.Command{
	Use:     "services",
	Aliases: []string{"service"},
	Short:   "Manage icon services",
	Long: `List and edit the icon services favbuddy can fetch from.

A service is a URL template containing {domain}, which is replaced by the host
of each bookmark. Services can be referenced by name or by index.`,
}

var servicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured icon services",
	Args:  cobra.NoArgs,
	RunE:  runServicesList,
}

var servicesUseCmd = &cobra.Command{
	Use:   "use <name|index>",
	Short: "Select the icon service used for fetching",
	Args:  cobra.ExactArgs(1),
	RunE: editServices(func(cfg *config.Config, args []string) (string, error) {
		if err := cfg.UseService(args[0]); err != nil {
			return "", err
		}
		return fmt.Sprintf("Now using %s", cfg.Favicon.Services[cfg.Favicon.CurrentService].Name), nil
	}),
}

var servicesAddCmd = &cobra.Command{
	Use:     "add <name> <url-template>",
	Short:   "Add a custom icon service",
	Example: `  favbuddy services add Favicone 'https://favicone.com/{domain}?s=64'`,
	Args:    cobra.ExactArgs(2),
	RunE: editServices(func(cfg *config.Config, args []string) (string, error) {
		if err := cfg.AddService(args[0], args[1]); err != nil {
			return "", err
		}
		return fmt.Sprintf("Added %s", args[0]), nil
	}),
}

var servicesRemoveCmd = &cobra.Command{
	Use:   "remove <name|index>",
	Short: "Remove a custom icon service",
	Args:  cobra.ExactArgs(1),
	RunE: editServices(func(cfg *config.Config, args []string) (string, error) {
		if err := cfg.RemoveService(args[0]); err != nil {
			return "", err
		}
		return fmt.Sprintf("Removed %s", args[0]), nil
	}),
}

var servicesExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the service list as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runServicesExport,
}

var servicesImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the service list with one exported earlier",
	Args:  cobra.ExactArgs(1),
	RunE: editServices(func(cfg *config.Config, args []string) (string, error) {
		if err := cfg.ImportServices(args[0]); err != nil {
			return "", err
		}
		return fmt.Sprintf("Imported %d services", len(cfg.Favicon.Services)), nil
	}),
}

func init() {
	rootCmd.AddCommand(servicesCmd)
	servicesCmd.AddCommand(servicesListCmd, servicesUseCmd, servicesAddCmd, servicesRemoveCmd, servicesExportCmd, servicesImportCmd)
}

func serviceViews(cfg *config.Config) []styles.ServiceView {
	views := make([]styles.ServiceView, 0, len(cfg.Favicon.Services))
	for i, svc := range cfg.Favicon.Services {
		views = append(views, styles.ServiceView{
			Name:        svc.Name,
			URLTemplate: svc.URLTemplate,
			IsDefault:   svc.IsDefault,
			Current:     i == cfg.Favicon.CurrentService,
		})
	}
	return views
}

func runServicesList(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewServicesRenderer(app.Theme).RenderList(serviceViews(app.Config)))
	return nil
}

func runServicesExport(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if err := app.Config.ExportServices(args[0]); err != nil {
		return fmt.Errorf("export services: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewServicesRenderer(app.Theme).RenderChanged("Exported services to "+args[0]))
	return nil
}

// editServices loads the config file, applies edit and saves the result.
func editServices(edit func(cfg *config.Config, args []string) (string, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		if err := writableConfig(app); err != nil {
			return err
		}

		cfg := app.ConfigManager.Get()
		message, err := edit(cfg, args)
		if err != nil {
			return err
		}
		if err := app.ConfigManager.Save(cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), styles.NewServicesRenderer(app.Theme).RenderChanged(message))
		return nil
	}
}

// writableConfig refuses to overwrite a config file that failed to load.
func writableConfig(app *cli.App) error {
	if app.ConfigErr != nil {
		return fmt.Errorf("config file is not usable, fix it first: %w", app.ConfigErr)
	}
	if app.ConfigManager == nil {
		return fmt.Errorf("no config file")
	}
	return nil
}
