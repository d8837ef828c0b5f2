// Package cmd provides Cobra CLI commands for favbuddy.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/favbuddy/internal/cli"
	"github.com/bnema/favbuddy/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	language   string
	rootCmd    = &cobra.Command{
		Use:   "favbuddy",
		Short: "Embed favicons into browser bookmark exports",
		Long: `favbuddy - give your bookmarks their icons back.

favbuddy reads a Netscape bookmark export (the HTML file every browser can
import and export), looks up an icon for the host of every link and writes a
copy of the document with the icons embedded as data URIs.

Icons are kept in a persistent cache, so later runs only fetch hosts they have
never seen. Hosts whose lookup failed are remembered too and are not retried
until you remove them with 'favbuddy cache forget'.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigFile: configFile,
				Language:   language,
				BuildInfo:  buildInfo,
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/favbuddy/config.toml)")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", "transcript language (en, zh-CN)")
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
	rootCmd.Version = info.Version
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
