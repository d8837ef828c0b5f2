package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/favbuddy/internal/application/usecase"
	"github.com/bnema/favbuddy/internal/cli/styles"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the favicon cache",
	Long: `Export, import and inspect the persistent favicon cache.

Exports contain only hosts with an icon. Imports accept favbuddy exports, the
live cache file, flat {"host": "icon"} maps and most other JSON objects that
map hosts to icons; imported hosts overwrite cached entries.`,
}

var cacheExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export cached icons to a portable JSON file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCacheExport,
}

var cacheImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge icons from a JSON file into the cache",
	Args:  cobra.ExactArgs(1),
	RunE:  runCacheImport,
}

var cacheValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check whether a JSON file can be imported",
	Args:  cobra.ExactArgs(1),
	RunE:  runCacheValidate,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how many hosts are cached",
	Args:  cobra.NoArgs,
	RunE:  runCacheStats,
}

var cacheForgetCmd = &cobra.Command{
	Use:   "forget <host>...",
	Short: "Remove hosts from the cache so the next run fetches them again",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCacheForget,
}

var cachePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the cache file location",
	Args:  cobra.NoArgs,
	RunE:  runCachePath,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheExportCmd, cacheImportCmd, cacheValidateCmd, cacheStatsCmd, cacheForgetCmd, cachePathCmd)
}

func runCacheExport(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewCacheRenderer(app.Theme)

	path := usecase.ExportFileName(time.Now())
	if len(args) == 1 {
		path = args[0]
	}

	res, err := app.CacheUC.Export(app.Ctx(), path)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSuccess(app.T("cache.exported", map[string]string{
		"count": strconv.Itoa(res.Count),
		"path":  res.Path,
	})))
	return nil
}

func runCacheImport(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewCacheRenderer(app.Theme)

	res, err := app.CacheUC.Import(app.Ctx(), args[0])
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSuccess(app.T("cache.imported", map[string]string{
		"count":  strconv.Itoa(res.Count),
		"schema": res.Schema,
		"path":   res.Path,
	})))
	return nil
}

func runCacheValidate(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewCacheRenderer(app.Theme)

	imported, err := app.CacheUC.Validate(app.Ctx(), args[0])
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSuccess(app.T("cache.valid", map[string]string{
		"schema": imported.Schema,
		"count":  strconv.Itoa(len(imported.Entries)),
	})))
	return nil
}

func runCacheStats(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	stats := app.CacheUC.Stats(app.Ctx())
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewCacheRenderer(app.Theme).RenderStats(stats.Path, stats.Resolved, stats.Failed))
	return nil
}

func runCacheForget(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewCacheRenderer(app.Theme)

	removed, err := app.CacheUC.Forget(app.Ctx(), args)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSuccess(app.T("cache.forgotten", map[string]string{
		"count": strconv.Itoa(removed),
	})))
	return nil
}

func runCachePath(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.CacheUC.CachePath())
	return nil
}
