// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/favbuddy/internal/application/usecase"
	"github.com/bnema/favbuddy/internal/cli/styles"
	"github.com/bnema/favbuddy/internal/domain/build"
	"github.com/bnema/favbuddy/internal/infrastructure/config"
	"github.com/bnema/favbuddy/internal/infrastructure/favicon"
	"github.com/bnema/favbuddy/internal/infrastructure/filesystem"
	"github.com/bnema/favbuddy/internal/infrastructure/i18n"
	"github.com/bnema/favbuddy/internal/infrastructure/metrics"
	"github.com/bnema/favbuddy/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/favbuddy/internal/logging"
)

// Options controls how the App is assembled.
type Options struct {
	// ConfigFile overrides the XDG config location.
	ConfigFile string
	// Language overrides the configured transcript language.
	Language  string
	BuildInfo build.Info
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	// ConfigErr is set when the config file could not be used and defaults were applied.
	ConfigErr  error
	Theme      *styles.Theme
	BuildInfo  build.Info
	Translator *i18n.Catalog
	Metrics    *metrics.Recorder
	Runs       *sqlite.RunRepository

	// Use cases
	EnrichUC *usecase.EnrichBookmarksUseCase
	CacheUC  *usecase.ManageIconCacheUseCase
	RunsUC   *usecase.ListRunsUseCase

	db         *sqlite.LazyDB
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	mgr, cfg, cfgErr := loadConfig(opts.ConfigFile)

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default configuration")
	}

	language := cfg.Language
	if opts.Language != "" {
		language = opts.Language
	}
	catalog, err := i18n.NewCatalog(language)
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}

	fetcher, err := newFetcher(cfg, opts.BuildInfo)
	if err != nil {
		return nil, err
	}

	files := filesystem.New()
	store := favicon.NewFileStore(nil)
	recorder := metrics.NewRecorder()

	db := sqlite.NewLazyDB(cfg.Database.Path)
	runs := sqlite.NewRunRepository(db)

	enrichUC := usecase.NewEnrichBookmarksUseCase(store, fetcher, files, catalog, cfg.Cache.Path,
		usecase.WithMetrics(recorder),
		usecase.WithRunHistory(runs),
		usecase.WithCheckpointInterval(cfg.Cache.CheckpointInterval),
	)

	logger.Debug().
		Str("cache", cfg.Cache.Path).
		Str("db_path", cfg.Database.Path).
		Str("locale", catalog.Locale()).
		Msg("cli initialized")

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		ConfigErr:     cfgErr,
		Theme:         styles.NewTheme(),
		BuildInfo:     opts.BuildInfo,
		Translator:    catalog,
		Metrics:       recorder,
		Runs:          runs,
		EnrichUC:      enrichUC,
		CacheUC:       usecase.NewManageIconCacheUseCase(store, files, cfg.Cache.Path),
		RunsUC:        usecase.NewListRunsUseCase(runs),
		db:            db,
		ctx:           ctx,
		logCleanup:    func() {},
	}, nil
}

// newFetcher builds a fetcher for the currently selected icon service.
func newFetcher(cfg *config.Config, info build.Info) (*favicon.Fetcher, error) {
	svc, err := cfg.ActiveService()
	if err != nil {
		return nil, err
	}
	timeout, err := cfg.FetchTimeoutDuration()
	if err != nil {
		return nil, err
	}
	userAgent := cfg.Favicon.UserAgent
	if userAgent == "" {
		userAgent = build.UserAgent(info)
	}
	return favicon.NewFetcher(svc.URLTemplate,
		favicon.WithTimeout(timeout),
		favicon.WithUserAgent(userAgent),
	), nil
}

// UseFileLogger redirects operational logs to the state log file so they do
// not draw over the TUI.
func (a *App) UseFileLogger() error {
	logFile, err := config.GetLogFile()
	if err != nil {
		return err
	}

	logger, cleanup, err := logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(a.Config.Logging.Level),
			Format:     a.Config.Logging.Format,
			TimeFormat: time.RFC3339,
		},
		logging.FileConfig{Enabled: true, Path: logFile},
	)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	a.logCleanup()
	a.logCleanup = cleanup
	a.ctx = logging.WithContext(context.Background(), logger)
	return nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// T translates key with the active catalog.
func (a *App) T(key string, args map[string]string) string {
	return a.Translator.Translate(key, args)
}

// loadConfig loads configuration, falling back to defaults when the file is unusable.
func loadConfig(configFile string) (*config.Manager, *config.Config, error) {
	var (
		mgr *config.Manager
		err error
	)
	if configFile != "" {
		mgr, err = config.NewManagerForFile(configFile)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, fallbackConfig(), err
	}

	if err := mgr.Load(); err != nil {
		return mgr, fallbackConfig(), err
	}
	return mgr, mgr.Get(), nil
}

// fallbackConfig returns defaults with XDG paths resolved.
func fallbackConfig() *config.Config {
	cfg := config.DefaultConfig()
	if cfg.Cache.Path == "" {
		cfg.Cache.Path, _ = config.GetCacheFile()
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path, _ = config.GetDatabaseFile()
	}
	return cfg
}
