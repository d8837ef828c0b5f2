package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading and saving.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
}

// NewManager creates a configuration manager for the XDG config file.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerForFile(configFile)
}

// NewManagerForFile creates a configuration manager for an explicit config file.
func NewManagerForFile(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// FAVBUDDY_CACHE_PATH, FAVBUDDY_FAVICON_CURRENT_SERVICE, ...
	v.SetEnvPrefix("FAVBUDDY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "FAVBUDDY_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind FAVBUDDY_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "FAVBUDDY_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind FAVBUDDY_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v, configFile: configFile}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written when none exists.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensurePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configFile,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}
	return config, nil
}

// ensurePaths fills in data file locations left empty in the config file.
func ensurePaths(config *Config) error {
	if config.Cache.Path == "" {
		cachePath, err := GetCacheFile()
		if err != nil {
			return fmt.Errorf("failed to get cache path: %w", err)
		}
		config.Cache.Path = cachePath
	}
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Language = strings.TrimSpace(config.Language)
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Favicon.FetchTimeout = strings.TrimSpace(config.Favicon.FetchTimeout)
	for i := range config.Favicon.Services {
		config.Favicon.Services[i].Name = strings.TrimSpace(config.Favicon.Services[i].Name)
		config.Favicon.Services[i].URLTemplate = strings.TrimSpace(config.Favicon.Services[i].URLTemplate)
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Favicon.Services = append([]IconService(nil), m.config.Favicon.Services...)
	return &configCopy
}

// Save validates cfg, writes it to the config file and reloads.
func (m *Manager) Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(cfg, m.configFile); err != nil {
		return err
	}

	return m.Load()
}

// GetConfigFile returns the path to the configuration file.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// createDefaultConfig writes the default configuration file.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	return WriteConfigOrdered(DefaultConfig(), m.configFile)
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("language", defaults.Language)

	m.viper.SetDefault("favicon.services", defaults.Favicon.Services)
	m.viper.SetDefault("favicon.current_service", defaults.Favicon.CurrentService)
	m.viper.SetDefault("favicon.fetch_timeout", defaults.Favicon.FetchTimeout)
	m.viper.SetDefault("favicon.user_agent", defaults.Favicon.UserAgent)

	m.viper.SetDefault("cache.path", defaults.Cache.Path)
	m.viper.SetDefault("cache.checkpoint_interval", defaults.Cache.CheckpointInterval)

	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}
