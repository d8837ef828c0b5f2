package config

// Default configuration constants
const (
	defaultCheckpointInterval = 50 // links
	defaultFetchTimeout       = "0s"
	defaultUserAgent          = "Mozilla/5.0 (compatible; favbuddy)"
	defaultLogLevel           = "info"
	defaultLogFormat          = "console"
)

// DefaultIconServices returns the built-in icon providers.
func DefaultIconServices() []IconService {
	return []IconService{
		{
			Name:        "Google",
			URLTemplate: "https://www.google.com/s2/favicons?sz=64&domain={domain}",
			IsDefault:   true,
		},
		{
			Name:        "DuckDuckGo",
			URLTemplate: "https://icons.duckduckgo.com/ip3/{domain}.ico",
		},
	}
}

// DefaultConfig returns the default configuration.
// Cache.Path and Database.Path are resolved from XDG directories in Load.
func DefaultConfig() *Config {
	return &Config{
		Favicon: FaviconConfig{
			Services:       DefaultIconServices(),
			CurrentService: 0,
			FetchTimeout:   defaultFetchTimeout,
			UserAgent:      defaultUserAgent,
		},
		Cache: CacheConfig{
			CheckpointInterval: defaultCheckpointInterval,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
