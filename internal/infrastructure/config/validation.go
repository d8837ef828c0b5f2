package config

import (
	"fmt"
	"strings"

	"github.com/bnema/favbuddy/internal/infrastructure/favicon"
	"github.com/bnema/favbuddy/internal/infrastructure/i18n"
	"github.com/bnema/favbuddy/internal/logging"
)

// validateConfig performs validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateServices(config)...)
	validationErrors = append(validationErrors, validateFetch(config)...)
	validationErrors = append(validationErrors, validateCache(config)...)
	validationErrors = append(validationErrors, validateLanguage(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateServices(config *Config) []string {
	var validationErrors []string
	services := config.Favicon.Services

	if len(services) == 0 {
		return []string{"favicon.services must contain at least one service"}
	}

	seen := make(map[string]bool, len(services))
	for i, svc := range services {
		name := strings.TrimSpace(svc.Name)
		if name == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("favicon.services[%d].name cannot be empty", i))
		} else if seen[strings.ToLower(name)] {
			validationErrors = append(validationErrors, fmt.Sprintf("favicon.services[%d].name %q is duplicated", i, name))
		}
		seen[strings.ToLower(name)] = true

		if !strings.Contains(svc.URLTemplate, favicon.DomainPlaceholder) {
			validationErrors = append(validationErrors,
				fmt.Sprintf("favicon.services[%d].url_template must contain %s", i, favicon.DomainPlaceholder))
		}
	}

	if config.Favicon.CurrentService < 0 || config.Favicon.CurrentService >= len(services) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("favicon.current_service must be between 0 and %d", len(services)-1))
	}
	return validationErrors
}

func validateFetch(config *Config) []string {
	d, err := config.FetchTimeoutDuration()
	if err != nil {
		return []string{err.Error()}
	}
	if d < 0 {
		return []string{"favicon.fetch_timeout must be non-negative"}
	}
	return nil
}

func validateCache(config *Config) []string {
	if config.Cache.CheckpointInterval <= 0 {
		return []string{"cache.checkpoint_interval must be greater than 0"}
	}
	return nil
}

func validateLanguage(config *Config) []string {
	if config.Language != "" && !i18n.IsSupported(config.Language) {
		return []string{fmt.Sprintf("language must be one of %s (or empty for auto-detection)",
			strings.Join(i18n.SupportedLocales(), ", "))}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if config.Logging.Level != "" && !logging.IsValidLevel(config.Logging.Level) {
		validationErrors = append(validationErrors, "logging.level must be one of trace, debug, info, warn, error, disabled")
	}
	switch config.Logging.Format {
	case "", "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	return validationErrors
}
