package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file location.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("\n  %s Config %s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
}

// RenderPaths renders the resolved data locations.
func (r *ConfigRenderer) RenderPaths(configFile, cacheFile, dbFile, logFile string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	row := func(icon, label, path string) string {
		return fmt.Sprintf("  %s %-9s %s", iconStyle.Render(icon), label, r.theme.Subtle.Render(path))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		row(IconConfig, "Config", configFile),
		row(IconCache, "Cache", cacheFile),
		row(IconDatabase, "History", dbFile),
		row(IconFolder, "Log", logFile),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf("\n  %s %s\n",
		lipgloss.NewStyle().Foreground(r.theme.Error).Render(IconX),
		r.theme.ErrorStyle.Render(err.Error()),
	)
}
