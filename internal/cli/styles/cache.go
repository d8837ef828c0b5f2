package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// CacheRenderer renders icon cache management messages.
type CacheRenderer struct {
	theme *Theme
}

// NewCacheRenderer creates a new cache renderer with the given theme.
func NewCacheRenderer(theme *Theme) *CacheRenderer {
	return &CacheRenderer{theme: theme}
}

// RenderSuccess renders a completed cache operation.
func (r *CacheRenderer) RenderSuccess(message string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("  %s %s", iconStyle.Render(IconCheck), r.theme.Normal.Render(message))
}

// RenderError renders a failed cache operation.
func (r *CacheRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("  %s %s", iconStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}

// RenderPath renders the live cache location.
func (r *CacheRenderer) RenderPath(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("  %s %s", iconStyle.Render(IconCache), r.theme.Subtle.Render(path))
}

// RenderStats renders entry counts of the live cache.
func (r *CacheRenderer) RenderStats(path string, resolved, failed int) string {
	t := r.theme
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		t.Title.Render(IconCache+" Icon cache"), " ", t.CountBadge(resolved+failed, "hosts"))

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		fmt.Sprintf("%s %s", t.SuccessStyle.Render(IconImage), t.Normal.Render(fmt.Sprintf("%d with icon", resolved))),
		fmt.Sprintf("%s %s", t.WarningStyle.Render(IconX), t.Normal.Render(fmt.Sprintf("%d failed (never retried)", failed))),
		"",
		t.Subtle.Render(path),
	)
	return t.Box.Render(content)
}
