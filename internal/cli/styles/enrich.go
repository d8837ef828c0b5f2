package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/favbuddy/internal/domain/entity"
)

// EnrichRenderer renders the outcome of an enrichment run.
type EnrichRenderer struct {
	theme *Theme
}

// NewEnrichRenderer creates a new enrichment renderer with the given theme.
func NewEnrichRenderer(theme *Theme) *EnrichRenderer {
	return &EnrichRenderer{theme: theme}
}

// RenderSummary renders a boxed summary of a finished run.
func (r *EnrichRenderer) RenderSummary(session *entity.EnrichSession) string {
	t := r.theme
	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		t.Title.Render(IconBookmark+" favbuddy"), " ", t.RunStatusBadge(session.Status))

	lines := []string{
		header,
		"",
		fmt.Sprintf("%s %s", iconStyle.Render(IconCheck), t.SuccessStyle.Render(fmt.Sprintf("%d with icon", session.Succeeded))),
		fmt.Sprintf("%s %s", iconStyle.Render(IconX), t.WarningStyle.Render(fmt.Sprintf("%d without icon", session.Failed))),
		fmt.Sprintf("%s %s", iconStyle.Render(IconInfo), t.Subtle.Render(fmt.Sprintf("%d/%d links processed", session.Processed, session.Total))),
		fmt.Sprintf("%s %s", iconStyle.Render(IconClock), t.Subtle.Render(formatDuration(session.Duration()))),
	}
	if session.Status == entity.RunCompleted {
		lines = append(lines, fmt.Sprintf("%s %s", iconStyle.Render(IconArrow), t.Highlight.Render(session.OutputPath)))
	}
	if session.Error != "" {
		lines = append(lines, "", t.ErrorStyle.Render(session.Error))
	}

	return t.Box.Render(strings.Join(lines, "\n"))
}
