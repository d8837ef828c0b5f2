package styles

import (
	"time"

	"github.com/charmbracelet/bubbles/table"

	"github.com/bnema/favbuddy/internal/domain/entity"
)

// HistoryRenderer renders recorded enrichment runs.
type HistoryRenderer struct {
	theme *Theme
}

// NewHistoryRenderer creates a new history renderer with the given theme.
func NewHistoryRenderer(theme *Theme) *HistoryRenderer {
	return &HistoryRenderer{theme: theme}
}

// RenderRuns renders runs as a table, newest first.
func (r *HistoryRenderer) RenderRuns(runs []*entity.EnrichSession, now time.Time) string {
	if len(runs) == 0 {
		return r.theme.Subtle.Render("  No runs recorded yet.")
	}

	rows := make([]table.Row, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, RunRow(run, now))
	}
	cols := RunTableColumns()
	t := NewStyledTable(r.theme, cols, rows, ColumnsWidth(cols), len(rows)+2)
	return t.View()
}
