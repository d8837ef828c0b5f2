package styles

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/favbuddy/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	// Static output: nothing is selected.
	s.Selected = s.Cell.Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// RunTableColumns returns columns for the run history table.
func RunTableColumns() []table.Column {
	return []table.Column{
		{Title: "Started", Width: 10},
		{Title: "Status", Width: 10},
		{Title: "Links", Width: 9},
		{Title: "OK", Width: 6},
		{Title: "Failed", Width: 6},
		{Title: "Took", Width: 8},
		{Title: "Input", Width: 40},
	}
}

// RunRow converts a recorded run to a table row.
func RunRow(run *entity.EnrichSession, now time.Time) table.Row {
	return table.Row{
		RelativeTime(run.StartedAt, now),
		string(run.Status),
		strconv.Itoa(run.Processed) + "/" + strconv.Itoa(run.Total),
		strconv.Itoa(run.Succeeded),
		strconv.Itoa(run.Failed),
		formatDuration(run.Duration()),
		run.InputPath,
	}
}

// ServiceTableColumns returns columns for the icon service table.
func ServiceTableColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: 16},
		{Title: "Default", Width: 8},
		{Title: "URL Template", Width: 60},
	}
}

// ColumnsWidth returns the rendered width of columns, including cell padding.
func ColumnsWidth(columns []table.Column) int {
	const cellPadding = 2
	w := 0
	for _, c := range columns {
		w += c.Width + cellPadding
	}
	return w
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	if d < time.Second {
		return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
	}
	return d.Round(100 * time.Millisecond).String()
}
