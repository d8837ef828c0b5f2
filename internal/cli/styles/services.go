package styles

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// ServiceView is the display form of a configured icon service.
type ServiceView struct {
	Name        string
	URLTemplate string
	IsDefault   bool
	Current     bool
}

// ServicesRenderer renders the icon service list.
type ServicesRenderer struct {
	theme *Theme
}

// NewServicesRenderer creates a new services renderer with the given theme.
func NewServicesRenderer(theme *Theme) *ServicesRenderer {
	return &ServicesRenderer{theme: theme}
}

// RenderList renders services as a table, marking the current one.
func (r *ServicesRenderer) RenderList(services []ServiceView) string {
	rows := make([]table.Row, 0, len(services))
	for i, svc := range services {
		index := strconv.Itoa(i)
		if svc.Current {
			index = IconCursor + index
		}
		isDefault := ""
		if svc.IsDefault {
			isDefault = "yes"
		}
		rows = append(rows, table.Row{index, svc.Name, isDefault, svc.URLTemplate})
	}

	cols := ServiceTableColumns()
	t := NewStyledTable(r.theme, cols, rows, ColumnsWidth(cols), len(rows)+2)
	return t.View()
}

// RenderChanged renders a confirmation for a service list change.
func (r *ServicesRenderer) RenderChanged(message string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("  %s %s", iconStyle.Render(IconCheck), r.theme.Normal.Render(message))
}
