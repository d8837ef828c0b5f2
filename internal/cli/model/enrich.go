// Package model provides Bubble Tea models for interactive CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/favbuddy/internal/cli/styles"
	"github.com/bnema/favbuddy/internal/domain/entity"
)

const (
	// visibleLines is the number of transcript lines kept on screen.
	visibleLines     = 8
	defaultBarWidth  = 50
	maxBarWidth      = 80
	barHorizontalPad = 8
)

// RunFinishedMsg reports that the enrichment run returned.
type RunFinishedMsg struct {
	Session *entity.EnrichSession
	Err     error
}

type eventMsg struct {
	event entity.Event
}

type eventsClosedMsg struct{}

// EnrichModel shows progress of a running enrichment.
// Cancel requests stop the run after the current link; the model exits once
// RunFinishedMsg arrives.
type EnrichModel struct {
	theme   *styles.Theme
	keys    styles.EnrichKeyMap
	help    help.Model
	spinner spinner.Model
	bar     progress.Model

	events <-chan entity.Event
	cancel context.CancelFunc

	inputPath  string
	processed  int
	total      int
	lines      []string
	cancelling bool
	finished   bool
	session    *entity.EnrichSession
	err        error
}

// NewEnrichModel creates a progress view fed by events. cancel stops the run.
func NewEnrichModel(theme *styles.Theme, inputPath string, events <-chan entity.Event, cancel context.CancelFunc) EnrichModel {
	return EnrichModel{
		theme:     theme,
		keys:      styles.DefaultEnrichKeyMap(),
		help:      styles.NewStyledHelp(theme),
		spinner:   styles.NewDefaultSpinner(theme),
		bar:       styles.NewProgressBar(theme, defaultBarWidth),
		events:    events,
		cancel:    cancel,
		inputPath: inputPath,
	}
}

// Init implements tea.Model.
func (m EnrichModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForEvent(m.events))
}

// waitForEvent reads the next event; a closed channel ends the stream.
func waitForEvent(events <-chan entity.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg{event: ev}
	}
}

// Update implements tea.Model.
func (m EnrichModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		switch ev := msg.event.(type) {
		case entity.ProgressEvent:
			m.processed, m.total = ev.Processed, ev.Total
		case entity.LogLine:
			m.appendLine(ev.Text)
		}
		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		return m, nil

	case RunFinishedMsg:
		m.finished = true
		m.session = msg.Session
		m.err = msg.Err
		return m, tea.Quit

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Cancel) && !m.cancelling && !m.finished {
			m.cancelling = true
			if m.cancel != nil {
				m.cancel()
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width-barHorizontalPad, 10), maxBarWidth)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *EnrichModel) appendLine(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	m.lines = append(m.lines, line)
	if len(m.lines) > visibleLines {
		m.lines = m.lines[len(m.lines)-visibleLines:]
	}
}

// View implements tea.Model.
func (m EnrichModel) View() string {
	t := m.theme

	if m.finished {
		if m.session == nil {
			return ""
		}
		return styles.NewEnrichRenderer(t).RenderSummary(m.session) + "\n"
	}

	status := "Enriching"
	if m.cancelling {
		status = "Stopping after current link"
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		m.spinner.View(), " ", t.Title.Render(status), " ", t.Subtle.Render(m.inputPath))

	percent := 0.0
	if m.total > 0 {
		percent = float64(m.processed) / float64(m.total)
	}
	counter := t.Subtle.Render(fmt.Sprintf("%d/%d", m.processed, m.total))

	logLines := make([]string, 0, len(m.lines))
	for _, l := range m.lines {
		logLines = append(logLines, t.Subtle.Render(l))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, m.bar.ViewAs(percent), "  ", counter),
		"",
		strings.Join(logLines, "\n"),
		"",
		m.help.View(m.keys),
	) + "\n"
}

// Session returns the finished session, or nil while running.
func (m EnrichModel) Session() *entity.EnrichSession {
	return m.session
}

// Err returns the error the run finished with.
func (m EnrichModel) Err() error {
	return m.err
}

// Cancelled reports whether the user asked to stop the run.
func (m EnrichModel) Cancelled() bool {
	return m.cancelling
}

// Ensure interface compliance.
var _ tea.Model = (*EnrichModel)(nil)
