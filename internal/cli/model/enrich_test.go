package model

import (
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/favbuddy/internal/cli/styles"
	"github.com/bnema/favbuddy/internal/domain/entity"
)

func newTestModel(events chan entity.Event, cancel func()) EnrichModel {
	return NewEnrichModel(styles.NewTheme(), "/in.html", events, cancel)
}

func update(t *testing.T, m EnrichModel, msg tea.Msg) (EnrichModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	em, ok := next.(EnrichModel)
	require.True(t, ok)
	return em, cmd
}

func TestEnrichModel_ConsumesEvents(t *testing.T) {
	events := make(chan entity.Event, 2)
	m := newTestModel(events, nil)

	m, cmd := update(t, m, eventMsg{event: entity.ProgressEvent{Processed: 3, Total: 10}})
	require.NotNil(t, cmd)
	assert.Equal(t, 3, m.processed)
	assert.Equal(t, 10, m.total)

	// the returned command reads the next event
	events <- entity.LogLine{Text: "hello"}
	assert.Equal(t, eventMsg{event: entity.LogLine{Text: "hello"}}, cmd())

	close(events)
	assert.Equal(t, eventsClosedMsg{}, waitForEvent(events)())
}

func TestEnrichModel_KeepsLastLines(t *testing.T) {
	m := newTestModel(make(chan entity.Event), nil)
	for i := range visibleLines + 3 {
		m, _ = update(t, m, eventMsg{event: entity.LogLine{Text: fmt.Sprintf("line %d", i)}})
	}
	m, _ = update(t, m, eventMsg{event: entity.LogLine{Text: ""}})

	require.Len(t, m.lines, visibleLines)
	assert.Equal(t, "line 3", m.lines[0])
	assert.Equal(t, fmt.Sprintf("line %d", visibleLines+2), m.lines[visibleLines-1])
	assert.Contains(t, m.View(), "line 10")
}

func TestEnrichModel_CancelOnce(t *testing.T) {
	calls := 0
	m := newTestModel(make(chan entity.Event), func() { calls++ })

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Nil(t, cmd, "cancelling does not quit before the run returns")
	assert.True(t, m.Cancelled())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, 1, calls)
	assert.Contains(t, m.View(), "Stopping after current link")
}

func TestEnrichModel_FinishQuits(t *testing.T) {
	m := newTestModel(make(chan entity.Event), nil)
	session := &entity.EnrichSession{Status: entity.RunFailed, Error: "boom"}
	runErr := errors.New("boom")

	m, cmd := update(t, m, RunFinishedMsg{Session: session, Err: runErr})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Same(t, session, m.Session())
	assert.Equal(t, runErr, m.Err())
	assert.Contains(t, m.View(), "boom")
}

func TestEnrichModel_WindowResize(t *testing.T) {
	m := newTestModel(make(chan entity.Event), nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Equal(t, maxBarWidth, m.bar.Width)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 40})
	assert.Equal(t, 40-barHorizontalPad, m.bar.Width)
}
