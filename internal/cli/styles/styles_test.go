package styles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/favbuddy/internal/domain/build"
	"github.com/bnema/favbuddy/internal/domain/entity"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{2 * 24 * time.Hour, "2d ago"},
		{14 * 24 * time.Hour, "2w ago"},
		{60 * 24 * time.Hour, "2mo ago"},
		{800 * 24 * time.Hour, "2y ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RelativeTime(now.Add(-tt.ago), now))
	}
}

func TestRunRow(t *testing.T) {
	started := time.Date(2026, 10, 18, 11, 0, 0, 0, time.UTC)
	run := &entity.EnrichSession{
		InputPath:  "/home/me/bookmarks.html",
		Status:     entity.RunAborted,
		Processed:  7,
		Total:      12,
		Succeeded:  5,
		Failed:     2,
		StartedAt:  started,
		FinishedAt: started.Add(1500 * time.Millisecond),
	}

	row := RunRow(run, started.Add(2*time.Hour))
	assert.Equal(t, []string{"2h ago", "aborted", "7/12", "5", "2", "1.5s", "/home/me/bookmarks.html"}, []string(row))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "-", formatDuration(0))
	assert.Equal(t, "250ms", formatDuration(250*time.Millisecond))
	assert.Equal(t, "2m3.4s", formatDuration(2*time.Minute+3420*time.Millisecond))
}

func TestColumnsWidth(t *testing.T) {
	assert.Equal(t, 3+2+16+2+8+2+60+2, ColumnsWidth(ServiceTableColumns()))
}

func TestRenderers(t *testing.T) {
	theme := NewTheme()

	about := NewAboutRenderer(theme).Render(build.Info{Version: "v1.2.3", Commit: "abc123"})
	assert.Contains(t, about, "v1.2.3")
	assert.Contains(t, about, build.RepoURL())

	summary := NewEnrichRenderer(theme).RenderSummary(&entity.EnrichSession{
		Status:     entity.RunCompleted,
		OutputPath: "/tmp/out.html",
		Succeeded:  3,
		Failed:     1,
		Processed:  4,
		Total:      5,
	})
	assert.Contains(t, summary, "/tmp/out.html")
	assert.Contains(t, summary, "4/5 links processed")

	assert.Contains(t, NewHistoryRenderer(theme).RenderRuns(nil, time.Now()), "No runs recorded yet.")

	list := NewServicesRenderer(theme).RenderList([]ServiceView{
		{Name: "Google", URLTemplate: "https://g/{domain}", IsDefault: true, Current: true},
		{Name: "DuckDuckGo", URLTemplate: "https://d/{domain}.ico"},
	})
	assert.Contains(t, list, "Google")
	assert.Contains(t, list, "DuckDuckGo")
}
