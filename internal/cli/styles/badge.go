package styles

import (
	"fmt"
	"time"

	"github.com/bnema/favbuddy/internal/domain/entity"
)

// RunStatusBadge renders the terminal status of a run.
func (t *Theme) RunStatusBadge(status entity.RunStatus) string {
	switch status {
	case entity.RunCompleted:
		return t.Badge.Render(string(status))
	case entity.RunAborted:
		return t.BadgeWarning.Render(string(status))
	case entity.RunFailed:
		return t.BadgeError.Render(string(status))
	default:
		return t.BadgeMuted.Render(string(status))
	}
}

// CountBadge renders a labelled count.
func (t *Theme) CountBadge(count int, label string) string {
	return t.BadgeMuted.Render(fmt.Sprintf("%d %s", count, label))
}

// RelativeTime formats tm relative to now as a short human-readable string.
func RelativeTime(tm, now time.Time) string {
	diff := now.Sub(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(diff.Hours()/(24*7)))
	case diff < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(diff.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(diff.Hours()/(24*365)))
	}
}
