package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconCache_LookupMissingIsUnresolved(t *testing.T) {
	c := NewIconCache()
	e := c.Lookup("example.com")
	assert.Equal(t, IconUnresolved, e.Status)
	assert.Empty(t, e.Payload)
}

func TestIconCache_PutOverwrites(t *testing.T) {
	c := NewIconCache()
	c.Put("example.com", FailedIcon())
	c.Put("example.com", ResolvedIcon("data:image/png;base64,AA=="))

	e := c.Lookup("example.com")
	assert.Equal(t, IconResolved, e.Status)
	assert.Equal(t, "data:image/png;base64,AA==", e.Payload)
	assert.Equal(t, 1, c.Len())
}

func TestIconCache_PutUnresolvedRemoves(t *testing.T) {
	c := NewIconCache()
	c.Put("example.com", ResolvedIcon("x"))
	c.Put("example.com", IconEntry{})
	assert.Equal(t, 0, c.Len())
}

func TestIconCache_PutIgnoresEmptyHost(t *testing.T) {
	c := NewIconCache()
	c.Put("", ResolvedIcon("x"))
	assert.Equal(t, 0, c.Len())
}

func TestIconCache_ResolvedDropsNegativeEntries(t *testing.T) {
	c := NewIconCacheFrom(map[string]IconEntry{
		"a.com": ResolvedIcon("x"),
		"b.com": FailedIcon(),
		"c.com": ResolvedIcon("y"),
	})

	assert.Equal(t, map[string]string{"a.com": "x", "c.com": "y"}, c.Resolved())

	resolved, failed := c.Counts()
	assert.Equal(t, 2, resolved)
	assert.Equal(t, 1, failed)
	assert.Equal(t, []string{"a.com", "b.com", "c.com"}, c.Hosts())
}

func TestIconCache_Remove(t *testing.T) {
	c := NewIconCacheFrom(map[string]IconEntry{"a.com": FailedIcon()})
	assert.True(t, c.Remove("a.com"))
	assert.False(t, c.Remove("a.com"))
}

func TestIconCache_EntriesIsCopy(t *testing.T) {
	c := NewIconCacheFrom(map[string]IconEntry{"a.com": ResolvedIcon("x")})
	entries := c.Entries()
	delete(entries, "a.com")
	assert.Equal(t, 1, c.Len())
}

func TestEnrichSession_Lifecycle(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s := NewEnrichSession("in.html", "out.html", start)
	require.NotEmpty(t, s.ID)
	assert.Equal(t, RunRunning, s.Status)
	assert.Zero(t, s.Duration())

	s.Total = 4
	s.Processed = 1
	assert.Equal(t, 25.0, s.Progress().Percent())

	s.Finish(RunCompleted, start.Add(3*time.Second))
	assert.Equal(t, RunCompleted, s.Status)
	assert.Equal(t, 3*time.Second, s.Duration())
}

func TestProgressEvent_PercentWithNoTotal(t *testing.T) {
	assert.Zero(t, ProgressEvent{}.Percent())
}
