package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/favbuddy/internal/application/port"
)

func TestRecorder_Counters(t *testing.T) {
	r := NewRecorder()

	r.ObserveLookup(port.LookupHit)
	r.ObserveLookup(port.LookupHit)
	r.ObserveLookup(port.LookupMiss)
	r.ObserveFetch(true, 20*time.Millisecond)
	r.ObserveFetch(false, 5*time.Millisecond)
	r.ObserveLink(port.LinkSucceeded)
	r.ObserveFlush(true)

	assert.InDelta(t, 2, testutil.ToFloat64(r.CacheLookupsTotal.WithLabelValues(port.LookupHit)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.CacheLookupsTotal.WithLabelValues(port.LookupMiss)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.FetchesTotal.WithLabelValues("ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.FetchesTotal.WithLabelValues("error")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.LinksTotal.WithLabelValues(port.LinkSucceeded)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.CacheFlushesTotal.WithLabelValues("ok")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(r.FetchLatency))
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.ObserveLink(port.LinkFailed)

	path := filepath.Join(t.TempDir(), "nested", "favbuddy.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `favbuddy_links_total{outcome="failed"} 1`))
}
