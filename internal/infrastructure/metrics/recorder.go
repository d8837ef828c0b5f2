// Package metrics records enrichment run counters with Prometheus.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bnema/favbuddy/internal/application/port"
)

// Recorder implements port.EnrichMetrics on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	// LinksTotal counts processed links by outcome
	LinksTotal *prometheus.CounterVec
	// CacheLookupsTotal counts icon cache lookups by result
	CacheLookupsTotal *prometheus.CounterVec
	// FetchesTotal counts provider requests by result
	FetchesTotal *prometheus.CounterVec
	// FetchLatency tracks provider request latency
	FetchLatency prometheus.Histogram
	// CacheFlushesTotal counts cache file writes by result
	CacheFlushesTotal *prometheus.CounterVec
}

var _ port.EnrichMetrics = (*Recorder)(nil)

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		LinksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "favbuddy_links_total",
				Help: "Total number of bookmark links processed",
			},
			[]string{"outcome"},
		),
		CacheLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "favbuddy_cache_lookups_total",
				Help: "Total number of icon cache lookups",
			},
			[]string{"result"},
		),
		FetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "favbuddy_fetches_total",
				Help: "Total number of icon provider requests",
			},
			[]string{"result"},
		),
		FetchLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "favbuddy_fetch_latency_seconds",
				Help:    "Icon provider request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		CacheFlushesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "favbuddy_cache_flushes_total",
				Help: "Total number of icon cache file writes",
			},
			[]string{"result"},
		),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) ObserveLookup(result string) {
	r.CacheLookupsTotal.WithLabelValues(result).Inc()
}

func (r *Recorder) ObserveFetch(ok bool, elapsed time.Duration) {
	r.FetchesTotal.WithLabelValues(resultLabel(ok)).Inc()
	r.FetchLatency.Observe(elapsed.Seconds())
}

func (r *Recorder) ObserveLink(outcome string) {
	r.LinksTotal.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ObserveFlush(ok bool) {
	r.CacheFlushesTotal.WithLabelValues(resultLabel(ok)).Inc()
}

// WriteTextfile writes the registry in the node_exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

func resultLabel(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}
