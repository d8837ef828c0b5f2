package port

import "time"

// Lookup outcomes reported to EnrichMetrics.
const (
	LookupHit      = "hit"
	LookupNegative = "negative"
	LookupMiss     = "miss"
)

// Link outcomes reported to EnrichMetrics.
const (
	LinkSucceeded  = "succeeded"
	LinkFailed     = "failed"
	LinkUnresolved = "unresolved"
)

// EnrichMetrics receives counters from an enrichment run.
type EnrichMetrics interface {
	ObserveLookup(result string)
	ObserveFetch(ok bool, elapsed time.Duration)
	ObserveLink(outcome string)
	ObserveFlush(ok bool)
}
