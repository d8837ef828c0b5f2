package entity

// Event is a value emitted by an enrichment run.
type Event interface {
	isEvent()
}

// ProgressEvent reports how many links have been processed out of the total found.
type ProgressEvent struct {
	Processed int
	Total     int
}

// LogLine is one human-readable transcript line.
type LogLine struct {
	Text string
}

func (ProgressEvent) isEvent() {}
func (LogLine) isEvent()       {}

// Percent returns progress in the range [0, 100].
func (p ProgressEvent) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Processed) / float64(p.Total) * 100
}
