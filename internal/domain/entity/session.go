package entity

import (
	"time"

	"github.com/google/uuid"
)

// RunStatus is the terminal or current state of an enrichment run.
type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunAborted   RunStatus = "aborted"
	RunFailed    RunStatus = "failed"
)

// EnrichSession is the state of one enrichment run.
// Total counts every anchor found, including links whose host cannot be
// resolved, so Succeeded+Failed can be lower than Total.
type EnrichSession struct {
	ID         string
	InputPath  string
	OutputPath string
	Status     RunStatus
	Processed  int
	Total      int
	Succeeded  int
	Failed     int
	Error      string
	Transcript []string
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewEnrichSession creates a running session.
func NewEnrichSession(inputPath, outputPath string, now time.Time) *EnrichSession {
	return &EnrichSession{
		ID:         uuid.NewString(),
		InputPath:  inputPath,
		OutputPath: outputPath,
		Status:     RunRunning,
		StartedAt:  now,
	}
}

// Finish moves the session to a terminal status.
func (s *EnrichSession) Finish(status RunStatus, now time.Time) {
	s.Status = status
	s.FinishedAt = now
}

// Duration returns how long the run took, or zero while running.
func (s *EnrichSession) Duration() time.Duration {
	if s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

// Progress returns the current progress snapshot.
func (s *EnrichSession) Progress() ProgressEvent {
	return ProgressEvent{Processed: s.Processed, Total: s.Total}
}
