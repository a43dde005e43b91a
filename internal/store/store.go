// Package store persists the history of answered guess rounds for later
// review. Recording is optional; when disabled a no-op recorder is used.
package store

// RoundRecord holds the outcome of a single submitted guess.
type RoundRecord struct {
	ID          int64
	Timestamp   int64 // Unix milliseconds
	Target      string
	Guess       float64
	TargetValue float64
	Tolerance   float64
	Correct     bool
	Score       int // running session score after this round
}

// Recorder persists answered rounds.
type Recorder interface {
	RecordRound(rec *RoundRecord) error
	RecentRounds(limit int) ([]RoundRecord, error)
	Close() error
}

// Compile-time interface checks.
var _ Recorder = (*SQLiteRecorder)(nil)
var _ Recorder = (*NoopRecorder)(nil)

// NoopRecorder discards all rounds; used when history is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRound(_ *RoundRecord) error          { return nil }
func (n *NoopRecorder) RecentRounds(_ int) ([]RoundRecord, error) { return nil, nil }
func (n *NoopRecorder) Close() error                              { return nil }
