package model

import (
	"time"

	"github.com/google/uuid"
)

// RunIDPrefix prefixes every generated run identifier
const RunIDPrefix = "run-"

// RunState holds the mutable counters of a single batch run.
// It is owned by the worker goroutine and never shared with the display side.
type RunState struct {
	ID        string
	Total     int
	Current   int // index of the item being processed, -1 before the first one
	Success   int
	Failed    int
	Cancelled bool
	StartedAt time.Time
}

// NewRunState creates run state for a batch of total items
func NewRunState(total int) *RunState {
	return &RunState{
		ID:        GenerateRunID(),
		Total:     total,
		Current:   -1,
		StartedAt: time.Now(),
	}
}

// Record applies one item outcome to the counters
func (r *RunState) Record(o Outcome) {
	if o.IsSuccess() {
		r.Success++
		return
	}
	r.Failed++
}

// Attempted returns how many items were started
func (r *RunState) Attempted() int {
	return r.Success + r.Failed
}

// Summary is the aggregate report of a finished or cancelled run
type Summary struct {
	RunID       string
	Total       int
	Attempted   int
	Success     int
	Failed      int
	Skipped     int
	Cancelled   bool
	CancelledAt string   // request that would have been processed next
	Remaining   []string // requests never attempted, in order
	Elapsed     time.Duration
}

// Summary builds the report for the current state
func (r *RunState) Summary() Summary {
	return Summary{
		RunID:     r.ID,
		Total:     r.Total,
		Attempted: r.Attempted(),
		Success:   r.Success,
		Failed:    r.Failed,
		Skipped:   r.Total - r.Attempted(),
		Cancelled: r.Cancelled,
		Elapsed:   time.Since(r.StartedAt),
	}
}

// HasFailures reports whether the run should be treated as unsuccessful
func (s Summary) HasFailures() bool {
	return s.Failed > 0 || s.Cancelled
}

// GenerateRunID generates a unique run ID
func GenerateRunID() string {
	return RunIDPrefix + uuid.NewString()
}
