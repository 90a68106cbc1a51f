package batch

import (
	"github.com/ytget/yt-batch/internal/model"
	"github.com/ytget/yt-batch/internal/progress"
)

// EventKind identifies what happened in a run
type EventKind int

const (
	// EventBatchStarted is sent once, after request expansion
	EventBatchStarted EventKind = iota
	// EventItemStarted precedes every download
	EventItemStarted
	// EventProgress carries a formatted progress display; may be dropped
	EventProgress
	// EventItemDone carries the item outcome. Consumers reset transient
	// progress display when they receive it.
	EventItemDone
	// EventCancelled ends a cancelled run; no EventFinished follows
	EventCancelled
	// EventFinished ends a run that was not cancelled
	EventFinished
)

// String returns a short name for the event kind
func (k EventKind) String() string {
	switch k {
	case EventBatchStarted:
		return "batch_started"
	case EventItemStarted:
		return "item_started"
	case EventProgress:
		return "progress"
	case EventItemDone:
		return "item_done"
	case EventCancelled:
		return "cancelled"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Event is a single notification from the worker
type Event struct {
	Kind      EventKind
	RunID     string
	Index     int
	Total     int
	URL       string
	Status    model.ItemStatus
	Progress  progress.Display
	Outcome   model.Outcome
	Skipped   int
	Remaining []string
	Summary   model.Summary
}
