package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/ytget/yt-batch/internal/logging"
	"github.com/ytget/yt-batch/internal/model"
	"github.com/ytget/yt-batch/internal/progress"
)

// DefaultEventBuffer is the capacity of a run's event channel
const DefaultEventBuffer = 64

var (
	// ErrNoRequests is returned when a batch has nothing to process
	ErrNoRequests = errors.New("no requests to process")

	// ErrBatchInProgress is returned when a run is already active
	ErrBatchInProgress = errors.New("a batch is already in progress")
)

// Option configures a Controller
type Option func(*Controller)

// WithExpander expands requests before the run starts
func WithExpander(e Expander) Option {
	return func(c *Controller) {
		c.expander = e
	}
}

// WithEventBuffer sets the event channel capacity
func WithEventBuffer(size int) Option {
	return func(c *Controller) {
		if size > 0 {
			c.eventBuffer = size
		}
	}
}

// Controller runs at most one batch at a time
type Controller struct {
	dl          Downloader
	expander    Expander
	eventBuffer int
	logger      zerolog.Logger

	mu     sync.Mutex
	active *Run
}

// NewController creates a controller that downloads through dl
func NewController(dl Downloader, opts ...Option) *Controller {
	c := &Controller{
		dl:          dl,
		eventBuffer: DefaultEventBuffer,
		logger:      logging.For("batch"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start spawns the worker for requests and returns the run handle.
// The caller must drain Run.Events until it is closed.
func (c *Controller) Start(ctx context.Context, requests []string) (*Run, error) {
	if len(requests) == 0 {
		return nil, ErrNoRequests
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil {
		return nil, ErrBatchInProgress
	}

	run := &Run{
		requests: append([]string(nil), requests...),
		events:   make(chan Event, c.eventBuffer),
		done:     make(chan struct{}),
	}
	c.active = run

	go c.work(ctx, run)
	return run, nil
}

// Cancel requests cancellation of the active run. It returns false when idle.
func (c *Controller) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return false
	}
	c.active.Cancel()
	return true
}

// Running reports whether a run is active
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active != nil
}

func (c *Controller) work(ctx context.Context, run *Run) {
	if c.expander != nil {
		run.requests = c.expand(ctx, run.requests)
	}

	state := model.NewRunState(len(run.requests))
	logger := c.logger.With().Str("run", state.ID).Logger()
	logger.Info().Int("total", state.Total).Msg("batch started")

	defer func() {
		c.mu.Lock()
		c.active = nil
		c.mu.Unlock()

		close(run.events)
		close(run.done)
	}()

	run.emit(Event{Kind: EventBatchStarted, RunID: state.ID, Total: state.Total})

	for i, url := range run.requests {
		if run.cancelled.Load() || ctx.Err() != nil {
			c.cancelRun(run, state, logger, i, url, run.requests[i:])
			return
		}

		state.Current = i
		run.emit(Event{Kind: EventItemStarted, RunID: state.ID, Index: i, Total: state.Total, URL: url, Status: model.ItemStatusDownloading})

		outcome := c.process(ctx, run, state, i, url)
		state.Record(outcome)

		if outcome.IsSuccess() {
			logger.Info().Str("url", url).Msg("item completed")
		} else {
			logger.Warn().Str("url", url).Str("reason", string(outcome.Reason)).Msg(outcome.Message)
		}
		run.emit(Event{
			Kind:    EventItemDone,
			RunID:   state.ID,
			Index:   i,
			Total:   state.Total,
			URL:     url,
			Status:  outcome.Status(),
			Outcome: outcome,
		})
	}

	// An aborted context during the last item still ends the run as cancelled
	if n := len(run.requests); n > 0 && ctx.Err() != nil {
		c.cancelRun(run, state, logger, n-1, run.requests[n-1], nil)
		return
	}

	run.summary = state.Summary()
	logger.Info().Int("success", state.Success).Int("failed", state.Failed).Msg("batch finished")
	run.emit(Event{Kind: EventFinished, RunID: state.ID, Total: state.Total, Summary: run.summary})
}

// cancelRun ends the run at index. remaining lists the requests never
// attempted and is empty when the last item was interrupted.
func (c *Controller) cancelRun(run *Run, state *model.RunState, logger zerolog.Logger, index int, url string, remaining []string) {
	state.Cancelled = true
	remaining = append([]string(nil), remaining...)
	status := model.ItemStatusSkipped
	if len(remaining) == 0 {
		status = model.ItemStatusFailed
	}

	summary := state.Summary()
	summary.CancelledAt = url
	summary.Remaining = remaining
	run.summary = summary

	logger.Info().Str("url", url).Int("skipped", len(remaining)).Msg("batch cancelled")
	run.emit(Event{
		Kind:      EventCancelled,
		RunID:     state.ID,
		Index:     index,
		Total:     state.Total,
		URL:       url,
		Status:    status,
		Skipped:   len(remaining),
		Remaining: remaining,
		Summary:   summary,
	})
}

// process downloads a single item. Errors and panics from the downloader
// become failed outcomes.
func (c *Controller) process(ctx context.Context, run *Run, state *model.RunState, index int, url string) (outcome model.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = model.Failure(model.ReasonUnknown, fmt.Sprintf("downloader panic: %v", r))
		}
	}()

	err := c.dl.Download(ctx, url, func(e progress.Event) {
		display := progress.Format(e)
		if display.IsZero() {
			return
		}
		run.emitProgress(Event{
			Kind:     EventProgress,
			RunID:    state.ID,
			Index:    index,
			Total:    state.Total,
			URL:      url,
			Status:   model.ItemStatusDownloading,
			Progress: display,
		})
	})
	return Classify(err)
}

func (c *Controller) expand(ctx context.Context, requests []string) []string {
	expanded := make([]string, 0, len(requests))
	for _, req := range requests {
		urls, err := c.expander.Expand(ctx, req)
		if err != nil || len(urls) == 0 {
			if err != nil {
				c.logger.Warn().Err(err).Str("url", req).Msg("keeping request unexpanded")
			}
			expanded = append(expanded, req)
			continue
		}
		expanded = append(expanded, urls...)
	}
	return expanded
}

// Reasoner is implemented by errors that know why a download failed
type Reasoner interface {
	FailureReason() model.FailureReason
}

// Classify maps a downloader error to an item outcome
func Classify(err error) model.Outcome {
	if err == nil {
		return model.Success()
	}

	var r Reasoner
	if errors.As(err, &r) {
		return model.Failure(r.FailureReason(), err.Error())
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return model.Failure(model.ReasonInterrupted, err.Error())
	}
	return model.Failure(model.ReasonDownload, err.Error())
}

// Run is the handle of one batch execution
type Run struct {
	requests  []string
	events    chan Event
	done      chan struct{}
	cancelled atomic.Bool
	summary   model.Summary
}

// Events returns the channel of run events. It is closed after the last event.
func (r *Run) Events() <-chan Event {
	return r.events
}

// Cancel stops the run before the next item starts. The in-flight item is not
// interrupted. Calling Cancel more than once has no further effect.
func (r *Run) Cancel() {
	r.cancelled.Store(true)
}

// Cancelled reports whether cancellation was requested
func (r *Run) Cancelled() bool {
	return r.cancelled.Load()
}

// Done is closed when the worker exits
func (r *Run) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the worker exits and returns the run summary
func (r *Run) Wait() model.Summary {
	<-r.done
	return r.summary
}

func (r *Run) emit(e Event) {
	r.events <- e
}

// emitProgress never blocks the worker; progress is dropped when the
// consumer is behind.
func (r *Run) emitProgress(e Event) {
	select {
	case r.events <- e:
	default:
	}
}
