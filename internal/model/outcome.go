package model

// OutcomeKind distinguishes successful items from failed ones
type OutcomeKind string

const (
	OutcomeSuccess OutcomeKind = "success"
	OutcomeFailure OutcomeKind = "failure"
)

// FailureReason narrows down why an item failed
type FailureReason string

const (
	ReasonNone        FailureReason = ""
	ReasonDownload    FailureReason = "download"     // yt-dlp reported an error
	ReasonToolMissing FailureReason = "tool_missing" // yt-dlp or ffmpeg executable not found
	ReasonInterrupted FailureReason = "interrupted"  // context cancelled while the item was in flight
	ReasonUnknown     FailureReason = "unknown"
)

// Outcome is the result of processing one request
type Outcome struct {
	Kind    OutcomeKind
	Reason  FailureReason
	Message string
}

// Success returns a successful outcome
func Success() Outcome {
	return Outcome{Kind: OutcomeSuccess}
}

// Failure returns a failed outcome with the given reason and message
func Failure(reason FailureReason, message string) Outcome {
	if reason == ReasonNone {
		reason = ReasonUnknown
	}
	return Outcome{Kind: OutcomeFailure, Reason: reason, Message: message}
}

// IsSuccess reports whether the outcome is a success
func (o Outcome) IsSuccess() bool {
	return o.Kind == OutcomeSuccess
}

// Status maps the outcome to the final item status
func (o Outcome) Status() ItemStatus {
	if o.IsSuccess() {
		return ItemStatusCompleted
	}
	return ItemStatusFailed
}
