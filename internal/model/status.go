package model

// ItemStatus represents the status of a single request within a batch
type ItemStatus string

const (
	// ItemStatusPending means the item is queued but not started
	ItemStatusPending ItemStatus = "Pending"

	// ItemStatusDownloading means the external download is in progress
	ItemStatusDownloading ItemStatus = "Downloading"

	// ItemStatusCompleted means the item finished successfully
	ItemStatusCompleted ItemStatus = "Completed"

	// ItemStatusFailed means the external download reported an error
	ItemStatusFailed ItemStatus = "Failed"

	// ItemStatusSkipped means the batch was cancelled before the item started
	ItemStatusSkipped ItemStatus = "Skipped"
)

// String returns the string representation of ItemStatus
func (s ItemStatus) String() string {
	return string(s)
}

// IsActive returns true if the item is currently being processed
func (s ItemStatus) IsActive() bool {
	return s == ItemStatusDownloading
}

// IsFinished returns true if the item reached a final state (completed, failed, or skipped)
func (s ItemStatus) IsFinished() bool {
	return s == ItemStatusCompleted || s == ItemStatusFailed || s == ItemStatusSkipped
}
