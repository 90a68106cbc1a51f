package batch

import "fmt"

// LogLine renders the visible log text for an event.
// Events that do not belong in the log render as an empty string.
func LogLine(e Event) string {
	switch e.Kind {
	case EventItemStarted:
		return fmt.Sprintf("Downloading: %s", e.URL)
	case EventItemDone:
		if e.Outcome.IsSuccess() {
			return fmt.Sprintf("Success: %s", e.URL)
		}
		return fmt.Sprintf("Failed: %s\nReason: %s", e.URL, e.Outcome.Message)
	case EventCancelled:
		return fmt.Sprintf("Cancelled at %s (%d skipped)", e.URL, e.Skipped)
	case EventFinished:
		return fmt.Sprintf("All done! Success: %d Failed: %d", e.Summary.Success, e.Summary.Failed)
	default:
		return ""
	}
}
