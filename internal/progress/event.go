package progress

// Status tags reported by the downloader
const (
	StatusDownloading = "downloading"
	StatusFinished    = "finished"
)

// Event is one raw progress report from the external download operation.
// Optional numeric fields are nil when the downloader did not report them.
type Event struct {
	Status          string
	PercentText     string // e.g. " 42.3%"
	DownloadedBytes *float64
	TotalBytes      *float64
	TotalEstimate   *float64
	Speed           *float64 // bytes per second
	ETA             *int     // seconds
	FragmentIndex   int
	FragmentCount   int
}

// Display is the normalized pair rendered by the front-end
type Display struct {
	Percent float64 // 0 to 100
	Line    string
}

// IsZero reports whether the display carries nothing to render
func (d Display) IsZero() bool {
	return d.Percent == 0 && d.Line == ""
}

// Float returns a pointer to v, for building events with optional fields
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v
func Int(v int) *int {
	return &v
}
