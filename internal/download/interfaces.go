package download

import (
	"context"

	"github.com/ytget/yt-batch/internal/progress"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	Download(ctx context.Context, url string, onProgress func(progress.Event)) error

	// EnsureTool makes sure a yt-dlp executable is available
	EnsureTool(ctx context.Context) error

	// Options returns the options used for new downloads
	Options() Options

	// SetOptions replaces the options used for new downloads
	SetOptions(opts Options)
}
