package batch

import (
	"context"

	"github.com/ytget/yt-batch/internal/progress"
)

// Downloader performs one blocking download. It may call onProgress zero or
// more times before returning and reports failures as errors.
type Downloader interface {
	Download(ctx context.Context, url string, onProgress func(progress.Event)) error
}

// Expander turns one request into one or more requests (e.g. a playlist into
// its videos). Requests it does not recognize are returned unchanged.
type Expander interface {
	Expand(ctx context.Context, url string) ([]string, error)
}
