package download

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/rs/zerolog"

	"github.com/ytget/yt-batch/internal/logging"
	"github.com/ytget/yt-batch/internal/model"
	"github.com/ytget/yt-batch/internal/progress"
)

// DefaultProgressInterval throttles yt-dlp progress callbacks
const DefaultProgressInterval = 250 * time.Millisecond

// yt-dlp status reported while ffmpeg merges streams
const statusPostProcessing = "post_processing"

// Error is a failed download with the reason it failed
type Error struct {
	Reason model.FailureReason
	URL    string
	Err    error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// FailureReason reports why the download failed
func (e *Error) FailureReason() model.FailureReason {
	return e.Reason
}

type runFunc func(ctx context.Context, cmd *ytdlp.Command, url string) (*ytdlp.Result, error)

// Service handles download operations
type Service struct {
	mu               sync.RWMutex
	opts             Options
	progressInterval time.Duration
	logger           zerolog.Logger

	toolMu    sync.Mutex
	toolReady bool

	install func(ctx context.Context) error
	run     runFunc
}

// NewService creates a new download service
func NewService(opts Options) *Service {
	return &Service{
		opts:             opts.withDefaults(),
		progressInterval: DefaultProgressInterval,
		logger:           logging.For("download"),
		install:          installTool,
		run:              runCommand,
	}
}

// Options returns the options used for new downloads
func (s *Service) Options() Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts
}

// SetOptions replaces the options used for new downloads
func (s *Service) SetOptions(opts Options) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts = opts.withDefaults()
}

// EnsureTool resolves the yt-dlp executable, installing it into the user cache
// when it is not available. A successful lookup is remembered.
func (s *Service) EnsureTool(ctx context.Context) error {
	s.toolMu.Lock()
	defer s.toolMu.Unlock()

	if s.toolReady {
		return nil
	}
	if err := s.install(ctx); err != nil {
		return &Error{Reason: model.ReasonToolMissing, Err: fmt.Errorf("yt-dlp is not available: %w", err)}
	}
	s.toolReady = true
	return nil
}

// Download fetches a single URL. It blocks until yt-dlp exits.
func (s *Service) Download(ctx context.Context, url string, onProgress func(progress.Event)) error {
	if err := s.EnsureTool(ctx); err != nil {
		return err
	}

	opts := s.Options()
	cmd := s.newCommand(opts, onProgress)

	s.logger.Debug().Str("url", url).Str("output", opts.OutputTemplate()).Str("format", opts.Format).Msg("starting yt-dlp")

	result, err := s.run(ctx, cmd, url)
	if err != nil {
		return s.wrapError(ctx, url, result, err)
	}

	if result != nil {
		if info, err := result.GetExtractedInfo(); err == nil && len(info) > 0 && info[0].Filename != nil {
			s.logger.Debug().Str("url", url).Str("file", *info[0].Filename).Msg("saved")
		}
	}
	return nil
}

// newCommand configures yt-dlp for one download
func (s *Service) newCommand(opts Options, onProgress func(progress.Event)) *ytdlp.Command {
	dl := ytdlp.New().
		Output(opts.OutputTemplate()).
		Format(opts.Format).
		MergeOutputFormat(opts.MergeFormat).
		NoColors()

	if opts.NoPlaylist {
		dl.NoPlaylist()
	}
	if opts.FFmpegPath != "" {
		dl.FFmpegLocation(opts.FFmpegPath)
	}

	if onProgress != nil {
		dl.ProgressFunc(s.progressInterval, func(update ytdlp.ProgressUpdate) {
			onProgress(toEvent(update, time.Now()))
		})
	}
	return dl
}

func (s *Service) wrapError(ctx context.Context, url string, result *ytdlp.Result, err error) error {
	reason := model.ReasonDownload
	switch {
	case ctx.Err() != nil:
		reason = model.ReasonInterrupted
		err = ctx.Err()
	case errors.Is(err, exec.ErrNotFound):
		reason = model.ReasonToolMissing
	}

	if reason == model.ReasonDownload && result != nil {
		if msg := errorMessage(result.Stderr); msg != "" {
			err = fmt.Errorf("%s: %w", msg, err)
		}
	}
	return &Error{Reason: reason, URL: url, Err: err}
}

// errorMessage extracts the last "ERROR:" line yt-dlp wrote to stderr
func errorMessage(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, "ERROR:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "ERROR:"))
		}
	}
	return ""
}

// toEvent converts a yt-dlp progress update into a progress event.
// Speed is derived from the bytes transferred since the download started.
func toEvent(update ytdlp.ProgressUpdate, now time.Time) progress.Event {
	status := string(update.Status)
	if status == statusPostProcessing {
		status = progress.StatusFinished
	}

	e := progress.Event{
		Status:          status,
		DownloadedBytes: progress.Float(float64(update.DownloadedBytes)),
		FragmentIndex:   int(update.FragmentIndex),
		FragmentCount:   int(update.FragmentCount),
	}

	if update.TotalBytes > 0 {
		e.TotalBytes = progress.Float(float64(update.TotalBytes))
	}

	if !update.Started.IsZero() {
		elapsed := now.Sub(update.Started).Seconds()
		if elapsed > 0 {
			e.Speed = progress.Float(float64(update.DownloadedBytes) / elapsed)
		}
	}

	if eta := update.ETA(); eta > 0 {
		e.ETA = progress.Int(int(eta.Seconds()))
	}
	return e
}

func installTool(ctx context.Context) error {
	_, err := ytdlp.Install(ctx, nil)
	return err
}

func runCommand(ctx context.Context, cmd *ytdlp.Command, url string) (*ytdlp.Result, error) {
	return cmd.Run(ctx, url)
}
