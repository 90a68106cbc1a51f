package download

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-batch/internal/batch"
	"github.com/ytget/yt-batch/internal/model"
	"github.com/ytget/yt-batch/internal/progress"
)

func newTestService(run runFunc) *Service {
	s := NewService(DefaultOptions("/tmp/downloads"))
	s.install = func(context.Context) error { return nil }
	s.run = run
	return s
}

func TestNewService(t *testing.T) {
	service := NewService(Options{OutputDir: "/tmp"})
	opts := service.Options()

	if opts.OutputDir != "/tmp" {
		t.Errorf("Expected OutputDir to be '/tmp', got '%s'", opts.OutputDir)
	}
	if opts.Format != DefaultFormat {
		t.Errorf("Expected default format %s, got %s", DefaultFormat, opts.Format)
	}
	if opts.MergeFormat != DefaultMergeFormat {
		t.Errorf("Expected default merge format %s, got %s", DefaultMergeFormat, opts.MergeFormat)
	}
	if service.progressInterval != DefaultProgressInterval {
		t.Errorf("Expected progress interval %v, got %v", DefaultProgressInterval, service.progressInterval)
	}
}

func TestSetOptions(t *testing.T) {
	service := NewService(DefaultOptions("/tmp"))
	service.SetOptions(Options{OutputDir: "/videos", Format: FormatForQuality(QualityAudio)})

	opts := service.Options()
	if opts.OutputDir != "/videos" {
		t.Errorf("Expected OutputDir '/videos', got '%s'", opts.OutputDir)
	}
	if opts.Format != "bestaudio/best" {
		t.Errorf("Expected audio format, got %s", opts.Format)
	}
	if opts.FilenameTemplate != DefaultFilenameTemplate {
		t.Errorf("Expected default template, got %s", opts.FilenameTemplate)
	}
}

func TestDownload_Success(t *testing.T) {
	var gotURL string
	service := newTestService(func(ctx context.Context, cmd *ytdlp.Command, url string) (*ytdlp.Result, error) {
		gotURL = url
		return &ytdlp.Result{}, nil
	})

	if err := service.Download(context.Background(), "https://youtube.com/watch?v=ok", nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if gotURL != "https://youtube.com/watch?v=ok" {
		t.Errorf("Expected runner to receive URL, got %q", gotURL)
	}
}

func TestDownload_Failure(t *testing.T) {
	service := newTestService(func(ctx context.Context, cmd *ytdlp.Command, url string) (*ytdlp.Result, error) {
		return &ytdlp.Result{Stderr: "[youtube] abc: Downloading webpage\nERROR: [youtube] abc: Video unavailable\n"}, errors.New("exit status 1")
	})

	err := service.Download(context.Background(), "https://youtube.com/watch?v=abc", nil)
	if err == nil {
		t.Fatal("Expected an error")
	}

	var dlErr *Error
	if !errors.As(err, &dlErr) {
		t.Fatalf("Expected *Error, got %T", err)
	}
	if dlErr.Reason != model.ReasonDownload {
		t.Errorf("Expected reason %s, got %s", model.ReasonDownload, dlErr.Reason)
	}
	if dlErr.Error() != "[youtube] abc: Video unavailable: exit status 1" {
		t.Errorf("Unexpected error message: %q", dlErr.Error())
	}

	outcome := batch.Classify(err)
	if outcome.Reason != model.ReasonDownload || outcome.IsSuccess() {
		t.Errorf("Unexpected outcome %+v", outcome)
	}
}

func TestDownload_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	service := newTestService(func(ctx context.Context, cmd *ytdlp.Command, url string) (*ytdlp.Result, error) {
		cancel()
		return nil, errors.New("signal: killed")
	})

	err := service.Download(ctx, "https://youtube.com/watch?v=slow", nil)
	if batch.Classify(err).Reason != model.ReasonInterrupted {
		t.Errorf("Expected interrupted outcome, got %+v", batch.Classify(err))
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected error to wrap context.Canceled, got %v", err)
	}
}

func TestDownload_ExecutableNotFound(t *testing.T) {
	service := newTestService(func(ctx context.Context, cmd *ytdlp.Command, url string) (*ytdlp.Result, error) {
		return nil, fmt.Errorf("start: %w", exec.ErrNotFound)
	})

	err := service.Download(context.Background(), "https://youtube.com/watch?v=x", nil)
	if batch.Classify(err).Reason != model.ReasonToolMissing {
		t.Errorf("Expected tool missing outcome, got %+v", batch.Classify(err))
	}
}

func TestEnsureTool(t *testing.T) {
	calls := 0
	service := NewService(DefaultOptions("/tmp"))
	service.install = func(context.Context) error {
		calls++
		if calls == 1 {
			return errors.New("network unreachable")
		}
		return nil
	}

	err := service.EnsureTool(context.Background())
	if batch.Classify(err).Reason != model.ReasonToolMissing {
		t.Errorf("Expected tool missing outcome, got %v", err)
	}

	// A failed lookup is retried, a successful one is remembered
	if err := service.EnsureTool(context.Background()); err != nil {
		t.Fatalf("Expected no error on retry, got %v", err)
	}
	if err := service.EnsureTool(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if calls != 2 {
		t.Errorf("Expected installer to run twice, ran %d times", calls)
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		stderr   string
		expected string
	}{
		{"", ""},
		{"WARNING: something\n", ""},
		{"ERROR: first\nERROR: last\n", "last"},
		{"  ERROR:   padded  \n", "padded"},
	}

	for _, test := range tests {
		if got := errorMessage(test.stderr); got != test.expected {
			t.Errorf("errorMessage(%q) = %q, expected %q", test.stderr, got, test.expected)
		}
	}
}

func TestToEvent(t *testing.T) {
	started := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	now := started.Add(2 * time.Second)

	update := ytdlp.ProgressUpdate{
		Status:          ytdlp.ProgressStatus("downloading"),
		TotalBytes:      4096,
		DownloadedBytes: 1024,
		FragmentIndex:   2,
		FragmentCount:   8,
		Started:         started,
	}

	e := toEvent(update, now)
	if e.Status != progress.StatusDownloading {
		t.Errorf("Expected status %s, got %s", progress.StatusDownloading, e.Status)
	}
	if e.TotalBytes == nil || *e.TotalBytes != 4096 {
		t.Errorf("Expected total 4096, got %v", e.TotalBytes)
	}
	if e.Speed == nil || *e.Speed != 512 {
		t.Errorf("Expected speed 512 B/s, got %v", e.Speed)
	}
	if e.FragmentIndex != 2 || e.FragmentCount != 8 {
		t.Errorf("Expected fragment 2/8, got %d/%d", e.FragmentIndex, e.FragmentCount)
	}

	display := progress.Format(e)
	if display.Percent != 25 {
		t.Errorf("Expected 25%%, got %v", display.Percent)
	}
}

func TestToEvent_PostProcessing(t *testing.T) {
	e := toEvent(ytdlp.ProgressUpdate{Status: ytdlp.ProgressStatus("post_processing")}, time.Now())
	if e.Status != progress.StatusFinished {
		t.Errorf("Expected post processing to map to %s, got %s", progress.StatusFinished, e.Status)
	}
	if e.TotalBytes != nil {
		t.Error("Expected unknown total for empty update")
	}
}

func TestOptions_OutputTemplate(t *testing.T) {
	tests := []struct {
		opts     Options
		expected string
	}{
		{Options{}, DefaultFilenameTemplate},
		{Options{OutputDir: "/videos"}, "/videos/" + DefaultFilenameTemplate},
		{Options{OutputDir: "/videos", FilenameTemplate: "%(id)s.%(ext)s"}, "/videos/%(id)s.%(ext)s"},
	}

	for _, test := range tests {
		if got := test.opts.OutputTemplate(); got != test.expected {
			t.Errorf("OutputTemplate() = %q, expected %q", got, test.expected)
		}
	}
}

func TestFormatForQuality(t *testing.T) {
	tests := []struct {
		preset   QualityPreset
		expected string
	}{
		{QualityBest, DefaultFormat},
		{QualityMedium, "bestvideo[height<=720]+bestaudio/best[height<=720]"},
		{QualityAudio, "bestaudio/best"},
		{QualityPreset("bogus"), DefaultFormat},
	}

	for _, test := range tests {
		if got := FormatForQuality(test.preset); got != test.expected {
			t.Errorf("FormatForQuality(%s) = %q, expected %q", test.preset, got, test.expected)
		}
	}

	if len(QualityPresets()) != 3 {
		t.Errorf("Expected 3 presets, got %d", len(QualityPresets()))
	}
}
