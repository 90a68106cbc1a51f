package cli

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ytget/yt-batch/internal/batch"
	"github.com/ytget/yt-batch/internal/model"
	"github.com/ytget/yt-batch/internal/progress"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		percent float64
		filled  int
	}{
		{0, 0},
		{50, 5},
		{100, 10},
		{150, 10},
		{-5, 0},
	}

	for _, test := range tests {
		bar := progressBar(test.percent, 10)
		if got := strings.Count(bar, symbols["hline"]); got != test.filled {
			t.Errorf("progressBar(%v) filled %d, expected %d", test.percent, got, test.filled)
		}
		if got := utf8.RuneCountInString(bar); got != 12 {
			t.Errorf("progressBar(%v) has width %d, expected 12", test.percent, got)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("Expected unchanged string, got %q", got)
	}
	if got := truncate("abcdefghij", 5); got != "abcd…" {
		t.Errorf("Expected truncated string, got %q", got)
	}
}

func TestRenderer_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	r := newRenderer(&buf, false, 80)

	events := []batch.Event{
		{Kind: batch.EventBatchStarted, Total: 2},
		{Kind: batch.EventItemStarted, Index: 0, Total: 2, URL: "https://a"},
		{Kind: batch.EventProgress, Index: 0, Total: 2, Progress: progress.Display{Percent: 50, Line: "50% of ~ 1.00MiB"}},
		{Kind: batch.EventItemDone, Index: 0, Total: 2, URL: "https://a", Status: model.ItemStatusCompleted, Outcome: model.Success()},
		{Kind: batch.EventItemStarted, Index: 1, Total: 2, URL: "https://b"},
		{Kind: batch.EventItemDone, Index: 1, Total: 2, URL: "https://b", Status: model.ItemStatusFailed, Outcome: model.Failure(model.ReasonDownload, "boom")},
		{Kind: batch.EventFinished, Total: 2, Summary: model.Summary{Success: 1, Failed: 1}},
	}
	for _, e := range events {
		r.Handle(e)
	}

	out := buf.String()
	for _, want := range []string{
		"Downloading 2 item(s)",
		"[1/2]",
		"Downloading: https://a",
		"Success: https://a",
		"Failed: https://b",
		"Reason: boom",
		"All done! Success: 1 Failed: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
	if !strings.Contains(out, symbols["pass"]) || !strings.Contains(out, symbols["fail"]) {
		t.Errorf("Expected status symbols in output, got:\n%s", out)
	}
	if strings.Contains(out, "50% of") {
		t.Error("Progress must not be printed when not on a terminal")
	}
}

func TestRenderer_TerminalProgress(t *testing.T) {
	var buf bytes.Buffer
	r := newRenderer(&buf, true, 60)

	r.Handle(batch.Event{Kind: batch.EventProgress, Index: 0, Total: 1, Progress: progress.Display{Percent: 10, Line: "10% of ~ 1.00MiB"}})
	if !r.inflight {
		t.Fatal("Expected an in-place progress line")
	}

	r.Handle(batch.Event{Kind: batch.EventItemDone, Index: 0, Total: 1, URL: "https://a", Status: model.ItemStatusCompleted, Outcome: model.Success()})
	if r.inflight {
		t.Error("Expected progress line to be cleared")
	}
	if !strings.Contains(buf.String(), "\r\033[K") {
		t.Error("Expected line clear sequence")
	}
}
