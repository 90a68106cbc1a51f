package model

import (
	"strings"
	"testing"
)

func TestNewRunState(t *testing.T) {
	state := NewRunState(3)

	if state.Total != 3 {
		t.Errorf("Expected Total to be 3, got %d", state.Total)
	}
	if state.Current != -1 {
		t.Errorf("Expected Current to be -1, got %d", state.Current)
	}
	if state.StartedAt.IsZero() {
		t.Error("Expected StartedAt to be set")
	}
}

func TestRunState_Record(t *testing.T) {
	state := NewRunState(3)
	state.Record(Success())
	state.Record(Failure(ReasonDownload, "boom"))
	state.Record(Success())

	if state.Success != 2 {
		t.Errorf("Expected Success to be 2, got %d", state.Success)
	}
	if state.Failed != 1 {
		t.Errorf("Expected Failed to be 1, got %d", state.Failed)
	}
	if state.Attempted() != 3 {
		t.Errorf("Expected Attempted to be 3, got %d", state.Attempted())
	}
}

func TestRunState_Summary(t *testing.T) {
	tests := []struct {
		name        string
		success     int
		failed      int
		cancelled   bool
		wantSkipped int
		wantFailure bool
	}{
		{"all succeeded", 4, 0, false, 0, false},
		{"one failed", 3, 1, false, 0, true},
		{"cancelled early", 1, 0, true, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewRunState(4)
			state.Success = tt.success
			state.Failed = tt.failed
			state.Cancelled = tt.cancelled

			summary := state.Summary()
			if summary.Skipped != tt.wantSkipped {
				t.Errorf("Expected Skipped %d, got %d", tt.wantSkipped, summary.Skipped)
			}
			if summary.HasFailures() != tt.wantFailure {
				t.Errorf("Expected HasFailures %v, got %v", tt.wantFailure, summary.HasFailures())
			}
			if summary.RunID != state.ID {
				t.Errorf("Expected RunID %s, got %s", state.ID, summary.RunID)
			}
		})
	}
}

func TestOutcome(t *testing.T) {
	ok := Success()
	if !ok.IsSuccess() || ok.Status() != ItemStatusCompleted {
		t.Errorf("Success() = %+v, expected completed success", ok)
	}

	failed := Failure(ReasonNone, "something broke")
	if failed.IsSuccess() {
		t.Error("Failure() should not be a success")
	}
	if failed.Reason != ReasonUnknown {
		t.Errorf("Expected empty reason to become %s, got %s", ReasonUnknown, failed.Reason)
	}
	if failed.Status() != ItemStatusFailed {
		t.Errorf("Expected status %s, got %s", ItemStatusFailed, failed.Status())
	}
}

func TestGenerateRunID(t *testing.T) {
	id1 := GenerateRunID()
	id2 := GenerateRunID()

	if id1 == id2 {
		t.Error("Expected different run IDs")
	}

	if !strings.HasPrefix(id1, RunIDPrefix) {
		t.Errorf("Expected ID to start with %q, got: %s", RunIDPrefix, id1)
	}

	// run- + 36 chars for UUID
	if len(id1) != len(RunIDPrefix)+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len(RunIDPrefix)+36, len(id1), id1)
	}
}
