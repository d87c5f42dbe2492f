package health

import (
	"errors"
	"testing"
	"time"
)

func TestTrackerStartsReady(t *testing.T) {
	tr := NewTracker(3)
	if !tr.IsReady() {
		t.Fatalf("expected tracker with no traffic to be ready")
	}
	status := tr.Status()
	if status.ConsecutiveFailures != 0 || status.LastError != "" {
		t.Fatalf("unexpected initial status %+v", status)
	}
	if !status.LastAttempt.IsZero() || !status.LastSuccess.IsZero() {
		t.Fatalf("expected zero timestamps before any traffic")
	}
}

func TestTrackerTripsAfterThresholdFailures(t *testing.T) {
	tr := NewTracker(3)
	fixed := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return fixed }

	tr.RecordFailure(errors.New("boom"))
	tr.RecordFailure(errors.New("boom"))
	if !tr.IsReady() {
		t.Fatalf("expected ready below threshold")
	}

	tr.RecordFailure(errors.New("boom"))
	if tr.IsReady() {
		t.Fatalf("expected not ready at threshold")
	}

	status := tr.Status()
	if status.ConsecutiveFailures != 3 {
		t.Fatalf("expected 3 failures, got %d", status.ConsecutiveFailures)
	}
	if status.LastError != "boom" {
		t.Fatalf("expected last error recorded, got %q", status.LastError)
	}
	if !status.LastAttempt.Equal(fixed) {
		t.Fatalf("expected last attempt %s, got %s", fixed, status.LastAttempt)
	}
}

func TestTrackerSuccessResetsFailures(t *testing.T) {
	tr := NewTracker(2)
	fixed := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return fixed }

	tr.RecordFailure(errors.New("boom"))
	tr.RecordFailure(errors.New("boom"))
	if tr.IsReady() {
		t.Fatalf("expected not ready after repeated failures")
	}

	tr.RecordSuccess()
	if !tr.IsReady() {
		t.Fatalf("expected ready after success")
	}
	status := tr.Status()
	if status.ConsecutiveFailures != 0 {
		t.Fatalf("expected failures reset, got %d", status.ConsecutiveFailures)
	}
	if status.LastError != "" {
		t.Fatalf("expected last error cleared, got %q", status.LastError)
	}
	if !status.LastSuccess.Equal(fixed) {
		t.Fatalf("expected success timestamp %s, got %s", fixed, status.LastSuccess)
	}
}

func TestTrackerFailureWithNilErrorKeepsCounting(t *testing.T) {
	tr := NewTracker(3)
	tr.RecordFailure(nil)
	status := tr.Status()
	if status.ConsecutiveFailures != 1 {
		t.Fatalf("expected 1 failure, got %d", status.ConsecutiveFailures)
	}
	if status.LastError != "" {
		t.Fatalf("expected no error text for nil error, got %q", status.LastError)
	}
}

func TestTrackerDefaultsThreshold(t *testing.T) {
	tr := NewTracker(0)
	if tr.threshold != defaultFailureThreshold {
		t.Fatalf("expected default threshold %d, got %d", defaultFailureThreshold, tr.threshold)
	}
}

func TestNilTrackerIsSafe(t *testing.T) {
	var tr *Tracker
	tr.RecordSuccess()
	tr.RecordFailure(errors.New("boom"))
	if !tr.IsReady() {
		t.Fatalf("expected nil tracker to report ready")
	}
	if got := tr.Status(); got != (Status{}) {
		t.Fatalf("expected zero status from nil tracker, got %+v", got)
	}
}
