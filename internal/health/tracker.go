// Package health tracks upstream fetch outcomes so readiness probes can
// report whether the service is still able to serve fresh data.
package health

import (
	"sync"
	"time"
)

const defaultFailureThreshold = 3

// Status describes the recent health of upstream fetches.
type Status struct {
	ConsecutiveFailures int       `json:"consecutive_failures"`
	LastError           string    `json:"last_error,omitempty"`
	LastAttempt         time.Time `json:"last_attempt,omitempty"`
	LastSuccess         time.Time `json:"last_success,omitempty"`
}

// Tracker records upstream fetch outcomes as they happen. It never probes on
// its own; mediators feed it after each real upstream call.
type Tracker struct {
	mu        sync.RWMutex
	status    Status
	threshold int
	now       func() time.Time
}

// NewTracker constructs a Tracker that trips after threshold consecutive
// failures. A non-positive threshold falls back to the default of 3.
func NewTracker(threshold int) *Tracker {
	if threshold <= 0 {
		threshold = defaultFailureThreshold
	}
	return &Tracker{threshold: threshold, now: time.Now}
}

// RecordSuccess notes a successful upstream fetch and clears failure state.
func (t *Tracker) RecordSuccess() {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	at := t.now()
	t.status.ConsecutiveFailures = 0
	t.status.LastError = ""
	t.status.LastAttempt = at
	t.status.LastSuccess = at
}

// RecordFailure notes a failed upstream fetch.
func (t *Tracker) RecordFailure(err error) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.ConsecutiveFailures++
	if err != nil {
		t.status.LastError = err.Error()
	}
	t.status.LastAttempt = t.now()
}

// Status returns a snapshot of the tracker's recent history.
func (t *Tracker) Status() Status {
	if t == nil {
		return Status{}
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}

// IsReady reports whether upstream fetches are healthy enough to serve
// traffic. A tracker that has seen no traffic yet is ready: readiness only
// degrades once real fetches start failing repeatedly.
func (t *Tracker) IsReady() bool {
	if t == nil {
		return true
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status.ConsecutiveFailures < t.threshold
}
