// Package ratelimit implements fixed-window admission control. Requests are
// counted per (client, endpoint family) on a short window and per client on
// coarse global windows; all applicable counters must be under ceiling for a
// request to be admitted.
package ratelimit

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"scorepulse/internal/domain"
)

// Scope labels the ceiling that rejected a request.
type Scope string

const (
	ScopeFamilyMinute Scope = "family_minute"
	ScopeGlobalHour   Scope = "global_hour"
	ScopeGlobalDay    Scope = "global_day"
)

// Decision is the outcome of an admission check.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
	Scope      Scope
}

// Err returns a typed *Error for a rejected decision, nil otherwise.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return &Error{RetryAfter: d.RetryAfter, Scope: d.Scope}
}

// Error reports a denied admission with a machine-readable retry hint.
type Error struct {
	RetryAfter time.Duration
	Scope      Scope
}

func (e *Error) Error() string {
	return fmt.Sprintf("rate limited (%s), retry in %s", e.Scope, e.RetryAfter)
}

// AsError unwraps err into an *Error when it represents a denied admission.
func AsError(err error) (*Error, bool) {
	var rlErr *Error
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// Limits holds the configured ceilings. A ceiling of zero disables that check.
type Limits struct {
	PerMinute     map[domain.Family]int
	GlobalPerHour int
	GlobalPerDay  int
}

type windowKey struct {
	client  string
	family  domain.Family // empty for global horizons
	horizon time.Duration
}

type window struct {
	start time.Time
	count int
}

// Limiter admits or rejects requests against fixed windows aligned to
// wall-clock boundaries. Windows reset wholesale when their boundary passes;
// the burst this permits at boundaries is an accepted tradeoff.
type Limiter struct {
	mu      sync.Mutex
	clock   clockwork.Clock
	limits  Limits
	windows map[windowKey]*window
	sweepAt time.Time
}

// sweepInterval bounds how often stale windows are purged.
const sweepInterval = 5 * time.Minute

// New constructs a Limiter with the real clock.
func New(limits Limits) *Limiter {
	return NewWithClock(limits, clockwork.NewRealClock())
}

// NewWithClock constructs a Limiter with an injected clock.
func NewWithClock(limits Limits, clock clockwork.Clock) *Limiter {
	return &Limiter{
		clock:   clock,
		limits:  limits,
		windows: make(map[windowKey]*window),
		sweepAt: clock.Now().Add(sweepInterval),
	}
}

type check struct {
	key   windowKey
	limit int
	scope Scope
}

// Admit decides whether one request from clientKey against family may
// proceed. Admission increments every applicable counter atomically; a
// rejected request increments nothing and must not reach the cache or
// upstream.
func (l *Limiter) Admit(clientKey string, family domain.Family) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	l.maybeSweep(now)

	checks := []check{
		{windowKey{clientKey, family, time.Minute}, l.limits.PerMinute[family], ScopeFamilyMinute},
		{windowKey{clientKey, "", time.Hour}, l.limits.GlobalPerHour, ScopeGlobalHour},
		{windowKey{clientKey, "", 24 * time.Hour}, l.limits.GlobalPerDay, ScopeGlobalDay},
	}

	for _, chk := range checks {
		if chk.limit <= 0 {
			continue
		}
		w := l.windowFor(chk.key, now)
		if w.count >= chk.limit {
			return Decision{
				Allowed:    false,
				RetryAfter: w.start.Add(chk.key.horizon).Sub(now),
				Scope:      chk.scope,
			}
		}
	}

	for _, chk := range checks {
		if chk.limit <= 0 {
			continue
		}
		l.windowFor(chk.key, now).count++
	}
	return Decision{Allowed: true}
}

// windowFor returns the live window for key, creating or wholesale-resetting
// it when its boundary has passed. Caller holds the lock.
func (l *Limiter) windowFor(key windowKey, now time.Time) *window {
	aligned := now.Truncate(key.horizon)
	w, ok := l.windows[key]
	if !ok {
		w = &window{start: aligned}
		l.windows[key] = w
		return w
	}
	if !w.start.Equal(aligned) {
		w.start = aligned
		w.count = 0
	}
	return w
}

// maybeSweep drops windows that ended at least one full horizon ago so
// per-client maps do not grow without bound. Caller holds the lock.
func (l *Limiter) maybeSweep(now time.Time) {
	if now.Before(l.sweepAt) {
		return
	}
	l.sweepAt = now.Add(sweepInterval)
	for key, w := range l.windows {
		if now.Sub(w.start) >= 2*key.horizon {
			delete(l.windows, key)
		}
	}
}
