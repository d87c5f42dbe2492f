package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrProviderUnavailable signals a nil or unconfigured provider.
var ErrProviderUnavailable = errors.New("provider unavailable")

// ErrUnsupportedSport reports a sport with no upstream league mapping.
// Permanent; never retried.
var ErrUnsupportedSport = errors.New("unsupported sport")

// ErrorKind classifies upstream failures.
type ErrorKind string

const (
	// KindTimeout: the per-request deadline elapsed.
	KindTimeout ErrorKind = "timeout"
	// KindBadResponse: the upstream answered but the payload or status was
	// unusable (4xx, malformed JSON). Permanent.
	KindBadResponse ErrorKind = "bad_response"
	// KindUnreachable: connection failures and 5xx answers. Transient.
	KindUnreachable ErrorKind = "unreachable"
)

// UpstreamError is the terminal failure shape for upstream calls. Its text is
// for server-side logs; handlers answer clients with generic messages.
type UpstreamError struct {
	Kind     ErrorKind
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s upstream %s: %v", e.Provider, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s upstream %s", e.Provider, e.Kind)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// Transient reports whether a failed call may succeed on retry: timeouts,
// unreachable upstreams, and upstream rate limiting. Bad responses and
// unsupported sports are permanent.
func Transient(err error) bool {
	if err == nil {
		return false
	}
	if upErr, ok := AsUpstreamError(err); ok {
		return upErr.Kind == KindTimeout || upErr.Kind == KindUnreachable
	}
	if _, ok := AsRateLimitError(err); ok {
		return true
	}
	return false
}
