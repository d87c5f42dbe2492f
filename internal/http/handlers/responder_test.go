package handlers

import (
	"net/http"
	"testing"
	"time"

	"scorepulse/internal/http/middleware"
	"scorepulse/internal/ratelimit"
	"scorepulse/internal/testutil"
	"scorepulse/internal/validate"
)

func TestWriteRateLimitedRoundsRetryAfterUp(t *testing.T) {
	tests := []struct {
		name       string
		retryAfter time.Duration
		want       string
	}{
		{name: "sub-second rounds to one", retryAfter: 300 * time.Millisecond, want: "1"},
		{name: "fractional rounds up", retryAfter: 1500 * time.Millisecond, want: "2"},
		{name: "whole seconds unchanged", retryAfter: 2 * time.Second, want: "2"},
		{name: "zero floors at one", retryAfter: 0, want: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeRateLimited(w, r, &ratelimit.Error{RetryAfter: tt.retryAfter, Scope: ratelimit.ScopeFamilyMinute}, nil)
			})
			rr := testutil.Serve(h, http.MethodGet, "/api/scores/nba/lakers", nil)

			testutil.AssertStatus(t, rr, http.StatusTooManyRequests)
			if got := rr.Header().Get("Retry-After"); got != tt.want {
				t.Fatalf("Retry-After = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteErrorIncludesRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusTeapot, "teapot", logger)
	})
	h := middleware.Logging(logger, nil)(inner)

	req, err := http.NewRequest(http.MethodGet, "/health", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("X-Request-ID", "req-abc-123")
	rr := testutil.ServeRequest(h, req)

	testutil.AssertStatus(t, rr, http.StatusTeapot)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["requestId"] != "req-abc-123" {
		t.Fatalf("expected request id echoed in body, got %q", resp["requestId"])
	}
	if resp["error"] != "teapot" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestInvalidParamMessageNamesOnlyTheField(t *testing.T) {
	if got := invalidParamMessage(&validate.Error{Field: "sport", Reason: "contains disallowed characters"}); got != "invalid sport parameter" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := invalidParamMessage(&validate.Error{Field: "team", Reason: "exceeds length cap"}); got != "invalid team parameter" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := invalidParamMessage(nil); got != "invalid parameter" {
		t.Fatalf("unexpected fallback %q", got)
	}
}

func TestCanonicalSport(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "NBA", want: "nba"},
		{in: " mlb ", want: "mlb"},
		{in: "ice%20hockey", want: "ice hockey"},
	}
	for _, tt := range tests {
		if got := canonicalSport(tt.in); got != tt.want {
			t.Fatalf("canonicalSport(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNotFoundAndMethodNotAllowedWriteJSON(t *testing.T) {
	rr := testutil.Serve(NotFound(nil), http.MethodGet, "/nope", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "not found" {
		t.Fatalf("unexpected body %q", resp["error"])
	}

	rr = testutil.Serve(MethodNotAllowed(nil), http.MethodPost, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "method not allowed" {
		t.Fatalf("unexpected body %q", resp["error"])
	}
}
