package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"scorepulse/internal/http/middleware"
	"scorepulse/internal/logging"
	"scorepulse/internal/ratelimit"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

// writeError emits the generic JSON error body. message must never contain
// caller-supplied input.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	logger = loggerFromContext(r, logger)
	reqID := middleware.RequestIDFromContext(r.Context())
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeRateLimited emits a 429 with the Retry-After hint in whole seconds,
// rounded up so callers never retry early.
func writeRateLimited(w http.ResponseWriter, r *http.Request, rlErr *ratelimit.Error, logger *slog.Logger) {
	seconds := int64(1)
	if rlErr != nil && rlErr.RetryAfter > 0 {
		seconds = int64((rlErr.RetryAfter + time.Second - 1) / time.Second)
	}
	w.Header().Set("Retry-After", strconv.FormatInt(seconds, 10))
	if rlErr != nil {
		logging.Warn(loggerFromContext(r, logger), "request rejected by rate limit",
			slog.String("scope", string(rlErr.Scope)),
			slog.Int64(logging.FieldRetryAfter, seconds),
		)
	}
	writeError(w, r, http.StatusTooManyRequests, "rate limit exceeded", logger)
}

// NotFound returns the JSON handler for unmatched routes.
func NotFound(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "not found", logger)
	}
}

// MethodNotAllowed returns the JSON handler for unsupported methods.
func MethodNotAllowed(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
