// Package requestutil holds small helpers shared by HTTP middleware and
// handlers: request-ID hygiene and client identity extraction.
package requestutil

import (
	"net"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var requestIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// SanitizeRequestID echoes a well-formed incoming request ID and replaces
// anything else with a fresh one. Caller-supplied IDs end up in logs and
// response headers, so only a conservative charset is allowed through.
func SanitizeRequestID(incoming string) string {
	if incoming != "" && requestIDPattern.MatchString(incoming) {
		return incoming
	}
	return NewRequestID()
}

// NewRequestID generates a random request ID.
func NewRequestID() string {
	return uuid.NewString()
}

// ClientKey returns the caller identity used for rate-limit scoping: the
// remote IP with any port stripped. Behind the RealIP middleware RemoteAddr
// already holds the resolved client IP without a port.
func ClientKey(r *http.Request) string {
	if r == nil {
		return ""
	}
	addr := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
