// Package validate bounds and normalizes user-supplied sport/team identifiers
// before they reach the limiter, cache, or upstream.
package validate

import (
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"scorepulse/internal/logging"
)

const (
	// MaxSportLength caps sport identifiers.
	MaxSportLength = 50
	// MaxTeamLength caps team identifiers.
	MaxTeamLength = 100

	fieldSport = "sport"
	fieldTeam  = "team"
)

var (
	sportPattern = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)
	teamPattern  = regexp.MustCompile(`^[a-zA-Z0-9\s'.\-&]+$`)
)

// Error describes a rejected input. Reason is generic and safe to surface;
// the offending value is logged server-side only.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Inputs carries identifiers that passed validation: decoded once and trimmed.
type Inputs struct {
	Sport string
	Team  string
}

// Validator checks identifiers against length caps and charset allowlists.
type Validator struct {
	logger *slog.Logger
}

// New returns a Validator. logger may be nil.
func New(logger *slog.Logger) *Validator {
	return &Validator{logger: logger}
}

// SportTeam validates a (sport, team) pair.
func (v *Validator) SportTeam(sport, team string) (Inputs, error) {
	cleanSport, err := v.Sport(sport)
	if err != nil {
		return Inputs{}, err
	}
	cleanTeam, err := v.field(fieldTeam, team, MaxTeamLength, teamPattern)
	if err != nil {
		return Inputs{}, err
	}
	return Inputs{Sport: cleanSport, Team: cleanTeam}, nil
}

// Sport validates a sport identifier alone.
func (v *Validator) Sport(sport string) (string, error) {
	return v.field(fieldSport, sport, MaxSportLength, sportPattern)
}

// field decodes raw exactly once, then applies trim, length cap, and charset
// checks to the decoded form. Decoding once here (on top of the transport's
// own decode) is what defeats double-encoded payloads: the smuggled characters
// become visible and fail the allowlist.
func (v *Validator) field(name, raw string, maxLen int, pattern *regexp.Regexp) (string, error) {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", v.reject(name, raw, "malformed percent-encoding")
	}

	value := strings.TrimSpace(decoded)
	if value == "" {
		return "", v.reject(name, raw, "empty value")
	}
	if len(value) > maxLen {
		return "", v.reject(name, raw, "exceeds length cap")
	}
	if !pattern.MatchString(value) {
		return "", v.reject(name, raw, "contains disallowed characters")
	}
	return value, nil
}

func (v *Validator) reject(field, raw, reason string) error {
	logging.Warn(v.logger, "rejected input",
		slog.String("field", field),
		slog.String("reason", reason),
		slog.String(logging.FieldRawInput, raw),
	)
	return &Error{Field: field, Reason: reason}
}
