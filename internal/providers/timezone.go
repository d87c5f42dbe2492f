package providers

import "time"

// ResolveTimezone maps a timezone name to the location used for
// schedule-day arithmetic. Empty or unknown names resolve to UTC so callers
// always get a usable location.
func ResolveTimezone(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
