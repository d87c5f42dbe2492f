package testutil

import "time"

// FixedNow is the canonical instant tests pin injected clocks to; schedule
// fixtures are dated relative to it.
var FixedNow = time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
