package server

import (
	"fmt"
	"strings"

	"scorepulse/internal/providers"
)

// normalizeProviderName returns a lower-cased provider name, deriving one
// from the instance type when the config left the name blank. Keeps metric
// labels and log fields consistent across the wiring.
func normalizeProviderName(raw string, provider providers.DataProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
