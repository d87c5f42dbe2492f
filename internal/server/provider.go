package server

import (
	"log/slog"
	"net/http"

	"scorepulse/internal/config"
	"scorepulse/internal/providers"
	"scorepulse/internal/providers/espn"
	"scorepulse/internal/providers/fixture"
)

// selectProvider picks the upstream data source named by the config. Unknown
// names fall back to the fixture provider so a typo cannot keep the service
// from starting.
func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case "espn", "":
		return espn.NewClient(espn.Config{
			BaseURL:           cfg.Espn.BaseURL,
			UserAgent:         cfg.Espn.UserAgent,
			HTTPClient:        &http.Client{Timeout: cfg.Espn.Timeout},
			Timezone:          cfg.Espn.Timezone,
			ScoreboardTimeout: cfg.Espn.ScoreboardTimeout,
			ThrottleRPS:       cfg.Espn.ThrottleRPS,
			ThrottleBurst:     cfg.Espn.ThrottleBurst,
			Logger:            logger,
		})
	case "fixture":
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
