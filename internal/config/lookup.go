package config

const (
	envScoresDaysBack   = "SCORES_DAYS_BACK"
	envScoresDaysAhead  = "SCORES_DAYS_AHEAD"
	envDetailsDaysBack  = "DETAILS_DAYS_BACK"
	envDetailsDaysAhead = "DETAILS_DAYS_AHEAD"

	// Yesterday's late finish through the next few scheduled games.
	defaultScoresDaysBack   = 1
	defaultScoresDaysAhead  = 3
	defaultDetailsDaysBack  = 2
	defaultDetailsDaysAhead = 2
)

// LookupConfig bounds the scoreboard date windows scanned per request.
type LookupConfig struct {
	ScoresDaysBack   int
	ScoresDaysAhead  int
	DetailsDaysBack  int
	DetailsDaysAhead int
}

func loadLookup() LookupConfig {
	return LookupConfig{
		ScoresDaysBack:   intEnvOrDefault(envScoresDaysBack, defaultScoresDaysBack),
		ScoresDaysAhead:  intEnvOrDefault(envScoresDaysAhead, defaultScoresDaysAhead),
		DetailsDaysBack:  intEnvOrDefault(envDetailsDaysBack, defaultDetailsDaysBack),
		DetailsDaysAhead: intEnvOrDefault(envDetailsDaysAhead, defaultDetailsDaysAhead),
	}
}
