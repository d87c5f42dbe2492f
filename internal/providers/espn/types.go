package espn

// Wire types for the three upstream endpoints: scoreboard, teams, and
// summary. The raw payloads carry much more; these stay trimmed to the
// slices the service touches.

type scoreboardResponse struct {
	Events []eventJSON `json:"events"`
}

type eventJSON struct {
	ID           string            `json:"id"`
	Date         string            `json:"date"`
	Status       statusJSON        `json:"status"`
	Competitions []competitionJSON `json:"competitions"`
}

type competitionJSON struct {
	Date        string           `json:"date"`
	Venue       venueJSON        `json:"venue"`
	Status      statusJSON       `json:"status"`
	Competitors []competitorJSON `json:"competitors"`
}

type competitorJSON struct {
	ID         string          `json:"id"`
	HomeAway   string          `json:"homeAway"`
	Score      string          `json:"score"`
	Team       teamJSON        `json:"team"`
	Linescores []linescoreJSON `json:"linescores"`
}

type teamJSON struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
	Abbreviation     string `json:"abbreviation"`
}

type linescoreJSON struct {
	DisplayValue string `json:"displayValue"`
}

type venueJSON struct {
	FullName string `json:"fullName"`
}

type statusJSON struct {
	Period       int            `json:"period"`
	DisplayClock string         `json:"displayClock"`
	Type         statusTypeJSON `json:"type"`
}

type statusTypeJSON struct {
	Name      string `json:"name"`
	Detail    string `json:"detail"`
	Completed bool   `json:"completed"`
}

type teamsResponse struct {
	Sports []sportEntryJSON `json:"sports"`
}

type sportEntryJSON struct {
	Leagues []leagueEntryJSON `json:"leagues"`
}

type leagueEntryJSON struct {
	Teams []teamEntryJSON `json:"teams"`
}

type teamEntryJSON struct {
	Team teamJSON `json:"team"`
}

type summaryResponse struct {
	Header       headerJSON        `json:"header"`
	Boxscore     boxscoreJSON      `json:"boxscore"`
	Leaders      []teamLeadersJSON `json:"leaders"`
	ScoringPlays []scoringPlayJSON `json:"scoringPlays"`
}

type headerJSON struct {
	Competitions []competitionJSON `json:"competitions"`
}

type boxscoreJSON struct {
	Teams []boxTeamJSON `json:"teams"`
}

type boxTeamJSON struct {
	Team       teamJSON   `json:"team"`
	HomeAway   string     `json:"homeAway"`
	Statistics []statJSON `json:"statistics"`
}

type statJSON struct {
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	DisplayValue string `json:"displayValue"`
}

type teamLeadersJSON struct {
	Team    teamJSON             `json:"team"`
	Leaders []leaderCategoryJSON `json:"leaders"`
}

type leaderCategoryJSON struct {
	Name        string            `json:"name"`
	DisplayName string            `json:"displayName"`
	Leaders     []leaderEntryJSON `json:"leaders"`
}

type leaderEntryJSON struct {
	DisplayValue string      `json:"displayValue"`
	Athlete      athleteJSON `json:"athlete"`
}

type athleteJSON struct {
	DisplayName string `json:"displayName"`
	FullName    string `json:"fullName"`
}

type scoringPlayJSON struct {
	Period     periodJSON `json:"period"`
	Clock      clockJSON  `json:"clock"`
	Team       teamJSON   `json:"team"`
	Text       string     `json:"text"`
	ScoreValue int        `json:"scoreValue"`
}

type periodJSON struct {
	Number       int    `json:"number"`
	DisplayValue string `json:"displayValue"`
}

type clockJSON struct {
	DisplayValue string `json:"displayValue"`
}
