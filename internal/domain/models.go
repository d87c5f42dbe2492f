package domain

import "time"

// StatusKind mirrors the shared contract for game lifecycle states.
type StatusKind string

const (
	StatusScheduled StatusKind = "SCHEDULED"
	StatusLive      StatusKind = "LIVE"
	StatusHalftime  StatusKind = "HALFTIME"
	StatusFinal     StatusKind = "FINAL"
	StatusDelayed   StatusKind = "DELAYED"
	StatusPostponed StatusKind = "POSTPONED"
	StatusCanceled  StatusKind = "CANCELED"
	StatusError     StatusKind = "ERROR"
	StatusNoGames   StatusKind = "NO_GAMES"
)

// InPlay reports whether the game is currently being played.
func (k StatusKind) InPlay() bool {
	return k == StatusLive || k == StatusHalftime
}

// ShowsScores reports whether a game in this state has meaningful scores.
func (k StatusKind) ShowsScores() bool {
	return k.InPlay() || k == StatusFinal
}

// Family identifies a logical endpoint family. Rate-limit ceilings and cache
// TTLs are tuned per family.
type Family string

const (
	FamilyScores  Family = "scores"
	FamilyTeams   Family = "teams"
	FamilyDetails Family = "details"
)

// Game is one normalized candidate game, oriented around the requested team:
// Team is always the side that matched the lookup.
type Game struct {
	ID            string
	Team          string
	Opponent      string
	TeamScore     string
	OpponentScore string
	Kind          StatusKind
	StatusText    string
	StartTime     time.Time
	Venue         string
}

// NextGame is the upcoming-game attachment on a GameState. Same shape as the
// primary game minus scores.
type NextGame struct {
	Opponent    string `json:"opponent"`
	GameTimeISO string `json:"gameTimeIso,omitempty"`
	Venue       string `json:"venue,omitempty"`
}

// GameState is the normalized record returned to widgets. Produced fresh on
// every successful lookup and never mutated in place. Score fields are display
// strings: numeric only while StatusKind.ShowsScores(), "-" otherwise.
type GameState struct {
	Team          string     `json:"team"`
	Opponent      string     `json:"opponent"`
	TeamScore     string     `json:"teamScore"`
	OpponentScore string     `json:"opponentScore"`
	StatusKind    StatusKind `json:"statusKind"`
	StatusText    string     `json:"statusText"`
	Venue         string     `json:"venue,omitempty"`
	GameTimeISO   string     `json:"gameTimeIso,omitempty"`
	NextGame      *NextGame  `json:"nextGame,omitempty"`
	LastUpdated   time.Time  `json:"lastUpdated"`
}

// TeamDetail carries one side's box-score view of a game.
type TeamDetail struct {
	Name       string            `json:"name"`
	HomeAway   string            `json:"homeAway,omitempty"`
	Score      string            `json:"score,omitempty"`
	Linescores []string          `json:"linescores,omitempty"`
	Statistics map[string]string `json:"statistics,omitempty"`
}

// StatLeader is a single statistical leader entry for a game.
type StatLeader struct {
	Team     string `json:"team"`
	Category string `json:"category"`
	Athlete  string `json:"athlete"`
	Value    string `json:"value"`
}

// ScoringPlay is one scoring event within a game.
type ScoringPlay struct {
	Period     string `json:"period,omitempty"`
	Clock      string `json:"clock,omitempty"`
	Team       string `json:"team,omitempty"`
	Text       string `json:"text"`
	ScoreValue int    `json:"scoreValue,omitempty"`
}

// GameDetails is the expanded view of a single game: linescores, team
// statistics, stat leaders and scoring plays.
type GameDetails struct {
	GameID       string        `json:"gameId"`
	Team         string        `json:"team"`
	Opponent     string        `json:"opponent"`
	StatusKind   StatusKind    `json:"statusKind"`
	StatusText   string        `json:"statusText"`
	Venue        string        `json:"venue,omitempty"`
	GameTimeISO  string        `json:"gameTimeIso,omitempty"`
	Teams        []TeamDetail  `json:"teams"`
	Leaders      []StatLeader  `json:"leaders,omitempty"`
	ScoringPlays []ScoringPlay `json:"scoringPlays,omitempty"`
	LastUpdated  time.Time     `json:"lastUpdated"`
}
