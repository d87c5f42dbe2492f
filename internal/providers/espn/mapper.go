package espn

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"scorepulse/internal/domain"
	"scorepulse/internal/teammatch"
)

// Upstream timestamps come in a few shapes; bare layouts parse as UTC.
var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// matchTeamGames filters a day's events down to the ones involving the given
// team and orients each game around it.
func matchTeamGames(events []eventJSON, team string, loc *time.Location) []domain.Game {
	games := make([]domain.Game, 0, 1)
	for _, event := range events {
		if len(event.Competitions) == 0 {
			continue
		}
		comp := event.Competitions[0]
		for _, competitor := range comp.Competitors {
			if !teammatch.Matches(team, competitor.Team.DisplayName) {
				continue
			}
			if game, ok := mapEvent(event, comp, competitor, loc); ok {
				games = append(games, game)
			}
			break
		}
	}
	return games
}

func mapEvent(event eventJSON, comp competitionJSON, team competitorJSON, loc *time.Location) (domain.Game, bool) {
	start, err := parseEventTime(event.Date)
	if err != nil {
		// Events without a parseable start time are skipped; the selection
		// policy depends on ordering by time.
		return domain.Game{}, false
	}

	opponent := findOpponent(comp.Competitors, team.ID)
	kind := mapStatusKind(event.Status.Type.Name)

	teamScore, opponentScore := "-", "-"
	if kind.ShowsScores() {
		teamScore = orDefault(team.Score, "0")
		opponentScore = orDefault(opponent.Score, "0")
	}

	return domain.Game{
		ID:            event.ID,
		Team:          team.Team.DisplayName,
		Opponent:      opponentName(opponent),
		TeamScore:     teamScore,
		OpponentScore: opponentScore,
		Kind:          kind,
		StatusText:    orDefault(event.Status.Type.Detail, "Scheduled"),
		StartTime:     start.In(loc),
		Venue:         comp.Venue.FullName,
	}, true
}

func findOpponent(competitors []competitorJSON, teamID string) competitorJSON {
	for _, competitor := range competitors {
		if competitor.ID != teamID {
			return competitor
		}
	}
	return competitorJSON{}
}

func opponentName(opponent competitorJSON) string {
	if name := opponent.Team.DisplayName; name != "" {
		return name
	}
	return "Unknown"
}

// mapStatusKind classifies upstream status names. Unrecognized names fall
// back to scheduled.
func mapStatusKind(name string) domain.StatusKind {
	switch name {
	case "STATUS_FINAL", "STATUS_FINAL_OT", "STATUS_FULL_TIME", "STATUS_FINAL_PEN":
		return domain.StatusFinal
	case "STATUS_IN_PROGRESS", "STATUS_FIRST_HALF", "STATUS_SECOND_HALF",
		"STATUS_END_PERIOD", "STATUS_OVERTIME", "STATUS_SHOOTOUT":
		return domain.StatusLive
	case "STATUS_HALFTIME":
		return domain.StatusHalftime
	case "STATUS_DELAYED", "STATUS_RAIN_DELAY":
		return domain.StatusDelayed
	case "STATUS_POSTPONED", "STATUS_SUSPENDED":
		return domain.StatusPostponed
	case "STATUS_CANCELED", "STATUS_CANCELLED", "STATUS_FORFEIT", "STATUS_ABANDONED":
		return domain.StatusCanceled
	default:
		return domain.StatusScheduled
	}
}

func parseEventTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("empty event date")
	}
	for _, layout := range eventTimeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized event date %q", raw)
}

// mapSummary flattens a summary payload into game details. Team/Opponent are
// oriented home-first.
func mapSummary(gameID string, payload summaryResponse, loc *time.Location) domain.GameDetails {
	details := domain.GameDetails{
		GameID:       gameID,
		Teams:        mapBoxTeams(payload),
		Leaders:      mapLeaders(payload.Leaders),
		ScoringPlays: mapScoringPlays(payload.ScoringPlays),
	}

	if len(payload.Header.Competitions) == 0 {
		return details
	}
	comp := payload.Header.Competitions[0]

	details.StatusKind = mapStatusKind(comp.Status.Type.Name)
	details.StatusText = orDefault(comp.Status.Type.Detail, "Scheduled")
	details.Venue = comp.Venue.FullName
	if start, err := parseEventTime(comp.Date); err == nil {
		details.GameTimeISO = start.In(loc).Format(time.RFC3339)
	}

	home, away := splitHomeAway(comp.Competitors)
	details.Team = orDefault(home.Team.DisplayName, "Unknown")
	details.Opponent = orDefault(away.Team.DisplayName, "Unknown")

	return details
}

func splitHomeAway(competitors []competitorJSON) (home, away competitorJSON) {
	for _, competitor := range competitors {
		switch competitor.HomeAway {
		case "home":
			home = competitor
		case "away":
			away = competitor
		}
	}
	return home, away
}

func mapBoxTeams(payload summaryResponse) []domain.TeamDetail {
	var competitors []competitorJSON
	if len(payload.Header.Competitions) > 0 {
		competitors = payload.Header.Competitions[0].Competitors
	}

	teams := make([]domain.TeamDetail, 0, len(payload.Boxscore.Teams))
	for _, boxTeam := range payload.Boxscore.Teams {
		detail := domain.TeamDetail{
			Name:       orDefault(boxTeam.Team.DisplayName, "Unknown"),
			HomeAway:   boxTeam.HomeAway,
			Statistics: mapStatistics(boxTeam.Statistics),
		}
		for _, competitor := range competitors {
			if competitor.HomeAway == boxTeam.HomeAway && boxTeam.HomeAway != "" {
				detail.Score = orDefault(competitor.Score, "0")
				detail.Linescores = mapLinescores(competitor.Linescores)
				break
			}
		}
		teams = append(teams, detail)
	}
	return teams
}

func mapStatistics(stats []statJSON) map[string]string {
	if len(stats) == 0 {
		return nil
	}
	out := make(map[string]string, len(stats))
	for _, stat := range stats {
		name := stat.DisplayName
		if name == "" {
			name = stat.Name
		}
		if name == "" {
			continue
		}
		out[name] = orDefault(stat.DisplayValue, "0")
	}
	return out
}

func mapLinescores(scores []linescoreJSON) []string {
	if len(scores) == 0 {
		return nil
	}
	out := make([]string, 0, len(scores))
	for _, score := range scores {
		out = append(out, score.DisplayValue)
	}
	return out
}

var skipLeaderValues = map[string]bool{"": true, "0": true, "N/A": true, "--": true}

func mapLeaders(entries []teamLeadersJSON) []domain.StatLeader {
	leaders := make([]domain.StatLeader, 0)
	for _, teamEntry := range entries {
		teamName := firstNonEmpty(
			teamEntry.Team.Abbreviation,
			teamEntry.Team.ShortDisplayName,
			teamEntry.Team.DisplayName,
		)
		for _, category := range teamEntry.Leaders {
			categoryName := firstNonEmpty(category.DisplayName, category.Name)
			if categoryName == "" {
				continue
			}
			for _, entry := range category.Leaders {
				athlete := firstNonEmpty(entry.Athlete.DisplayName, entry.Athlete.FullName)
				if athlete == "" || skipLeaderValues[entry.DisplayValue] {
					continue
				}
				leaders = append(leaders, domain.StatLeader{
					Team:     teamName,
					Category: categoryName,
					Athlete:  athlete,
					Value:    entry.DisplayValue,
				})
			}
		}
	}
	return leaders
}

func mapScoringPlays(plays []scoringPlayJSON) []domain.ScoringPlay {
	if len(plays) == 0 {
		return nil
	}
	out := make([]domain.ScoringPlay, 0, len(plays))
	for _, play := range plays {
		out = append(out, domain.ScoringPlay{
			Period:     play.Period.DisplayValue,
			Clock:      play.Clock.DisplayValue,
			Team:       play.Team.Abbreviation,
			Text:       play.Text,
			ScoreValue: play.ScoreValue,
		})
	}
	return out
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
