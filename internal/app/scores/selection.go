package scores

import (
	"sort"

	"scorepulse/internal/domain"
)

// Select ranks a team's candidate games and returns the primary game plus the
// upcoming game to surface alongside it. ok is false when games is empty.
//
// Precedence, first match wins:
//  1. a game currently in play (live or halftime)
//  2. the most recent final (a final played today and the most recent prior
//     final collapse to the same pick, since finals never post-date "now")
//  3. the earliest upcoming scheduled game
//
// When nothing fits a bucket (say the window holds only postponed games) the
// most recent game by start time wins, so the widget still shows something
// concrete.
func Select(games []domain.Game) (primary domain.Game, next *domain.Game, ok bool) {
	if len(games) == 0 {
		return domain.Game{}, nil, false
	}

	upcoming := upcomingGames(games)

	if live := firstInPlay(games); live != nil {
		return *live, firstUpcoming(upcoming), true
	}

	if final := mostRecentFinal(games); final != nil {
		return *final, firstUpcoming(upcoming), true
	}

	if len(upcoming) > 0 {
		// The primary is itself the next game; surface the one after it.
		if len(upcoming) > 1 {
			second := upcoming[1]
			return upcoming[0], &second, true
		}
		return upcoming[0], nil, true
	}

	fallback := games[0]
	for _, g := range games[1:] {
		if g.StartTime.After(fallback.StartTime) {
			fallback = g
		}
	}
	return fallback, nil, true
}

func firstInPlay(games []domain.Game) *domain.Game {
	for i := range games {
		if games[i].Kind.InPlay() {
			return &games[i]
		}
	}
	return nil
}

func mostRecentFinal(games []domain.Game) *domain.Game {
	var found *domain.Game
	for i := range games {
		g := &games[i]
		if g.Kind != domain.StatusFinal {
			continue
		}
		if found == nil || g.StartTime.After(found.StartTime) {
			found = g
		}
	}
	return found
}

// upcomingGames returns the scheduled games sorted soonest-first.
func upcomingGames(games []domain.Game) []domain.Game {
	upcoming := make([]domain.Game, 0, len(games))
	for _, g := range games {
		if g.Kind == domain.StatusScheduled {
			upcoming = append(upcoming, g)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool { return upcoming[i].StartTime.Before(upcoming[j].StartTime) })
	return upcoming
}

func firstUpcoming(upcoming []domain.Game) *domain.Game {
	if len(upcoming) == 0 {
		return nil
	}
	first := upcoming[0]
	return &first
}
