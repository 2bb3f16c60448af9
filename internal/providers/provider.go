package providers

import (
	"context"

	domaingames "nba-scores-dashboard/internal/domain/games"
)

// Mode selects which upstream query strategy serves a date.
type Mode string

const (
	// ModeLive serves today's games from the live scoreboard.
	ModeLive Mode = "live"
	// ModeHistorical serves past dates from the game finder and box scores.
	ModeHistorical Mode = "historical"
	// ModeFuture serves upcoming dates from the schedule.
	ModeFuture Mode = "future"
)

// ModeForDate routes a YYYY-MM-DD date against today's YYYY-MM-DD date.
// Both values are calendar dates, so lexical order matches chronological order.
func ModeForDate(date, today string) Mode {
	switch {
	case date == today:
		return ModeLive
	case date < today:
		return ModeHistorical
	default:
		return ModeFuture
	}
}

// GameProvider fetches one date's games using the given strategy and normalizes
// them into canonical records, preserving upstream order.
type GameProvider interface {
	FetchGames(ctx context.Context, mode Mode, date string) ([]domaingames.Game, error)
}
