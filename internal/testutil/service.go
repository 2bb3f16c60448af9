package testutil

import (
	"time"

	"nba-scores-dashboard/internal/app/games"
	domaingames "nba-scores-dashboard/internal/domain/games"
	"nba-scores-dashboard/internal/store"
)

// NewServiceWithGames builds a games service whose provider always returns g,
// with today fixed to 2024-01-15 in UTC. The provider is returned for call assertions.
func NewServiceWithGames(g []domaingames.Game) (*games.Service, *StubProvider) {
	provider := &StubProvider{Games: g}
	svc := games.NewService(games.Config{
		Provider: provider,
		Cache:    store.NewDayCache(time.Minute),
		Location: time.UTC,
		Now:      NoonUTC("2024-01-15"),
	})
	return svc, provider
}
