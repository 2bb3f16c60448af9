package testutil

import (
	"context"
	"sync"

	domaingames "nba-scores-dashboard/internal/domain/games"
	"nba-scores-dashboard/internal/providers"
)

// ProviderCall records one FetchGames invocation.
type ProviderCall struct {
	Mode providers.Mode
	Date string
}

// StubProvider returns configured games and error while recording calls.
type StubProvider struct {
	Games []domaingames.Game
	Err   error

	mu    sync.Mutex
	calls []ProviderCall
}

// FetchGames implements providers.GameProvider.
func (p *StubProvider) FetchGames(_ context.Context, mode providers.Mode, date string) ([]domaingames.Game, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, ProviderCall{Mode: mode, Date: date})
	return p.Games, p.Err
}

// Calls returns a copy of the recorded calls.
func (p *StubProvider) Calls() []ProviderCall {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ProviderCall(nil), p.calls...)
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

// FetchGames implements providers.GameProvider.
func (UnavailableProvider) FetchGames(context.Context, providers.Mode, string) ([]domaingames.Game, error) {
	return nil, providers.ErrProviderUnavailable
}
