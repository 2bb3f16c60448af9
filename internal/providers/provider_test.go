package providers

import (
	"context"
	"testing"

	domaingames "nba-scores-dashboard/internal/domain/games"
)

type testProvider struct{}

func (t *testProvider) FetchGames(ctx context.Context, mode Mode, date string) ([]domaingames.Game, error) {
	_ = ctx
	_ = mode
	_ = date
	return nil, nil
}

func TestGameProviderInterfaceImplemented(t *testing.T) {
	var _ GameProvider = (*testProvider)(nil)
}

func TestModeForDate(t *testing.T) {
	cases := []struct {
		date string
		want Mode
	}{
		{"2024-01-15", ModeLive},
		{"2024-01-14", ModeHistorical},
		{"2023-12-31", ModeHistorical},
		{"2024-01-16", ModeFuture},
		{"2025-01-01", ModeFuture},
	}
	for _, tc := range cases {
		if got := ModeForDate(tc.date, "2024-01-15"); got != tc.want {
			t.Fatalf("date %s expected %s, got %s", tc.date, tc.want, got)
		}
	}
}
