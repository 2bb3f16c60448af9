package fixture

import (
	"context"
	"fmt"

	domaingames "nba-scores-dashboard/internal/domain/games"
	"nba-scores-dashboard/internal/domain/teams"
	"nba-scores-dashboard/internal/providers"
)

// Provider returns a static set of games useful for local development without
// reaching the NBA upstreams. Each mode gets a slate shaped like that mode's data.
type Provider struct {
	teams *teams.Directory
}

// New creates a fixture provider backed by the default team directory.
func New() *Provider {
	return &Provider{teams: teams.Default()}
}

var _ providers.GameProvider = (*Provider)(nil)

// FetchGames returns a deterministic slate for date.
func (p *Provider) FetchGames(ctx context.Context, mode providers.Mode, date string) ([]domaingames.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch mode {
	case providers.ModeLive:
		return []domaingames.Game{
			p.game(date, 1, "BOS", "LAL", "Q3 4:12", 81, 77, line(30, 61, 9, 24, 12, 15, 19, 33, 8), line(28, 63, 7, 22, 14, 17, 16, 35, 10)),
			p.game(date, 2, "GSW", "MIA", domaingames.StatusFinal, 118, 109, line(44, 88, 17, 40, 13, 16, 29, 45, 12), nil),
			p.scheduled(date, 3, "DEN", "PHX", "9:00 PM CT"),
		}, nil
	case providers.ModeHistorical:
		return []domaingames.Game{
			p.game(date, 1, "NYK", "PHI", domaingames.StatusFinal, 104, 99, line(39, 86, 11, 31, 15, 19, 22, 48, 11), line(36, 84, 12, 35, 15, 18, 20, 41, 14)),
			p.game(date, 2, "MIL", "CHI", domaingames.StatusFinal, 121, 121, line(45, 90, 14, 37, 17, 21, 27, 46, 13), line(43, 91, 15, 39, 20, 23, 25, 44, 9)),
		}, nil
	case providers.ModeFuture:
		return []domaingames.Game{
			p.scheduled(date, 1, "DAL", "OKC", "7:30 PM CT"),
			p.scheduled(date, 2, "LAC", "SAC", "10:00 PM CT"),
		}, nil
	default:
		return nil, fmt.Errorf("fixture: unknown mode %q", mode)
	}
}

func (p *Provider) game(date string, n int, home, away, status string, homeScore, awayScore int, homeStats, awayStats *domaingames.StatLine) domaingames.Game {
	return domaingames.Game{
		ID:     fmt.Sprintf("fixture-%s-%d", date, n),
		Date:   date,
		Status: status,
		Home:   domaingames.TeamSide{Team: p.teams.Resolve(home), Score: homeScore, Stats: homeStats},
		Away:   domaingames.TeamSide{Team: p.teams.Resolve(away), Score: awayScore, Stats: awayStats},
	}
}

func (p *Provider) scheduled(date string, n int, home, away, tipOff string) domaingames.Game {
	g := p.game(date, n, home, away, tipOff, 0, 0, nil, nil)
	g.IsScheduled = true
	return g.Sealed()
}

func line(fgm, fga, tpm, tpa, ftm, fta, ast, reb, tov int) *domaingames.StatLine {
	return &domaingames.StatLine{
		FieldGoalsMade:      domaingames.Int(fgm),
		FieldGoalsAttempted: domaingames.Int(fga),
		ThreeMade:           domaingames.Int(tpm),
		ThreeAttempted:      domaingames.Int(tpa),
		FreeThrowsMade:      domaingames.Int(ftm),
		FreeThrowsAttempted: domaingames.Int(fta),
		Assists:             domaingames.Int(ast),
		Rebounds:            domaingames.Int(reb),
		Turnovers:           domaingames.Int(tov),
	}
}
