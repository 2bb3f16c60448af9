package nba

import (
	"context"
	"log/slog"
	"strings"

	domaingames "nba-scores-dashboard/internal/domain/games"
	"nba-scores-dashboard/internal/logging"
)

func (c *Client) fetchLive(ctx context.Context, date string) ([]domaingames.Game, error) {
	var payload liveScoreboardResponse
	url := c.liveBaseURL + "/scoreboard/todaysScoreboard_00.json"
	if err := c.getJSON(ctx, endpointScoreboard, url, nil, &payload); err != nil {
		return nil, err
	}

	raw := payload.Scoreboard.Games
	games := make([]domaingames.Game, 0, len(raw))
	var pending []int
	for i, g := range raw {
		game := c.assembleLive(date, g)
		games = append(games, game)
		if needsLiveBoxScore(g, game) {
			pending = append(pending, i)
		}
	}

	c.fanOut(ctx, len(pending), func(ctx context.Context, n int) {
		i := pending[n]
		home, away, err := c.fetchLiveBoxScore(ctx, games[i].ID)
		if err != nil {
			c.logDebug(ctx, "live box score unavailable", slog.String(logging.FieldGameID, games[i].ID), slog.Any("error", err))
			return
		}
		if games[i].Home.Stats == nil {
			games[i].Home.Stats = home
		}
		if games[i].Away.Stats == nil {
			games[i].Away.Stats = away
		}
	})

	return games, nil
}

func (c *Client) assembleLive(date string, g liveGame) domaingames.Game {
	code := g.GameStatus.or(statusNotStarted)

	id := strings.TrimSpace(g.GameID)
	if id == "" {
		id = domaingames.FallbackID(date, g.HomeTeam.TeamTricode, g.AwayTeam.TeamTricode)
	}

	game := domaingames.Game{
		ID:   id,
		Date: date,
		Status: c.status.Format(StatusInput{
			Code:         code,
			Text:         g.GameStatusText,
			Period:       g.Period.or(0),
			Clock:        g.GameClock,
			ScheduledUTC: g.GameTimeUTC,
		}),
		IsScheduled: code == statusNotStarted,
		Home:        c.liveSide(g.HomeTeam),
		Away:        c.liveSide(g.AwayTeam),
	}
	return game.Sealed()
}

func (c *Client) liveSide(t liveTeam) domaingames.TeamSide {
	return domaingames.TeamSide{
		Team:  c.teams.Resolve(t.TeamTricode),
		Score: nonNegative(t.Score.or(0)),
		Stats: statsFromLive(t.Statistics),
	}
}

// needsLiveBoxScore reports whether a started game is missing stats the box
// score endpoint could supply. Synthesized ids cannot be looked up.
func needsLiveBoxScore(raw liveGame, game domaingames.Game) bool {
	if game.IsScheduled || strings.TrimSpace(raw.GameID) == "" {
		return false
	}
	return game.Home.Stats == nil || game.Away.Stats == nil
}
