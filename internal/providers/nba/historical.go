package nba

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	domaingames "nba-scores-dashboard/internal/domain/games"
	"nba-scores-dashboard/internal/logging"
	"nba-scores-dashboard/internal/timeutil"
)

func (c *Client) fetchHistorical(ctx context.Context, date string) ([]domaingames.Game, error) {
	day, err := timeutil.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("nba: invalid date %q: %w", date, err)
	}
	finderDate := day.Format("01/02/2006")

	q := url.Values{}
	q.Set("DateFrom", finderDate)
	q.Set("DateTo", finderDate)
	q.Set("LeagueID", leagueID)
	q.Set("PlayerOrTeam", "T")

	payload, err := c.getStats(ctx, endpointGameFinder, "/leaguegamefinder", q)
	if err != nil {
		return nil, err
	}
	set, ok := payload.set("")
	if !ok {
		return nil, fmt.Errorf("%s: missing result set", endpointGameFinder)
	}

	pairs := pairTeamRows(set.rows())
	games := make([]domaingames.Game, 0, len(pairs))
	for _, p := range pairs {
		games = append(games, c.assembleHistorical(date, p))
	}

	c.fanOut(ctx, len(pairs), func(ctx context.Context, i int) {
		byTeam, err := c.fetchTeamBoxScore(ctx, pairs[i].gameID)
		if err != nil {
			c.logDebug(ctx, "team box score unavailable", slog.String(logging.FieldGameID, pairs[i].gameID), slog.Any("error", err))
			return
		}
		games[i].Home.Stats = byTeam[pairs[i].home.String("TEAM_ID")]
		games[i].Away.Stats = byTeam[pairs[i].away.String("TEAM_ID")]
	})

	return games, nil
}

func (c *Client) assembleHistorical(date string, p teamRowPair) domaingames.Game {
	return domaingames.Game{
		ID:     p.gameID,
		Date:   date,
		Status: domaingames.StatusFinal,
		Home:   c.historicalSide(p.home),
		Away:   c.historicalSide(p.away),
	}
}

func (c *Client) historicalSide(r row) domaingames.TeamSide {
	return domaingames.TeamSide{
		Team:  c.teams.Resolve(r.String("TEAM_ABBREVIATION")),
		Score: nonNegative(r.IntOr("PTS", 0)),
	}
}

type teamRowPair struct {
	gameID string
	home   row
	away   row
}

// pairTeamRows groups game finder rows, which arrive one per team, into games
// in first-seen order. Games with fewer than two rows are dropped.
func pairTeamRows(rows []row) []teamRowPair {
	var order []string
	byGame := make(map[string][]row)
	for _, r := range rows {
		id := strings.TrimSpace(r.String("GAME_ID"))
		if id == "" {
			continue
		}
		if _, seen := byGame[id]; !seen {
			order = append(order, id)
		}
		byGame[id] = append(byGame[id], r)
	}

	pairs := make([]teamRowPair, 0, len(order))
	for _, id := range order {
		group := byGame[id]
		if len(group) < 2 {
			continue
		}
		home, away := splitHomeAway(group)
		pairs = append(pairs, teamRowPair{gameID: id, home: home, away: away})
	}
	return pairs
}

// splitHomeAway uses the matchup marker: "BOS @ NYK" is the away row and
// "NYK vs. BOS" the home row. Without one of each, the first row is home.
func splitHomeAway(group []row) (home, away row) {
	for _, r := range group {
		if strings.Contains(r.String("MATCHUP"), "@") {
			away = r
		} else {
			home = r
		}
	}
	if home == nil || away == nil {
		return group[0], group[1]
	}
	return home, away
}
