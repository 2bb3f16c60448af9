package nba

import (
	"context"
	"fmt"
	"net/url"

	"golang.org/x/sync/errgroup"

	domaingames "nba-scores-dashboard/internal/domain/games"
)

// fanOut runs fn for indexes [0, n) with bounded concurrency. fn owns its own
// failure handling; each call should write only to its own index.
func (c *Client) fanOut(ctx context.Context, n int, fn func(ctx context.Context, i int)) {
	if n == 0 {
		return
	}
	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			fn(ctx, i)
			return nil
		})
	}
	_ = g.Wait()
}

// fetchLiveBoxScore returns the home and away stat lines from the live CDN.
func (c *Client) fetchLiveBoxScore(ctx context.Context, gameID string) (home, away *domaingames.StatLine, err error) {
	var payload liveBoxScoreResponse
	path := fmt.Sprintf("%s/boxscore/boxscore_%s.json", c.liveBaseURL, url.PathEscape(gameID))
	if err := c.getJSON(ctx, endpointLiveBoxScore, path, nil, &payload); err != nil {
		return nil, nil, err
	}
	return statsFromLive(payload.Game.HomeTeam.Statistics), statsFromLive(payload.Game.AwayTeam.Statistics), nil
}

// fetchTeamBoxScore returns per-team stat lines keyed by TEAM_ID.
func (c *Client) fetchTeamBoxScore(ctx context.Context, gameID string) (map[string]*domaingames.StatLine, error) {
	q := url.Values{}
	q.Set("GameID", gameID)
	q.Set("StartPeriod", "0")
	q.Set("EndPeriod", "10")
	q.Set("StartRange", "0")
	q.Set("EndRange", "28800")
	q.Set("RangeType", "0")

	payload, err := c.getStats(ctx, endpointStatsBoxScore, "/boxscoretraditionalv2", q)
	if err != nil {
		return nil, err
	}
	set, ok := payload.set("TeamStats")
	if !ok {
		return nil, fmt.Errorf("%s: missing TeamStats result set", endpointStatsBoxScore)
	}

	out := make(map[string]*domaingames.StatLine, len(set.RowSet))
	for _, r := range set.rows() {
		teamID := r.String("TEAM_ID")
		if teamID == "" {
			continue
		}
		if line := statsFromRow(r); line != nil {
			out[teamID] = line
		}
	}
	return out, nil
}
