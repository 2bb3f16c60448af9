package nba

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	domaingames "nba-scores-dashboard/internal/domain/games"
)

func (c *Client) fetchFuture(ctx context.Context, date string) ([]domaingames.Game, error) {
	q := url.Values{}
	q.Set("GameDate", date)
	q.Set("LeagueID", leagueID)
	q.Set("DayOffset", "0")

	payload, err := c.getStats(ctx, endpointSchedule, "/scoreboardv2", q)
	if err != nil {
		return nil, err
	}
	header, ok := payload.set("GameHeader")
	if !ok {
		return nil, fmt.Errorf("%s: missing GameHeader result set", endpointSchedule)
	}
	abbreviations := lineScoreAbbreviations(payload)

	rows := header.rows()
	games := make([]domaingames.Game, 0, len(rows))
	for _, r := range rows {
		games = append(games, c.assembleFuture(date, r, abbreviations))
	}
	return games, nil
}

func (c *Client) assembleFuture(date string, r row, abbreviations map[string]string) domaingames.Game {
	gameID := strings.TrimSpace(r.String("GAME_ID"))
	codeAway, codeHome := splitGameCode(r.String("GAMECODE"))

	homeCode, ok := abbreviations[lineScoreKey(gameID, r.String("HOME_TEAM_ID"))]
	if !ok {
		homeCode = codeHome
	}
	awayCode, ok := abbreviations[lineScoreKey(gameID, r.String("VISITOR_TEAM_ID"))]
	if !ok {
		awayCode = codeAway
	}

	if gameID == "" {
		gameID = domaingames.FallbackID(date, homeCode, awayCode)
	}

	game := domaingames.Game{
		ID:          gameID,
		Date:        date,
		Status:      textOr(r.String("GAME_STATUS_TEXT"), statusScheduledText),
		IsScheduled: true,
		Home:        domaingames.TeamSide{Team: c.teams.Resolve(homeCode)},
		Away:        domaingames.TeamSide{Team: c.teams.Resolve(awayCode)},
	}
	return game.Sealed()
}

// lineScoreAbbreviations maps game and team ids to the team abbreviation from
// the optional LineScore result set.
func lineScoreAbbreviations(payload statsResponse) map[string]string {
	out := make(map[string]string)
	set, ok := payload.set("LineScore")
	if !ok {
		return out
	}
	for _, r := range set.rows() {
		abbr := strings.TrimSpace(r.String("TEAM_ABBREVIATION"))
		teamID := r.String("TEAM_ID")
		if abbr == "" || teamID == "" {
			continue
		}
		out[lineScoreKey(strings.TrimSpace(r.String("GAME_ID")), teamID)] = abbr
	}
	return out
}

func lineScoreKey(gameID, teamID string) string {
	return gameID + "|" + teamID
}

// splitGameCode parses a GAMECODE like "20240115/BOSNYK", whose trailing six
// characters are the away then home tricodes.
func splitGameCode(code string) (away, home string) {
	code = strings.TrimSpace(code)
	if len(code) < 6 {
		return "", ""
	}
	tail := code[len(code)-6:]
	return tail[:3], tail[3:]
}
