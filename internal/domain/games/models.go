package games

import "nba-scores-dashboard/internal/domain/teams"

// StatusFinal is the display status of a completed game.
const StatusFinal = "Final"

// StatLine is a team's box score. A nil *StatLine means the stats are absent,
// which is distinct from a line of zeros. Individual fields may also be nil when
// the upstream row omitted them.
type StatLine struct {
	FieldGoalsMade      *int `json:"fieldGoalsMade,omitempty"`
	FieldGoalsAttempted *int `json:"fieldGoalsAttempted,omitempty"`
	ThreeMade           *int `json:"threeMade,omitempty"`
	ThreeAttempted      *int `json:"threeAttempted,omitempty"`
	FreeThrowsMade      *int `json:"freeThrowsMade,omitempty"`
	FreeThrowsAttempted *int `json:"freeThrowsAttempted,omitempty"`
	Assists             *int `json:"assists,omitempty"`
	Rebounds            *int `json:"rebounds,omitempty"`
	Turnovers           *int `json:"turnovers,omitempty"`
}

// IsEmpty reports whether no field carries a value.
func (s StatLine) IsEmpty() bool {
	for _, v := range s.fields() {
		if v != nil {
			return false
		}
	}
	return true
}

func (s StatLine) fields() []*int {
	return []*int{
		s.FieldGoalsMade, s.FieldGoalsAttempted,
		s.ThreeMade, s.ThreeAttempted,
		s.FreeThrowsMade, s.FreeThrowsAttempted,
		s.Assists, s.Rebounds, s.Turnovers,
	}
}

// TeamSide is one team's half of a game.
type TeamSide struct {
	Team  teams.Identity `json:"team"`
	Score int            `json:"score"`
	Stats *StatLine      `json:"stats,omitempty"`
}

// Game is the canonical record rendered by the dashboard.
type Game struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Status      string   `json:"status"`
	IsScheduled bool     `json:"isScheduled"`
	Home        TeamSide `json:"home"`
	Away        TeamSide `json:"away"`
}

// Sealed returns the game with the scheduled-game invariant applied: a game that
// has not started carries zero scores and no stats.
func (g Game) Sealed() Game {
	if g.IsScheduled {
		g.Home.Score, g.Away.Score = 0, 0
		g.Home.Stats, g.Away.Stats = nil, nil
	}
	return g
}

// IsFinal reports whether the game has completed.
func (g Game) IsFinal() bool {
	return g.Status == StatusFinal
}

// Winner returns "home" or "away" for a completed game with a leader, or "".
func (g Game) Winner() string {
	if !g.IsFinal() || g.Home.Score == g.Away.Score {
		return ""
	}
	if g.Home.Score > g.Away.Score {
		return "home"
	}
	return "away"
}

// FallbackID synthesizes an id for games the upstream did not identify.
func FallbackID(date, homeCode, awayCode string) string {
	return date + "-" + homeCode + "-" + awayCode
}

// Int returns a pointer to v, for building stat lines.
func Int(v int) *int {
	return &v
}

// DayResponse is the payload returned by /api/games.
type DayResponse struct {
	Date  string `json:"date"`
	Mode  string `json:"mode"`
	Total int    `json:"total"`
	Games []Game `json:"games"`
}

// NewDayResponse builds a DayResponse payload.
func NewDayResponse(date, mode string, total int, games []Game) DayResponse {
	if games == nil {
		games = []Game{}
	}
	return DayResponse{
		Date:  date,
		Mode:  mode,
		Total: total,
		Games: games,
	}
}
