package nba

import (
	"bytes"
	"encoding/json"
)

type liveScoreboardResponse struct {
	Scoreboard struct {
		GameDate string     `json:"gameDate"`
		Games    []liveGame `json:"games"`
	} `json:"scoreboard"`
}

type liveGame struct {
	GameID         string   `json:"gameId"`
	GameStatus     looseInt `json:"gameStatus"`
	GameStatusText string   `json:"gameStatusText"`
	Period         looseInt `json:"period"`
	GameClock      string   `json:"gameClock"`
	GameTimeUTC    string   `json:"gameTimeUTC"`
	HomeTeam       liveTeam `json:"homeTeam"`
	AwayTeam       liveTeam `json:"awayTeam"`
}

type liveTeam struct {
	TeamID      looseInt        `json:"teamId"`
	TeamTricode string          `json:"teamTricode"`
	Score       looseInt        `json:"score"`
	Statistics  json.RawMessage `json:"statistics"`
}

type liveBoxScoreResponse struct {
	Game struct {
		GameID   string   `json:"gameId"`
		HomeTeam liveTeam `json:"homeTeam"`
		AwayTeam liveTeam `json:"awayTeam"`
	} `json:"game"`
}

// looseInt decodes a JSON number or numeric string. Null, missing and
// mismatched values read as absent instead of failing the whole payload.
type looseInt struct {
	value int
	ok    bool
}

func (l *looseInt) UnmarshalJSON(data []byte) error {
	*l = looseInt{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil
	}
	l.value, l.ok = row{"v": raw}.Int("v")
	return nil
}

func (l looseInt) or(fallback int) int {
	if l.ok {
		return l.value
	}
	return fallback
}
