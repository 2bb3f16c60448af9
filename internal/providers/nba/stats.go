package nba

import (
	"encoding/json"
	"math"

	domaingames "nba-scores-dashboard/internal/domain/games"
)

// liveStatistics is the nested "statistics" block on live scoreboard and
// box score team entries.
type liveStatistics struct {
	FieldGoalsMade         *float64 `json:"fieldGoalsMade"`
	FieldGoalsAttempted    *float64 `json:"fieldGoalsAttempted"`
	ThreePointersMade      *float64 `json:"threePointersMade"`
	ThreePointersAttempted *float64 `json:"threePointersAttempted"`
	FreeThrowsMade         *float64 `json:"freeThrowsMade"`
	FreeThrowsAttempted    *float64 `json:"freeThrowsAttempted"`
	Assists                *float64 `json:"assists"`
	ReboundsTotal          *float64 `json:"reboundsTotal"`
	Turnovers              *float64 `json:"turnovers"`
}

// statsFromLive normalizes a raw live statistics block. Absent, null or
// malformed input, or a block with none of the known fields, yields nil.
func statsFromLive(raw json.RawMessage) *domaingames.StatLine {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var s liveStatistics
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	line := domaingames.StatLine{
		FieldGoalsMade:      count(s.FieldGoalsMade),
		FieldGoalsAttempted: count(s.FieldGoalsAttempted),
		ThreeMade:           count(s.ThreePointersMade),
		ThreeAttempted:      count(s.ThreePointersAttempted),
		FreeThrowsMade:      count(s.FreeThrowsMade),
		FreeThrowsAttempted: count(s.FreeThrowsAttempted),
		Assists:             count(s.Assists),
		Rebounds:            count(s.ReboundsTotal),
		Turnovers:           count(s.Turnovers),
	}
	return nonEmpty(line)
}

// statsFromRow normalizes a flat box score row (boxscoretraditionalv2 TeamStats).
func statsFromRow(r row) *domaingames.StatLine {
	if r == nil {
		return nil
	}
	turnovers := rowCount(r, "TO")
	if turnovers == nil {
		turnovers = rowCount(r, "TOV")
	}
	line := domaingames.StatLine{
		FieldGoalsMade:      rowCount(r, "FGM"),
		FieldGoalsAttempted: rowCount(r, "FGA"),
		ThreeMade:           rowCount(r, "FG3M"),
		ThreeAttempted:      rowCount(r, "FG3A"),
		FreeThrowsMade:      rowCount(r, "FTM"),
		FreeThrowsAttempted: rowCount(r, "FTA"),
		Assists:             rowCount(r, "AST"),
		Rebounds:            rowCount(r, "REB"),
		Turnovers:           turnovers,
	}
	return nonEmpty(line)
}

func nonEmpty(line domaingames.StatLine) *domaingames.StatLine {
	if line.IsEmpty() {
		return nil
	}
	return &line
}

func count(v *float64) *int {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return nil
	}
	return domaingames.Int(int(*v))
}

func rowCount(r row, key string) *int {
	v, ok := r.Int(key)
	if !ok || v < 0 {
		return nil
	}
	return domaingames.Int(v)
}
