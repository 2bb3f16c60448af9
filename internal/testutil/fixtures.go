package testutil

import (
	domaingames "nba-scores-dashboard/internal/domain/games"
	"nba-scores-dashboard/internal/domain/teams"
)

var directory = teams.Default()

// SampleGame returns an in-progress game between two teams from the built-in
// table, for example SampleGame("g1", "BOS", "NYK").
func SampleGame(id, homeCode, awayCode string) domaingames.Game {
	return domaingames.Game{
		ID:     id,
		Date:   "2024-01-15",
		Status: "Q3 4:12",
		Home:   domaingames.TeamSide{Team: directory.Resolve(homeCode), Score: 80},
		Away:   domaingames.TeamSide{Team: directory.Resolve(awayCode), Score: 78},
	}
}

// SampleFinalGame returns a completed game with box scores on both sides.
func SampleFinalGame(id, homeCode, awayCode string) domaingames.Game {
	g := SampleGame(id, homeCode, awayCode)
	g.Status = domaingames.StatusFinal
	g.Home.Score, g.Away.Score = 112, 104
	g.Home.Stats = SampleStatLine(42)
	g.Away.Stats = SampleStatLine(39)
	return g
}

// SampleScheduledGame returns a game that has not started.
func SampleScheduledGame(id, homeCode, awayCode string) domaingames.Game {
	g := SampleGame(id, homeCode, awayCode)
	g.Status = "7:00 PM CT"
	g.IsScheduled = true
	return g.Sealed()
}

// SampleStatLine returns a full stat line seeded by field goals made.
func SampleStatLine(fgm int) *domaingames.StatLine {
	return &domaingames.StatLine{
		FieldGoalsMade:      domaingames.Int(fgm),
		FieldGoalsAttempted: domaingames.Int(fgm * 2),
		ThreeMade:           domaingames.Int(12),
		ThreeAttempted:      domaingames.Int(34),
		FreeThrowsMade:      domaingames.Int(16),
		FreeThrowsAttempted: domaingames.Int(20),
		Assists:             domaingames.Int(25),
		Rebounds:            domaingames.Int(44),
		Turnovers:           domaingames.Int(12),
	}
}
