package render

import (
	"strconv"
	"strings"

	domaingames "nba-scores-dashboard/internal/domain/games"
	"nba-scores-dashboard/internal/timeutil"
)

// Placeholder is shown for any stat the upstream did not report.
const Placeholder = "-"

// Page is the dashboard view model.
type Page struct {
	Date      string
	LongDate  string
	ShortDate string
	Mode      string
	Dates     []Option
	Teams     []Option
	Filtering bool
	Selected  int
	Shown     int
	Total     int
	Cards     []Card
}

// Option is one entry of a select control.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Card renders one game.
type Card struct {
	ID          string
	Status      string
	StatusClass string
	Scheduled   bool
	Away        Side
	Home        Side
	BoxScore    []StatRow
}

// Side renders one team's half of a card.
type Side struct {
	Name       string
	Code       string
	Logo       string
	Score      string
	ScoreClass string
}

// StatRow is one line of the box score table.
type StatRow struct {
	Label string
	Away  string
	Home  string
}

// PageInput carries everything the page shows for one request.
type PageInput struct {
	Date          string
	Mode          string
	Dates         []string
	TeamNames     []string
	SelectedTeams []string
	Games         []domaingames.Game
	Total         int
}

// BuildPage turns fetched games and the current selection into the view model.
func BuildPage(in PageInput) Page {
	selected := make(map[string]bool, len(in.SelectedTeams))
	for _, name := range in.SelectedTeams {
		selected[name] = true
	}

	page := Page{
		Date:      in.Date,
		LongDate:  timeutil.LongDate(in.Date),
		ShortDate: shortDate(in.Date),
		Mode:      in.Mode,
		Filtering: len(in.SelectedTeams) > 0,
		Selected:  len(in.SelectedTeams),
		Shown:     len(in.Games),
		Total:     in.Total,
		Dates:     make([]Option, 0, len(in.Dates)),
		Teams:     make([]Option, 0, len(in.TeamNames)),
		Cards:     make([]Card, 0, len(in.Games)),
	}
	for _, d := range in.Dates {
		page.Dates = append(page.Dates, Option{Value: d, Label: shortDate(d), Selected: d == in.Date})
	}
	for _, name := range in.TeamNames {
		page.Teams = append(page.Teams, Option{Value: name, Label: name, Selected: selected[name]})
	}
	for _, g := range in.Games {
		page.Cards = append(page.Cards, buildCard(g))
	}
	return page
}

func buildCard(g domaingames.Game) Card {
	card := Card{
		ID:        g.ID,
		Status:    g.Status,
		Scheduled: g.IsScheduled,
		Away:      side(g.Away),
		Home:      side(g.Home),
	}
	if strings.EqualFold(g.Status, domaingames.StatusFinal) {
		card.StatusClass = "final"
	}
	switch g.Winner() {
	case "home":
		card.Home.ScoreClass, card.Away.ScoreClass = "winner", "loser"
	case "away":
		card.Away.ScoreClass, card.Home.ScoreClass = "winner", "loser"
	}
	if !g.IsScheduled {
		card.BoxScore = boxScore(g.Away.Stats, g.Home.Stats)
	}
	return card
}

func side(s domaingames.TeamSide) Side {
	return Side{
		Name:  s.Team.DisplayName,
		Code:  s.Team.Code,
		Logo:  s.Team.LogoURL,
		Score: strconv.Itoa(s.Score),
	}
}

func boxScore(away, home *domaingames.StatLine) []StatRow {
	var a, h domaingames.StatLine
	if away != nil {
		a = *away
	}
	if home != nil {
		h = *home
	}
	return []StatRow{
		{"FG", split(a.FieldGoalsMade, a.FieldGoalsAttempted), split(h.FieldGoalsMade, h.FieldGoalsAttempted)},
		{"3PT", split(a.ThreeMade, a.ThreeAttempted), split(h.ThreeMade, h.ThreeAttempted)},
		{"FT", split(a.FreeThrowsMade, a.FreeThrowsAttempted), split(h.FreeThrowsMade, h.FreeThrowsAttempted)},
		{"AST", single(a.Assists), single(h.Assists)},
		{"REB", single(a.Rebounds), single(h.Rebounds)},
		{"TO", single(a.Turnovers), single(h.Turnovers)},
	}
}

func split(made, attempted *int) string {
	if made == nil || attempted == nil {
		return Placeholder
	}
	return strconv.Itoa(*made) + "-" + strconv.Itoa(*attempted)
}

func single(v *int) string {
	if v == nil {
		return Placeholder
	}
	return strconv.Itoa(*v)
}

func shortDate(date string) string {
	day, err := timeutil.ParseDate(date)
	if err != nil {
		return date
	}
	return day.Format("January 02, 2006")
}
