package render

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	domaingames "nba-scores-dashboard/internal/domain/games"
	"nba-scores-dashboard/internal/domain/teams"
)

func sampleInput() PageInput {
	dir := teams.Default()
	final := domaingames.Game{
		ID:     "0022300500",
		Date:   "2024-01-15",
		Status: "Final",
		Home: domaingames.TeamSide{Team: dir.Resolve("NYK"), Score: 105, Stats: &domaingames.StatLine{
			FieldGoalsMade: domaingames.Int(38), FieldGoalsAttempted: domaingames.Int(85), Assists: domaingames.Int(22),
		}},
		Away: domaingames.TeamSide{Team: dir.Resolve("BOS"), Score: 110},
	}
	scheduled := domaingames.Game{
		ID: "0022300501", Date: "2024-01-15", Status: "7:00 PM CT", IsScheduled: true,
		Home: domaingames.TeamSide{Team: dir.Resolve("ZZZ")},
		Away: domaingames.TeamSide{Team: dir.Resolve("MIA")},
	}
	return PageInput{
		Date:          "2024-01-15",
		Mode:          "live",
		Dates:         []string{"2024-01-14", "2024-01-15", "2024-01-16"},
		TeamNames:     dir.Names(),
		SelectedTeams: []string{"Boston Celtics", "Miami Heat"},
		Games:         []domaingames.Game{final, scheduled},
		Total:         5,
	}
}

func TestBuildPage(t *testing.T) {
	page := BuildPage(sampleInput())

	if page.LongDate != "Monday, January 15, 2024" || page.ShortDate != "January 15, 2024" {
		t.Fatalf("unexpected dates: %q %q", page.LongDate, page.ShortDate)
	}
	if !page.Filtering || page.Selected != 2 || page.Shown != 2 || page.Total != 5 {
		t.Fatalf("unexpected filter summary: %+v", page)
	}
	if !page.Dates[1].Selected || page.Dates[0].Selected {
		t.Fatalf("expected current date selected: %+v", page.Dates)
	}

	final := page.Cards[0]
	if final.StatusClass != "final" || final.Away.ScoreClass != "winner" || final.Home.ScoreClass != "loser" {
		t.Fatalf("unexpected winner highlight: %+v", final)
	}
	fg := final.BoxScore[0]
	if fg.Label != "FG" || fg.Home != "38-85" || fg.Away != Placeholder {
		t.Fatalf("expected placeholder for absent stats, got %+v", fg)
	}
	if ast := final.BoxScore[3]; ast.Home != "22" || ast.Away != Placeholder {
		t.Fatalf("unexpected assists row %+v", ast)
	}
	if reb := final.BoxScore[4]; reb.Home != Placeholder {
		t.Fatalf("absent field must use placeholder, got %+v", reb)
	}

	scheduled := page.Cards[1]
	if scheduled.BoxScore != nil || scheduled.StatusClass != "" || scheduled.Home.ScoreClass != "" {
		t.Fatalf("scheduled card should have no box score or highlight: %+v", scheduled)
	}
	if scheduled.Home.Name != "ZZZ" || scheduled.Home.Logo != "" {
		t.Fatalf("unexpected synthesized side: %+v", scheduled.Home)
	}
}

func TestBuildPageWithoutFilter(t *testing.T) {
	in := sampleInput()
	in.SelectedTeams = nil
	page := BuildPage(in)
	if page.Filtering || page.Selected != 0 {
		t.Fatalf("expected no filtering: %+v", page)
	}
	for _, opt := range page.Teams {
		if opt.Selected {
			t.Fatalf("unexpected selected team %+v", opt)
		}
	}
}

func TestDashboardRendersCardsAndSummary(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	var buf bytes.Buffer
	if err := r.Dashboard(&buf, BuildPage(sampleInput())); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := buf.String()
	for _, want := range []string{
		"Monday, January 15, 2024",
		"Showing 2 of 5 games",
		`id="game-0022300500"`,
		`class="game-status final"`,
		`class="team-score winner">110`,
		"<td>FG</td><td>-</td><td>38-85</td>",
		"7:00 PM CT",
		`<option value="Boston Celtics" selected>`,
		`<input type="hidden" name="team" value="Miami Heat">`,
		"<strong>Teams:</strong> 2 selected",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in rendered page", want)
		}
	}
	if strings.Contains(html, "No games scheduled") {
		t.Fatal("unexpected empty-state message")
	}
}

func TestDashboardRendersEmptyState(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	var buf bytes.Buffer
	page := BuildPage(PageInput{Date: "2024-01-16", Dates: []string{"2024-01-16"}})
	if err := r.Dashboard(&buf, page); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "No games scheduled for this date") || !strings.Contains(html, "<strong>Teams:</strong> All") {
		t.Fatalf("expected empty state, got %s", html)
	}
	if strings.Contains(html, "Showing") {
		t.Fatal("summary only shows while filtering")
	}
}

func TestStaticServesStylesheet(t *testing.T) {
	data, err := fs.ReadFile(Static(), "dashboard.css")
	if err != nil || !bytes.Contains(data, []byte(".scorecard")) {
		t.Fatalf("expected embedded stylesheet, err=%v", err)
	}
}
