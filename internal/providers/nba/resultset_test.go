package nba

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func decodeStats(t *testing.T, body string) statsResponse {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var payload statsResponse
	if err := dec.Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return payload
}

func TestResultSetLookupByName(t *testing.T) {
	payload := decodeStats(t, `{"resultSets": [
		{"name": "GameHeader", "headers": ["GAME_ID"], "rowSet": [["001"]]},
		{"name": "LineScore", "headers": ["GAME_ID", "TEAM_ID"], "rowSet": [["001", 1610612738], ["001"]]}
	]}`)

	set, ok := payload.set("linescore")
	if !ok {
		t.Fatal("expected LineScore set")
	}
	rows := set.rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].String("TEAM_ID") != "1610612738" {
		t.Fatalf("expected literal team id, got %q", rows[0].String("TEAM_ID"))
	}
	if _, present := rows[1]["TEAM_ID"]; present {
		t.Fatal("short row should leave trailing column absent")
	}

	first, ok := payload.set("")
	if !ok || first.Name != "GameHeader" {
		t.Fatalf("expected first set, got %+v", first)
	}
	if _, ok := payload.set("TeamStats"); ok {
		t.Fatal("unexpected TeamStats set")
	}
}

func TestResultSetSingularEnvelope(t *testing.T) {
	payload := decodeStats(t, `{"resultSet": {"name": "LeagueGameFinderResults", "headers": ["GAME_ID"], "rowSet": [["002"]]}}`)
	set, ok := payload.set("")
	if !ok || len(set.rows()) != 1 {
		t.Fatalf("expected singular result set, got %+v", set)
	}
}

func TestRowInt(t *testing.T) {
	r := row{
		"num":    json.Number("12"),
		"float":  json.Number("12.9"),
		"plain":  7.0,
		"string": " 15 ",
		"bad":    "abc",
		"nan":    math.NaN(),
		"inf":    math.Inf(1),
		"nil":    nil,
	}
	cases := []struct {
		key  string
		want int
		ok   bool
	}{
		{"num", 12, true},
		{"float", 12, true},
		{"plain", 7, true},
		{"string", 15, true},
		{"bad", 0, false},
		{"nan", 0, false},
		{"inf", 0, false},
		{"nil", 0, false},
		{"missing", 0, false},
	}
	for _, tc := range cases {
		got, ok := r.Int(tc.key)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Int(%q) = (%d, %v), want (%d, %v)", tc.key, got, ok, tc.want, tc.ok)
		}
	}
	if r.IntOr("bad", 3) != 3 {
		t.Fatal("expected fallback for bad value")
	}
}
