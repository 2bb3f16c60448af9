package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"nba-scores-dashboard/internal/render"
	"nba-scores-dashboard/internal/testutil"
)

func BenchmarkDashboard(b *testing.B) {
	svc, _ := testutil.NewServiceWithGames(sampleDay())
	pages, err := render.New()
	if err != nil {
		b.Fatalf("parse templates: %v", err)
	}
	h := NewHandler(svc, nil, pages, nil)
	req := httptest.NewRequest(http.MethodGet, "/?team=Boston+Celtics", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		h.Dashboard(rr, req)
	}
}

func BenchmarkAPIGames(b *testing.B) {
	svc, _ := testutil.NewServiceWithGames(sampleDay())
	h := NewHandler(svc, nil, nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/games?date=2024-01-14", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		h.APIGames(rr, req)
	}
}
