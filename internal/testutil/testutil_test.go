package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domaingames "nba-scores-dashboard/internal/domain/games"
	"nba-scores-dashboard/internal/providers"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	if got := NoonUTC("2024-01-15")(); got != time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected noon clock %v", got)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid date")
		}
	}()
	NoonUTC("01/15/2024")
}

func TestFixturesHelper(t *testing.T) {
	g := SampleGame("id-1", "BOS", "NYK")
	if g.ID != "id-1" || g.Home.Team.DisplayName != "Boston Celtics" || g.Away.Team.Code != "NYK" {
		t.Fatalf("unexpected game fixture %+v", g)
	}
	final := SampleFinalGame("id-2", "BOS", "NYK")
	if !final.IsFinal() || final.Winner() != "home" || final.Home.Stats == nil {
		t.Fatalf("unexpected final fixture %+v", final)
	}
	scheduled := SampleScheduledGame("id-3", "BOS", "NYK")
	if !scheduled.IsScheduled || scheduled.Home.Score != 0 || scheduled.Home.Stats != nil {
		t.Fatalf("unexpected scheduled fixture %+v", scheduled)
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	AssertBodyContains(t, rr, `"ok"`)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestSnippetTruncatesLongBodies(t *testing.T) {
	if got := snippet(strings.Repeat("x", 600)); len(got) != 303 {
		t.Fatalf("expected truncated snippet, got %d chars", len(got))
	}
	if got := snippet("short"); got != "short" {
		t.Fatalf("expected short body unchanged, got %q", got)
	}
}

func TestServerStubs(t *testing.T) {
	sh := &StubHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	sh.HandlerVal = http.NewServeMux()
	_ = sh.ListenAndServe()
	_ = sh.Shutdown(context.Background())
	_ = sh.Handler()
	_ = sh.Addr()
	if sh.ListenCalls != 1 || sh.ShutdownCalls != 1 {
		t.Fatalf("expected listen/shutdown calls, got %+v", sh)
	}

	b := &BlockingHTTPServer{Unblock: make(chan struct{}), HandlerVal: http.NewServeMux()}
	if err := b.ListenAndServe(); err != nil {
		t.Fatalf("expected nil listen error for blocking server")
	}
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	_ = b.Handler()
	if b.Addr() != b.AddrVal {
		t.Fatalf("expected blocking server addr passthrough")
	}
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}
	if b.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown called once")
	}

	e := &ErrHTTPServer{}
	_ = e.ListenAndServe()
	_ = e.Shutdown(context.Background())
	_ = e.Handler()
	if e.Addr() == "" {
		t.Fatalf("expected addr from ErrHTTPServer")
	}
	if e.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown call for ErrHTTPServer")
	}

	c := &CloseableHTTPServer{}
	_ = c.ListenAndServe()
	_ = c.Shutdown(context.Background())
	_ = c.Handler()
	if c.Addr() == "" {
		t.Fatalf("expected addr from CloseableHTTPServer")
	}
	if c.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown call for CloseableHTTPServer")
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

func TestProviderHelpers(t *testing.T) {
	ctx := context.Background()
	g := []domaingames.Game{{ID: "g1"}}

	p := &StubProvider{Games: g}
	if got, _ := p.FetchGames(ctx, providers.ModeLive, "2024-01-15"); len(got) != 1 {
		t.Fatalf("expected games from StubProvider")
	}
	calls := p.Calls()
	if len(calls) != 1 || calls[0].Mode != providers.ModeLive || calls[0].Date != "2024-01-15" {
		t.Fatalf("unexpected calls %+v", calls)
	}

	errProv := &StubProvider{Err: errors.New("boom")}
	if _, err := errProv.FetchGames(ctx, providers.ModeFuture, ""); !errors.Is(err, errProv.Err) {
		t.Fatalf("expected error passthrough")
	}

	if _, err := (UnavailableProvider{}).FetchGames(ctx, providers.ModeLive, ""); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable")
	}
}

func TestNewServiceWithGames(t *testing.T) {
	svc, provider := NewServiceWithGames([]domaingames.Game{SampleGame("g1", "BOS", "NYK")})
	if svc.Today() != "2024-01-15" {
		t.Fatalf("expected fixed today, got %s", svc.Today())
	}
	if got := svc.FetchForDate(context.Background(), "2024-01-15"); len(got) != 1 {
		t.Fatalf("expected one game, got %d", len(got))
	}
	if len(provider.Calls()) != 1 {
		t.Fatalf("expected one provider call, got %d", len(provider.Calls()))
	}
}
