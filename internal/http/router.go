package http

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"nba-scores-dashboard/internal/http/handlers"
	"nba-scores-dashboard/internal/http/middleware"
	"nba-scores-dashboard/internal/metrics"
	"nba-scores-dashboard/internal/render"
)

const requestTimeout = 30 * time.Second

// NewRouter registers the dashboard, JSON API and probe routes.
func NewRouter(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(logger, recorder))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(requestTimeout))

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Get("/", handler.Dashboard)
	r.Post("/refresh", handler.Refresh)
	r.Handle("/static/*", nethttp.StripPrefix("/static/", nethttp.FileServer(nethttp.FS(render.Static()))))

	r.Route("/api", func(r chi.Router) {
		r.Get("/games", handler.APIGames)
		r.Get("/teams", handler.APITeams)
		r.Post("/refresh", handler.APIRefresh)
	})
	return r
}
