package handlers

import (
	"bytes"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"

	"nba-scores-dashboard/internal/app/games"
	"nba-scores-dashboard/internal/app/teams"
	domaingames "nba-scores-dashboard/internal/domain/games"
	domainteams "nba-scores-dashboard/internal/domain/teams"
	"nba-scores-dashboard/internal/logging"
	"nba-scores-dashboard/internal/render"
	"nba-scores-dashboard/internal/timeutil"
)

const (
	dateParam = "date"
	teamParam = "team"
	codeParam = "code"
)

// Handler wires HTTP routes to the games and teams services.
type Handler struct {
	games  *games.Service
	teams  *teams.Service
	pages  *render.Renderer
	logger *slog.Logger
}

// NewHandler constructs a Handler. A nil teams service uses the default directory.
func NewHandler(gamesSvc *games.Service, teamsSvc *teams.Service, pages *render.Renderer, logger *slog.Logger) *Handler {
	if teamsSvc == nil {
		teamsSvc = teams.NewService(nil)
	}
	return &Handler{
		games:  gamesSvc,
		teams:  teamsSvc,
		pages:  pages,
		logger: logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports 503 once upstream fetches keep failing.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	status := h.games.Status()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]any{"status": "ready", "cachedDays": h.games.CachedDays()}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Dashboard renders the scores page for the requested date and team filter.
func (h *Handler) Dashboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.pages == nil {
		writeError(w, r, nethttp.StatusInternalServerError, "dashboard unavailable", h.logger)
		return
	}
	query := r.URL.Query()
	date := h.games.ResolveDate(query.Get(dateParam))
	selected := h.teams.KnownNames(query[teamParam])
	shown, total := h.games.GamesWithFilters(r.Context(), date, selected)

	page := render.BuildPage(render.PageInput{
		Date:          date,
		Mode:          string(h.games.ModeFor(date)),
		Dates:         h.games.AvailableDates(),
		TeamNames:     h.teams.Names(),
		SelectedTeams: selected,
		Games:         shown,
		Total:         total,
	})

	var buf bytes.Buffer
	if err := h.pages.Dashboard(&buf, page); err != nil {
		logging.Error(loggerFromContext(r, h.logger), "failed to render dashboard", err, logging.FieldDate, date)
		writeError(w, r, nethttp.StatusInternalServerError, "render failed", h.logger)
		return
	}
	writeHTML(w, nethttp.StatusOK, buf.Bytes(), h.logger)
}

// Refresh drops every cached day and redirects back to the same view.
func (h *Handler) Refresh(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid form", h.logger)
		return
	}
	h.games.InvalidateCache()

	target := "/"
	if q := viewQuery(r.Form.Get(dateParam), h.teams.KnownNames(r.Form[teamParam])); q != "" {
		target += "?" + q
	}
	nethttp.Redirect(w, r, target, nethttp.StatusSeeOther)
}

// APIGames returns the games for the requested date as JSON, filtered by
// repeated team params. Unlike the dashboard, any valid date is served as is.
func (h *Handler) APIGames(w nethttp.ResponseWriter, r *nethttp.Request) {
	query := r.URL.Query()
	date := h.games.Today()
	if raw := query.Get(dateParam); raw != "" {
		day, err := timeutil.ParseDate(raw)
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
		date = timeutil.FormatDate(day)
	}
	shown, total := h.games.GamesWithFilters(r.Context(), date, h.teams.KnownNames(query[teamParam]))

	payload := domaingames.NewDayResponse(date, string(h.games.ModeFor(date)), total, shown)
	logging.Info(loggerFromContext(r, h.logger), "served games",
		logging.FieldDate, date,
		logging.FieldMode, payload.Mode,
		logging.FieldCount, len(shown),
		"total", total,
	)
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

// APITeams lists the team directory, or a single team when code is given.
func (h *Handler) APITeams(w nethttp.ResponseWriter, r *nethttp.Request) {
	code := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get(codeParam)))
	if code == "" {
		writeJSON(w, nethttp.StatusOK, map[string][]domainteams.Identity{"teams": h.teams.Teams()}, h.logger)
		return
	}
	team, ok := h.teams.TeamByCode(code)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]domainteams.Identity{"team": team}, h.logger)
}

// APIRefresh invalidates the game cache.
func (h *Handler) APIRefresh(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.games.InvalidateCache()
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "refreshed"}, h.logger)
}

func viewQuery(date string, teamNames []string) string {
	values := url.Values{}
	if date != "" {
		values.Set(dateParam, date)
	}
	for _, name := range teamNames {
		values.Add(teamParam, name)
	}
	return values.Encode()
}
