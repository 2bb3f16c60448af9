package games

import (
	"context"
	"log/slog"
	"time"

	domaingames "nba-scores-dashboard/internal/domain/games"
	"nba-scores-dashboard/internal/logging"
	"nba-scores-dashboard/internal/metrics"
	"nba-scores-dashboard/internal/providers"
	"nba-scores-dashboard/internal/store"
	"nba-scores-dashboard/internal/timeutil"
)

const defaultWindowDays = 7

// Cache defines the date-keyed store that fronts the provider.
type Cache interface {
	Get(ctx context.Context, date string, load store.Loader) ([]domaingames.Game, bool)
	Invalidate()
	Len() int
}

// Config wires a Service.
type Config struct {
	Provider   providers.GameProvider
	Cache      Cache
	Location   *time.Location
	WindowDays int
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
	Now        func() time.Time
}

// Service routes a date to the matching fetch mode and caches the result per
// date. Fetch failures degrade to an empty list.
type Service struct {
	provider   providers.GameProvider
	cache      Cache
	loc        *time.Location
	windowDays int
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
	status     statusTracker
}

// NewService constructs a Service. A nil cache defaults to a one minute DayCache.
func NewService(cfg Config) *Service {
	cache := cfg.Cache
	if cache == nil {
		cache = store.NewDayCache(time.Minute)
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	window := cfg.WindowDays
	if window <= 0 {
		window = defaultWindowDays
	}
	return &Service{
		provider:   cfg.Provider,
		cache:      cache,
		loc:        loc,
		windowDays: window,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		now:        now,
	}
}

// Today returns the current calendar date in the display timezone.
func (s *Service) Today() string {
	return timeutil.Today(s.now(), s.loc)
}

// ModeFor reports which fetch mode serves date.
func (s *Service) ModeFor(date string) providers.Mode {
	return providers.ModeForDate(date, s.Today())
}

// AvailableDates lists the selectable dates around today, oldest first.
func (s *Service) AvailableDates() []string {
	return timeutil.DateRange(s.Today(), s.windowDays, s.windowDays)
}

// ResolveDate normalizes a requested date: empty or unparseable input means
// today, and dates outside the selectable window clamp to its nearest edge.
func (s *Service) ResolveDate(raw string) string {
	today := s.Today()
	day, err := timeutil.ParseDate(raw)
	if err != nil {
		return today
	}
	date := timeutil.FormatDate(day)
	dates := timeutil.DateRange(today, s.windowDays, s.windowDays)
	if first := dates[0]; date < first {
		return first
	}
	if last := dates[len(dates)-1]; date > last {
		return last
	}
	return date
}

// FetchForDate returns the games for date, served from cache while fresh.
// Concurrent callers for the same date share one upstream fetch.
func (s *Service) FetchForDate(ctx context.Context, date string) []domaingames.Game {
	games, hit := s.cache.Get(ctx, date, s.load)
	s.metrics.RecordCacheLookup(hit)
	return games
}

// GamesWithFilters fetches date and narrows it to games involving one of
// teamNames, returning the filtered games and the unfiltered total.
func (s *Service) GamesWithFilters(ctx context.Context, date string, teamNames []string) ([]domaingames.Game, int) {
	return Filter(s.FetchForDate(ctx, date), teamNames)
}

// InvalidateCache forces the next read of every date to refetch.
func (s *Service) InvalidateCache() {
	s.cache.Invalidate()
	logging.Info(s.logger, "game cache invalidated")
}

// CachedDays reports how many dates the cache holds.
func (s *Service) CachedDays() int {
	return s.cache.Len()
}

// Status returns a snapshot of recent fetch health.
func (s *Service) Status() Status {
	return s.status.snapshot()
}

func (s *Service) load(ctx context.Context, date string) []domaingames.Game {
	mode := s.ModeFor(date)
	logger := logging.FromContext(ctx, s.logger)
	start := s.now()

	if s.provider == nil {
		return s.degrade(logger, mode, date, providers.ErrProviderUnavailable, start)
	}
	games, err := s.provider.FetchGames(ctx, mode, date)
	if err != nil {
		return s.degrade(logger, mode, date, err, start)
	}

	s.status.recordSuccess(start)
	logging.Info(logger, "games fetched",
		logging.FieldDate, date,
		logging.FieldMode, string(mode),
		logging.FieldCount, len(games),
		logging.FieldDurationMS, s.now().Sub(start).Milliseconds(),
	)
	if games == nil {
		games = []domaingames.Game{}
	}
	return games
}

func (s *Service) degrade(logger *slog.Logger, mode providers.Mode, date string, err error, start time.Time) []domaingames.Game {
	s.status.recordFailure(err, start)
	s.metrics.RecordDegradedFetch(string(mode))
	logging.Warn(logger, "fetch failed; serving empty game list",
		logging.FieldDate, date,
		logging.FieldMode, string(mode),
		"error", err,
	)
	return []domaingames.Game{}
}
