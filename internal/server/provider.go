package server

import (
	"fmt"
	"log/slog"
	"strings"

	"nba-scores-dashboard/internal/config"
	"nba-scores-dashboard/internal/logging"
	"nba-scores-dashboard/internal/metrics"
	"nba-scores-dashboard/internal/providers"
	"nba-scores-dashboard/internal/providers/fixture"
	"nba-scores-dashboard/internal/providers/nba"
)

const (
	providerNBA     = "nba"
	providerFixture = "fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.GameProvider {
	switch strings.ToLower(cfg.Provider) {
	case providerNBA, "":
		return newNBAClient(cfg, logger, recorder)
	case providerFixture:
		return fixture.New()
	default:
		logging.Warn(logger, "unknown provider, falling back to nba", slog.String(logging.FieldProvider, cfg.Provider))
		return newNBAClient(cfg, logger, recorder)
	}
}

func newNBAClient(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *nba.Client {
	return nba.NewClient(nba.Config{
		LiveBaseURL:         cfg.NBA.LiveBaseURL,
		StatsBaseURL:        cfg.NBA.StatsBaseURL,
		HTTPTimeout:         cfg.NBA.HTTPTimeout,
		Timezone:            cfg.Timezone,
		TimezoneLabel:       cfg.TimezoneLabel,
		RequestSpacing:      cfg.NBA.RequestSpacing,
		BoxScoreConcurrency: cfg.NBA.BoxScoreConcurrency,
		Logger:              logger,
		Metrics:             recorder,
	})
}

// normalizeProviderName returns a lower-cased provider name, deriving from instance when not explicitly configured.
func normalizeProviderName(raw string, provider providers.GameProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
