package server

import (
	"log/slog"

	"nba-scores-dashboard/internal/config"
	"nba-scores-dashboard/internal/metrics"
	"nba-scores-dashboard/internal/providers"
)

// providerFactory assembles the provider with the shared retry wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.GameProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger, f.metrics))
}

// wrap adds retries; request spacing lives in the NBA client's transport.
func (f providerFactory) wrap(cfg config.Config, base providers.GameProvider) providers.GameProvider {
	name := normalizeProviderName(cfg.Provider, base)
	return providers.NewRetryingProvider(base, f.logger, f.metrics, name, cfg.NBA.RetryAttempts, 0)
}
