package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"nba-scores-dashboard/internal/config"
	"nba-scores-dashboard/internal/logging"
	"nba-scores-dashboard/internal/server"
)

const appVersion = "dev"

func main() {
	cfg := config.Load()
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.Metrics.ServiceName,
		Version: appVersion,
	})
	logger.Info("configuration loaded",
		logging.FieldProvider, cfg.Provider,
		"timezone", cfg.Timezone,
		"cache_ttl", cfg.CacheTTL.String(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
