package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != "nba" {
		t.Fatalf("expected nba provider by default, got %s", cfg.Provider)
	}
	if cfg.Timezone != "America/Chicago" || cfg.TimezoneLabel != "CT" {
		t.Fatalf("unexpected timezone defaults %s/%s", cfg.Timezone, cfg.TimezoneLabel)
	}
	if cfg.CacheTTL != time.Minute {
		t.Fatalf("expected 60s cache ttl, got %s", cfg.CacheTTL)
	}
	if cfg.DateWindowDays != 7 {
		t.Fatalf("expected 7 day window, got %d", cfg.DateWindowDays)
	}
	if cfg.NBA.LiveBaseURL != defaultLiveBaseURL || cfg.NBA.StatsBaseURL != defaultStatsBaseURL {
		t.Fatalf("unexpected nba urls %+v", cfg.NBA)
	}
	if cfg.NBA.RequestSpacing != 0 {
		t.Fatalf("expected request spacing disabled by default, got %s", cfg.NBA.RequestSpacing)
	}
	if cfg.NBA.RetryAttempts != defaultRetryAttempts || cfg.NBA.BoxScoreConcurrency != defaultBoxScoreParallel {
		t.Fatalf("unexpected nba tuning %+v", cfg.NBA)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envTimezone, "America/New_York")
	t.Setenv(envTimezoneLabel, "ET")
	t.Setenv(envCacheTTL, "30s")
	t.Setenv(envStatsBaseURL, "http://stats.local")
	t.Setenv(envRequestSpacing, "250ms")
	t.Setenv(envMetricsOn, "false")

	cfg := FromEnv()
	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected fixture provider, got %s", cfg.Provider)
	}
	if cfg.Timezone != "America/New_York" || cfg.TimezoneLabel != "ET" {
		t.Fatalf("expected timezone override, got %s/%s", cfg.Timezone, cfg.TimezoneLabel)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Fatalf("expected 30s ttl, got %s", cfg.CacheTTL)
	}
	if cfg.NBA.StatsBaseURL != "http://stats.local" {
		t.Fatalf("expected stats url override, got %s", cfg.NBA.StatsBaseURL)
	}
	if cfg.NBA.RequestSpacing != 250*time.Millisecond {
		t.Fatalf("expected spacing override, got %s", cfg.NBA.RequestSpacing)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled")
	}
}

func TestFromEnvInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envCacheTTL, "not-a-duration")
	if cfg := FromEnv(); cfg.CacheTTL != defaultCacheTTL {
		t.Fatalf("expected default ttl on invalid value, got %s", cfg.CacheTTL)
	}
	t.Setenv(envCacheTTL, "0s")
	if cfg := FromEnv(); cfg.CacheTTL != defaultCacheTTL {
		t.Fatalf("expected default ttl on non-positive value, got %s", cfg.CacheTTL)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	t.Setenv(envTimezoneLabel, "")
	if err := os.Unsetenv(envTimezoneLabel); err != nil {
		t.Fatalf("unsetenv: %v", err)
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DISPLAY_TIMEZONE_LABEL=PT\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		_ = os.Unsetenv(envTimezoneLabel)
	})

	if cfg := Load(); cfg.TimezoneLabel != "PT" {
		t.Fatalf("expected .env value, got %s", cfg.TimezoneLabel)
	}
}
