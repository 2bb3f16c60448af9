package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the dashboard.
type Config struct {
	Port           string
	Provider       string
	LogLevel       string
	LogFormat      string
	Timezone       string
	TimezoneLabel  string
	CacheTTL       Duration
	DateWindowDays int
	NBA            NBAConfig
	Metrics        MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first when present; variables
// already set in the environment win.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads configuration from the current environment only.
func FromEnv() Config {
	return Config{
		Port:           envOrDefault(envPort, defaultPort),
		Provider:       envOrDefault(envProvider, defaultProvider),
		LogLevel:       envOrDefault(envLogLevel, "info"),
		LogFormat:      envOrDefault(envLogFormat, "text"),
		Timezone:       envOrDefault(envTimezone, defaultTimezone),
		TimezoneLabel:  envOrDefault(envTimezoneLabel, defaultTimezoneLabel),
		CacheTTL:       durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		DateWindowDays: intEnvOrDefault(envDateWindowDays, defaultDateWindowDays),
		NBA:            loadNBA(),
		Metrics:        loadMetrics(),
	}
}
