package config

import "time"

const (
	envPort                 = "PORT"
	envProvider             = "PROVIDER"
	envLogLevel             = "LOG_LEVEL"
	envLogFormat            = "LOG_FORMAT"
	envTimezone             = "DISPLAY_TIMEZONE"
	envTimezoneLabel        = "DISPLAY_TIMEZONE_LABEL"
	envCacheTTL             = "CACHE_TTL"
	envDateWindowDays       = "DATE_WINDOW_DAYS"
	envLiveBaseURL          = "NBA_LIVE_BASE_URL"
	envStatsBaseURL         = "NBA_STATS_BASE_URL"
	envHTTPTimeout          = "NBA_HTTP_TIMEOUT"
	envRequestSpacing       = "NBA_REQUEST_SPACING"
	envRetryAttempts        = "NBA_RETRY_ATTEMPTS"
	envBoxScoreConcurrency  = "NBA_BOXSCORE_CONCURRENCY"
	envMetricsPort          = "METRICS_PORT"
	envMetricsOn            = "METRICS_ENABLED"
	envOtelEndpoint         = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService          = "OTEL_SERVICE_NAME"
	envOtelInsecure         = "OTEL_EXPORTER_OTLP_INSECURE"
	defaultPort             = "4000"
	defaultProvider         = "nba"
	defaultTimezone         = "America/Chicago"
	defaultTimezoneLabel    = "CT"
	defaultCacheTTL         = 60 * Duration(time.Second)
	defaultDateWindowDays   = 7
	defaultLiveBaseURL      = "https://cdn.nba.com/static/json/liveData"
	defaultStatsBaseURL     = "https://stats.nba.com/stats"
	defaultHTTPTimeout      = 10 * Duration(time.Second)
	defaultRetryAttempts    = 2
	defaultBoxScoreParallel = 4
	defaultMetricsPort      = "9090"
	defaultServiceName      = "nba-scores-dashboard"
)
