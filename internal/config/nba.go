package config

// NBAConfig controls how we reach the NBA live CDN and stats API.
type NBAConfig struct {
	LiveBaseURL         string
	StatsBaseURL        string
	HTTPTimeout         Duration
	RequestSpacing      Duration
	RetryAttempts       int
	BoxScoreConcurrency int
}

func loadNBA() NBAConfig {
	return NBAConfig{
		LiveBaseURL:         envOrDefault(envLiveBaseURL, defaultLiveBaseURL),
		StatsBaseURL:        envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
		HTTPTimeout:         durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		// Zero disables request spacing.
		RequestSpacing:      durationEnvOrDefault(envRequestSpacing, 0),
		RetryAttempts:       intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		BoxScoreConcurrency: intEnvOrDefault(envBoxScoreConcurrency, defaultBoxScoreParallel),
	}
}
