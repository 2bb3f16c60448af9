package nba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domaingames "nba-scores-dashboard/internal/domain/games"
	"nba-scores-dashboard/internal/domain/teams"
	"nba-scores-dashboard/internal/logging"
	"nba-scores-dashboard/internal/metrics"
	"nba-scores-dashboard/internal/providers"
)

// Config controls how the client reaches the NBA live CDN and stats.nba.com.
type Config struct {
	LiveBaseURL         string
	StatsBaseURL        string
	HTTPClient          *http.Client
	HTTPTimeout         time.Duration
	Timezone            string
	TimezoneLabel       string
	RequestSpacing      time.Duration
	BoxScoreConcurrency int
	Teams               *teams.Directory
	Logger              *slog.Logger
	Metrics             *metrics.Recorder
}

// Client fetches one date's games from the upstream endpoint that serves the
// requested mode and assembles them into canonical records.
type Client struct {
	liveBaseURL  string
	statsBaseURL string
	httpClient   httpDoer
	status       StatusFormatter
	teams        *teams.Directory
	concurrency  int
	logger       *slog.Logger
	metrics      *metrics.Recorder
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	directory := cfg.Teams
	if directory == nil {
		directory = teams.Default()
	}
	label := cfg.TimezoneLabel
	if cfg.Timezone == "" && label == "" {
		label = defaultTimezoneLabel
	}
	return &Client{
		liveBaseURL:  normalizeBaseURL(cfg.LiveBaseURL, defaultLiveBaseURL),
		statsBaseURL: normalizeBaseURL(cfg.StatsBaseURL, defaultStatsBaseURL),
		httpClient:   newThrottledDoer(resolveHTTPClient(cfg.HTTPClient, cfg.HTTPTimeout), cfg.RequestSpacing),
		status:       NewStatusFormatter(resolveLocation(cfg.Timezone), label),
		teams:        directory,
		concurrency:  resolveConcurrency(cfg.BoxScoreConcurrency),
		logger:       cfg.Logger,
		metrics:      cfg.Metrics,
	}
}

var _ providers.GameProvider = (*Client)(nil)

// FetchGames retrieves and assembles the games for date using the mode's endpoint.
func (c *Client) FetchGames(ctx context.Context, mode providers.Mode, date string) ([]domaingames.Game, error) {
	switch mode {
	case providers.ModeLive:
		return c.fetchLive(ctx, date)
	case providers.ModeHistorical:
		return c.fetchHistorical(ctx, date)
	case providers.ModeFuture:
		return c.fetchFuture(ctx, date)
	default:
		return nil, fmt.Errorf("nba: unknown mode %q", mode)
	}
}

// getJSON issues a GET and decodes the body into dst. Numbers in untyped
// fields decode as json.Number.
func (c *Client) getJSON(ctx context.Context, endpoint, rawURL string, query url.Values, dst any) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.RecordProviderAttempt(endpoint, time.Since(start), err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	if strings.HasPrefix(rawURL, c.statsBaseURL) {
		for key, value := range statsHeaders {
			req.Header.Set(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    endpoint + ": rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return fmt.Errorf("%s: unexpected status %d: %s", endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%s: decode: %w", endpoint, err)
	}
	return nil
}

func (c *Client) getStats(ctx context.Context, endpoint, path string, query url.Values) (statsResponse, error) {
	var payload statsResponse
	err := c.getJSON(ctx, endpoint, c.statsBaseURL+path, query, &payload)
	return payload, err
}

func (c *Client) logDebug(ctx context.Context, msg string, args ...any) {
	if c.logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, providerName))
	c.logger.DebugContext(ctx, msg, args...)
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
