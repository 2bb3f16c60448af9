package providers

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	domaingames "nba-scores-dashboard/internal/domain/games"
	"nba-scores-dashboard/internal/logging"
	"nba-scores-dashboard/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	// Upper bound on any single retry wait.
	maxRetryDelay = 5 * time.Second
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a GameProvider with retry/backoff behavior and records attempts.
type retryingProvider struct {
	inner        GameProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	backoffFn    backoffFunc

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner GameProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) GameProvider {
	return NewRetryingProviderWithRNG(inner, logger, recorder, name, nil, maxAttempts, backoff)
}

// NewRetryingProviderWithRNG is NewRetryingProvider with an explicit jitter source.
func NewRetryingProviderWithRNG(inner GameProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, rng *rand.Rand, maxAttempts int, backoff time.Duration) GameProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if name == "" {
		name = "provider"
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: name,
		maxAttempts:  maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
		rng: rng,
	}
}

func (r *retryingProvider) FetchGames(ctx context.Context, mode Mode, date string) ([]domaingames.Game, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}

	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		games, err := r.inner.FetchGames(ctx, mode, date)
		r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			return games, nil
		}
		lastErr = err

		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.providerName, rlErr.RetryAfter)
		}

		if attempt == r.maxAttempts {
			break
		}

		r.log(ctx, slog.LevelWarn, "provider fetch retry",
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			logging.FieldMode, string(mode),
			logging.FieldDate, date,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.computeDelay(err, attempt)):
		}
	}

	r.log(ctx, slog.LevelWarn, "provider fetch failed",
		"attempts", r.maxAttempts,
		logging.FieldMode, string(mode),
		logging.FieldDate, date,
		"error", lastErr,
	)
	return nil, lastErr
}

// computeDelay honors Retry-After when the upstream sent one, otherwise applies
// the backoff with jitter in [base/2, base].
func (r *retryingProvider) computeDelay(err error, attempt int) time.Duration {
	if rlErr, ok := AsRateLimitError(err); ok && rlErr.RetryAfter > 0 {
		return min(rlErr.RetryAfter, maxRetryDelay)
	}
	base := r.backoffFn(attempt)
	if base <= 0 {
		return 0
	}
	half := base / 2
	r.rngMu.Lock()
	jitter := time.Duration(r.rng.Int63n(int64(half) + 1))
	r.rngMu.Unlock()
	return min(half+jitter, maxRetryDelay)
}

func (r *retryingProvider) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	logWithProvider(ctx, logging.FromContext(ctx, r.logger), level, r.providerName, msg, args...)
}
