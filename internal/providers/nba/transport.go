package nba

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

func normalizeBaseURL(raw, fallback string) string {
	if raw == "" {
		raw = fallback
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveLocation(name string) *time.Location {
	if name == "" {
		name = defaultTimezone
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.UTC
}

func resolveConcurrency(n int) int {
	if n <= 0 {
		return defaultBoxScoreConcurrency
	}
	return n
}

// parseRetryAfter reads a Retry-After header given in seconds.
func parseRetryAfter(raw string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// throttledDoer enforces a minimum interval between outgoing requests.
// Waiting honors the request context.
type throttledDoer struct {
	inner    httpDoer
	interval time.Duration
	now      func() time.Time

	mu       sync.Mutex
	nextSlot time.Time
}

func newThrottledDoer(next httpDoer, interval time.Duration) httpDoer {
	if interval <= 0 {
		return next
	}
	return &throttledDoer{inner: next, interval: interval, now: time.Now}
}

func (t *throttledDoer) Do(req *http.Request) (*http.Response, error) {
	wait := t.reserve()
	if wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-timer.C:
		}
	}
	return t.inner.Do(req)
}

// reserve claims the next send slot and returns how long to wait for it.
func (t *throttledDoer) reserve() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	slot := t.nextSlot
	if slot.Before(now) {
		slot = now
	}
	t.nextSlot = slot.Add(t.interval)
	return slot.Sub(now)
}
