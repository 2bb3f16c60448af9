package games

import (
	"sync"
	"time"
)

const unreadyAfterFailures = 3

// Status describes the recent health of upstream fetches. It is the only place
// a failed fetch is distinguishable from a day without games.
type Status struct {
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	LastError           string    `json:"lastError,omitempty"`
	LastAttempt         time.Time `json:"lastAttempt"`
	LastSuccess         time.Time `json:"lastSuccess"`
}

// IsReady reports whether fetches are not failing repeatedly.
func (s Status) IsReady() bool {
	return s.ConsecutiveFailures < unreadyAfterFailures
}

type statusTracker struct {
	mu     sync.RWMutex
	status Status
}

func (t *statusTracker) recordSuccess(at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.ConsecutiveFailures = 0
	t.status.LastError = ""
	t.status.LastAttempt = at
	t.status.LastSuccess = at
}

func (t *statusTracker) recordFailure(err error, at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.ConsecutiveFailures++
	if err != nil {
		t.status.LastError = err.Error()
	}
	t.status.LastAttempt = at
}

func (t *statusTracker) snapshot() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}
