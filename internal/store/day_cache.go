package store

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	domaingames "nba-scores-dashboard/internal/domain/games"
)

// Loader produces the games for one date. It never fails; a failed upstream
// fetch is represented by an empty list.
type Loader func(ctx context.Context, date string) []domaingames.Game

type entry struct {
	games   []domaingames.Game
	expires time.Time
}

// DayCache keeps each date's games for a fixed TTL. Concurrent misses for the
// same date share a single call to the loader. Returned slices are shared
// between callers and must not be modified.
type DayCache struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu         sync.RWMutex
	generation uint64
	entries    map[string]entry
}

// NewDayCache constructs an empty cache with the given freshness window.
func NewDayCache(ttl time.Duration) *DayCache {
	return newDayCache(ttl, time.Now)
}

func newDayCache(ttl time.Duration, now func() time.Time) *DayCache {
	return &DayCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]entry),
	}
}

// Get returns the games for date, calling load when there is no fresh entry.
// hit reports whether the result came from the cache without a load.
func (c *DayCache) Get(ctx context.Context, date string, load Loader) (games []domaingames.Game, hit bool) {
	cached, gen, ok := c.lookup(date)
	if ok {
		return cached, true
	}

	key := strconv.FormatUint(gen, 10) + "|" + date
	v, _, _ := c.group.Do(key, func() (any, error) {
		if fresh, _, ok := c.lookup(date); ok {
			return fresh, nil
		}
		loaded := load(context.WithoutCancel(ctx), date)
		c.store(gen, date, loaded)
		return loaded, nil
	})
	return v.([]domaingames.Game), false
}

// Invalidate drops every entry. Loads already in flight finish for their
// callers but are not stored.
func (c *DayCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.entries = make(map[string]entry)
}

// Len reports how many dates are cached, fresh or not.
func (c *DayCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *DayCache) lookup(date string) ([]domaingames.Game, uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[date]
	if ok && c.now().Before(e.expires) {
		return e.games, c.generation, true
	}
	return nil, c.generation, false
}

func (c *DayCache) store(gen uint64, date string, games []domaingames.Game) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	c.entries[date] = entry{games: games, expires: c.now().Add(c.ttl)}
}
