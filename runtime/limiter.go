package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type limiterKey struct {
	connID    string
	eventType string
}

type window struct {
	start time.Time
	count int
}

// RateLimiter is a fixed-window counter keyed by (connection, event type).
// Exceeding the threshold drops the event and notifies the actor without
// closing the connection. It also implements contract.Worker: Run sweeps
// windows of connections that went quiet.
type RateLimiter struct {
	mu           sync.Mutex
	windows      map[limiterKey]*window
	windowLength time.Duration
	defaultLimit int
	limits       map[string]int // per-event-type overrides

	log *slog.Logger
	now func() time.Time // swapped in tests
}

func NewRateLimiter(log *slog.Logger, windowLength time.Duration, defaultLimit int, limits map[string]int) *RateLimiter {
	if windowLength <= 0 {
		windowLength = time.Second
	}
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	return &RateLimiter{
		windows:      make(map[limiterKey]*window),
		windowLength: windowLength,
		defaultLimit: defaultLimit,
		limits:       limits,
		log:          log,
		now:          time.Now,
	}
}

// Allow counts one event and reports whether it fits the current window.
// The retryAfter hint is how long until the window resets.
func (rl *RateLimiter) Allow(connID, eventType string) (allowed bool, retryAfter time.Duration) {
	limit := rl.defaultLimit
	if l, ok := rl.limits[eventType]; ok {
		limit = l
	}

	now := rl.now()
	key := limiterKey{connID: connID, eventType: eventType}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[key]
	if !ok || now.Sub(w.start) >= rl.windowLength {
		rl.windows[key] = &window{start: now, count: 1}
		return true, 0
	}

	w.count++
	if w.count > limit {
		return false, rl.windowLength - now.Sub(w.start)
	}
	return true, 0
}

// Forget drops all windows of a disconnected connection.
func (rl *RateLimiter) Forget(connID string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key := range rl.windows {
		if key.connID == connID {
			delete(rl.windows, key)
		}
	}
}

// Run sweeps expired windows periodically so the map does not grow with
// connection churn. Supervised like any other worker.
func (rl *RateLimiter) Run(ctx context.Context) error {
	ticker := time.NewTicker(rl.windowLength * 10)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			rl.log.Debug("Context done, stopping limiter janitor")
			return nil
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) sweep() {
	now := rl.now()
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, w := range rl.windows {
		if now.Sub(w.start) >= rl.windowLength {
			delete(rl.windows, key)
		}
	}
}
