// Package ratelimiter limits how often outbound API calls may be made.
package ratelimiter

import (
	"log"
	"sync"
	"time"
)

// RateLimiterInterface throttles operations such as upstream API calls.
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter enforces a fixed call budget per interval. It is safe for
// concurrent use from HTTP handlers.
type RateLimiter struct {
	limit    int           // calls allowed per interval
	interval time.Duration // window after which the count resets

	mu        sync.Mutex
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a RateLimiter allowing limit calls per interval.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded blocks until the current interval's budget allows another call.
func (rl *RateLimiter) WaitIfNeeded() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			log.Printf("[RATE LIMIT] hit %d calls, sleeping for %v...", rl.limit, sleep)
			time.Sleep(sleep)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}
