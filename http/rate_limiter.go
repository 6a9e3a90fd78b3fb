package http

import (
	"sync"
	"time"
)

// idleWindows is how many quiet windows a client survives before its quota
// is forgotten.
const idleWindows = 60

type quota struct {
	remaining   int
	windowStart time.Time
}

// RateLimiter grants each client capacity requests per fixed window. Quotas
// of idle clients are swept while serving requests, so it needs no
// background goroutine.
type RateLimiter struct {
	mu        sync.Mutex
	capacity  int
	window    time.Duration
	quotas    map[string]*quota
	now       func() time.Time
	nextSweep time.Time
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	return newRateLimiter(capacity, window, time.Now)
}

func newRateLimiter(capacity int, window time.Duration, now func() time.Time) *RateLimiter {
	return &RateLimiter{
		capacity:  capacity,
		window:    window,
		quotas:    make(map[string]*quota),
		now:       now,
		nextSweep: now().Add(window * idleWindows),
	}
}

// Allow spends one request of client's quota. A refused request reports how
// long until the quota resets.
func (r *RateLimiter) Allow(client string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if !now.Before(r.nextSweep) {
		r.sweep(now)
	}

	q, ok := r.quotas[client]
	if !ok || now.Sub(q.windowStart) >= r.window {
		q = &quota{remaining: r.capacity, windowStart: now}
		r.quotas[client] = q
	}

	if q.remaining == 0 {
		return false, q.windowStart.Add(r.window).Sub(now)
	}
	q.remaining--
	return true, 0
}

// sweep forgets clients idle for idleWindows windows. Callers hold r.mu.
func (r *RateLimiter) sweep(now time.Time) {
	idle := r.window * idleWindows
	for client, q := range r.quotas {
		if now.Sub(q.windowStart) >= idle {
			delete(r.quotas, client)
		}
	}
	r.nextSweep = now.Add(idle)
}

func (r *RateLimiter) clientCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.quotas)
}
