// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// sweepInterval is how often idle clients are forgotten.
const sweepInterval = 5 * time.Minute

// RateLimiter admits at most limit requests per key in any window-long
// span. Keys default to the client IP.
type RateLimiter struct {
	limit  int
	window time.Duration
	key    func(*http.Request) string
	now    func() time.Time

	mu   sync.Mutex
	hits map[string][]time.Time // ascending

	stop chan struct{}
	once sync.Once
}

// LimiterOption configures a RateLimiter.
type LimiterOption func(*RateLimiter)

// WithKey partitions requests by fn instead of client IP.
func WithKey(fn func(*http.Request) string) LimiterOption {
	return func(rl *RateLimiter) { rl.key = fn }
}

// withClock replaces time.Now in tests.
func withClock(now func() time.Time) LimiterOption {
	return func(rl *RateLimiter) { rl.now = now }
}

// NewRateLimiter starts a limiter and its idle-client sweeper. Call Stop
// to end the sweeper.
func NewRateLimiter(limit int, window time.Duration, opts ...LimiterOption) *RateLimiter {
	rl := &RateLimiter{
		limit:  limit,
		window: window,
		key:    clientIP,
		now:    time.Now,
		hits:   make(map[string][]time.Time),
		stop:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(rl)
	}

	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.sweep()
			case <-rl.stop:
				return
			}
		}
	}()
	return rl
}

// Stop ends the sweeper. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// reserve records a hit for key and returns 0, or returns how long until
// the oldest hit leaves the window when the key is over its limit.
func (rl *RateLimiter) reserve(key string) time.Duration {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	hits := recent(rl.hits[key], now.Add(-rl.window))
	if len(hits) >= rl.limit {
		rl.hits[key] = hits
		if len(hits) == 0 {
			return rl.window
		}
		return hits[0].Add(rl.window).Sub(now)
	}
	rl.hits[key] = append(hits, now)
	return 0
}

// sweep drops keys with no hits inside the window.
func (rl *RateLimiter) sweep() {
	cutoff := rl.now().Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, hits := range rl.hits {
		if len(recent(hits, cutoff)) == 0 {
			delete(rl.hits, key)
		}
	}
}

func (rl *RateLimiter) tracked() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.hits)
}

// recent drops the prefix of hits at or before cutoff.
func recent(hits []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(hits) && !hits[i].After(cutoff) {
		i++
	}
	return hits[i:]
}

// Middleware rejects over-limit requests with 429 and a Retry-After in
// whole seconds.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := rl.key(r)
		if wait := rl.reserve(key); wait > 0 {
			slog.Warn("rate limit exceeded",
				"key", key,
				"path", r.URL.Path,
				"request_id", RequestIDFromCtx(r.Context()),
			)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(wait)))
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func retryAfterSeconds(d time.Duration) int {
	s := int((d + time.Second - 1) / time.Second)
	if s < 1 {
		return 1
	}
	return s
}

// clientIP is the leftmost X-Forwarded-For entry, then X-Real-IP, then the
// connection's remote host.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
