package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestLimiter(t *testing.T, limit int, window time.Duration, opts ...LimiterOption) (*RateLimiter, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	rl := NewRateLimiter(limit, window, append([]LimiterOption{withClock(clock.Now)}, opts...)...)
	t.Cleanup(rl.Stop)
	return rl, clock
}

func TestRateLimiterReserve(t *testing.T) {
	rl, clock := newTestLimiter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		if wait := rl.reserve("203.0.113.7"); wait != 0 {
			t.Fatalf("hit %d should pass, got wait %v", i+1, wait)
		}
		clock.Advance(10 * time.Second)
	}

	// Oldest hit is 30s old, so it leaves the window in 30s.
	if wait := rl.reserve("203.0.113.7"); wait != 30*time.Second {
		t.Errorf("over limit: got wait %v, want 30s", wait)
	}
	if wait := rl.reserve("198.51.100.2"); wait != 0 {
		t.Error("other clients keep their own budget")
	}
}

func TestRateLimiterSlidingWindow(t *testing.T) {
	rl, clock := newTestLimiter(t, 2, time.Minute)

	rl.reserve("ip")
	clock.Advance(40 * time.Second)
	rl.reserve("ip")

	if rl.reserve("ip") == 0 {
		t.Fatal("third hit inside the window should be refused")
	}

	// First hit expires, freeing exactly one slot.
	clock.Advance(21 * time.Second)
	if rl.reserve("ip") != 0 {
		t.Fatal("a slot should free once the first hit leaves the window")
	}
	if rl.reserve("ip") == 0 {
		t.Error("only one slot should have freed")
	}
}

func TestRateLimiterRejectedHitsDoNotCount(t *testing.T) {
	rl, clock := newTestLimiter(t, 1, time.Minute)

	rl.reserve("ip")
	for i := 0; i < 5; i++ {
		rl.reserve("ip")
	}
	clock.Advance(time.Minute + time.Second)
	if rl.reserve("ip") != 0 {
		t.Error("refused attempts must not extend the lockout")
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl, _ := newTestLimiter(t, 2, 90*time.Second)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 3)
	var last *httptest.ResponseRecorder
	for i := range codes {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "203.0.113.7:4242"
		last = httptest.NewRecorder()
		handler.ServeHTTP(last, req)
		codes[i] = last.Code
	}

	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("request %d: got %d, want %d", i+1, codes[i], want[i])
		}
	}
	if got := last.Header().Get("Retry-After"); got != "90" {
		t.Errorf("Retry-After: got %q, want %q", got, "90")
	}
}

func TestRateLimiterCustomKey(t *testing.T) {
	rl, _ := newTestLimiter(t, 1, time.Minute, WithKey(func(r *http.Request) string {
		return r.FormValue("username")
	}))
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	serve := func(user string) int {
		req := httptest.NewRequest(http.MethodGet, "/login?username="+user, nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	if serve("admin") != http.StatusOK || serve("guest") != http.StatusOK {
		t.Fatal("distinct keys should each pass once")
	}
	if serve("admin") != http.StatusTooManyRequests {
		t.Error("repeat key should be limited")
	}
}

func TestRateLimiterSweep(t *testing.T) {
	rl, clock := newTestLimiter(t, 5, time.Minute)

	rl.reserve("idle")
	clock.Advance(45 * time.Second)
	rl.reserve("active")
	clock.Advance(30 * time.Second)

	rl.sweep()
	if got := rl.tracked(); got != 1 {
		t.Errorf("tracked clients after sweep: got %d, want 1", got)
	}
	if rl.reserve("active") != 0 {
		t.Error("active client should keep its budget")
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want int
	}{
		{time.Millisecond, 1},
		{time.Second, 1},
		{1500 * time.Millisecond, 2},
		{time.Minute, 60},
	}
	for _, tt := range tests {
		if got := retryAfterSeconds(tt.in); got != tt.want {
			t.Errorf("retryAfterSeconds(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRateLimiterStopTwice(t *testing.T) {
	rl := NewRateLimiter(1, time.Second)
	rl.Stop()
	rl.Stop()
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": "10.0.0.1, 172.16.0.1"}, "192.168.1.1:1234", "10.0.0.1"},
		{"forwarded single", map[string]string{"X-Forwarded-For": " 10.0.0.9 "}, "192.168.1.1:1234", "10.0.0.9"},
		{"real ip", map[string]string{"X-Real-IP": "10.0.0.2"}, "192.168.1.1:1234", "10.0.0.2"},
		{"forwarded wins", map[string]string{"X-Forwarded-For": "10.0.0.1", "X-Real-IP": "10.0.0.2"}, "192.168.1.1:1234", "10.0.0.1"},
		{"remote host", nil, "192.168.1.1:1234", "192.168.1.1"},
		{"remote ipv6", nil, "[2001:db8::1]:443", "2001:db8::1"},
		{"remote without port", nil, "192.168.1.1", "192.168.1.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := clientIP(req); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
