package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(t *testing.T, perMinute, burst int) (*Limiter, *time.Time) {
	t.Helper()
	l := New(perMinute, burst)
	t.Cleanup(l.Close)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }
	return l, &clock
}

func TestAllow_BurstThenRefill(t *testing.T) {
	l, clock := newTestLimiter(t, 60, 2)

	assert.True(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("5.6.7.8"), "other IPs have their own bucket")

	*clock = clock.Add(time.Second)
	assert.True(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"))
}

func TestEvict_RemovesIdleVisitors(t *testing.T) {
	l, clock := newTestLimiter(t, 60, 1)
	l.Allow("1.1.1.1")
	*clock = clock.Add(idleTTL + time.Second)
	l.Allow("2.2.2.2")

	l.evict()
	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.visitors, "1.1.1.1")
	assert.Contains(t, l.visitors, "2.2.2.2")
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		header map[string]string
		want   string
	}{
		{"direct", "203.0.113.9:5555", nil, "203.0.113.9"},
		{"spoofed header from internet", "203.0.113.9:5555", map[string]string{"X-Real-IP": "1.1.1.1"}, "203.0.113.9"},
		{"real ip via proxy", "10.0.0.2:80", map[string]string{"X-Real-IP": "198.51.100.1"}, "198.51.100.1"},
		{"forwarded via proxy", "127.0.0.1:80", map[string]string{"X-Forwarded-For": "198.51.100.7, 10.0.0.1"}, "198.51.100.7"},
		{"no port", "198.51.100.3", nil, "198.51.100.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.header {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIP(r))
		})
	}
}

func TestMiddleware(t *testing.T) {
	l, _ := newTestLimiter(t, 30, 1)
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func() *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/api/ideas", nil)
		r.RemoteAddr = "203.0.113.5:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec
	}

	assert.Equal(t, http.StatusNoContent, do().Code)
	rec := do()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "3", rec.Header().Get("Retry-After"))
}
