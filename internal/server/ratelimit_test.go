package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware(t *testing.T) {
	// Effectively no refill during the test
	limiter := NewRateLimiter(0.001, 3)
	handler := RateLimitMiddleware(limiter, nil)(okHandler())

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/api/v1/jobs", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, send("192.168.1.100").Code, "request %d", i)
	}

	rec := send("192.168.1.100")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, RetryAfterSeconds, rec.Header().Get(HeaderRetryAfter))

	// Buckets are per client
	assert.Equal(t, http.StatusOK, send("192.168.1.101").Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	limiter := NewRateLimiter(0, 0)
	for i := 0; i < 1000; i++ {
		require.True(t, limiter.Allow("10.0.0.1"))
	}
	assert.Empty(t, limiter.limiters)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	limiter := NewRateLimiter(10, 10)
	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.2")

	limiter.mu.Lock()
	limiter.limiters["10.0.0.1"].lastAccess = time.Now().Add(-2 * LimiterIdleExpiry)
	limiter.mu.Unlock()

	removed := limiter.cleanup(time.Now().Add(-LimiterIdleExpiry))
	assert.Equal(t, 1, removed)
	assert.Len(t, limiter.limiters, 1)
	assert.Contains(t, limiter.limiters, "10.0.0.2")
}

func TestRateLimiter_StopEndsCleanupLoop(t *testing.T) {
	limiter := NewRateLimiter(10, 10)
	done := make(chan struct{})
	go func() {
		limiter.StartCleanup(time.Millisecond, time.Hour)
		close(done)
	}()

	limiter.Stop()
	limiter.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop")
	}
}
