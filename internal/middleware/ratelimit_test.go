package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMutationRateLimiter_IsAllowed(t *testing.T) {
	rl := NewMutationRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.IsAllowed("10.0.0.1"), "attempt %d should pass", i+1)
	}
	assert.False(t, rl.IsAllowed("10.0.0.1"), "fourth attempt should be blocked")

	// Other clients are tracked independently
	assert.True(t, rl.IsAllowed("10.0.0.2"))
}

func TestMutationRateLimiter_WindowSlides(t *testing.T) {
	rl := NewMutationRateLimiter(1, 50*time.Millisecond)

	assert.True(t, rl.IsAllowed("10.0.0.1"))
	assert.False(t, rl.IsAllowed("10.0.0.1"))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, rl.IsAllowed("10.0.0.1"), "attempt should pass after the window expires")
}

func TestRateLimit_PostOnly(t *testing.T) {
	rl := NewMutationRateLimiter(1, time.Minute)
	handler := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/cart/add/42", nil)
		req.RemoteAddr = "10.0.0.1:4000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, post().Code)
	assert.Equal(t, http.StatusTooManyRequests, post().Code)

	// GET requests bypass the limiter entirely
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.RemoteAddr = "10.0.0.1:4000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_KeyedByForwardedFor(t *testing.T) {
	rl := NewMutationRateLimiter(1, time.Minute)
	handler := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	post := func(forwardedFor string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/cart/add/42", nil)
		req.RemoteAddr = "127.0.0.1:4000"
		req.Header.Set("X-Forwarded-For", forwardedFor)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, post("203.0.113.5").Code)
	assert.Equal(t, http.StatusTooManyRequests, post("203.0.113.5").Code)
	assert.Equal(t, http.StatusOK, post("203.0.113.6").Code)
}
