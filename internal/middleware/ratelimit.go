package middleware

import (
	"net/http"
	"sync"
	"time"
)

// MutationRateLimiter provides sliding-window rate limiting for cart
// mutation endpoints, keyed by client IP.
type MutationRateLimiter struct {
	attempts    map[string][]time.Time
	mutex       sync.RWMutex
	maxAttempts int
	window      time.Duration
}

// NewMutationRateLimiter creates a new rate limiter
func NewMutationRateLimiter(maxAttempts int, window time.Duration) *MutationRateLimiter {
	rl := &MutationRateLimiter{
		attempts:    make(map[string][]time.Time),
		maxAttempts: maxAttempts,
		window:      window,
	}

	// Start cleanup goroutine
	go rl.cleanup()

	return rl
}

// IsAllowed checks if a request from the given IP is allowed
func (rl *MutationRateLimiter) IsAllowed(ip string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window)

	// Drop attempts outside the window
	var validAttempts []time.Time
	for _, attempt := range rl.attempts[ip] {
		if attempt.After(cutoff) {
			validAttempts = append(validAttempts, attempt)
		}
	}

	if len(validAttempts) >= rl.maxAttempts {
		rl.attempts[ip] = validAttempts
		return false
	}

	rl.attempts[ip] = append(validAttempts, now)
	return true
}

// cleanup removes stale entries periodically
func (rl *MutationRateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mutex.Lock()
		cutoff := time.Now().Add(-rl.window)

		for ip, attempts := range rl.attempts {
			var validAttempts []time.Time
			for _, attempt := range attempts {
				if attempt.After(cutoff) {
					validAttempts = append(validAttempts, attempt)
				}
			}

			if len(validAttempts) == 0 {
				delete(rl.attempts, ip)
			} else {
				rl.attempts[ip] = validAttempts
			}
		}
		rl.mutex.Unlock()
	}
}

// RateLimit applies the limiter to POST requests only
func RateLimit(rateLimiter *MutationRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			ip := getClientIP(r)
			if !rateLimiter.IsAllowed(ip) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":"too many requests, slow down"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
