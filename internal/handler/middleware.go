package handler

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter throttles API requests per client IP using token buckets.
type RateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*rate.Limiter
	perIPRPS rate.Limit
	burst    int
}

// NewRateLimiter creates a new per-client rate limiter
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		clients:  make(map[string]*rate.Limiter),
		perIPRPS: rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

func (r *RateLimiter) limiterFor(clientIP string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	limiter, ok := r.clients[clientIP]
	if !ok {
		limiter = rate.NewLimiter(r.perIPRPS, r.burst)
		r.clients[clientIP] = limiter
	}

	return limiter
}

// Middleware rejects requests exceeding the per-client rate with 429.
func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.limiterFor(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
