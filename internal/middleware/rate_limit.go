package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	rateLimitPerSec = 20
	rateLimitBurst  = 40
)

// RateLimit caps the request rate per client IP. Limiters live in an
// expirable LRU so idle clients are evicted instead of accumulating.
func (m Middleware) RateLimit() gin.HandlerFunc {
	limiters := expirable.NewLRU[string, *rate.Limiter](1000, nil, 5*time.Minute)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter, ok := limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(rateLimitPerSec, rateLimitBurst)
			limiters.Add(ip, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
