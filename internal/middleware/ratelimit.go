package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"autonomous-barman/pkg/response"
)

const msgTooManyRequests = "Demasiadas solicitudes, espera un momento"

// RateLimit rejects a client IP that goes over its token bucket with 429 {"error": ...}.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.rate <= 0 {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !m.allow(ip) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", ip)
			response.AbortBare(c, http.StatusTooManyRequests, msgTooManyRequests)
			return
		}
		c.Next()
	}
}

// allow takes a token from key's bucket. The lookup and insert share one lock so racing
// first requests from the same client end up on the same bucket.
func (m Middleware) allow(key string) bool {
	m.mu.Lock()
	limiter, ok := m.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(m.rate, m.burst)
		m.limiters.Add(key, limiter)
	}
	m.mu.Unlock()
	return limiter.Allow()
}
