package middlewares

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"net/http"
	"time"
)

// RateLimit ограничивает запросы с одного IP: requests за per. Нулевые значения отключают лимит.
func (m *Middlewares) RateLimit(requests int, per time.Duration) gin.HandlerFunc {
	if requests <= 0 || per <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()

		limiter, ok := m.limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(rate.Every(per/time.Duration(requests)), requests)
			m.limiters.Set(ip, limiter)
		}

		if !limiter.Allow() {
			m.log.Debug("Rate limit exceeded", "ip", ip, "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
