package mw

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ipRateLimiter stores a token bucket per client IP.
type ipRateLimiter struct {
	mu  sync.Mutex
	ips map[string]*rate.Limiter
	r   rate.Limit
	b   int
}

func (i *ipRateLimiter) limiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, ok := i.ips[ip]
	if !ok {
		limiter = rate.NewLimiter(i.r, i.b)
		i.ips[ip] = limiter
	}
	return limiter
}

// RateLimiter is a middleware for IP-based rate limiting on the public
// form endpoints.
func RateLimiter(r rate.Limit, b int) gin.HandlerFunc {
	rl := &ipRateLimiter{ips: make(map[string]*rate.Limiter), r: r, b: b}
	return func(c *gin.Context) {
		if !rl.limiter(c.ClientIP()).Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
