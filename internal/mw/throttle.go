package mw

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// LoginThrottle counts failed login attempts per client IP in a TTL cache.
// Once an IP crosses the failure cap inside the window, further attempts
// are refused before any credential check runs.
type LoginThrottle struct {
	failures *cache.Cache
	max      int
}

// NewLoginThrottle creates a throttle allowing max failures per window.
func NewLoginThrottle(max int, window time.Duration) *LoginThrottle {
	return &LoginThrottle{
		failures: cache.New(window, 2*window),
		max:      max,
	}
}

// Blocked reports whether the IP has exhausted its failure budget.
func (t *LoginThrottle) Blocked(ip string) bool {
	if v, found := t.failures.Get(ip); found {
		return v.(int) >= t.max
	}
	return false
}

// RecordFailure registers one failed attempt for the IP.
func (t *LoginThrottle) RecordFailure(ip string) {
	if err := t.failures.Add(ip, 1, cache.DefaultExpiration); err != nil {
		// Key exists; bump it. The original expiry is kept.
		_, _ = t.failures.IncrementInt(ip, 1)
	}
}

// Reset clears the failure count for the IP after a successful login.
func (t *LoginThrottle) Reset(ip string) {
	t.failures.Delete(ip)
}
