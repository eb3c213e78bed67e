package http

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// HostLimiter rate limits requests per wiki host. Every language edition
// gets its own token bucket with a burst of 1, so a slow wiki never holds
// up requests to another.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewHostLimiter creates a HostLimiter allowing rps requests per second to
// each host.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until a request to host is allowed or ctx is done.
func (h *HostLimiter) Wait(ctx context.Context, host string) error {
	h.mu.Lock()
	limiter, ok := h.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(h.rps), 1)
		h.limiters[host] = limiter
	}
	h.mu.Unlock()

	return limiter.Wait(ctx)
}
