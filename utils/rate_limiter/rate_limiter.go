// Package rate_limiter spaces out requests to the same remote host.
package rate_limiter

import (
	"context"
	"errors"
	"net/url"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// maxTrackedHosts bounds memory; an evicted host starts with a fresh bucket.
const maxTrackedHosts = 1024

// HostRateLimiter keeps one token bucket per recently contacted host.
type HostRateLimiter struct {
	limiters *lru.Cache[string, *rate.Limiter]
	interval time.Duration
}

// NewHostRateLimiter allows one request per interval to every host. A zero
// interval disables waiting.
func NewHostRateLimiter(interval time.Duration) *HostRateLimiter {
	limiters, _ := lru.New[string, *rate.Limiter](maxTrackedHosts)
	return &HostRateLimiter{
		limiters: limiters,
		interval: interval,
	}
}

// WaitForHost blocks until the host of urlStr may be contacted again or ctx is done.
func (h *HostRateLimiter) WaitForHost(ctx context.Context, urlStr string) error {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return err
	}

	host := parsedURL.Host
	if host == "" {
		return &url.Error{Op: "parse", URL: urlStr, Err: errors.New("missing host in URL")}
	}

	if h.interval <= 0 {
		return nil
	}

	return h.limiterFor(host).Wait(ctx)
}

func (h *HostRateLimiter) limiterFor(host string) *rate.Limiter {
	if limiter, ok := h.limiters.Get(host); ok {
		return limiter
	}

	limiter := rate.NewLimiter(rate.Every(h.interval), 1)
	if previous, ok, _ := h.limiters.PeekOrAdd(host, limiter); ok {
		return previous
	}
	return limiter
}
