package rate_limiter

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostRateLimiter_WaitForHost(t *testing.T) {
	tests := []struct {
		name    string
		urlStr  string
		wantErr bool
	}{
		{name: "valid http URL", urlStr: "http://example.com/feed.xml"},
		{name: "valid https URL", urlStr: "https://example.com/feed.xml"},
		{name: "missing host", urlStr: "/feed.xml", wantErr: true},
		{name: "unparseable", urlStr: "http://[::1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := NewHostRateLimiter(10 * time.Millisecond)
			err := limiter.WaitForHost(context.Background(), tt.urlStr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHostRateLimiter_SpacesSameHost(t *testing.T) {
	limiter := NewHostRateLimiter(50 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, limiter.WaitForHost(ctx, "https://a.example.com/1"))
	require.NoError(t, limiter.WaitForHost(ctx, "https://a.example.com/2"))
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestHostRateLimiter_HostsAreIndependent(t *testing.T) {
	limiter := NewHostRateLimiter(time.Second)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, limiter.WaitForHost(ctx, "https://a.example.com/"))
	require.NoError(t, limiter.WaitForHost(ctx, "https://b.example.com/"))
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestHostRateLimiter_ContextCancelled(t *testing.T) {
	limiter := NewHostRateLimiter(time.Hour)
	require.NoError(t, limiter.WaitForHost(context.Background(), "https://a.example.com/"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, limiter.WaitForHost(ctx, "https://a.example.com/"))
}

func TestHostRateLimiter_ZeroInterval(t *testing.T) {
	limiter := NewHostRateLimiter(0)
	for range 5 {
		require.NoError(t, limiter.WaitForHost(context.Background(), "https://a.example.com/"))
	}
	assert.Zero(t, limiter.limiters.Len())
}

func TestHostRateLimiter_BoundsTrackedHosts(t *testing.T) {
	limiter := NewHostRateLimiter(time.Millisecond)
	ctx := context.Background()

	for i := range maxTrackedHosts + 10 {
		require.NoError(t, limiter.WaitForHost(ctx, fmt.Sprintf("https://h%d.example.com/", i)))
	}
	assert.Equal(t, maxTrackedHosts, limiter.limiters.Len())
}
