// Package robots_txt_driver checks robots.txt before discovery path checks.
package robots_txt_driver

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/temoto/robotstxt"

	"github.com/phareim/reader/utils/logger"
)

const maxRobotsBytes = 512 * 1024

// RobotsTxtDriver implements robots_txt_port.RobotsTxtPort with a per-host
// LRU of parsed robots files.
type RobotsTxtDriver struct {
	httpClient *http.Client
	cache      *lru.Cache[string, *robotstxt.RobotsData]
	userAgent  string
	timeout    time.Duration
	enabled    bool
}

func NewRobotsTxtDriver(httpClient *http.Client, userAgent string, timeout time.Duration, cacheSize int, enabled bool) (*RobotsTxtDriver, error) {
	cache, err := lru.New[string, *robotstxt.RobotsData](cacheSize)
	if err != nil {
		return nil, err
	}
	return &RobotsTxtDriver{
		httpClient: httpClient,
		cache:      cache,
		userAgent:  userAgent,
		timeout:    timeout,
		enabled:    enabled,
	}, nil
}

// IsAllowed fails open: an unreachable robots.txt never blocks a path check.
func (d *RobotsTxtDriver) IsAllowed(ctx context.Context, targetURL string) bool {
	if !d.enabled {
		return true
	}

	u, err := url.Parse(targetURL)
	if err != nil || u.Host == "" {
		return true
	}

	origin := u.Scheme + "://" + u.Host
	robots, ok := d.cache.Get(origin)
	if !ok {
		robots, err = d.fetch(ctx, origin)
		if err != nil {
			logger.Logger.DebugContext(ctx, "robots.txt unavailable, allowing", "origin", origin, "error", err)
			return true
		}
		d.cache.Add(origin, robots)
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return robots.TestAgent(path, d.userAgent)
}

func (d *RobotsTxtDriver) fetch(ctx context.Context, origin string) (*robotstxt.RobotsData, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, origin+"/robots.txt", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRobotsBytes))
	if err != nil {
		return nil, err
	}
	return robotstxt.FromStatusAndBytes(resp.StatusCode, body)
}
