// Package fetch_feed_driver downloads and parses RSS/Atom documents.
package fetch_feed_driver

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/phareim/reader/domain"
	"github.com/phareim/reader/utils/logger"
	"github.com/phareim/reader/utils/rate_limiter"
)

const acceptFeed = "application/rss+xml, application/atom+xml, application/xml;q=0.9, text/xml;q=0.9, */*;q=0.5"

// FeedFetchDriver performs the HTTP exchange and hands the body to gofeed.
type FeedFetchDriver struct {
	httpClient   *http.Client
	rateLimiter  *rate_limiter.HostRateLimiter
	userAgent    string
	timeout      time.Duration
	maxBodyBytes int64
}

func NewFeedFetchDriver(
	httpClient *http.Client,
	rateLimiter *rate_limiter.HostRateLimiter,
	userAgent string,
	timeout time.Duration,
	maxBodyBytes int64,
) *FeedFetchDriver {
	return &FeedFetchDriver{
		httpClient:   httpClient,
		rateLimiter:  rateLimiter,
		userAgent:    userAgent,
		timeout:      timeout,
		maxBodyBytes: maxBodyBytes,
	}
}

// Fetch downloads feedURL and parses it. Every failure is a *domain.FetchError.
func (d *FeedFetchDriver) Fetch(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if d.rateLimiter != nil {
		if err := d.rateLimiter.WaitForHost(ctx, feedURL); err != nil {
			return nil, ClassifyTransportError(err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, domain.NewFetchError(domain.FetchErrorUnknown, err)
	}
	req.Header.Set("User-Agent", d.userAgent)
	req.Header.Set("Accept", acceptFeed)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		logger.Logger.WarnContext(ctx, "feed request failed", "url", feedURL, "error", err)
		return nil, ClassifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, domain.NewHTTPStatusError(resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, d.maxBodyBytes+1))
	if err != nil {
		return nil, ClassifyTransportError(err)
	}
	if int64(len(body)) > d.maxBodyBytes {
		logger.Logger.WarnContext(ctx, "feed body over limit", "url", feedURL, "limit_bytes", d.maxBodyBytes)
		return nil, domain.NewFetchError(domain.FetchErrorTooLarge,
			fmt.Errorf("response body exceeds %d bytes", d.maxBodyBytes))
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ClassifyTransportError(ctxErr)
		}
		return nil, classifyParseError(err)
	}

	logger.Logger.DebugContext(ctx, "feed parsed", "url", feedURL, "title", feed.Title, "items", len(feed.Items))
	return feed, nil
}

// ClassifyTransportError maps a failed HTTP exchange to a FetchError kind.
func ClassifyTransportError(err error) *domain.FetchError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return domain.NewFetchError(domain.FetchErrorTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.NewFetchError(domain.FetchErrorTimeout, err)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return domain.NewFetchError(domain.FetchErrorUnreachable, err)
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return domain.NewFetchError(domain.FetchErrorUnreachable, err)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return domain.NewFetchError(domain.FetchErrorUnreachable, err)
	}

	return domain.NewFetchError(domain.FetchErrorUnknown, err)
}

func classifyParseError(err error) *domain.FetchError {
	var syntaxErr *xml.SyntaxError
	if errors.Is(err, gofeed.ErrFeedTypeNotDetected) || errors.As(err, &syntaxErr) {
		return domain.NewFetchError(domain.FetchErrorInvalidFormat, err)
	}
	return domain.NewFetchError(domain.FetchErrorUnknown, err)
}
