// Package page_fetch_driver reads web pages during feed discovery.
package page_fetch_driver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/phareim/reader/domain"
	"github.com/phareim/reader/driver/fetch_feed_driver"
	"github.com/phareim/reader/utils/rate_limiter"
)

const acceptPage = "text/html,application/xhtml+xml,application/xml,application/rss+xml,application/atom+xml;q=0.9,*/*;q=0.5"

// PageFetchDriver implements page_fetch_port.PageFetchPort.
type PageFetchDriver struct {
	httpClient   *http.Client
	rateLimiter  *rate_limiter.HostRateLimiter
	userAgent    string
	timeout      time.Duration
	headTimeout  time.Duration
	maxBodyBytes int64
}

func NewPageFetchDriver(
	httpClient *http.Client,
	rateLimiter *rate_limiter.HostRateLimiter,
	userAgent string,
	timeout, headTimeout time.Duration,
	maxBodyBytes int64,
) *PageFetchDriver {
	return &PageFetchDriver{
		httpClient:   httpClient,
		rateLimiter:  rateLimiter,
		userAgent:    userAgent,
		timeout:      timeout,
		headTimeout:  headTimeout,
		maxBodyBytes: maxBodyBytes,
	}
}

// FetchPage GETs pageURL and returns the body decoded to UTF-8. Non-2xx
// responses are reported as a FetchError of kind http_status.
func (d *PageFetchDriver) FetchPage(ctx context.Context, pageURL string) (*domain.Page, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	resp, err := d.do(ctx, http.MethodGet, pageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.FetchError{
			Kind:       domain.FetchErrorHTTPStatus,
			Message:    fmt.Sprintf("Could not fetch URL: HTTP %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	contentType := resp.Header.Get("Content-Type")
	reader, err := charset.NewReader(io.LimitReader(resp.Body, d.maxBodyBytes), contentType)
	if err != nil {
		return nil, domain.NewFetchError(domain.FetchErrorUnknown, err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fetch_feed_driver.ClassifyTransportError(err)
	}

	return &domain.Page{
		URL:         resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        string(body),
	}, nil
}

// HeadPage issues a HEAD bounded by the HEAD timeout. Any status is returned
// as a page; only transport failures are errors.
func (d *PageFetchDriver) HeadPage(ctx context.Context, pageURL string) (*domain.Page, error) {
	ctx, cancel := context.WithTimeout(ctx, d.headTimeout)
	defer cancel()

	resp, err := d.do(ctx, http.MethodHead, pageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return &domain.Page{
		URL:         resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

func (d *PageFetchDriver) do(ctx context.Context, method, pageURL string) (*http.Response, error) {
	if d.rateLimiter != nil {
		if err := d.rateLimiter.WaitForHost(ctx, pageURL); err != nil {
			return nil, fetch_feed_driver.ClassifyTransportError(err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, pageURL, nil)
	if err != nil {
		return nil, domain.NewFetchError(domain.FetchErrorUnknown, err)
	}
	req.Header.Set("User-Agent", d.userAgent)
	req.Header.Set("Accept", acceptPage)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fetch_feed_driver.ClassifyTransportError(err)
	}
	return resp, nil
}
