// Package unsplash_driver supplies fallback article images from Unsplash.
package unsplash_driver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/phareim/reader/utils/logger"
)

type randomPhotoResponse struct {
	URLs struct {
		Small string `json:"small"`
	} `json:"urls"`
}

// UnsplashDriver implements image_fallback_port.ImageFallbackPort.
type UnsplashDriver struct {
	httpClient *http.Client
	baseURL    string
	accessKey  string
	timeout    time.Duration
}

func NewUnsplashDriver(httpClient *http.Client, baseURL, accessKey string, timeout time.Duration) *UnsplashDriver {
	return &UnsplashDriver{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		accessKey:  accessKey,
		timeout:    timeout,
	}
}

// RandomImageURL returns the small rendition of a random photo. Without an
// access key it returns "" and no error.
func (d *UnsplashDriver) RandomImageURL(ctx context.Context) (string, error) {
	if d.accessKey == "" {
		logger.Logger.DebugContext(ctx, "UNSPLASH_ACCESS_KEY not configured, skipping fallback image")
		return "", nil
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"/photos/random", nil)
	if err != nil {
		return "", fmt.Errorf("build unsplash request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Version", "v1")
	req.Header.Set("Authorization", "Client-ID "+d.accessKey)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("unsplash request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("unsplash API error: %s", resp.Status)
	}

	var photo randomPhotoResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&photo); err != nil {
		return "", fmt.Errorf("decode unsplash response: %w", err)
	}
	return photo.URLs.Small, nil
}
