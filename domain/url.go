package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeURL trims raw and assumes https when no http(s) scheme is given.
func NormalizeURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: URL is required", ErrInvalidURL)
	}
	if !strings.HasPrefix(strings.ToLower(trimmed), "http") {
		trimmed = "https://" + trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return u.String(), nil
}
