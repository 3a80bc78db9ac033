package html_parser

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FirstImageURL returns the first <img> source in content that resolves to an
// http or https URL. Relative sources are resolved against baseURL when given.
func FirstImageURL(content, baseURL string) string {
	if !strings.Contains(content, "<img") {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return ""
	}

	var base *url.URL
	if baseURL != "" {
		base, _ = url.Parse(baseURL)
	}

	var found string
	doc.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		if resolved := ResolveHTTPURL(src, base); resolved != "" {
			found = resolved
			return false
		}
		return true
	})
	return found
}

// ResolveHTTPURL resolves ref against base and returns it only when the
// result is an absolute http(s) URL.
func ResolveHTTPURL(ref string, base *url.URL) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if base != nil {
		u = base.ResolveReference(u)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return u.String()
}

// IsHTTPURL reports whether raw is an absolute http(s) URL.
func IsHTTPURL(raw string) bool {
	return ResolveHTTPURL(raw, nil) != ""
}
