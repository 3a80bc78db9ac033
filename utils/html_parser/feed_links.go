package html_parser

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/phareim/reader/domain"
)

// ExtractFeedLinks scans an HTML page for <link rel="alternate"> elements
// advertising RSS or Atom feeds. hrefs are resolved against pageURL and
// duplicates are dropped while keeping document order.
func ExtractFeedLinks(body, pageURL string) []domain.DiscoveredFeed {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil
	}

	feeds := []domain.DiscoveredFeed{}
	seen := make(map[string]struct{})

	doc.Find("link[rel][href]").Each(func(_ int, s *goquery.Selection) {
		if !hasRelAlternate(s.AttrOr("rel", "")) {
			return
		}

		var kind domain.FeedKind
		switch strings.ToLower(strings.TrimSpace(s.AttrOr("type", ""))) {
		case "application/rss+xml":
			kind = domain.FeedKindRSS
		case "application/atom+xml":
			kind = domain.FeedKindAtom
		default:
			return
		}

		feedURL := ResolveHTTPURL(s.AttrOr("href", ""), base)
		if feedURL == "" {
			return
		}
		if _, ok := seen[feedURL]; ok {
			return
		}
		seen[feedURL] = struct{}{}

		title := strings.TrimSpace(s.AttrOr("title", ""))
		if title == "" {
			if kind == domain.FeedKindRSS {
				title = "RSS Feed"
			} else {
				title = "Atom Feed"
			}
		}

		feeds = append(feeds, domain.DiscoveredFeed{URL: feedURL, Title: title, Type: kind})
	})

	return feeds
}

func hasRelAlternate(rel string) bool {
	for _, token := range strings.Fields(strings.ToLower(rel)) {
		if token == "alternate" {
			return true
		}
	}
	return false
}
