package fetch_feed_gateway

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/phareim/reader/domain"
	"github.com/phareim/reader/utils/guid"
	"github.com/phareim/reader/utils/html_parser"
)

const (
	summaryLimit   = 500
	untitledItem   = "Untitled"
	faviconService = "https://www.google.com/s2/favicons?domain=%s&sz=32"
)

// FeedDocumentFetcher is satisfied by fetch_feed_driver.FeedFetchDriver.
type FeedDocumentFetcher interface {
	Fetch(ctx context.Context, feedURL string) (*gofeed.Feed, error)
}

// FetchFeedGateway turns raw gofeed documents into identified, sanitized
// domain.ParsedFeed values. Implements feed_fetch_port.FeedFetchPort.
type FetchFeedGateway struct {
	fetcher FeedDocumentFetcher
}

func NewFetchFeedGateway(fetcher FeedDocumentFetcher) *FetchFeedGateway {
	return &FetchFeedGateway{fetcher: fetcher}
}

func (g *FetchFeedGateway) FetchFeed(ctx context.Context, feedURL string) (*domain.ParsedFeed, error) {
	feed, err := g.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	return ConvertFeed(feed, feedURL)
}

// ConvertFeed maps a parsed document to the domain form. The document must
// carry a title.
func ConvertFeed(feed *gofeed.Feed, feedURL string) (*domain.ParsedFeed, error) {
	title := strings.TrimSpace(feed.Title)
	if title == "" {
		return nil, domain.ErrFeedHasNoTitle
	}

	parsed := &domain.ParsedFeed{
		Title:       title,
		Description: html_parser.StripTags(feed.Description),
		SiteURL:     strings.TrimSpace(feed.Link),
		FaviconURL:  FaviconURL(feed.Link, feedURL),
		Items:       make([]domain.ParsedArticle, 0, len(feed.Items)),
	}

	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		parsed.Items = append(parsed.Items, convertItem(item))
	}

	return parsed, nil
}

func convertItem(item *gofeed.Item) domain.ParsedArticle {
	rawContent := item.Content
	if strings.TrimSpace(rawContent) == "" {
		rawContent = item.Description
	}
	rawSummary := item.Description
	if strings.TrimSpace(rawSummary) == "" {
		rawSummary = item.Content
	}

	content := html_parser.SanitizeHTML(rawContent)
	link := strings.TrimSpace(item.Link)

	title := strings.TrimSpace(item.Title)
	if title == "" {
		title = untitledItem
	}

	return domain.ParsedArticle{
		GUID:        guid.Derive(item.GUID, link, item.Title, item.Published),
		Title:       title,
		URL:         link,
		Author:      itemAuthor(item),
		Content:     content,
		Summary:     html_parser.PlainSummary(rawSummary, summaryLimit),
		ImageURL:    ExtractImageURL(item, content),
		PublishedAt: publishedAt(item),
	}
}

func itemAuthor(item *gofeed.Item) string {
	if item.Author != nil && strings.TrimSpace(item.Author.Name) != "" {
		return strings.TrimSpace(item.Author.Name)
	}
	for _, a := range item.Authors {
		if a != nil && strings.TrimSpace(a.Name) != "" {
			return strings.TrimSpace(a.Name)
		}
	}
	return ""
}

// publishedAt never invents a date: missing or unparseable values stay nil.
func publishedAt(item *gofeed.Item) *time.Time {
	switch {
	case item.PublishedParsed != nil:
		t := item.PublishedParsed.UTC()
		return &t
	case item.UpdatedParsed != nil:
		t := item.UpdatedParsed.UTC()
		return &t
	default:
		return nil
	}
}

// ExtractImageURL picks the article image: image enclosure or item image,
// then media:thumbnail / media:content, then the first inline <img>.
// Only http/https URLs are accepted.
func ExtractImageURL(item *gofeed.Item, sanitizedContent string) string {
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") && html_parser.IsHTTPURL(enc.URL) {
			return enc.URL
		}
	}

	if item.Image != nil && html_parser.IsHTTPURL(item.Image.URL) {
		return item.Image.URL
	}

	if mediaExt, ok := item.Extensions["media"]; ok {
		for _, thumb := range mediaExt["thumbnail"] {
			if u := thumb.Attrs["url"]; html_parser.IsHTTPURL(u) {
				return u
			}
		}
		for _, content := range mediaExt["content"] {
			medium := content.Attrs["medium"]
			if medium != "" && medium != "image" && !strings.HasPrefix(content.Attrs["type"], "image/") {
				continue
			}
			if u := content.Attrs["url"]; html_parser.IsHTTPURL(u) {
				return u
			}
		}
	}

	return html_parser.FirstImageURL(sanitizedContent, item.Link)
}

// FaviconURL builds the favicon service URL for the feed's site, falling back
// to the feed URL's host.
func FaviconURL(siteURL, feedURL string) string {
	host := hostOf(siteURL)
	if host == "" {
		host = hostOf(feedURL)
	}
	if host == "" {
		return ""
	}
	return fmt.Sprintf(faviconService, url.QueryEscape(host))
}

func hostOf(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return u.Hostname()
}
