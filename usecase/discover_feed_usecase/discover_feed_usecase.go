// Package discover_feed_usecase turns an arbitrary user-submitted URL into the
// next useful action: subscribe to it, pick one of its feeds, save it as an
// article, or nothing.
package discover_feed_usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/phareim/reader/domain"
	"github.com/phareim/reader/port/feed_fetch_port"
	"github.com/phareim/reader/port/feed_repository_port"
	"github.com/phareim/reader/port/page_fetch_port"
	"github.com/phareim/reader/port/robots_txt_port"
	"github.com/phareim/reader/usecase/subscribe_feed_usecase"
	"github.com/phareim/reader/utils/html_parser"
	"github.com/phareim/reader/utils/logger"
	"github.com/phareim/reader/utils/metrics"
)

// commonFeedPaths are checked in order when a page advertises no feed.
var commonFeedPaths = []string{
	"/feed/",
	"/rss/",
	"/atom/",
	"/feed.xml",
	"/rss.xml",
	"/atom.xml",
	"/feeds/posts/default",
	"/blog/feed/",
	"/news/feed/",
}

const maxConcurrentPathChecks = 3

// FeedSubscriber creates a subscription from an already fetched document.
type FeedSubscriber interface {
	SubscribeParsed(ctx context.Context, userID uuid.UUID, feedURL string, parsed *domain.ParsedFeed) (*subscribe_feed_usecase.Subscription, error)
}

type DiscoverFeedUsecase struct {
	fetcher    feed_fetch_port.FeedFetchPort
	pages      page_fetch_port.PageFetchPort
	robots     robots_txt_port.RobotsTxtPort
	feedRepo   feed_repository_port.FeedRepositoryPort
	subscriber FeedSubscriber
	tracer     trace.Tracer
}

func NewDiscoverFeedUsecase(
	fetcher feed_fetch_port.FeedFetchPort,
	pages page_fetch_port.PageFetchPort,
	robots robots_txt_port.RobotsTxtPort,
	feedRepo feed_repository_port.FeedRepositoryPort,
	subscriber FeedSubscriber,
) *DiscoverFeedUsecase {
	return &DiscoverFeedUsecase{
		fetcher:    fetcher,
		pages:      pages,
		robots:     robots,
		feedRepo:   feedRepo,
		subscriber: subscriber,
		tracer:     otel.Tracer("reader/discovery"),
	}
}

// ClassifyURL runs rawURL through the discovery chain: direct feed, feed by
// content type, advertised or conventional feeds on an HTML page, article
// heuristics, and finally an unknown page with a title suggestion.
func (u *DiscoverFeedUsecase) ClassifyURL(ctx context.Context, userID uuid.UUID, rawURL string) (*domain.Classification, error) {
	pageURL, err := domain.NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	ctx, span := u.tracer.Start(ctx, "ClassifyURL", trace.WithAttributes(attribute.String("url", pageURL)))
	defer span.End()

	result, err := u.classify(ctx, userID, pageURL)
	if err != nil {
		span.RecordError(err)
		metrics.RecordError("classify_url", "discovery")
		return nil, err
	}

	span.SetAttributes(attribute.String("classification", string(result.Type)))
	metrics.RecordDiscovery(string(result.Type))
	logger.Logger.InfoContext(ctx, "URL classified", "url", pageURL, "type", result.Type)
	return result, nil
}

func (u *DiscoverFeedUsecase) classify(ctx context.Context, userID uuid.UUID, pageURL string) (*domain.Classification, error) {
	parsed, err := u.fetcher.FetchFeed(ctx, pageURL)
	if err == nil {
		return u.classifyFeed(ctx, userID, pageURL, parsed)
	}
	logger.Logger.DebugContext(ctx, "Not a direct feed, trying discovery", "url", pageURL, "error", err)

	page, err := u.pages.FetchPage(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	contentType := strings.ToLower(page.ContentType)
	if isFeedContentType(contentType) {
		parsed, err := u.fetcher.FetchFeed(ctx, pageURL)
		if err == nil {
			return u.classifyFeed(ctx, userID, pageURL, parsed)
		}
		logger.Logger.DebugContext(ctx, "XML response is not a usable feed", "url", pageURL, "error", err)
	}

	if !strings.Contains(contentType, "html") {
		return nil, &domain.ContentTypeError{ContentType: page.ContentType}
	}

	if feeds := u.discoverOnPage(ctx, page); len(feeds) > 0 {
		return &domain.Classification{
			Type:    domain.ClassificationFeedsDiscovered,
			Message: foundFeedsMessage(len(feeds)),
			Feeds:   feeds,
		}, nil
	}

	meta := html_parser.ExtractArticleMetadata(page.Body, pageURL)
	if meta.IsArticle {
		return &domain.Classification{
			Type:    domain.ClassificationArticleDetected,
			Message: "This appears to be an article. Would you like to save it?",
			Article: &meta,
		}, nil
	}

	title := meta.Title
	if title == "" {
		title = "Untitled"
	}
	return &domain.Classification{
		Type:       domain.ClassificationUnknown,
		Message:    "No feeds found on this page. You can save it as a manual article if you like.",
		Suggestion: &domain.Suggestion{Title: title, URL: pageURL},
	}, nil
}

func (u *DiscoverFeedUsecase) classifyFeed(ctx context.Context, userID uuid.UUID, feedURL string, parsed *domain.ParsedFeed) (*domain.Classification, error) {
	existing, err := u.feedRepo.FindFeedByURL(ctx, userID, feedURL)
	if err == nil {
		return feedExists(existing), nil
	}
	if !errors.Is(err, domain.ErrFeedNotFound) {
		return nil, err
	}

	sub, err := u.subscriber.SubscribeParsed(ctx, userID, feedURL, parsed)
	if errors.Is(err, domain.ErrFeedAlreadyExists) {
		// Lost a race with a concurrent subscribe.
		if existing, findErr := u.feedRepo.FindFeedByURL(ctx, userID, feedURL); findErr == nil {
			return feedExists(existing), nil
		}
	}
	if err != nil {
		return nil, err
	}

	return &domain.Classification{
		Type:    domain.ClassificationFeedAdded,
		Message: fmt.Sprintf("Feed added successfully with %d articles", sub.ArticlesAdded),
		Feed: &domain.FeedSummary{
			ID:         sub.Feed.ID,
			Title:      sub.Feed.Title,
			URL:        sub.Feed.URL,
			SiteURL:    sub.Feed.SiteURL,
			FaviconURL: sub.Feed.FaviconURL,
		},
		ArticlesAdded: sub.ArticlesAdded,
	}, nil
}

func feedExists(feed *domain.Feed) *domain.Classification {
	return &domain.Classification{
		Type:    domain.ClassificationFeedExists,
		Message: "This feed is already in your subscription list",
		Feed:    &domain.FeedSummary{ID: feed.ID, Title: feed.Title, URL: feed.URL},
	}
}

func foundFeedsMessage(n int) string {
	if n == 1 {
		return "Found 1 feed"
	}
	return fmt.Sprintf("Found %d feeds", n)
}

// DiscoverFeeds lists the feeds a page advertises, or failing that the
// conventional feed paths of its host that answer with a feed content type.
func (u *DiscoverFeedUsecase) DiscoverFeeds(ctx context.Context, rawURL string) ([]domain.DiscoveredFeed, error) {
	pageURL, err := domain.NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	ctx, span := u.tracer.Start(ctx, "DiscoverFeeds", trace.WithAttributes(attribute.String("url", pageURL)))
	defer span.End()

	page, err := u.pages.FetchPage(ctx, pageURL)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	feeds := u.discoverOnPage(ctx, page)
	if len(feeds) == 0 {
		return nil, domain.ErrNoFeedsFound
	}
	span.SetAttributes(attribute.Int("feeds", len(feeds)))
	return feeds, nil
}

func (u *DiscoverFeedUsecase) discoverOnPage(ctx context.Context, page *domain.Page) []domain.DiscoveredFeed {
	if feeds := html_parser.ExtractFeedLinks(page.Body, page.URL); len(feeds) > 0 {
		return feeds
	}
	return u.checkCommonPaths(ctx, page.URL)
}

// checkCommonPaths sends HEAD requests to the conventional feed locations of
// pageURL's host. Results keep the order of commonFeedPaths.
func (u *DiscoverFeedUsecase) checkCommonPaths(ctx context.Context, pageURL string) []domain.DiscoveredFeed {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Host == "" {
		return nil
	}
	base := parsed.Scheme + "://" + parsed.Host

	found := make([]*domain.DiscoveredFeed, len(commonFeedPaths))
	var g errgroup.Group
	g.SetLimit(maxConcurrentPathChecks)
	for i, path := range commonFeedPaths {
		g.Go(func() error {
			found[i] = u.checkPath(ctx, base, path)
			return nil
		})
	}
	_ = g.Wait()

	feeds := []domain.DiscoveredFeed{}
	for _, f := range found {
		if f != nil {
			feeds = append(feeds, *f)
		}
	}
	return feeds
}

func (u *DiscoverFeedUsecase) checkPath(ctx context.Context, base, path string) *domain.DiscoveredFeed {
	candidate := base + path
	if u.robots != nil && !u.robots.IsAllowed(ctx, candidate) {
		logger.Logger.DebugContext(ctx, "Feed path disallowed by robots.txt", "url", candidate)
		return nil
	}

	page, err := u.pages.HeadPage(ctx, candidate)
	if err != nil {
		return nil
	}
	if page.StatusCode < 200 || page.StatusCode >= 300 {
		return nil
	}
	if !isFeedContentType(strings.ToLower(page.ContentType)) {
		return nil
	}

	kind := domain.FeedKindRSS
	if strings.Contains(path, "atom") {
		kind = domain.FeedKindAtom
	}
	return &domain.DiscoveredFeed{
		URL:   candidate,
		Title: fmt.Sprintf("Feed (%s)", path),
		Type:  kind,
	}
}

func isFeedContentType(contentType string) bool {
	return strings.Contains(contentType, "xml") ||
		strings.Contains(contentType, "rss") ||
		strings.Contains(contentType, "atom")
}
