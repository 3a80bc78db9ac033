package subscribe_feed_usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/phareim/reader/domain"
	"github.com/phareim/reader/port/feed_fetch_port"
	"github.com/phareim/reader/port/feed_repository_port"
	"github.com/phareim/reader/utils/logger"
)

const DefaultInitialArticles = 50

// FeedIngester stores the items of a freshly fetched document.
type FeedIngester interface {
	IngestParsed(ctx context.Context, feed domain.Feed, parsed *domain.ParsedFeed, limit int) domain.SyncResult
}

// Subscription is a newly created feed and how many articles came with it.
type Subscription struct {
	Feed          *domain.Feed
	ArticlesAdded int
}

type SubscribeFeedUsecase struct {
	fetcher         feed_fetch_port.FeedFetchPort
	feedRepo        feed_repository_port.FeedRepositoryPort
	ingester        FeedIngester
	initialArticles int
}

func NewSubscribeFeedUsecase(
	fetcher feed_fetch_port.FeedFetchPort,
	feedRepo feed_repository_port.FeedRepositoryPort,
	ingester FeedIngester,
	initialArticles int,
) *SubscribeFeedUsecase {
	if initialArticles <= 0 {
		initialArticles = DefaultInitialArticles
	}
	return &SubscribeFeedUsecase{
		fetcher:         fetcher,
		feedRepo:        feedRepo,
		ingester:        ingester,
		initialArticles: initialArticles,
	}
}

// Subscribe adds rawURL as a feed of userID. An existing subscription yields
// domain.ErrFeedAlreadyExists before anything is fetched.
func (u *SubscribeFeedUsecase) Subscribe(ctx context.Context, userID uuid.UUID, rawURL string) (*Subscription, error) {
	feedURL, err := domain.NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	if _, err := u.feedRepo.FindFeedByURL(ctx, userID, feedURL); err == nil {
		return nil, domain.ErrFeedAlreadyExists
	} else if !errors.Is(err, domain.ErrFeedNotFound) {
		return nil, err
	}

	parsed, err := u.fetcher.FetchFeed(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	return u.SubscribeParsed(ctx, userID, feedURL, parsed)
}

// SubscribeParsed creates the feed from a document that was already fetched
// and ingests its first items.
func (u *SubscribeFeedUsecase) SubscribeParsed(ctx context.Context, userID uuid.UUID, feedURL string, parsed *domain.ParsedFeed) (*Subscription, error) {
	feed, err := u.feedRepo.CreateFeed(ctx, userID, feedURL, parsed.Metadata())
	if err != nil {
		return nil, err
	}

	result := u.ingester.IngestParsed(ctx, *feed, parsed, u.initialArticles)
	if !result.Success {
		logger.Logger.WarnContext(ctx, "Initial article import failed",
			"feed_id", feed.ID,
			"error", result.Error)
	}

	logger.Logger.InfoContext(ctx, "Feed subscribed",
		"feed_id", feed.ID,
		"feed_url", feedURL,
		"articles_added", result.NewArticleCount())

	return &Subscription{Feed: feed, ArticlesAdded: result.NewArticleCount()}, nil
}

func (u *SubscribeFeedUsecase) ListFeeds(ctx context.Context, userID uuid.UUID) ([]domain.Feed, error) {
	return u.feedRepo.ListFeeds(ctx, userID)
}

// GetFeed returns one of the user's feeds with its tags and unread count.
func (u *SubscribeFeedUsecase) GetFeed(ctx context.Context, userID, feedID uuid.UUID) (*domain.FeedDetail, error) {
	return u.feedRepo.FindFeedDetail(ctx, userID, feedID)
}

// Unsubscribe deletes the feed with its articles and returns how many went.
func (u *SubscribeFeedUsecase) Unsubscribe(ctx context.Context, userID, feedID uuid.UUID) (int, error) {
	count, err := u.feedRepo.DeleteFeed(ctx, userID, feedID)
	if err != nil {
		return 0, err
	}
	logger.Logger.InfoContext(ctx, "Feed deleted", "feed_id", feedID, "articles_deleted", count)
	return count, nil
}
