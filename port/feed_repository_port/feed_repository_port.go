package feed_repository_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/phareim/reader/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=feed_repository_port.go -destination=../../mocks/mock_feed_repository_port.go -package=mocks

// FeedSyncRepositoryPort is what the sync orchestrator needs from storage.
type FeedSyncRepositoryPort interface {
	UpsertFeedMetadata(ctx context.Context, feedID uuid.UUID, meta domain.FeedMetadata) error
	// InsertArticleIfNew is a silent no-op when (feedID, article.GUID) already exists.
	InsertArticleIfNew(ctx context.Context, feedID uuid.UUID, article domain.ParsedArticle) (domain.InsertResult, error)
	// RecordFeedError increments the error counter and deactivates the feed
	// once it reaches domain.FeedErrorThreshold, in one atomic step.
	RecordFeedError(ctx context.Context, feedID uuid.UUID, message string) (domain.FeedHealth, error)
	// RecordFeedSuccess resets the counter, clears the last error, stamps
	// last_fetched_at and re-activates the feed.
	RecordFeedSuccess(ctx context.Context, feedID uuid.UUID) error
	UpdateArticleImage(ctx context.Context, articleID uuid.UUID, imageURL string) error
	ListActiveFeeds(ctx context.Context, userID uuid.UUID) ([]domain.Feed, error)
	ListAllActiveFeeds(ctx context.Context) ([]domain.Feed, error)
}

// FeedRepositoryPort manages a user's subscriptions.
type FeedRepositoryPort interface {
	ListFeeds(ctx context.Context, userID uuid.UUID) ([]domain.Feed, error)
	FindFeedByID(ctx context.Context, userID, feedID uuid.UUID) (*domain.Feed, error)
	// FindFeedDetail adds the feed's tag names and unread count.
	FindFeedDetail(ctx context.Context, userID, feedID uuid.UUID) (*domain.FeedDetail, error)
	// FindFeedByURL returns domain.ErrFeedNotFound when the user has no such feed.
	FindFeedByURL(ctx context.Context, userID uuid.UUID, feedURL string) (*domain.Feed, error)
	// CreateFeed returns domain.ErrFeedAlreadyExists on a duplicate URL.
	CreateFeed(ctx context.Context, userID uuid.UUID, feedURL string, meta domain.FeedMetadata) (*domain.Feed, error)
	FindOrCreateManualFeed(ctx context.Context, userID uuid.UUID) (*domain.Feed, error)
	// DeleteFeed removes the feed with its articles and returns how many articles went with it.
	DeleteFeed(ctx context.Context, userID, feedID uuid.UUID) (int, error)
}

// ArticleRepositoryPort reads and updates stored articles.
type ArticleRepositoryPort interface {
	ListArticles(ctx context.Context, userID uuid.UUID, filter domain.ArticleFilter) ([]domain.Article, error)
	GetArticle(ctx context.Context, userID, articleID uuid.UUID) (*domain.Article, error)
	MarkArticleRead(ctx context.Context, userID, articleID uuid.UUID, read bool) (*domain.Article, error)
	SetArticleStarred(ctx context.Context, userID, articleID uuid.UUID, starred bool) (*domain.Article, error)
	// MarkAllRead marks the user's unread articles as read, optionally within
	// one feed, and returns how many changed.
	MarkAllRead(ctx context.Context, userID uuid.UUID, feedID *uuid.UUID) (int, error)
	// UpsertManualArticle stores article in the manual feed keyed by its GUID and
	// reports whether a new row was created.
	UpsertManualArticle(ctx context.Context, feedID uuid.UUID, article domain.ParsedArticle) (*domain.Article, bool, error)
	// DeleteManualArticle returns domain.ErrNotManualArticle for feed-sourced articles.
	DeleteManualArticle(ctx context.Context, userID, articleID uuid.UUID) error
}
