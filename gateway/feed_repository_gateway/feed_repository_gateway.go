// Package feed_repository_gateway serves the repository ports from PostgreSQL,
// with article bodies optionally kept in a content store.
package feed_repository_gateway

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/phareim/reader/domain"
	"github.com/phareim/reader/driver/content_store_driver"
	"github.com/phareim/reader/driver/feed_db"
	"github.com/phareim/reader/port/content_store_port"
	"github.com/phareim/reader/utils/logger"
)

type FeedRepositoryGateway struct {
	db      *feed_db.FeedDBRepository
	content content_store_port.ContentStorePort
}

// NewFeedRepositoryGateway keeps bodies inline when content is nil.
func NewFeedRepositoryGateway(db *feed_db.FeedDBRepository, content content_store_port.ContentStorePort) *FeedRepositoryGateway {
	return &FeedRepositoryGateway{db: db, content: content}
}

// offloader returns the hook the driver calls inside its transaction, plus a
// discard func that removes every blob the hook wrote. Callers run discard when
// the transaction fails so no blob outlives its row.
func (g *FeedRepositoryGateway) offloader() (feed_db.ContentOffloader, func(context.Context)) {
	if g.content == nil {
		return nil, func(context.Context) {}
	}
	var written []string
	offload := func(ctx context.Context, articleID uuid.UUID, body string) (string, error) {
		key := content_store_driver.ArticleKey(articleID)
		if err := g.content.PutContent(ctx, key, body); err != nil {
			return "", err
		}
		written = append(written, key)
		return key, nil
	}
	discard := func(ctx context.Context) {
		g.deleteBlobs(context.WithoutCancel(ctx), written...)
	}
	return offload, discard
}

// resolveContent loads an offloaded body into article.Content. A missing blob
// leaves the content empty rather than failing the read.
func (g *FeedRepositoryGateway) resolveContent(ctx context.Context, article *domain.Article) error {
	if article.ContentKey == "" || g.content == nil {
		return nil
	}

	body, err := g.content.GetContent(ctx, article.ContentKey)
	if errors.Is(err, content_store_port.ErrContentNotFound) {
		logger.Logger.WarnContext(ctx, "article content blob missing",
			"article_id", article.ID, "content_key", article.ContentKey)
		return nil
	}
	if err != nil {
		return err
	}
	article.Content = body
	return nil
}

func (g *FeedRepositoryGateway) deleteBlobs(ctx context.Context, keys ...string) {
	if g.content == nil || len(keys) == 0 {
		return
	}
	if err := g.content.DeleteContent(ctx, keys...); err != nil {
		logger.Logger.WarnContext(ctx, "failed to delete article content", "keys", len(keys), "error", err)
	}
}

// Sync repository.

func (g *FeedRepositoryGateway) UpsertFeedMetadata(ctx context.Context, feedID uuid.UUID, meta domain.FeedMetadata) error {
	return g.db.UpsertFeedMetadata(ctx, feedID, meta)
}

func (g *FeedRepositoryGateway) InsertArticleIfNew(ctx context.Context, feedID uuid.UUID, article domain.ParsedArticle) (domain.InsertResult, error) {
	offload, discard := g.offloader()
	result, err := g.db.InsertArticleIfNew(ctx, feedID, article, offload)
	if err != nil {
		discard(ctx)
		return domain.InsertResult{}, err
	}
	return result, nil
}

func (g *FeedRepositoryGateway) RecordFeedError(ctx context.Context, feedID uuid.UUID, message string) (domain.FeedHealth, error) {
	return g.db.RecordFeedError(ctx, feedID, message)
}

func (g *FeedRepositoryGateway) RecordFeedSuccess(ctx context.Context, feedID uuid.UUID) error {
	return g.db.RecordFeedSuccess(ctx, feedID)
}

func (g *FeedRepositoryGateway) UpdateArticleImage(ctx context.Context, articleID uuid.UUID, imageURL string) error {
	return g.db.UpdateArticleImage(ctx, articleID, imageURL)
}

func (g *FeedRepositoryGateway) ListActiveFeeds(ctx context.Context, userID uuid.UUID) ([]domain.Feed, error) {
	return g.db.ListActiveFeeds(ctx, userID)
}

func (g *FeedRepositoryGateway) ListAllActiveFeeds(ctx context.Context) ([]domain.Feed, error) {
	return g.db.ListAllActiveFeeds(ctx)
}

// Subscriptions.

func (g *FeedRepositoryGateway) ListFeeds(ctx context.Context, userID uuid.UUID) ([]domain.Feed, error) {
	return g.db.ListFeeds(ctx, userID)
}

func (g *FeedRepositoryGateway) FindFeedByID(ctx context.Context, userID, feedID uuid.UUID) (*domain.Feed, error) {
	return g.db.FindFeedByID(ctx, userID, feedID)
}

func (g *FeedRepositoryGateway) FindFeedDetail(ctx context.Context, userID, feedID uuid.UUID) (*domain.FeedDetail, error) {
	return g.db.FindFeedDetail(ctx, userID, feedID)
}

func (g *FeedRepositoryGateway) FindFeedByURL(ctx context.Context, userID uuid.UUID, feedURL string) (*domain.Feed, error) {
	return g.db.FindFeedByURL(ctx, userID, feedURL)
}

func (g *FeedRepositoryGateway) CreateFeed(ctx context.Context, userID uuid.UUID, feedURL string, meta domain.FeedMetadata) (*domain.Feed, error) {
	return g.db.CreateFeed(ctx, userID, feedURL, meta)
}

func (g *FeedRepositoryGateway) FindOrCreateManualFeed(ctx context.Context, userID uuid.UUID) (*domain.Feed, error) {
	return g.db.FindOrCreateManualFeed(ctx, userID)
}

func (g *FeedRepositoryGateway) DeleteFeed(ctx context.Context, userID, feedID uuid.UUID) (int, error) {
	count, keys, err := g.db.DeleteFeed(ctx, userID, feedID)
	if err != nil {
		return 0, err
	}
	g.deleteBlobs(ctx, keys...)
	return count, nil
}

// Articles.

func (g *FeedRepositoryGateway) ListArticles(ctx context.Context, userID uuid.UUID, filter domain.ArticleFilter) ([]domain.Article, error) {
	articles, err := g.db.ListArticles(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	for i := range articles {
		if err := g.resolveContent(ctx, &articles[i]); err != nil {
			return nil, err
		}
	}
	return articles, nil
}

func (g *FeedRepositoryGateway) GetArticle(ctx context.Context, userID, articleID uuid.UUID) (*domain.Article, error) {
	return g.withContent(ctx)(g.db.GetArticle(ctx, userID, articleID))
}

func (g *FeedRepositoryGateway) MarkArticleRead(ctx context.Context, userID, articleID uuid.UUID, read bool) (*domain.Article, error) {
	return g.withContent(ctx)(g.db.MarkArticleRead(ctx, userID, articleID, read))
}

func (g *FeedRepositoryGateway) SetArticleStarred(ctx context.Context, userID, articleID uuid.UUID, starred bool) (*domain.Article, error) {
	return g.withContent(ctx)(g.db.SetArticleStarred(ctx, userID, articleID, starred))
}

func (g *FeedRepositoryGateway) MarkAllRead(ctx context.Context, userID uuid.UUID, feedID *uuid.UUID) (int, error) {
	return g.db.MarkAllRead(ctx, userID, feedID)
}

func (g *FeedRepositoryGateway) withContent(ctx context.Context) func(*domain.Article, error) (*domain.Article, error) {
	return func(article *domain.Article, err error) (*domain.Article, error) {
		if err != nil {
			return nil, err
		}
		if err := g.resolveContent(ctx, article); err != nil {
			return nil, err
		}
		return article, nil
	}
}

func (g *FeedRepositoryGateway) UpsertManualArticle(ctx context.Context, feedID uuid.UUID, article domain.ParsedArticle) (*domain.Article, bool, error) {
	offload, discard := g.offloader()
	stored, created, err := g.db.UpsertManualArticle(ctx, feedID, article, offload)
	if err != nil {
		discard(ctx)
		return nil, false, err
	}
	switch {
	case stored.ContentKey != "":
		stored.Content = article.Content
	case !created:
		// The row no longer references a blob; drop the one an earlier add left.
		g.deleteBlobs(ctx, content_store_driver.ArticleKey(stored.ID))
	}
	return stored, created, nil
}

func (g *FeedRepositoryGateway) DeleteManualArticle(ctx context.Context, userID, articleID uuid.UUID) error {
	key, err := g.db.DeleteManualArticle(ctx, userID, articleID)
	if err != nil {
		return err
	}
	if key != "" {
		g.deleteBlobs(ctx, key)
	}
	return nil
}

// Bookmarks and tags.

func (g *FeedRepositoryGateway) SaveArticle(ctx context.Context, userID, articleID uuid.UUID) (*domain.SavedArticleRef, error) {
	return g.db.SaveArticle(ctx, userID, articleID)
}

func (g *FeedRepositoryGateway) UnsaveArticle(ctx context.Context, userID, articleID uuid.UUID) error {
	return g.db.UnsaveArticle(ctx, userID, articleID)
}

func (g *FeedRepositoryGateway) ListSavedArticles(ctx context.Context, userID uuid.UUID, tag string) ([]domain.SavedArticle, error) {
	saved, err := g.db.ListSavedArticles(ctx, userID, tag)
	if err != nil {
		return nil, err
	}
	for i := range saved {
		if err := g.resolveContent(ctx, &saved[i].Article); err != nil {
			return nil, err
		}
	}
	return saved, nil
}

func (g *FeedRepositoryGateway) CountSavedArticles(ctx context.Context, userID uuid.UUID) (domain.SavedCounts, error) {
	return g.db.CountSavedArticles(ctx, userID)
}

func (g *FeedRepositoryGateway) SetSavedArticleTags(ctx context.Context, userID, savedID uuid.UUID, names []string) ([]string, error) {
	return g.db.SetSavedArticleTags(ctx, userID, savedID, names)
}

func (g *FeedRepositoryGateway) ListTags(ctx context.Context, userID uuid.UUID) ([]domain.Tag, error) {
	return g.db.ListTags(ctx, userID)
}

func (g *FeedRepositoryGateway) CreateTag(ctx context.Context, userID uuid.UUID, name string, color *string) (*domain.Tag, error) {
	return g.db.CreateTag(ctx, userID, name, color)
}

func (g *FeedRepositoryGateway) UpdateTag(ctx context.Context, userID, tagID uuid.UUID, patch domain.TagPatch) (*domain.Tag, error) {
	return g.db.UpdateTag(ctx, userID, tagID, patch)
}

func (g *FeedRepositoryGateway) DeleteTag(ctx context.Context, userID, tagID uuid.UUID) error {
	return g.db.DeleteTag(ctx, userID, tagID)
}

func (g *FeedRepositoryGateway) SetFeedTags(ctx context.Context, userID, feedID uuid.UUID, names []string) error {
	return g.db.SetFeedTags(ctx, userID, feedID, names)
}
