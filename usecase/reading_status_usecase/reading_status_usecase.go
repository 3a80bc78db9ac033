package reading_status_usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/phareim/reader/domain"
	"github.com/phareim/reader/port/feed_repository_port"
	"github.com/phareim/reader/utils/logger"
)

type ReadingStatusUsecase struct {
	feedRepo    feed_repository_port.FeedRepositoryPort
	articleRepo feed_repository_port.ArticleRepositoryPort
}

func NewReadingStatusUsecase(feedRepo feed_repository_port.FeedRepositoryPort, articleRepo feed_repository_port.ArticleRepositoryPort) *ReadingStatusUsecase {
	return &ReadingStatusUsecase{feedRepo: feedRepo, articleRepo: articleRepo}
}

// ListArticles returns the user's articles newest first. A feed filter must
// name one of the user's feeds.
func (u *ReadingStatusUsecase) ListArticles(ctx context.Context, userID uuid.UUID, filter domain.ArticleFilter) ([]domain.Article, error) {
	if filter.FeedID != nil {
		if _, err := u.feedRepo.FindFeedByID(ctx, userID, *filter.FeedID); err != nil {
			return nil, err
		}
	}
	return u.articleRepo.ListArticles(ctx, userID, filter)
}

func (u *ReadingStatusUsecase) GetArticle(ctx context.Context, userID, articleID uuid.UUID) (*domain.Article, error) {
	return u.articleRepo.GetArticle(ctx, userID, articleID)
}

// MarkRead sets or clears the read flag; ReadAt follows it.
func (u *ReadingStatusUsecase) MarkRead(ctx context.Context, userID, articleID uuid.UUID, read bool) (*domain.Article, error) {
	return u.articleRepo.MarkArticleRead(ctx, userID, articleID, read)
}

func (u *ReadingStatusUsecase) SetStarred(ctx context.Context, userID, articleID uuid.UUID, starred bool) (*domain.Article, error) {
	return u.articleRepo.SetArticleStarred(ctx, userID, articleID, starred)
}

// MarkAllRead marks every unread article as read, within feedID when given.
func (u *ReadingStatusUsecase) MarkAllRead(ctx context.Context, userID uuid.UUID, feedID *uuid.UUID) (int, error) {
	if feedID != nil {
		if _, err := u.feedRepo.FindFeedByID(ctx, userID, *feedID); err != nil {
			return 0, err
		}
	}

	count, err := u.articleRepo.MarkAllRead(ctx, userID, feedID)
	if err != nil {
		return 0, err
	}
	logger.Logger.InfoContext(ctx, "Articles marked read", "user_id", userID, "count", count)
	return count, nil
}
