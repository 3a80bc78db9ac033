package reading_status_usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/phareim/reader/domain"
	"github.com/phareim/reader/mocks"
)

func newUsecase(t *testing.T) (*ReadingStatusUsecase, *mocks.MockFeedRepositoryPort, *mocks.MockArticleRepositoryPort) {
	ctrl := gomock.NewController(t)
	feedRepo := mocks.NewMockFeedRepositoryPort(ctrl)
	articleRepo := mocks.NewMockArticleRepositoryPort(ctrl)
	return NewReadingStatusUsecase(feedRepo, articleRepo), feedRepo, articleRepo
}

func TestListArticles(t *testing.T) {
	ctx := context.Background()
	userID, feedID := uuid.New(), uuid.New()

	t.Run("without feed filter", func(t *testing.T) {
		u, _, articleRepo := newUsecase(t)
		filter := domain.ArticleFilter{UnreadOnly: true, Limit: 20}
		articles := []domain.Article{{ID: uuid.New()}}
		articleRepo.EXPECT().ListArticles(ctx, userID, filter).Return(articles, nil)

		got, err := u.ListArticles(ctx, userID, filter)

		require.NoError(t, err)
		assert.Equal(t, articles, got)
	})

	t.Run("foreign feed", func(t *testing.T) {
		u, feedRepo, articleRepo := newUsecase(t)
		feedRepo.EXPECT().FindFeedByID(ctx, userID, feedID).Return(nil, domain.ErrFeedNotFound)
		articleRepo.EXPECT().ListArticles(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := u.ListArticles(ctx, userID, domain.ArticleFilter{FeedID: &feedID})

		assert.ErrorIs(t, err, domain.ErrFeedNotFound)
	})
}

func TestMarkRead(t *testing.T) {
	u, _, articleRepo := newUsecase(t)
	ctx := context.Background()
	userID, articleID := uuid.New(), uuid.New()
	readAt := time.Now()

	articleRepo.EXPECT().MarkArticleRead(ctx, userID, articleID, true).
		Return(&domain.Article{ID: articleID, IsRead: true, ReadAt: &readAt}, nil)
	articleRepo.EXPECT().MarkArticleRead(ctx, userID, articleID, false).
		Return(&domain.Article{ID: articleID}, nil)

	read, err := u.MarkRead(ctx, userID, articleID, true)
	require.NoError(t, err)
	assert.NotNil(t, read.ReadAt)

	unread, err := u.MarkRead(ctx, userID, articleID, false)
	require.NoError(t, err)
	assert.False(t, unread.IsRead)
	assert.Nil(t, unread.ReadAt)
}

func TestSetStarred_NotFound(t *testing.T) {
	u, _, articleRepo := newUsecase(t)
	articleRepo.EXPECT().SetArticleStarred(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(nil, domain.ErrArticleNotFound)

	_, err := u.SetStarred(context.Background(), uuid.New(), uuid.New(), true)

	assert.ErrorIs(t, err, domain.ErrArticleNotFound)
}

func TestMarkAllRead(t *testing.T) {
	ctx := context.Background()
	userID, feedID := uuid.New(), uuid.New()

	t.Run("all feeds", func(t *testing.T) {
		u, _, articleRepo := newUsecase(t)
		articleRepo.EXPECT().MarkAllRead(ctx, userID, (*uuid.UUID)(nil)).Return(4, nil)

		count, err := u.MarkAllRead(ctx, userID, nil)

		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("one feed", func(t *testing.T) {
		u, feedRepo, articleRepo := newUsecase(t)
		feedRepo.EXPECT().FindFeedByID(ctx, userID, feedID).Return(&domain.Feed{ID: feedID}, nil)
		articleRepo.EXPECT().MarkAllRead(ctx, userID, &feedID).Return(2, nil)

		count, err := u.MarkAllRead(ctx, userID, &feedID)

		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}
