package subscribe_feed_usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/phareim/reader/domain"
	"github.com/phareim/reader/mocks"
)

type ingesterFunc func(ctx context.Context, feed domain.Feed, parsed *domain.ParsedFeed, limit int) domain.SyncResult

func (f ingesterFunc) IngestParsed(ctx context.Context, feed domain.Feed, parsed *domain.ParsedFeed, limit int) domain.SyncResult {
	return f(ctx, feed, parsed, limit)
}

func TestSubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	userID := uuid.New()
	parsed := &domain.ParsedFeed{
		Title: "Example",
		Items: []domain.ParsedArticle{{GUID: "1"}, {GUID: "2"}},
	}
	created := &domain.Feed{ID: uuid.New(), UserID: userID, URL: "https://example.com/feed.xml", Title: "Example"}

	fetcher := mocks.NewMockFeedFetchPort(ctrl)
	feedRepo := mocks.NewMockFeedRepositoryPort(ctrl)

	feedRepo.EXPECT().FindFeedByURL(ctx, userID, "https://example.com/feed.xml").Return(nil, domain.ErrFeedNotFound)
	fetcher.EXPECT().FetchFeed(ctx, "https://example.com/feed.xml").Return(parsed, nil)
	feedRepo.EXPECT().CreateFeed(ctx, userID, "https://example.com/feed.xml", parsed.Metadata()).Return(created, nil)

	var gotLimit int
	ingester := ingesterFunc(func(_ context.Context, feed domain.Feed, p *domain.ParsedFeed, limit int) domain.SyncResult {
		gotLimit = limit
		assert.Equal(t, created.ID, feed.ID)
		assert.Same(t, parsed, p)
		return domain.Succeeded(feed, 2)
	})

	sub, err := NewSubscribeFeedUsecase(fetcher, feedRepo, ingester, 0).Subscribe(ctx, userID, "example.com/feed.xml")

	require.NoError(t, err)
	assert.Equal(t, created, sub.Feed)
	assert.Equal(t, 2, sub.ArticlesAdded)
	assert.Equal(t, DefaultInitialArticles, gotLimit)
}

func TestSubscribe_AlreadySubscribed(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	userID := uuid.New()

	fetcher := mocks.NewMockFeedFetchPort(ctrl)
	feedRepo := mocks.NewMockFeedRepositoryPort(ctrl)

	feedRepo.EXPECT().FindFeedByURL(ctx, userID, "https://example.com/rss").Return(&domain.Feed{ID: uuid.New()}, nil)
	fetcher.EXPECT().FetchFeed(gomock.Any(), gomock.Any()).Times(0)

	_, err := NewSubscribeFeedUsecase(fetcher, feedRepo, nil, 50).Subscribe(ctx, userID, "https://example.com/rss")

	assert.ErrorIs(t, err, domain.ErrFeedAlreadyExists)
}

func TestSubscribe_FetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	userID := uuid.New()
	fetchErr := domain.NewFetchError(domain.FetchErrorInvalidFormat, nil)

	fetcher := mocks.NewMockFeedFetchPort(ctrl)
	feedRepo := mocks.NewMockFeedRepositoryPort(ctrl)

	feedRepo.EXPECT().FindFeedByURL(ctx, userID, "https://example.com/").Return(nil, domain.ErrFeedNotFound)
	fetcher.EXPECT().FetchFeed(ctx, "https://example.com/").Return(nil, fetchErr)
	feedRepo.EXPECT().CreateFeed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := NewSubscribeFeedUsecase(fetcher, feedRepo, nil, 50).Subscribe(ctx, userID, "https://example.com/")

	assert.Same(t, fetchErr, err)
}

func TestSubscribe_InvalidURL(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := NewSubscribeFeedUsecase(mocks.NewMockFeedFetchPort(ctrl), mocks.NewMockFeedRepositoryPort(ctrl), nil, 50).
		Subscribe(context.Background(), uuid.New(), "   ")

	assert.ErrorIs(t, err, domain.ErrInvalidURL)
}

func TestSubscribeParsed_ImportFailureStillSubscribes(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	userID := uuid.New()
	parsed := &domain.ParsedFeed{Title: "Example"}
	created := &domain.Feed{ID: uuid.New(), Title: "Example"}

	feedRepo := mocks.NewMockFeedRepositoryPort(ctrl)
	feedRepo.EXPECT().CreateFeed(ctx, userID, "https://example.com/feed", parsed.Metadata()).Return(created, nil)

	ingester := ingesterFunc(func(_ context.Context, feed domain.Feed, _ *domain.ParsedFeed, _ int) domain.SyncResult {
		return domain.Failed(feed, domain.SyncStagePersisting, "db down")
	})

	sub, err := NewSubscribeFeedUsecase(nil, feedRepo, ingester, 50).SubscribeParsed(ctx, userID, "https://example.com/feed", parsed)

	require.NoError(t, err)
	assert.Equal(t, 0, sub.ArticlesAdded)
}

func TestUnsubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	userID, feedID := uuid.New(), uuid.New()

	feedRepo := mocks.NewMockFeedRepositoryPort(ctrl)
	feedRepo.EXPECT().DeleteFeed(ctx, userID, feedID).Return(12, nil)

	count, err := NewSubscribeFeedUsecase(nil, feedRepo, nil, 50).Unsubscribe(ctx, userID, feedID)

	require.NoError(t, err)
	assert.Equal(t, 12, count)
}

func TestGetFeed(t *testing.T) {
	ctx := context.Background()
	userID, feedID := uuid.New(), uuid.New()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		feedRepo := mocks.NewMockFeedRepositoryPort(ctrl)
		detail := &domain.FeedDetail{Feed: domain.Feed{ID: feedID, UserID: userID}, Tags: []string{"go"}, UnreadCount: 3}
		feedRepo.EXPECT().FindFeedDetail(ctx, userID, feedID).Return(detail, nil)

		got, err := NewSubscribeFeedUsecase(nil, feedRepo, nil, 50).GetFeed(ctx, userID, feedID)

		require.NoError(t, err)
		assert.Equal(t, detail, got)
	})

	t.Run("not the user's feed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		feedRepo := mocks.NewMockFeedRepositoryPort(ctrl)
		feedRepo.EXPECT().FindFeedDetail(ctx, userID, feedID).Return(nil, domain.ErrFeedNotFound)

		_, err := NewSubscribeFeedUsecase(nil, feedRepo, nil, 50).GetFeed(ctx, userID, feedID)

		assert.ErrorIs(t, err, domain.ErrFeedNotFound)
	})
}
