package rest

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/phareim/reader/di"
	"github.com/phareim/reader/domain"
	"github.com/phareim/reader/mocks"
	"github.com/phareim/reader/usecase/discover_feed_usecase"
	"github.com/phareim/reader/usecase/manage_tag_usecase"
	"github.com/phareim/reader/usecase/manual_article_usecase"
	"github.com/phareim/reader/usecase/reading_status_usecase"
	"github.com/phareim/reader/usecase/saved_article_usecase"
	"github.com/phareim/reader/usecase/subscribe_feed_usecase"
	"github.com/phareim/reader/usecase/sync_feed_usecase"
	"github.com/phareim/reader/utils/validator"
)

type urlValidatorFunc func(ctx context.Context, raw string) (*url.URL, error)

func (f urlValidatorFunc) ValidateRawURL(ctx context.Context, raw string) (*url.URL, error) {
	return f(ctx, raw)
}

func allowAll(_ context.Context, raw string) (*url.URL, error) {
	return url.Parse(raw)
}

type testEnv struct {
	e           *echo.Echo
	container   *di.ApplicationComponents
	fetcher     *mocks.MockFeedFetchPort
	pages       *mocks.MockPageFetchPort
	syncRepo    *mocks.MockFeedSyncRepositoryPort
	feedRepo    *mocks.MockFeedRepositoryPort
	articleRepo *mocks.MockArticleRepositoryPort
	savedRepo   *mocks.MockSavedArticleRepositoryPort
	tagRepo     *mocks.MockTagRepositoryPort
	userID      uuid.UUID
}

func newTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		fetcher:     mocks.NewMockFeedFetchPort(ctrl),
		pages:       mocks.NewMockPageFetchPort(ctrl),
		syncRepo:    mocks.NewMockFeedSyncRepositoryPort(ctrl),
		feedRepo:    mocks.NewMockFeedRepositoryPort(ctrl),
		articleRepo: mocks.NewMockArticleRepositoryPort(ctrl),
		savedRepo:   mocks.NewMockSavedArticleRepositoryPort(ctrl),
		tagRepo:     mocks.NewMockTagRepositoryPort(ctrl),
		userID:      uuid.New(),
	}
	robots := mocks.NewMockRobotsTxtPort(ctrl)
	robots.EXPECT().IsAllowed(gomock.Any(), gomock.Any()).Return(true).AnyTimes()

	v := validator.New()
	syncUsecase := sync_feed_usecase.NewSyncFeedUsecase(env.fetcher, env.syncRepo, env.feedRepo, 0, 0)
	subscribeUsecase := subscribe_feed_usecase.NewSubscribeFeedUsecase(env.fetcher, env.feedRepo, syncUsecase, 0)

	env.container = &di.ApplicationComponents{
		SyncFeedUsecase:      syncUsecase,
		SubscribeFeedUsecase: subscribeUsecase,
		DiscoverFeedUsecase:  discover_feed_usecase.NewDiscoverFeedUsecase(env.fetcher, env.pages, robots, env.feedRepo, subscribeUsecase),
		ManualArticleUsecase: manual_article_usecase.NewManualArticleUsecase(env.feedRepo, env.articleRepo, v),
		ReadingStatusUsecase: reading_status_usecase.NewReadingStatusUsecase(env.feedRepo, env.articleRepo),
		SavedArticleUsecase:  saved_article_usecase.NewSavedArticleUsecase(env.savedRepo),
		ManageTagUsecase:     manage_tag_usecase.NewManageTagUsecase(env.tagRepo),
		URLValidator:         urlValidatorFunc(allowAll),
		Validator:            v,
		HealthChecks:         map[string]di.HealthCheck{"database": func(context.Context) error { return nil }},
	}

	env.e = echo.New()
	RegisterRoutes(env.e, env.container)
	return env
}

func (env *testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(HeaderUserID, env.userID.String())

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func TestUserHeaderRequired(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/feeds", nil)
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	env.container.HealthChecks["content_store"] = func(context.Context) error { return stderrors.New("down") }
	rec = env.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, "unhealthy", body["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestListFeeds(t *testing.T) {
	env := newTestEnv(t)
	feeds := []domain.Feed{{ID: uuid.New(), Title: "Blog", URL: "https://example.com/rss", IsActive: true}}
	env.feedRepo.EXPECT().ListFeeds(gomock.Any(), env.userID).Return(feeds, nil)

	rec := env.do(http.MethodGet, "/v1/feeds", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[feedsResponse](t, rec)
	require.Len(t, body.Feeds, 1)
	assert.Equal(t, feeds[0].ID, body.Feeds[0].ID)
}

func TestGetFeed(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		env := newTestEnv(t)
		detail := &domain.FeedDetail{
			Feed:        domain.Feed{ID: uuid.New(), UserID: env.userID, Title: "Blog", URL: "https://example.com/rss", IsActive: true},
			Tags:        []string{"go"},
			UnreadCount: 7,
		}
		env.feedRepo.EXPECT().FindFeedDetail(gomock.Any(), env.userID, detail.ID).Return(detail, nil)

		rec := env.do(http.MethodGet, "/v1/feeds/"+detail.ID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[map[string]any](t, rec)
		assert.Equal(t, detail.ID.String(), body["id"])
		assert.Equal(t, "Blog", body["title"])
		assert.Equal(t, []any{"go"}, body["tags"])
		assert.EqualValues(t, 7, body["unreadCount"])
	})

	t.Run("unknown feed", func(t *testing.T) {
		env := newTestEnv(t)
		feedID := uuid.New()
		env.feedRepo.EXPECT().FindFeedDetail(gomock.Any(), env.userID, feedID).Return(nil, domain.ErrFeedNotFound)

		rec := env.do(http.MethodGet, "/v1/feeds/"+feedID.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(http.MethodGet, "/v1/feeds/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid feed ID", decode[errorBody](t, rec).Message)
	})
}

func TestSubscribe_Conflict(t *testing.T) {
	env := newTestEnv(t)
	env.feedRepo.EXPECT().FindFeedByURL(gomock.Any(), env.userID, "https://example.com/rss").
		Return(&domain.Feed{ID: uuid.New()}, nil)

	rec := env.do(http.MethodPost, "/v1/feeds", `{"url":"example.com/rss"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "This feed is already in your subscription list", decode[errorBody](t, rec).Message)
}

func TestSubscribe_MissingURL(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/v1/feeds", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode[errorBody](t, rec).Code)
}

func TestAddSmart_BlockedURL(t *testing.T) {
	env := newTestEnv(t)
	env.container.URLValidator = urlValidatorFunc(func(context.Context, string) (*url.URL, error) {
		return nil, stderrors.New("private address")
	})

	rec := env.do(http.MethodPost, "/v1/feeds/add-smart", `{"url":"http://10.0.0.1/"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "URL not allowed for security reasons", decode[errorBody](t, rec).Message)
}

func TestAddSmart_FeedsDiscovered(t *testing.T) {
	env := newTestEnv(t)
	env.fetcher.EXPECT().FetchFeed(gomock.Any(), "https://example.com").
		Return(nil, domain.NewFetchError(domain.FetchErrorInvalidFormat, nil))
	env.pages.EXPECT().FetchPage(gomock.Any(), "https://example.com").Return(&domain.Page{
		URL:         "https://example.com",
		StatusCode:  http.StatusOK,
		ContentType: "text/html",
		Body:        `<link rel="alternate" type="application/rss+xml" href="/feed.xml">`,
	}, nil)

	rec := env.do(http.MethodPost, "/v1/feeds/add-smart", `{"url":"https://example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[domain.Classification](t, rec)
	assert.Equal(t, domain.ClassificationFeedsDiscovered, body.Type)
	assert.Equal(t, []domain.DiscoveredFeed{{URL: "https://example.com/feed.xml", Title: "RSS Feed", Type: domain.FeedKindRSS}}, body.Feeds)
}

func TestAddSmart_UnsupportedContentType(t *testing.T) {
	env := newTestEnv(t)
	env.fetcher.EXPECT().FetchFeed(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewFetchError(domain.FetchErrorInvalidFormat, nil))
	env.pages.EXPECT().FetchPage(gomock.Any(), gomock.Any()).
		Return(&domain.Page{URL: "https://example.com/a.pdf", StatusCode: http.StatusOK, ContentType: "application/pdf"}, nil)

	rec := env.do(http.MethodPost, "/v1/feeds/add-smart", `{"url":"https://example.com/a.pdf"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cannot handle content type: application/pdf", decode[errorBody](t, rec).Message)
}

func TestDiscover_NoFeeds(t *testing.T) {
	env := newTestEnv(t)
	env.pages.EXPECT().FetchPage(gomock.Any(), "https://example.com").
		Return(&domain.Page{URL: "https://example.com", StatusCode: http.StatusOK, ContentType: "text/html"}, nil)
	env.pages.EXPECT().HeadPage(gomock.Any(), gomock.Any()).
		Return(&domain.Page{StatusCode: http.StatusNotFound}, nil).AnyTimes()

	rec := env.do(http.MethodPost, "/v1/feeds/discover", `{"url":"https://example.com"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Could not discover any RSS or Atom feeds at this URL", decode[errorBody](t, rec).Message)
}

func TestRefreshFeed(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(http.MethodPost, "/v1/feeds/42/refresh", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("fetch failure is reported in the result", func(t *testing.T) {
		env := newTestEnv(t)
		feed := &domain.Feed{ID: uuid.New(), UserID: env.userID, URL: "https://example.com/rss", Title: "Blog"}
		fetchErr := domain.NewFetchError(domain.FetchErrorUnreachable, nil)

		env.feedRepo.EXPECT().FindFeedByID(gomock.Any(), env.userID, feed.ID).Return(feed, nil)
		env.fetcher.EXPECT().FetchFeed(gomock.Any(), feed.URL).Return(nil, fetchErr)
		env.syncRepo.EXPECT().RecordFeedError(gomock.Any(), feed.ID, fetchErr.Message).
			Return(domain.FeedHealth{ErrorCount: 1, IsActive: true}, nil)

		rec := env.do(http.MethodPost, "/v1/feeds/"+feed.ID.String()+"/refresh", "")

		require.Equal(t, http.StatusOK, rec.Code)
		result := decode[domain.SyncResult](t, rec)
		assert.False(t, result.Success)
		assert.Equal(t, fetchErr.Message, result.Error)
	})
}

func TestDeleteFeed(t *testing.T) {
	env := newTestEnv(t)
	feedID := uuid.New()
	env.feedRepo.EXPECT().DeleteFeed(gomock.Any(), env.userID, feedID).Return(3, nil)

	rec := env.do(http.MethodDelete, "/v1/feeds/"+feedID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, deleteFeedResponse{Success: true, DeletedArticles: 3}, decode[deleteFeedResponse](t, rec))
}

func TestSync(t *testing.T) {
	env := newTestEnv(t)
	env.syncRepo.EXPECT().ListActiveFeeds(gomock.Any(), env.userID).Return(nil, nil)

	rec := env.do(http.MethodPost, "/v1/sync", "")

	require.Equal(t, http.StatusOK, rec.Code)
	report := decode[domain.SyncReport](t, rec)
	assert.Equal(t, 0, report.Summary.Total)
}

func TestSync_DatabaseErrorIsHidden(t *testing.T) {
	env := newTestEnv(t)
	env.syncRepo.EXPECT().ListActiveFeeds(gomock.Any(), env.userID).Return(nil, stderrors.New("pq: password authentication failed"))

	rec := env.do(http.MethodPost, "/v1/sync", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}
