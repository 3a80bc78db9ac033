package di

import (
	"context"
	"net/url"

	"github.com/phareim/reader/config"
	"github.com/phareim/reader/driver/feed_db"
	"github.com/phareim/reader/driver/fetch_feed_driver"
	"github.com/phareim/reader/driver/page_fetch_driver"
	"github.com/phareim/reader/driver/robots_txt_driver"
	"github.com/phareim/reader/driver/unsplash_driver"
	"github.com/phareim/reader/gateway/feed_repository_gateway"
	"github.com/phareim/reader/gateway/fetch_feed_gateway"
	"github.com/phareim/reader/port/content_store_port"
	"github.com/phareim/reader/usecase/discover_feed_usecase"
	"github.com/phareim/reader/usecase/manage_tag_usecase"
	"github.com/phareim/reader/usecase/manual_article_usecase"
	"github.com/phareim/reader/usecase/reading_status_usecase"
	"github.com/phareim/reader/usecase/saved_article_usecase"
	"github.com/phareim/reader/usecase/subscribe_feed_usecase"
	"github.com/phareim/reader/usecase/sync_feed_usecase"
	"github.com/phareim/reader/utils"
	"github.com/phareim/reader/utils/rate_limiter"
	"github.com/phareim/reader/utils/security"
	"github.com/phareim/reader/utils/validator"
)

// URLValidator guards outbound requests made on behalf of users.
type URLValidator interface {
	ValidateRawURL(ctx context.Context, raw string) (*url.URL, error)
}

// HealthCheck reports whether a backing service is reachable.
type HealthCheck func(ctx context.Context) error

type ApplicationComponents struct {
	SyncFeedUsecase      *sync_feed_usecase.SyncFeedUsecase
	SubscribeFeedUsecase *subscribe_feed_usecase.SubscribeFeedUsecase
	DiscoverFeedUsecase  *discover_feed_usecase.DiscoverFeedUsecase
	ManualArticleUsecase *manual_article_usecase.ManualArticleUsecase
	ReadingStatusUsecase *reading_status_usecase.ReadingStatusUsecase
	SavedArticleUsecase  *saved_article_usecase.SavedArticleUsecase
	ManageTagUsecase     *manage_tag_usecase.ManageTagUsecase

	URLValidator URLValidator
	Validator    *validator.Validator
	HealthChecks map[string]HealthCheck
}

// NewApplicationComponents wires every layer on top of pool. A nil content
// store keeps article bodies in Postgres.
func NewApplicationComponents(cfg *config.Config, pool feed_db.PgxIface, content content_store_port.ContentStorePort) (*ApplicationComponents, error) {
	httpClient := utils.NewHTTPClient(cfg.Fetch.Timeout)
	hostLimiter := rate_limiter.NewHostRateLimiter(cfg.Fetch.HostInterval)

	dbRepository := feed_db.NewFeedDBRepository(pool)
	repositoryGateway := feed_repository_gateway.NewFeedRepositoryGateway(dbRepository, content)

	feedFetchDriver := fetch_feed_driver.NewFeedFetchDriver(httpClient, hostLimiter, cfg.Fetch.UserAgent, cfg.Fetch.Timeout, cfg.Fetch.MaxBodyBytes)
	fetchFeedGateway := fetch_feed_gateway.NewFetchFeedGateway(feedFetchDriver)

	pageFetchDriver := page_fetch_driver.NewPageFetchDriver(httpClient, hostLimiter, cfg.Fetch.UserAgent, cfg.Fetch.Timeout, cfg.Discovery.HeadTimeout, cfg.Fetch.MaxBodyBytes)
	robotsDriver, err := robots_txt_driver.NewRobotsTxtDriver(httpClient, cfg.Fetch.UserAgent, cfg.Discovery.HeadTimeout, cfg.Discovery.RobotsCacheSize, cfg.Discovery.RespectRobots)
	if err != nil {
		return nil, err
	}

	syncFeedUsecase := sync_feed_usecase.NewSyncFeedUsecase(fetchFeedGateway, repositoryGateway, repositoryGateway, cfg.Sync.MaxArticlesPerFeed, cfg.Sync.BatchSize)
	if cfg.Unsplash.AccessKey != "" {
		syncFeedUsecase.SetImageFallback(unsplash_driver.NewUnsplashDriver(httpClient, cfg.Unsplash.BaseURL, cfg.Unsplash.AccessKey, cfg.Unsplash.Timeout))
	}

	subscribeFeedUsecase := subscribe_feed_usecase.NewSubscribeFeedUsecase(fetchFeedGateway, repositoryGateway, syncFeedUsecase, cfg.Sync.InitialArticlesPerFeed)
	discoverFeedUsecase := discover_feed_usecase.NewDiscoverFeedUsecase(fetchFeedGateway, pageFetchDriver, robotsDriver, repositoryGateway, subscribeFeedUsecase)

	requestValidator := validator.New()
	manualArticleUsecase := manual_article_usecase.NewManualArticleUsecase(repositoryGateway, repositoryGateway, requestValidator)
	readingStatusUsecase := reading_status_usecase.NewReadingStatusUsecase(repositoryGateway, repositoryGateway)
	savedArticleUsecase := saved_article_usecase.NewSavedArticleUsecase(repositoryGateway)
	manageTagUsecase := manage_tag_usecase.NewManageTagUsecase(repositoryGateway)

	ssrfValidator := security.NewSSRFValidator()
	ssrfValidator.SetTestingMode(cfg.Security.AllowLocalhost)

	healthChecks := map[string]HealthCheck{"database": dbRepository.Ping}
	if pinger, ok := content.(interface{ Ping(context.Context) error }); ok {
		healthChecks["content_store"] = pinger.Ping
	}

	return &ApplicationComponents{
		SyncFeedUsecase:      syncFeedUsecase,
		SubscribeFeedUsecase: subscribeFeedUsecase,
		DiscoverFeedUsecase:  discoverFeedUsecase,
		ManualArticleUsecase: manualArticleUsecase,
		ReadingStatusUsecase: readingStatusUsecase,
		SavedArticleUsecase:  savedArticleUsecase,
		ManageTagUsecase:     manageTagUsecase,
		URLValidator:         ssrfValidator,
		Validator:            requestValidator,
		HealthChecks:         healthChecks,
	}, nil
}
