// Package sync_feed_usecase drives feed syncs: fetch, parse, persist and
// health bookkeeping, one feed at a time or in bounded batches.
package sync_feed_usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/phareim/reader/domain"
	"github.com/phareim/reader/port/feed_fetch_port"
	"github.com/phareim/reader/port/feed_repository_port"
	"github.com/phareim/reader/port/image_fallback_port"
	"github.com/phareim/reader/utils/logger"
	"github.com/phareim/reader/utils/metrics"
)

const (
	DefaultMaxArticles = 500
	DefaultBatchSize   = 5

	unexpectedSyncError = "Unexpected error during sync"

	// Stock images are rate limited upstream; only the first few new articles
	// of a sync get one.
	maxImageBackfillPerSync = 10
)

type SyncFeedUsecase struct {
	fetcher     feed_fetch_port.FeedFetchPort
	syncRepo    feed_repository_port.FeedSyncRepositoryPort
	feedRepo    feed_repository_port.FeedRepositoryPort
	images      image_fallback_port.ImageFallbackPort
	maxArticles int
	batchSize   int
	tracer      trace.Tracer
}

func NewSyncFeedUsecase(
	fetcher feed_fetch_port.FeedFetchPort,
	syncRepo feed_repository_port.FeedSyncRepositoryPort,
	feedRepo feed_repository_port.FeedRepositoryPort,
	maxArticles, batchSize int,
) *SyncFeedUsecase {
	if maxArticles <= 0 {
		maxArticles = DefaultMaxArticles
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &SyncFeedUsecase{
		fetcher:     fetcher,
		syncRepo:    syncRepo,
		feedRepo:    feedRepo,
		maxArticles: maxArticles,
		batchSize:   batchSize,
		tracer:      otel.Tracer("reader/sync"),
	}
}

// SetImageFallback enables stock images for new articles that carry none.
func (u *SyncFeedUsecase) SetImageFallback(images image_fallback_port.ImageFallbackPort) {
	u.images = images
}

// SyncOne runs one attempt for feed. Every failure is reported in the result
// and recorded against the feed; it never returns an error.
func (u *SyncFeedUsecase) SyncOne(ctx context.Context, feed domain.Feed) domain.SyncResult {
	ctx, span := u.startSpan(ctx, "SyncOne", feed)
	defer span.End()
	start := time.Now()

	parsed, err := u.fetcher.FetchFeed(ctx, feed.URL)
	var result domain.SyncResult
	if err != nil {
		result = u.fail(ctx, feed, fetchStage(err), err)
	} else {
		result = u.ingest(ctx, feed, parsed, u.maxArticles)
	}

	u.finish(span, result, start)
	return result
}

// IngestParsed persists an already fetched document, capped at limit items.
// Used when a feed is first added and has just been fetched for validation.
func (u *SyncFeedUsecase) IngestParsed(ctx context.Context, feed domain.Feed, parsed *domain.ParsedFeed, limit int) domain.SyncResult {
	ctx, span := u.startSpan(ctx, "IngestParsed", feed)
	defer span.End()
	start := time.Now()

	result := u.ingest(ctx, feed, parsed, limit)

	u.finish(span, result, start)
	return result
}

func (u *SyncFeedUsecase) startSpan(ctx context.Context, name string, feed domain.Feed) (context.Context, trace.Span) {
	ctx = logger.WithFeedID(ctx, feed.ID.String())
	return u.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("feed.id", feed.ID.String()),
		attribute.String("feed.url", feed.URL),
	))
}

func (u *SyncFeedUsecase) finish(span trace.Span, result domain.SyncResult, start time.Time) {
	span.SetAttributes(
		attribute.Bool("sync.success", result.Success),
		attribute.Int("sync.new_articles", result.NewArticleCount()),
	)
	stage := domain.SyncStageSucceeded
	if !result.Success {
		stage = result.FailedAt
		span.SetStatus(codes.Error, result.Error)
	}
	metrics.RecordFeedSync(result.Success, string(stage), result.NewArticleCount(), time.Since(start).Seconds())
}

func (u *SyncFeedUsecase) ingest(ctx context.Context, feed domain.Feed, parsed *domain.ParsedFeed, limit int) domain.SyncResult {
	if err := u.syncRepo.UpsertFeedMetadata(ctx, feed.ID, parsed.Metadata()); err != nil {
		return u.fail(ctx, feed, domain.SyncStagePersisting, err)
	}

	items := parsed.Items
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	newArticles := 0
	backfilled := 0
	for _, item := range items {
		res, err := u.syncRepo.InsertArticleIfNew(ctx, feed.ID, item)
		if err != nil {
			// Articles committed so far stay; the attempt still counts as failed.
			return u.fail(ctx, feed, domain.SyncStagePersisting, err)
		}
		if !res.Inserted {
			continue
		}
		newArticles++
		if item.ImageURL == "" && backfilled < maxImageBackfillPerSync && u.backfillImage(ctx, res.ID) {
			backfilled++
		}
	}

	if err := u.syncRepo.RecordFeedSuccess(ctx, feed.ID); err != nil {
		return u.fail(ctx, feed, domain.SyncStagePersisting, err)
	}

	logger.Logger.InfoContext(ctx, "Feed synced",
		"feed_title", feed.Title,
		"items", len(items),
		"new_articles", newArticles)

	feed.Title = parsed.Title
	return domain.Succeeded(feed, newArticles)
}

func (u *SyncFeedUsecase) backfillImage(ctx context.Context, articleID uuid.UUID) bool {
	if u.images == nil {
		return false
	}

	imageURL, err := u.images.RandomImageURL(ctx)
	if err != nil {
		logger.Logger.WarnContext(ctx, "Failed to fetch fallback image", "error", err)
		return false
	}
	if imageURL == "" {
		return false
	}

	if err := u.syncRepo.UpdateArticleImage(ctx, articleID, imageURL); err != nil {
		logger.Logger.WarnContext(ctx, "Failed to store fallback image", "article_id", articleID, "error", err)
		return false
	}
	return true
}

func (u *SyncFeedUsecase) fail(ctx context.Context, feed domain.Feed, stage domain.SyncStage, cause error) domain.SyncResult {
	message := failureMessage(cause)
	logger.Logger.WarnContext(ctx, "Feed sync failed",
		"feed_url", feed.URL,
		"stage", stage,
		"error", cause)

	health, err := u.syncRepo.RecordFeedError(ctx, feed.ID, message)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to record feed error", "error", err)
	} else if !health.IsActive && health.ErrorCount == domain.FeedErrorThreshold {
		logger.Logger.WarnContext(ctx, "Feed deactivated after repeated failures",
			"feed_url", feed.URL,
			"error_count", health.ErrorCount)
		metrics.RecordFeedDeactivated()
	}

	metrics.RecordError("sync_feed", string(stage))
	return domain.Failed(feed, stage, message)
}

func fetchStage(err error) domain.SyncStage {
	if domain.IsFetchError(err, domain.FetchErrorInvalidFormat) || errors.Is(err, domain.ErrFeedHasNoTitle) {
		return domain.SyncStageParsing
	}
	return domain.SyncStageFetching
}

func failureMessage(err error) string {
	var fetchErr *domain.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Message
	}
	return err.Error()
}

// SyncAll syncs feeds in batches of batchSize. A batch starts only after the
// previous one has settled; results keep submission order.
func (u *SyncFeedUsecase) SyncAll(ctx context.Context, feeds []domain.Feed) domain.SyncReport {
	results := make([]domain.SyncResult, 0, len(feeds))

	for _, batch := range lo.Chunk(feeds, u.batchSize) {
		batchResults := make([]domain.SyncResult, len(batch))

		var g errgroup.Group
		for i, feed := range batch {
			g.Go(func() error {
				batchResults[i] = u.syncGuarded(ctx, feed)
				return nil
			})
		}
		_ = g.Wait()

		results = append(results, batchResults...)
	}

	metrics.RecordSyncRun(len(feeds))
	return domain.SyncReport{Results: results, Summary: domain.Summarize(results)}
}

func (u *SyncFeedUsecase) syncGuarded(ctx context.Context, feed domain.Feed) (result domain.SyncResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.Logger.ErrorContext(ctx, "Panic during feed sync", "feed_id", feed.ID, "panic", r)
			result = domain.Failed(feed, domain.SyncStageFailed, unexpectedSyncError)
		}
	}()
	return u.SyncOne(ctx, feed)
}

// SyncUser syncs every active feed of one user.
func (u *SyncFeedUsecase) SyncUser(ctx context.Context, userID uuid.UUID) (domain.SyncReport, error) {
	feeds, err := u.syncRepo.ListActiveFeeds(ctx, userID)
	if err != nil {
		return domain.SyncReport{}, err
	}
	return u.SyncAll(logger.WithUserID(ctx, userID.String()), feeds), nil
}

// SyncEverything syncs all active feeds of all users.
func (u *SyncFeedUsecase) SyncEverything(ctx context.Context) (domain.SyncReport, error) {
	feeds, err := u.syncRepo.ListAllActiveFeeds(ctx)
	if err != nil {
		return domain.SyncReport{}, err
	}
	return u.SyncAll(ctx, feeds), nil
}

// RefreshFeed syncs a single feed on demand, including a deactivated one.
func (u *SyncFeedUsecase) RefreshFeed(ctx context.Context, userID, feedID uuid.UUID) (domain.SyncResult, error) {
	feed, err := u.feedRepo.FindFeedByID(ctx, userID, feedID)
	if err != nil {
		return domain.SyncResult{}, err
	}
	if feed.IsManual() {
		return domain.SyncResult{}, domain.ErrFeedNotFound
	}
	return u.SyncOne(ctx, *feed), nil
}
