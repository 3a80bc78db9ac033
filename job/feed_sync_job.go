package job

import (
	"context"
	"time"

	"github.com/phareim/reader/domain"
	"github.com/phareim/reader/utils/logger"
)

const FeedSyncJobName = "feed-sync"

// FeedSyncer syncs every active feed of every user.
type FeedSyncer interface {
	SyncEverything(ctx context.Context) (domain.SyncReport, error)
}

// FeedSyncJob refreshes all active feeds every interval. Per-feed failures
// are part of the report; only a failure to list feeds fails the run.
func FeedSyncJob(syncer FeedSyncer, interval, timeout time.Duration) Job {
	return Job{
		Name:     FeedSyncJobName,
		Interval: interval,
		Timeout:  timeout,
		Fn: func(ctx context.Context) error {
			report, err := syncer.SyncEverything(ctx)
			if err != nil {
				return err
			}
			logger.Logger.InfoContext(ctx, "Scheduled feed sync finished",
				"total", report.Summary.Total,
				"succeeded", report.Summary.Succeeded,
				"failed", report.Summary.Failed,
				"new_articles", report.Summary.NewArticles)
			return nil
		},
	}
}
