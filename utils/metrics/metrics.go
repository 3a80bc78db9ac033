// Package metrics provides Prometheus metrics for the reader backend.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FeedSyncTotal counts settled feed sync attempts.
	FeedSyncTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reader",
			Name:      "feed_sync_total",
			Help:      "Total number of feed sync attempts",
		},
		[]string{"status", "stage"},
	)

	// FeedSyncDuration measures one feed's fetch-parse-persist cycle.
	FeedSyncDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "reader",
			Name:      "feed_sync_duration_seconds",
			Help:      "Duration of single feed syncs in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"status"},
	)

	// ArticlesInsertedTotal counts newly stored articles.
	ArticlesInsertedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "reader",
			Name:      "articles_inserted_total",
			Help:      "Total number of newly inserted articles",
		},
	)

	// FeedsDeactivatedTotal counts feeds switched off by the error threshold.
	FeedsDeactivatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "reader",
			Name:      "feeds_deactivated_total",
			Help:      "Total number of feeds deactivated after repeated failures",
		},
	)

	// SyncBatchSize observes how many feeds a multi-feed sync covered.
	SyncBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "reader",
			Name:      "sync_feeds_per_run",
			Help:      "Distribution of feeds per sync run",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	// DiscoveryTotal counts URL classifications by outcome.
	DiscoveryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reader",
			Name:      "discovery_total",
			Help:      "Total number of URL classifications",
		},
		[]string{"type"},
	)

	// JobRunsTotal counts background job runs by outcome.
	JobRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reader",
			Name:      "job_runs_total",
			Help:      "Total number of background job runs",
		},
		[]string{"job", "outcome"},
	)

	// JobRunDuration measures one run of a background job.
	JobRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "reader",
			Name:      "job_run_duration_seconds",
			Help:      "Duration of background job runs in seconds",
			Buckets:   []float64{0.5, 1, 5, 15, 30, 60, 120, 300, 600, 1800},
		},
		[]string{"job"},
	)

	// ErrorsTotal counts errors by operation.
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reader",
			Name:      "errors_total",
			Help:      "Total number of errors",
		},
		[]string{"operation", "error_type"},
	)
)

// RecordFeedSync records the outcome of one feed sync.
func RecordFeedSync(success bool, stage string, newArticles int, duration float64) {
	status := "success"
	if !success {
		status = "failure"
	}
	FeedSyncTotal.WithLabelValues(status, stage).Inc()
	FeedSyncDuration.WithLabelValues(status).Observe(duration)
	if newArticles > 0 {
		ArticlesInsertedTotal.Add(float64(newArticles))
	}
}

// RecordFeedDeactivated records a feed crossing the error threshold.
func RecordFeedDeactivated() {
	FeedsDeactivatedTotal.Inc()
}

// RecordSyncRun records the number of feeds in a multi-feed sync.
func RecordSyncRun(feeds int) {
	SyncBatchSize.Observe(float64(feeds))
}

// RecordDiscovery records a URL classification.
func RecordDiscovery(classification string) {
	DiscoveryTotal.WithLabelValues(classification).Inc()
}

// RecordJobRun records one finished run of a background job.
func RecordJobRun(job, outcome string, d time.Duration) {
	JobRunsTotal.WithLabelValues(job, outcome).Inc()
	JobRunDuration.WithLabelValues(job).Observe(d.Seconds())
}

// RecordError records an error.
func RecordError(operation, errorType string) {
	ErrorsTotal.WithLabelValues(operation, errorType).Inc()
}
