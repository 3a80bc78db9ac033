package domain

import "github.com/google/uuid"

// SyncStage is the position of one feed inside a single sync attempt.
type SyncStage string

const (
	SyncStageFetching   SyncStage = "fetching"
	SyncStageParsing    SyncStage = "parsing"
	SyncStagePersisting SyncStage = "persisting"
	SyncStageSucceeded  SyncStage = "succeeded"
	SyncStageFailed     SyncStage = "failed"
)

// SyncResult is the settled outcome of syncing one feed. Success selects which
// of NewArticles or Error is meaningful.
type SyncResult struct {
	FeedID      uuid.UUID `json:"feedId"`
	FeedTitle   string    `json:"feedTitle"`
	Success     bool      `json:"success"`
	NewArticles *int      `json:"newArticles,omitempty"`
	Error       string    `json:"error,omitempty"`
	// FailedAt is the stage that was running when the attempt failed.
	FailedAt SyncStage `json:"failedAt,omitempty"`
}

// Succeeded builds a successful result.
func Succeeded(feed Feed, newArticles int) SyncResult {
	return SyncResult{
		FeedID:      feed.ID,
		FeedTitle:   feed.Title,
		Success:     true,
		NewArticles: &newArticles,
	}
}

// Failed builds a failed result.
func Failed(feed Feed, stage SyncStage, message string) SyncResult {
	return SyncResult{
		FeedID:    feed.ID,
		FeedTitle: feed.Title,
		Success:   false,
		Error:     message,
		FailedAt:  stage,
	}
}

// NewArticleCount returns the number of new articles, zero for failures.
func (r SyncResult) NewArticleCount() int {
	if r.NewArticles == nil {
		return 0
	}
	return *r.NewArticles
}

// SyncSummary aggregates a batch of results.
type SyncSummary struct {
	Total       int `json:"total"`
	Succeeded   int `json:"succeeded"`
	Failed      int `json:"failed"`
	NewArticles int `json:"newArticles"`
}

// SyncReport is what a multi-feed sync hands back to the HTTP layer.
type SyncReport struct {
	Results []SyncResult `json:"results"`
	Summary SyncSummary  `json:"summary"`
}

// Summarize folds results into a SyncSummary.
func Summarize(results []SyncResult) SyncSummary {
	summary := SyncSummary{Total: len(results)}
	for _, r := range results {
		if r.Success {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
		summary.NewArticles += r.NewArticleCount()
	}
	return summary
}
