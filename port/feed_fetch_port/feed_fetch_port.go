package feed_fetch_port

import (
	"context"

	"github.com/phareim/reader/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=feed_fetch_port.go -destination=../../mocks/mock_feed_fetch_port.go -package=mocks

// FeedFetchPort retrieves and normalizes a remote RSS/Atom document.
type FeedFetchPort interface {
	// FetchFeed returns a *domain.FetchError for network and format failures
	// and domain.ErrFeedHasNoTitle for documents without a title.
	FetchFeed(ctx context.Context, feedURL string) (*domain.ParsedFeed, error)
}
