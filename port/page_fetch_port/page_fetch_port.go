package page_fetch_port

import (
	"context"

	"github.com/phareim/reader/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=page_fetch_port.go -destination=../../mocks/mock_page_fetch_port.go -package=mocks

// PageFetchPort reads arbitrary web pages for discovery.
type PageFetchPort interface {
	// FetchPage performs a GET and decodes the body to UTF-8.
	FetchPage(ctx context.Context, pageURL string) (*domain.Page, error)
	// HeadPage performs a HEAD request; the returned page has no body.
	HeadPage(ctx context.Context, pageURL string) (*domain.Page, error)
}
