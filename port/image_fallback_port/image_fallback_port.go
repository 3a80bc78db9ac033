package image_fallback_port

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=image_fallback_port.go -destination=../../mocks/mock_image_fallback_port.go -package=mocks

// ImageFallbackPort supplies a stock image for articles that carry none.
type ImageFallbackPort interface {
	// RandomImageURL returns "" without error when no image is available.
	RandomImageURL(ctx context.Context) (string, error)
}
