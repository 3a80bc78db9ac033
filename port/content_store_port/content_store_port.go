package content_store_port

import (
	"context"
	"errors"
)

//go:generate go run go.uber.org/mock/mockgen -source=content_store_port.go -destination=../../mocks/mock_content_store_port.go -package=mocks

// ErrContentNotFound is returned when no blob exists under a key.
var ErrContentNotFound = errors.New("article content not found")

// ContentStorePort keeps large article bodies outside the relational store.
type ContentStorePort interface {
	PutContent(ctx context.Context, key, content string) error
	GetContent(ctx context.Context, key string) (string, error)
	DeleteContent(ctx context.Context, keys ...string) error
}
