// Package content_store_driver keeps article bodies in Redis.
package content_store_driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/phareim/reader/port/content_store_port"
)

// ArticleKey is the blob key of an article body.
func ArticleKey(articleID uuid.UUID) string {
	return fmt.Sprintf("articles/%s.html", articleID)
}

// RedisContentStore implements content_store_port.ContentStorePort.
type RedisContentStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisContentStoreWithURL connects from a redis:// URL. A zero ttl keeps
// bodies until their article is deleted.
func NewRedisContentStoreWithURL(url string, ttl time.Duration) (*RedisContentStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return NewRedisContentStore(redis.NewClient(opts), ttl), nil
}

func NewRedisContentStore(client *redis.Client, ttl time.Duration) *RedisContentStore {
	return &RedisContentStore{client: client, ttl: ttl}
}

func (s *RedisContentStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisContentStore) Close() error {
	return s.client.Close()
}

func (s *RedisContentStore) PutContent(ctx context.Context, key, content string) error {
	if err := s.client.Set(ctx, key, content, s.ttl).Err(); err != nil {
		return fmt.Errorf("put content %s: %w", key, err)
	}
	return nil
}

func (s *RedisContentStore) GetContent(ctx context.Context, key string) (string, error) {
	content, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", content_store_port.ErrContentNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get content %s: %w", key, err)
	}
	return content, nil
}

func (s *RedisContentStore) DeleteContent(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	return nil
}
