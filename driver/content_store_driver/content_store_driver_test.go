package content_store_driver

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phareim/reader/port/content_store_port"
)

func newStore(t *testing.T, ttl time.Duration) (*RedisContentStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := NewRedisContentStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), ttl)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestArticleKey(t *testing.T) {
	id := uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2")
	assert.Equal(t, "articles/7d444840-9dc0-11d1-b245-5ffdce74fad2.html", ArticleKey(id))
}

func TestRedisContentStore_RoundTrip(t *testing.T) {
	store, mr := newStore(t, 0)
	ctx := context.Background()
	key := ArticleKey(uuid.New())

	require.NoError(t, store.PutContent(ctx, key, "<p>body</p>"))

	got, err := store.GetContent(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "<p>body</p>", got)
	assert.Equal(t, time.Duration(0), mr.TTL(key))
}

func TestRedisContentStore_TTL(t *testing.T) {
	store, mr := newStore(t, time.Hour)
	key := ArticleKey(uuid.New())

	require.NoError(t, store.PutContent(context.Background(), key, "x"))

	assert.Equal(t, time.Hour, mr.TTL(key))
	mr.FastForward(2 * time.Hour)
	_, err := store.GetContent(context.Background(), key)
	assert.ErrorIs(t, err, content_store_port.ErrContentNotFound)
}

func TestRedisContentStore_Missing(t *testing.T) {
	store, _ := newStore(t, 0)

	_, err := store.GetContent(context.Background(), "articles/missing.html")
	assert.ErrorIs(t, err, content_store_port.ErrContentNotFound)
}

func TestRedisContentStore_Delete(t *testing.T) {
	store, mr := newStore(t, 0)
	ctx := context.Background()
	a, b := ArticleKey(uuid.New()), ArticleKey(uuid.New())
	require.NoError(t, store.PutContent(ctx, a, "a"))
	require.NoError(t, store.PutContent(ctx, b, "b"))

	require.NoError(t, store.DeleteContent(ctx, a, b, "articles/never-written.html"))
	require.NoError(t, store.DeleteContent(ctx))

	assert.False(t, mr.Exists(a))
	assert.False(t, mr.Exists(b))
}

func TestRedisContentStore_ServerDown(t *testing.T) {
	store, mr := newStore(t, 0)
	mr.Close()

	err := store.PutContent(context.Background(), "k", "v")
	require.Error(t, err)
	assert.NotErrorIs(t, err, content_store_port.ErrContentNotFound)
}
