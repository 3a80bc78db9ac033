package sync_feed_usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/phareim/reader/domain"
)

// memoryRepo is an in-memory FeedSyncRepositoryPort with the same
// insert-if-new and error counter semantics as the SQL store.
type memoryRepo struct {
	mu        sync.Mutex
	feeds     []domain.Feed
	articles  map[uuid.UUID]map[string]uuid.UUID
	health    map[uuid.UUID]domain.FeedHealth
	lastError map[uuid.UUID]string
	images    map[uuid.UUID]string
}

func newMemoryRepo(feeds ...domain.Feed) *memoryRepo {
	r := &memoryRepo{
		feeds:     feeds,
		articles:  make(map[uuid.UUID]map[string]uuid.UUID),
		health:    make(map[uuid.UUID]domain.FeedHealth),
		lastError: make(map[uuid.UUID]string),
		images:    make(map[uuid.UUID]string),
	}
	for _, f := range feeds {
		r.health[f.ID] = domain.FeedHealth{IsActive: true}
	}
	return r
}

func (r *memoryRepo) UpsertFeedMetadata(_ context.Context, _ uuid.UUID, _ domain.FeedMetadata) error {
	return nil
}

func (r *memoryRepo) InsertArticleIfNew(_ context.Context, feedID uuid.UUID, article domain.ParsedArticle) (domain.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byGUID, ok := r.articles[feedID]
	if !ok {
		byGUID = make(map[string]uuid.UUID)
		r.articles[feedID] = byGUID
	}
	if _, exists := byGUID[article.GUID]; exists {
		return domain.InsertResult{}, nil
	}
	id := uuid.New()
	byGUID[article.GUID] = id
	return domain.InsertResult{Inserted: true, ID: id}, nil
}

func (r *memoryRepo) RecordFeedError(_ context.Context, feedID uuid.UUID, message string) (domain.FeedHealth, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := r.health[feedID]
	h.ErrorCount++
	h.IsActive = h.ErrorCount < domain.FeedErrorThreshold
	r.health[feedID] = h
	r.lastError[feedID] = message
	return h, nil
}

func (r *memoryRepo) RecordFeedSuccess(_ context.Context, feedID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.health[feedID] = domain.FeedHealth{ErrorCount: 0, IsActive: true}
	r.lastError[feedID] = ""
	return nil
}

func (r *memoryRepo) UpdateArticleImage(_ context.Context, articleID uuid.UUID, imageURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.images[articleID] = imageURL
	return nil
}

func (r *memoryRepo) ListActiveFeeds(_ context.Context, userID uuid.UUID) ([]domain.Feed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Feed
	for _, f := range r.feeds {
		if f.UserID == userID && r.health[f.ID].IsActive {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *memoryRepo) ListAllActiveFeeds(_ context.Context) ([]domain.Feed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Feed
	for _, f := range r.feeds {
		if r.health[f.ID].IsActive {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *memoryRepo) articleCount(feedID uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.articles[feedID])
}

func (r *memoryRepo) healthOf(feedID uuid.UUID) domain.FeedHealth {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.health[feedID]
}
