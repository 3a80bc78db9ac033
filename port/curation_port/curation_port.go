package curation_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/phareim/reader/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=curation_port.go -destination=../../mocks/mock_curation_port.go -package=mocks

// SavedArticleRepositoryPort stores a user's bookmarks and their tags.
type SavedArticleRepositoryPort interface {
	// SaveArticle bookmarks the article, or refreshes saved_at when it already
	// is one. A first save copies the tags of the article's feed.
	SaveArticle(ctx context.Context, userID, articleID uuid.UUID) (*domain.SavedArticleRef, error)
	// UnsaveArticle is a no-op when the article is not bookmarked.
	UnsaveArticle(ctx context.Context, userID, articleID uuid.UUID) error
	// ListSavedArticles returns bookmarks newest first. An empty tag returns all
	// of them and domain.InboxTag returns the untagged ones.
	ListSavedArticles(ctx context.Context, userID uuid.UUID, tag string) ([]domain.SavedArticle, error)
	CountSavedArticles(ctx context.Context, userID uuid.UUID) (domain.SavedCounts, error)
	// SetSavedArticleTags replaces the bookmark's tags, creating missing tags,
	// and returns the resulting names.
	SetSavedArticleTags(ctx context.Context, userID, savedID uuid.UUID, names []string) ([]string, error)
}

// TagRepositoryPort manages tags and feed tagging.
type TagRepositoryPort interface {
	ListTags(ctx context.Context, userID uuid.UUID) ([]domain.Tag, error)
	// CreateTag returns a *domain.TagExistsError on a duplicate name.
	CreateTag(ctx context.Context, userID uuid.UUID, name string, color *string) (*domain.Tag, error)
	UpdateTag(ctx context.Context, userID, tagID uuid.UUID, patch domain.TagPatch) (*domain.Tag, error)
	DeleteTag(ctx context.Context, userID, tagID uuid.UUID) error
	// SetFeedTags replaces the feed's tags, creating missing tags.
	SetFeedTags(ctx context.Context, userID, feedID uuid.UUID, names []string) error
}
