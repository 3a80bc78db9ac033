package saved_article_usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/phareim/reader/domain"
	"github.com/phareim/reader/port/curation_port"
	"github.com/phareim/reader/utils/logger"
)

// SavedArticleUsecase keeps a user's bookmarks and files them under tags.
type SavedArticleUsecase struct {
	savedRepo curation_port.SavedArticleRepositoryPort
}

func NewSavedArticleUsecase(savedRepo curation_port.SavedArticleRepositoryPort) *SavedArticleUsecase {
	return &SavedArticleUsecase{savedRepo: savedRepo}
}

// Save bookmarks the article. A repeated save moves it to the top of the
// list and keeps the tags it already has.
func (u *SavedArticleUsecase) Save(ctx context.Context, userID, articleID uuid.UUID) (*domain.SavedArticleRef, error) {
	ref, err := u.savedRepo.SaveArticle(ctx, userID, articleID)
	if err != nil {
		return nil, err
	}
	logger.Logger.InfoContext(ctx, "Article saved", "article_id", articleID, "saved_id", ref.ID)
	return ref, nil
}

func (u *SavedArticleUsecase) Unsave(ctx context.Context, userID, articleID uuid.UUID) error {
	return u.savedRepo.UnsaveArticle(ctx, userID, articleID)
}

// List returns bookmarks newest first, narrowed to one tag when tag is set.
// domain.InboxTag selects the untagged ones.
func (u *SavedArticleUsecase) List(ctx context.Context, userID uuid.UUID, tag string) ([]domain.SavedArticle, error) {
	return u.savedRepo.ListSavedArticles(ctx, userID, strings.TrimSpace(tag))
}

func (u *SavedArticleUsecase) Counts(ctx context.Context, userID uuid.UUID) (domain.SavedCounts, error) {
	return u.savedRepo.CountSavedArticles(ctx, userID)
}

// SetTags replaces the bookmark's tags. Names are trimmed and deduplicated;
// unknown names become new tags.
func (u *SavedArticleUsecase) SetTags(ctx context.Context, userID, savedID uuid.UUID, names []string) ([]string, error) {
	normalized, err := domain.NormalizeTagNames(names)
	if err != nil {
		return nil, err
	}
	tags, err := u.savedRepo.SetSavedArticleTags(ctx, userID, savedID, normalized)
	if err != nil {
		return nil, err
	}
	logger.Logger.InfoContext(ctx, "Saved article tags updated", "saved_id", savedID, "tags", len(tags))
	return tags, nil
}
