package manage_tag_usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/phareim/reader/domain"
	"github.com/phareim/reader/port/curation_port"
	"github.com/phareim/reader/utils/logger"
)

type ManageTagUsecase struct {
	tagRepo curation_port.TagRepositoryPort
}

func NewManageTagUsecase(tagRepo curation_port.TagRepositoryPort) *ManageTagUsecase {
	return &ManageTagUsecase{tagRepo: tagRepo}
}

// ListTags returns the user's tags by name with their feed and bookmark counts.
func (u *ManageTagUsecase) ListTags(ctx context.Context, userID uuid.UUID) ([]domain.Tag, error) {
	return u.tagRepo.ListTags(ctx, userID)
}

func (u *ManageTagUsecase) CreateTag(ctx context.Context, userID uuid.UUID, name string, color *string) (*domain.Tag, error) {
	name, err := domain.NormalizeTagName(name)
	if err != nil {
		return nil, err
	}
	tag, err := u.tagRepo.CreateTag(ctx, userID, name, color)
	if err != nil {
		return nil, err
	}
	logger.Logger.InfoContext(ctx, "Tag created", "tag_id", tag.ID, "name", tag.Name)
	return tag, nil
}

// UpdateTag renames or recolors a tag. An empty patch returns the tag unchanged.
func (u *ManageTagUsecase) UpdateTag(ctx context.Context, userID, tagID uuid.UUID, patch domain.TagPatch) (*domain.Tag, error) {
	if patch.Name != nil {
		name, err := domain.NormalizeTagName(*patch.Name)
		if err != nil {
			return nil, err
		}
		patch.Name = &name
	}
	return u.tagRepo.UpdateTag(ctx, userID, tagID, patch)
}

func (u *ManageTagUsecase) DeleteTag(ctx context.Context, userID, tagID uuid.UUID) error {
	if err := u.tagRepo.DeleteTag(ctx, userID, tagID); err != nil {
		return err
	}
	logger.Logger.InfoContext(ctx, "Tag deleted", "tag_id", tagID)
	return nil
}

// SetFeedTags replaces the tags of a feed and returns the names applied.
func (u *ManageTagUsecase) SetFeedTags(ctx context.Context, userID, feedID uuid.UUID, names []string) ([]string, error) {
	normalized, err := domain.NormalizeTagNames(names)
	if err != nil {
		return nil, err
	}
	if err := u.tagRepo.SetFeedTags(ctx, userID, feedID, normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}
