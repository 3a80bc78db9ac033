package manual_article_usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/phareim/reader/domain"
	"github.com/phareim/reader/port/feed_repository_port"
	"github.com/phareim/reader/utils/html_parser"
	"github.com/phareim/reader/utils/logger"
	"github.com/phareim/reader/utils/validator"
)

const summaryLimit = 500

// ManualArticleUsecase stores user-submitted articles in the per-user
// Manual Additions feed. The article URL doubles as its guid, so saving the
// same URL twice updates the earlier row.
type ManualArticleUsecase struct {
	feedRepo    feed_repository_port.FeedRepositoryPort
	articleRepo feed_repository_port.ArticleRepositoryPort
	validator   *validator.Validator
	now         func() time.Time
}

func NewManualArticleUsecase(
	feedRepo feed_repository_port.FeedRepositoryPort,
	articleRepo feed_repository_port.ArticleRepositoryPort,
	v *validator.Validator,
) *ManualArticleUsecase {
	return &ManualArticleUsecase{
		feedRepo:    feedRepo,
		articleRepo: articleRepo,
		validator:   v,
		now:         time.Now,
	}
}

// AddArticle validates and stores input. The bool reports whether a new
// article was created rather than an existing one updated.
func (u *ManualArticleUsecase) AddArticle(ctx context.Context, userID uuid.UUID, input domain.ManualArticle) (*domain.Article, bool, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.URL = strings.TrimSpace(input.URL)
	if err := u.validator.Validate(input); err != nil {
		return nil, false, err
	}

	feed, err := u.feedRepo.FindOrCreateManualFeed(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	content := html_parser.SanitizeHTML(input.Content)
	summary := html_parser.PlainSummary(input.Summary, summaryLimit)
	if summary == "" {
		summary = html_parser.PlainSummary(content, summaryLimit)
	}
	published := u.now().UTC()

	article, created, err := u.articleRepo.UpsertManualArticle(ctx, feed.ID, domain.ParsedArticle{
		GUID:        input.URL,
		Title:       input.Title,
		URL:         input.URL,
		Author:      strings.TrimSpace(input.Author),
		Content:     content,
		Summary:     summary,
		ImageURL:    html_parser.FirstImageURL(content, input.URL),
		PublishedAt: &published,
	})
	if err != nil {
		return nil, false, err
	}

	logger.Logger.InfoContext(ctx, "Manual article saved",
		"article_id", article.ID,
		"url", input.URL,
		"created", created)
	return article, created, nil
}

// DeleteArticle removes a manually added article. Feed articles are refused
// with domain.ErrNotManualArticle.
func (u *ManualArticleUsecase) DeleteArticle(ctx context.Context, userID, articleID uuid.UUID) error {
	if err := u.articleRepo.DeleteManualArticle(ctx, userID, articleID); err != nil {
		return err
	}
	logger.Logger.InfoContext(ctx, "Manual article deleted", "article_id", articleID)
	return nil
}
