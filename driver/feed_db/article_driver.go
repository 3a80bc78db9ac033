package feed_db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/phareim/reader/domain"
)

const (
	defaultArticleLimit = 50
	maxArticleLimit     = 500
)

const articleColumns = `a.id, a.feed_id, a.guid, a.title, a.url, a.author, a.content, a.content_key,
	a.summary, a.image_url, a.published_at, a.is_read, a.read_at, a.is_starred, a.created_at`

// ContentOffloader stores an article body out of line and returns its key.
// It runs inside the insert transaction; an error aborts the insert.
type ContentOffloader func(ctx context.Context, articleID uuid.UUID, content string) (string, error)

func scanArticle(row pgx.Row, extra ...any) (domain.Article, error) {
	var a domain.Article
	dest := []any{
		&a.ID, &a.FeedID, &a.GUID, &a.Title, &a.URL, &a.Author, &a.Content, &a.ContentKey,
		&a.Summary, &a.ImageURL, &a.PublishedAt, &a.IsRead, &a.ReadAt, &a.IsStarred, &a.CreatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return a, err
}

// InsertArticleIfNew inserts the article unless (feed_id, guid) already exists,
// in which case nothing is written and Inserted is false.
func (r *FeedDBRepository) InsertArticleIfNew(ctx context.Context, feedID uuid.UUID, article domain.ParsedArticle, offload ContentOffloader) (domain.InsertResult, error) {
	query := `INSERT INTO articles (feed_id, guid, title, url, author, content, summary, image_url, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (feed_id, guid) DO NOTHING
		RETURNING id`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("begin insert article: %w", err)
	}
	defer rollback(ctx, tx)

	var id uuid.UUID
	err = tx.QueryRow(ctx, query,
		feedID, article.GUID, article.Title, article.URL, article.Author,
		article.Content, article.Summary, article.ImageURL, article.PublishedAt,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.InsertResult{Inserted: false}, nil
	}
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("insert article: %w", err)
	}

	if _, err := offloadContent(ctx, tx, id, article.Content, offload); err != nil {
		return domain.InsertResult{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.InsertResult{}, fmt.Errorf("commit insert article: %w", err)
	}
	return domain.InsertResult{Inserted: true, ID: id}, nil
}

func offloadContent(ctx context.Context, tx pgx.Tx, articleID uuid.UUID, content string, offload ContentOffloader) (string, error) {
	if offload == nil || content == "" {
		return "", nil
	}

	key, err := offload(ctx, articleID, content)
	if err != nil {
		return "", fmt.Errorf("offload article content: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE articles SET content = '', content_key = $2 WHERE id = $1`, articleID, key); err != nil {
		return "", fmt.Errorf("set content key: %w", err)
	}
	return key, nil
}

func (r *FeedDBRepository) UpdateArticleImage(ctx context.Context, articleID uuid.UUID, imageURL string) error {
	_, err := r.pool.Exec(ctx, `UPDATE articles SET image_url = $2 WHERE id = $1 AND image_url = ''`, articleID, imageURL)
	if err != nil {
		return fmt.Errorf("update article image: %w", err)
	}
	return nil
}

func (r *FeedDBRepository) ListArticles(ctx context.Context, userID uuid.UUID, filter domain.ArticleFilter) ([]domain.Article, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + articleColumns + ` FROM articles a
		JOIN feeds f ON f.id = a.feed_id
		WHERE f.user_id = $1`)
	args := []any{userID}

	if filter.FeedID != nil {
		args = append(args, *filter.FeedID)
		fmt.Fprintf(&sb, " AND a.feed_id = $%d", len(args))
	}
	if filter.UnreadOnly {
		sb.WriteString(" AND NOT a.is_read")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultArticleLimit
	}
	if limit > maxArticleLimit {
		limit = maxArticleLimit
	}
	args = append(args, limit)
	fmt.Fprintf(&sb, " ORDER BY a.published_at DESC NULLS LAST, a.created_at DESC LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return articles, nil
}

func (r *FeedDBRepository) GetArticle(ctx context.Context, userID, articleID uuid.UUID) (*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles a
		JOIN feeds f ON f.id = a.feed_id
		WHERE a.id = $1 AND f.user_id = $2`
	return r.findArticle(ctx, query, articleID, userID)
}

// MarkArticleRead sets or clears read_at together with is_read.
func (r *FeedDBRepository) MarkArticleRead(ctx context.Context, userID, articleID uuid.UUID, read bool) (*domain.Article, error) {
	query := `UPDATE articles a
		SET is_read = $3, read_at = CASE WHEN $3::boolean THEN NOW() ELSE NULL END
		FROM feeds f
		WHERE a.feed_id = f.id AND a.id = $1 AND f.user_id = $2
		RETURNING ` + articleColumns
	return r.findArticle(ctx, query, articleID, userID, read)
}

// MarkAllRead marks every unread article of the user as read, limited to one
// feed when feedID is set.
func (r *FeedDBRepository) MarkAllRead(ctx context.Context, userID uuid.UUID, feedID *uuid.UUID) (int, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE articles a
		SET is_read = TRUE, read_at = NOW()
		FROM feeds f
		WHERE a.feed_id = f.id AND f.user_id = $1
			AND ($2::uuid IS NULL OR a.feed_id = $2)
			AND NOT a.is_read`, userID, feedID)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *FeedDBRepository) SetArticleStarred(ctx context.Context, userID, articleID uuid.UUID, starred bool) (*domain.Article, error) {
	query := `UPDATE articles a
		SET is_starred = $3
		FROM feeds f
		WHERE a.feed_id = f.id AND a.id = $1 AND f.user_id = $2
		RETURNING ` + articleColumns
	return r.findArticle(ctx, query, articleID, userID, starred)
}

func (r *FeedDBRepository) findArticle(ctx context.Context, query string, args ...any) (*domain.Article, error) {
	a, err := scanArticle(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find article: %w", err)
	}
	return &a, nil
}

// UpsertManualArticle writes the article into the manual feed, updating an
// existing row with the same guid. The bool reports whether a row was created.
func (r *FeedDBRepository) UpsertManualArticle(ctx context.Context, feedID uuid.UUID, article domain.ParsedArticle, offload ContentOffloader) (*domain.Article, bool, error) {
	query := `INSERT INTO articles AS a (feed_id, guid, title, url, author, content, summary, image_url, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (feed_id, guid) DO UPDATE SET
			title = EXCLUDED.title,
			url = EXCLUDED.url,
			author = EXCLUDED.author,
			content = EXCLUDED.content,
			content_key = '',
			summary = EXCLUDED.summary,
			image_url = EXCLUDED.image_url,
			published_at = COALESCE(EXCLUDED.published_at, a.published_at)
		RETURNING ` + articleColumns + `, (a.xmax = 0) AS inserted`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("begin upsert manual article: %w", err)
	}
	defer rollback(ctx, tx)

	var inserted bool
	a, err := scanArticle(tx.QueryRow(ctx, query,
		feedID, article.GUID, article.Title, article.URL, article.Author,
		article.Content, article.Summary, article.ImageURL, article.PublishedAt,
	), &inserted)
	if err != nil {
		return nil, false, fmt.Errorf("upsert manual article: %w", err)
	}

	key, err := offloadContent(ctx, tx, a.ID, article.Content, offload)
	if err != nil {
		return nil, false, err
	}
	if key != "" {
		a.ContentKey = key
		a.Content = ""
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("commit manual article: %w", err)
	}
	return &a, inserted, nil
}

// DeleteManualArticle deletes an article of the manual feed and returns its
// content key. Feed-sourced articles are refused with domain.ErrNotManualArticle.
func (r *FeedDBRepository) DeleteManualArticle(ctx context.Context, userID, articleID uuid.UUID) (string, error) {
	var feedURL, contentKey string
	err := r.pool.QueryRow(ctx, `SELECT f.url, a.content_key FROM articles a
		JOIN feeds f ON f.id = a.feed_id
		WHERE a.id = $1 AND f.user_id = $2`, articleID, userID).Scan(&feedURL, &contentKey)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrArticleNotFound
	}
	if err != nil {
		return "", fmt.Errorf("find manual article: %w", err)
	}
	if feedURL != domain.ManualFeedURL {
		return "", domain.ErrNotManualArticle
	}

	if _, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, articleID); err != nil {
		return "", fmt.Errorf("delete manual article: %w", err)
	}
	return contentKey, nil
}
