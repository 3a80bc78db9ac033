package feed_db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/phareim/reader/domain"
)

const uniqueViolation = "23505"

const tagColumns = `t.id, t.user_id, t.name, t.color, t.created_at,
	(SELECT COUNT(*) FROM feed_tags ft WHERE ft.tag_id = t.id) AS feed_count,
	(SELECT COUNT(*) FROM saved_article_tags st WHERE st.tag_id = t.id) AS saved_article_count`

func scanTag(row pgx.Row) (domain.Tag, error) {
	var t domain.Tag
	err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.Color, &t.CreatedAt, &t.FeedCount, &t.SavedArticleCount)
	return t, err
}

// SaveArticle bookmarks an article of one of the user's feeds. Saving again
// only refreshes saved_at; the feed's tags are copied while the bookmark has none.
func (r *FeedDBRepository) SaveArticle(ctx context.Context, userID, articleID uuid.UUID) (*domain.SavedArticleRef, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin save article: %w", err)
	}
	defer rollback(ctx, tx)

	var feedID uuid.UUID
	err = tx.QueryRow(ctx, `SELECT a.feed_id FROM articles a
		JOIN feeds f ON f.id = a.feed_id
		WHERE a.id = $1 AND f.user_id = $2`, articleID, userID).Scan(&feedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find article to save: %w", err)
	}

	var ref domain.SavedArticleRef
	err = tx.QueryRow(ctx, `INSERT INTO saved_articles (user_id, article_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, article_id) DO UPDATE SET saved_at = NOW()
		RETURNING id, article_id, saved_at`, userID, articleID).Scan(&ref.ID, &ref.ArticleID, &ref.SavedAt)
	if err != nil {
		return nil, fmt.Errorf("save article: %w", err)
	}

	_, err = tx.Exec(ctx, `INSERT INTO saved_article_tags (saved_article_id, tag_id)
		SELECT $1, ft.tag_id FROM feed_tags ft
		WHERE ft.feed_id = $2
			AND NOT EXISTS (SELECT 1 FROM saved_article_tags st WHERE st.saved_article_id = $1)
		ON CONFLICT DO NOTHING`, ref.ID, feedID)
	if err != nil {
		return nil, fmt.Errorf("copy feed tags: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit save article: %w", err)
	}
	return &ref, nil
}

func (r *FeedDBRepository) UnsaveArticle(ctx context.Context, userID, articleID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM saved_articles WHERE user_id = $1 AND article_id = $2`, userID, articleID)
	if err != nil {
		return fmt.Errorf("unsave article: %w", err)
	}
	return nil
}

func (r *FeedDBRepository) ListSavedArticles(ctx context.Context, userID uuid.UUID, tag string) ([]domain.SavedArticle, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + articleColumns + `, f.title, s.id, s.saved_at,
			ARRAY(SELECT t.name FROM saved_article_tags st
				JOIN tags t ON t.id = st.tag_id
				WHERE st.saved_article_id = s.id ORDER BY t.name) AS tags
		FROM saved_articles s
		JOIN articles a ON a.id = s.article_id
		JOIN feeds f ON f.id = a.feed_id
		WHERE s.user_id = $1`)
	args := []any{userID}

	switch tag {
	case "":
	case domain.InboxTag:
		sb.WriteString(` AND NOT EXISTS (SELECT 1 FROM saved_article_tags st WHERE st.saved_article_id = s.id)`)
	default:
		args = append(args, tag)
		sb.WriteString(` AND EXISTS (SELECT 1 FROM saved_article_tags st
			JOIN tags t ON t.id = st.tag_id
			WHERE st.saved_article_id = s.id AND t.name = $2)`)
	}
	sb.WriteString(` ORDER BY s.saved_at DESC`)

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query saved articles: %w", err)
	}
	defer rows.Close()

	saved := make([]domain.SavedArticle, 0)
	for rows.Next() {
		var s domain.SavedArticle
		s.Article, err = scanArticle(rows, &s.FeedTitle, &s.SavedID, &s.SavedAt, &s.Tags)
		if err != nil {
			return nil, fmt.Errorf("scan saved article: %w", err)
		}
		saved = append(saved, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saved articles: %w", err)
	}
	return saved, nil
}

func (r *FeedDBRepository) CountSavedArticles(ctx context.Context, userID uuid.UUID) (domain.SavedCounts, error) {
	counts := domain.SavedCounts{ByTag: map[string]domain.TagCount{}, Tags: []string{}}

	var untagged int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*),
			COUNT(*) FILTER (WHERE NOT EXISTS (SELECT 1 FROM saved_article_tags st WHERE st.saved_article_id = s.id))
		FROM saved_articles s WHERE s.user_id = $1`, userID).Scan(&counts.Total, &untagged)
	if err != nil {
		return domain.SavedCounts{}, fmt.Errorf("count saved articles: %w", err)
	}

	rows, err := r.pool.Query(ctx, `SELECT t.name, COUNT(*) FROM tags t
		JOIN saved_article_tags st ON st.tag_id = t.id
		JOIN saved_articles s ON s.id = st.saved_article_id
		WHERE s.user_id = $1
		GROUP BY t.id, t.name
		ORDER BY t.name`, userID)
	if err != nil {
		return domain.SavedCounts{}, fmt.Errorf("count saved articles by tag: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tc domain.TagCount
		if err := rows.Scan(&tc.Tag, &tc.Count); err != nil {
			return domain.SavedCounts{}, fmt.Errorf("scan tag count: %w", err)
		}
		counts.ByTag[tc.Tag] = tc
		counts.Tags = append(counts.Tags, tc.Tag)
	}
	if err := rows.Err(); err != nil {
		return domain.SavedCounts{}, fmt.Errorf("iterate tag counts: %w", err)
	}

	if untagged > 0 {
		counts.ByTag[domain.InboxTag] = domain.TagCount{Tag: domain.InboxTag, Count: untagged}
	}
	return counts, nil
}

// SetSavedArticleTags replaces the tags of one bookmark.
func (r *FeedDBRepository) SetSavedArticleTags(ctx context.Context, userID, savedID uuid.UUID, names []string) ([]string, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tag saved article: %w", err)
	}
	defer rollback(ctx, tx)

	var id uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM saved_articles WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		savedID, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSavedArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find saved article: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM saved_article_tags WHERE saved_article_id = $1`, savedID); err != nil {
		return nil, fmt.Errorf("clear saved article tags: %w", err)
	}
	if err := linkTags(ctx, tx, userID, names,
		`INSERT INTO saved_article_tags (saved_article_id, tag_id)
		SELECT $1, t.id FROM tags t WHERE t.user_id = $2 AND t.name = ANY($3)
		ON CONFLICT DO NOTHING`, savedID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit saved article tags: %w", err)
	}
	return names, nil
}

// SetFeedTags replaces the tags of one of the user's feeds.
func (r *FeedDBRepository) SetFeedTags(ctx context.Context, userID, feedID uuid.UUID, names []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tag feed: %w", err)
	}
	defer rollback(ctx, tx)

	var id uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM feeds WHERE id = $1 AND user_id = $2 FOR UPDATE`, feedID, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrFeedNotFound
	}
	if err != nil {
		return fmt.Errorf("find feed to tag: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM feed_tags WHERE feed_id = $1`, feedID); err != nil {
		return fmt.Errorf("clear feed tags: %w", err)
	}
	if err := linkTags(ctx, tx, userID, names,
		`INSERT INTO feed_tags (feed_id, tag_id)
		SELECT $1, t.id FROM tags t WHERE t.user_id = $2 AND t.name = ANY($3)
		ON CONFLICT DO NOTHING`, feedID); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit feed tags: %w", err)
	}
	return nil
}

// linkTags creates any missing tags named in names, then runs link with
// ($1 = ownerID, $2 = userID, $3 = names).
func linkTags(ctx context.Context, tx pgx.Tx, userID uuid.UUID, names []string, link string, ownerID uuid.UUID) error {
	if len(names) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `INSERT INTO tags (user_id, name)
		SELECT $1, unnest($2::text[])
		ON CONFLICT (user_id, name) DO NOTHING`, userID, names)
	if err != nil {
		return fmt.Errorf("create tags: %w", err)
	}
	if _, err := tx.Exec(ctx, link, ownerID, userID, names); err != nil {
		return fmt.Errorf("link tags: %w", err)
	}
	return nil
}

func (r *FeedDBRepository) ListTags(ctx context.Context, userID uuid.UUID) ([]domain.Tag, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+tagColumns+` FROM tags t WHERE t.user_id = $1 ORDER BY t.name ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close()

	tags := make([]domain.Tag, 0)
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return tags, nil
}

func (r *FeedDBRepository) CreateTag(ctx context.Context, userID uuid.UUID, name string, color *string) (*domain.Tag, error) {
	query := `INSERT INTO tags AS t (user_id, name, color)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, name) DO NOTHING
		RETURNING ` + tagColumns

	t, err := scanTag(r.pool.QueryRow(ctx, query, userID, name, color))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.TagExistsError{Name: name}
	}
	if err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return &t, nil
}

// UpdateTag renames or recolors a tag. Renaming onto another tag's name
// yields a *domain.TagExistsError.
func (r *FeedDBRepository) UpdateTag(ctx context.Context, userID, tagID uuid.UUID, patch domain.TagPatch) (*domain.Tag, error) {
	query := `UPDATE tags AS t
		SET name = COALESCE($3, t.name),
			color = CASE WHEN $4::boolean THEN $5 ELSE t.color END
		WHERE t.id = $1 AND t.user_id = $2
		RETURNING ` + tagColumns

	t, err := scanTag(r.pool.QueryRow(ctx, query, tagID, userID, patch.Name, patch.SetColor, patch.Color))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTagNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && patch.Name != nil {
		return nil, &domain.TagExistsError{Name: *patch.Name}
	}
	if err != nil {
		return nil, fmt.Errorf("update tag: %w", err)
	}
	return &t, nil
}

// DeleteTag removes the tag from every feed and bookmark it was attached to.
func (r *FeedDBRepository) DeleteTag(ctx context.Context, userID, tagID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tags WHERE id = $1 AND user_id = $2`, tagID, userID)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}
