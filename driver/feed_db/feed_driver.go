package feed_db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/phareim/reader/domain"
)

const feedColumns = `id, user_id, url, title, description, site_url, favicon_url,
	last_fetched_at, last_error, error_count, is_active, created_at`

func scanFeed(row pgx.Row) (domain.Feed, error) {
	var f domain.Feed
	err := row.Scan(
		&f.ID, &f.UserID, &f.URL, &f.Title, &f.Description, &f.SiteURL, &f.FaviconURL,
		&f.LastFetchedAt, &f.LastError, &f.ErrorCount, &f.IsActive, &f.CreatedAt,
	)
	return f, err
}

func (r *FeedDBRepository) queryFeeds(ctx context.Context, query string, args ...any) ([]domain.Feed, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query feeds: %w", err)
	}
	defer rows.Close()

	feeds := make([]domain.Feed, 0)
	for rows.Next() {
		f, err := scanFeed(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feed: %w", err)
		}
		feeds = append(feeds, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feeds: %w", err)
	}
	return feeds, nil
}

func (r *FeedDBRepository) ListFeeds(ctx context.Context, userID uuid.UUID) ([]domain.Feed, error) {
	query := `SELECT ` + feedColumns + ` FROM feeds WHERE user_id = $1 ORDER BY title ASC`
	return r.queryFeeds(ctx, query, userID)
}

// ListActiveFeeds excludes inactive feeds and the manual pseudo-feed.
func (r *FeedDBRepository) ListActiveFeeds(ctx context.Context, userID uuid.UUID) ([]domain.Feed, error) {
	query := `SELECT ` + feedColumns + ` FROM feeds
		WHERE user_id = $1 AND is_active AND url <> $2
		ORDER BY created_at ASC`
	return r.queryFeeds(ctx, query, userID, domain.ManualFeedURL)
}

func (r *FeedDBRepository) ListAllActiveFeeds(ctx context.Context) ([]domain.Feed, error) {
	query := `SELECT ` + feedColumns + ` FROM feeds
		WHERE is_active AND url <> $1
		ORDER BY last_fetched_at ASC NULLS FIRST`
	return r.queryFeeds(ctx, query, domain.ManualFeedURL)
}

func (r *FeedDBRepository) FindFeedByID(ctx context.Context, userID, feedID uuid.UUID) (*domain.Feed, error) {
	query := `SELECT ` + feedColumns + ` FROM feeds WHERE id = $1 AND user_id = $2`
	return r.findFeed(ctx, query, feedID, userID)
}

// FindFeedDetail loads the feed with its tag names in order and the number of
// unread articles it holds.
func (r *FeedDBRepository) FindFeedDetail(ctx context.Context, userID, feedID uuid.UUID) (*domain.FeedDetail, error) {
	query := `SELECT ` + feedColumns + `,
			COALESCE((SELECT array_agg(t.name ORDER BY t.name) FROM feed_tags ft
				JOIN tags t ON t.id = ft.tag_id WHERE ft.feed_id = feeds.id), '{}') AS tags,
			(SELECT COUNT(*) FROM articles a WHERE a.feed_id = feeds.id AND NOT a.is_read) AS unread_count
		FROM feeds WHERE id = $1 AND user_id = $2`

	var d domain.FeedDetail
	f := &d.Feed
	err := r.pool.QueryRow(ctx, query, feedID, userID).Scan(
		&f.ID, &f.UserID, &f.URL, &f.Title, &f.Description, &f.SiteURL, &f.FaviconURL,
		&f.LastFetchedAt, &f.LastError, &f.ErrorCount, &f.IsActive, &f.CreatedAt,
		&d.Tags, &d.UnreadCount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrFeedNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find feed detail: %w", err)
	}
	return &d, nil
}

func (r *FeedDBRepository) FindFeedByURL(ctx context.Context, userID uuid.UUID, feedURL string) (*domain.Feed, error) {
	query := `SELECT ` + feedColumns + ` FROM feeds WHERE user_id = $1 AND url = $2`
	return r.findFeed(ctx, query, userID, feedURL)
}

func (r *FeedDBRepository) findFeed(ctx context.Context, query string, args ...any) (*domain.Feed, error) {
	f, err := scanFeed(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrFeedNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find feed: %w", err)
	}
	return &f, nil
}

func (r *FeedDBRepository) CreateFeed(ctx context.Context, userID uuid.UUID, feedURL string, meta domain.FeedMetadata) (*domain.Feed, error) {
	query := `INSERT INTO feeds (user_id, url, title, description, site_url, favicon_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, url) DO NOTHING
		RETURNING ` + feedColumns

	f, err := scanFeed(r.pool.QueryRow(ctx, query,
		userID, feedURL, meta.Title, meta.Description, meta.SiteURL, meta.FaviconURL))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrFeedAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("create feed: %w", err)
	}
	return &f, nil
}

// FindOrCreateManualFeed returns the user's "Manual Additions" feed, creating
// it on first use. The no-op update makes RETURNING yield the existing row.
func (r *FeedDBRepository) FindOrCreateManualFeed(ctx context.Context, userID uuid.UUID) (*domain.Feed, error) {
	query := `INSERT INTO feeds (user_id, url, title, description)
		VALUES ($1, $2, $3, 'Articles added manually')
		ON CONFLICT (user_id, url) DO UPDATE SET url = EXCLUDED.url
		RETURNING ` + feedColumns

	f, err := scanFeed(r.pool.QueryRow(ctx, query, userID, domain.ManualFeedURL, domain.ManualFeedTitle))
	if err != nil {
		return nil, fmt.Errorf("find or create manual feed: %w", err)
	}
	return &f, nil
}

func (r *FeedDBRepository) UpsertFeedMetadata(ctx context.Context, feedID uuid.UUID, meta domain.FeedMetadata) error {
	query := `UPDATE feeds
		SET title = $2, description = $3, site_url = $4, favicon_url = $5, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, feedID, meta.Title, meta.Description, meta.SiteURL, meta.FaviconURL)
	if err != nil {
		return fmt.Errorf("update feed metadata: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFeedNotFound
	}
	return nil
}

// DeleteFeed removes the feed and its articles in one transaction and returns
// the article count together with the content keys of offloaded bodies.
func (r *FeedDBRepository) DeleteFeed(ctx context.Context, userID, feedID uuid.UUID) (int, []string, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("begin delete feed: %w", err)
	}
	defer rollback(ctx, tx)

	rows, err := tx.Query(ctx, `DELETE FROM articles a USING feeds f
		WHERE a.feed_id = f.id AND f.id = $1 AND f.user_id = $2
		RETURNING a.content_key`, feedID, userID)
	if err != nil {
		return 0, nil, fmt.Errorf("delete feed articles: %w", err)
	}

	count := 0
	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			rows.Close()
			return 0, nil, fmt.Errorf("scan content key: %w", err)
		}
		count++
		if key != "" {
			keys = append(keys, key)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, nil, fmt.Errorf("delete feed articles: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM feeds WHERE id = $1 AND user_id = $2`, feedID, userID)
	if err != nil {
		return 0, nil, fmt.Errorf("delete feed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return 0, nil, domain.ErrFeedNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, nil, fmt.Errorf("commit delete feed: %w", err)
	}
	return count, keys, nil
}
