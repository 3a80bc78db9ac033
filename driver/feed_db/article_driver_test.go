package feed_db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phareim/reader/domain"
)

var articleColumnNames = []string{
	"id", "feed_id", "guid", "title", "url", "author", "content", "content_key",
	"summary", "image_url", "published_at", "is_read", "read_at", "is_starred", "created_at",
}

func parsedArticle() domain.ParsedArticle {
	published := time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)
	return domain.ParsedArticle{
		GUID:        "https://example.com/posts/1",
		Title:       "First post",
		URL:         "https://example.com/posts/1",
		Author:      "Ada",
		Content:     "<p>Hello</p>",
		Summary:     "Hello",
		PublishedAt: &published,
	}
}

func insertArgs(feedID uuid.UUID, a domain.ParsedArticle) []any {
	return []any{feedID, a.GUID, a.Title, a.URL, a.Author, a.Content, a.Summary, a.ImageURL, a.PublishedAt}
}

func articleRow(rows *pgxmock.Rows, a domain.Article, extra ...any) *pgxmock.Rows {
	values := []any{
		a.ID, a.FeedID, a.GUID, a.Title, a.URL, a.Author, a.Content, a.ContentKey,
		a.Summary, a.ImageURL, a.PublishedAt, a.IsRead, a.ReadAt, a.IsStarred, a.CreatedAt,
	}
	return rows.AddRow(append(values, extra...)...)
}

func TestInsertArticleIfNew(t *testing.T) {
	feedID := uuid.New()
	article := parsedArticle()

	t.Run("new guid is inserted", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO articles .+ ON CONFLICT \\(feed_id, guid\\) DO NOTHING").
			WithArgs(insertArgs(feedID, article)...).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		mock.ExpectCommit()

		result, err := repo.InsertArticleIfNew(context.Background(), feedID, article, nil)

		require.NoError(t, err)
		assert.Equal(t, domain.InsertResult{Inserted: true, ID: id}, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing guid is a silent no-op", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO articles").
			WithArgs(insertArgs(feedID, article)...).
			WillReturnRows(pgxmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		called := false
		offload := func(context.Context, uuid.UUID, string) (string, error) {
			called = true
			return "", nil
		}
		result, err := repo.InsertArticleIfNew(context.Background(), feedID, article, offload)

		require.NoError(t, err)
		assert.False(t, result.Inserted)
		assert.False(t, called, "no blob may be written for a duplicate")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("content offloaded inside the transaction", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO articles").
			WithArgs(insertArgs(feedID, article)...).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		mock.ExpectExec("UPDATE articles SET content = '', content_key = \\$2 WHERE id = \\$1").
			WithArgs(id, "articles/"+id.String()+".html").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		offload := func(_ context.Context, articleID uuid.UUID, content string) (string, error) {
			assert.Equal(t, article.Content, content)
			return "articles/" + articleID.String() + ".html", nil
		}
		result, err := repo.InsertArticleIfNew(context.Background(), feedID, article, offload)

		require.NoError(t, err)
		assert.True(t, result.Inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("offload failure aborts the insert", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO articles").
			WithArgs(insertArgs(feedID, article)...).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(uuid.New()))
		mock.ExpectRollback()

		offload := func(context.Context, uuid.UUID, string) (string, error) {
			return "", errors.New("redis down")
		}
		_, err := repo.InsertArticleIfNew(context.Background(), feedID, article, offload)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "redis down")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListArticles_Filters(t *testing.T) {
	repo, mock := newMockRepo(t)
	userID, feedID := uuid.New(), uuid.New()
	stored := domain.Article{ID: uuid.New(), FeedID: feedID, GUID: "g", Title: "t", CreatedAt: time.Now()}

	mock.ExpectQuery("WHERE f.user_id = \\$1 AND a.feed_id = \\$2 AND NOT a.is_read ORDER BY .+ LIMIT \\$3").
		WithArgs(userID, feedID, maxArticleLimit).
		WillReturnRows(articleRow(pgxmock.NewRows(articleColumnNames), stored))

	articles, err := repo.ListArticles(context.Background(), userID, domain.ArticleFilter{
		FeedID:     &feedID,
		UnreadOnly: true,
		Limit:      10000,
	})

	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, stored.ID, articles[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkArticleRead(t *testing.T) {
	repo, mock := newMockRepo(t)
	userID, articleID := uuid.New(), uuid.New()
	readAt := time.Now()
	stored := domain.Article{ID: articleID, FeedID: uuid.New(), GUID: "g", Title: "t", IsRead: true, ReadAt: &readAt}

	mock.ExpectQuery("UPDATE articles a\\s+SET is_read = \\$3, read_at = CASE WHEN \\$3::boolean THEN NOW\\(\\) ELSE NULL END").
		WithArgs(articleID, userID, true).
		WillReturnRows(articleRow(pgxmock.NewRows(articleColumnNames), stored))

	article, err := repo.MarkArticleRead(context.Background(), userID, articleID, true)

	require.NoError(t, err)
	assert.True(t, article.IsRead)
	assert.Equal(t, &readAt, article.ReadAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAllRead(t *testing.T) {
	userID, feedID := uuid.New(), uuid.New()

	t.Run("all feeds", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec("UPDATE articles a\\s+SET is_read = TRUE, read_at = NOW\\(\\)").
			WithArgs(userID, (*uuid.UUID)(nil)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 7))

		count, err := repo.MarkAllRead(context.Background(), userID, nil)

		require.NoError(t, err)
		assert.Equal(t, 7, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("one feed", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec("AND \\(\\$2::uuid IS NULL OR a.feed_id = \\$2\\)").
			WithArgs(userID, &feedID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		count, err := repo.MarkAllRead(context.Background(), userID, &feedID)

		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestSetArticleStarred_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	userID, articleID := uuid.New(), uuid.New()

	mock.ExpectQuery("UPDATE articles a\\s+SET is_starred = \\$3").
		WithArgs(articleID, userID, true).
		WillReturnRows(pgxmock.NewRows(articleColumnNames))

	_, err := repo.SetArticleStarred(context.Background(), userID, articleID, true)
	assert.ErrorIs(t, err, domain.ErrArticleNotFound)
}

func TestUpsertManualArticle_ReportsCreation(t *testing.T) {
	repo, mock := newMockRepo(t)
	feedID := uuid.New()
	article := parsedArticle()
	stored := domain.Article{ID: uuid.New(), FeedID: feedID, GUID: article.GUID, Title: article.Title, Content: article.Content}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO articles AS a .+ ON CONFLICT \\(feed_id, guid\\) DO UPDATE SET .+ content_key = ''").
		WithArgs(insertArgs(feedID, article)...).
		WillReturnRows(articleRow(pgxmock.NewRows(append(articleColumnNames, "inserted")), stored, false))
	mock.ExpectCommit()

	got, created, err := repo.UpsertManualArticle(context.Background(), feedID, article, nil)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, article.Content, got.Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteManualArticle(t *testing.T) {
	userID, articleID := uuid.New(), uuid.New()

	t.Run("manual article", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT f.url, a.content_key FROM articles a").
			WithArgs(articleID, userID).
			WillReturnRows(pgxmock.NewRows([]string{"url", "content_key"}).AddRow(domain.ManualFeedURL, "articles/x.html"))
		mock.ExpectExec("DELETE FROM articles WHERE id = \\$1").
			WithArgs(articleID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		key, err := repo.DeleteManualArticle(context.Background(), userID, articleID)

		require.NoError(t, err)
		assert.Equal(t, "articles/x.html", key)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("feed article refused", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT f.url, a.content_key FROM articles a").
			WithArgs(articleID, userID).
			WillReturnRows(pgxmock.NewRows([]string{"url", "content_key"}).AddRow("https://example.com/feed.xml", ""))

		_, err := repo.DeleteManualArticle(context.Background(), userID, articleID)

		assert.ErrorIs(t, err, domain.ErrNotManualArticle)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
