// Package feed_db is the PostgreSQL store for feeds and articles.
package feed_db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the subset of pgxpool.Pool the repository uses, satisfied by
// pgxmock pools in tests.
type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

type FeedDBRepository struct {
	pool PgxIface
}

func NewFeedDBRepository(pool PgxIface) *FeedDBRepository {
	return &FeedDBRepository{pool: pool}
}

func (r *FeedDBRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logRollbackError(ctx, err)
	}
}
