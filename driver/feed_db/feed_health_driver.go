package feed_db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/phareim/reader/domain"
)

// RecordFeedError bumps error_count and derives is_active from the new value in
// a single statement, so concurrent failures never lose an increment.
func (r *FeedDBRepository) RecordFeedError(ctx context.Context, feedID uuid.UUID, message string) (domain.FeedHealth, error) {
	query := `UPDATE feeds
		SET error_count = error_count + 1,
			is_active = (error_count + 1) < $3,
			last_error = $2,
			last_fetched_at = NOW(),
			updated_at = NOW()
		WHERE id = $1
		RETURNING error_count, is_active`

	var health domain.FeedHealth
	err := r.pool.QueryRow(ctx, query, feedID, message, domain.FeedErrorThreshold).
		Scan(&health.ErrorCount, &health.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.FeedHealth{}, domain.ErrFeedNotFound
	}
	if err != nil {
		return domain.FeedHealth{}, fmt.Errorf("record feed error: %w", err)
	}
	return health, nil
}

func (r *FeedDBRepository) RecordFeedSuccess(ctx context.Context, feedID uuid.UUID) error {
	query := `UPDATE feeds
		SET error_count = 0,
			is_active = TRUE,
			last_error = '',
			last_fetched_at = NOW(),
			updated_at = NOW()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, feedID)
	if err != nil {
		return fmt.Errorf("record feed success: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFeedNotFound
	}
	return nil
}
