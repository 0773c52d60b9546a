package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GuildCoin_Go/internal/domain"
)

// DailyRepository implements daily reward persistence for PostgreSQL
type DailyRepository struct {
	db *pgxpool.Pool
}

// NewDailyRepository creates a new DailyRepository
func NewDailyRepository(db *pgxpool.Pool) *DailyRepository {
	return &DailyRepository{db: db}
}

// GetClaim returns the user's claim record, nil when they never claimed
func (r *DailyRepository) GetClaim(ctx context.Context, userID string) (*domain.DailyClaim, error) {
	var claim domain.DailyClaim
	err := r.db.QueryRow(ctx, SQLSelectClaim, userID).Scan(&claim.UserID, &claim.LastClaim, &claim.Streak)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf(ErrMsgGetClaimFailed, err)
	}
	return &claim, nil
}

// RecordClaim upserts the claim row and credits the reward in one transaction.
// The upsert guard rejects a second claim for the same calendar day, which
// makes a racing periodic check and manual claim pay out exactly once.
func (r *DailyRepository) RecordClaim(ctx context.Context, claim domain.DailyClaim, reward int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	tag, err := tx.Exec(ctx, SQLUpsertClaim, claim.UserID, claim.LastClaim, claim.Streak)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgRecordClaimFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return 0, domain.ErrAlreadyClaimed
	}

	var balance int64
	if err := tx.QueryRow(ctx, SQLCreditBalance, claim.UserID, reward).Scan(&balance); err != nil {
		return 0, fmt.Errorf(ErrMsgRecordClaimFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}
	return balance, nil
}

// ResetClaim deletes the claim record (admin reset)
func (r *DailyRepository) ResetClaim(ctx context.Context, userID string) error {
	if _, err := r.db.Exec(ctx, SQLDeleteClaim, userID); err != nil {
		return fmt.Errorf(ErrMsgResetClaimFailed, err)
	}
	return nil
}
