package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GuildCoin_Go/internal/domain"
)

// LedgerRepository implements the ledger repository for PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// GetBalance returns the stored balance, 0 for unknown users
func (r *LedgerRepository) GetBalance(ctx context.Context, userID string) (int64, error) {
	var balance int64
	err := r.db.QueryRow(ctx, SQLSelectBalance, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf(ErrMsgGetBalanceFailed, err)
	}
	return balance, nil
}

// Credit adds amount to the balance, creating the account if needed
func (r *LedgerRepository) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	var balance int64
	err := r.db.QueryRow(ctx, SQLCreditBalance, userID, amount).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgCreditFailed, err)
	}
	return balance, nil
}

// Debit subtracts amount only when the balance covers it
func (r *LedgerRepository) Debit(ctx context.Context, userID string, amount int64) (int64, error) {
	var balance int64
	err := r.db.QueryRow(ctx, SQLDebitBalance, userID, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either no account or not enough in it; same answer for the caller
			return 0, domain.ErrInsufficientFunds
		}
		return 0, fmt.Errorf(ErrMsgDebitFailed, err)
	}
	return balance, nil
}

// DeductUpTo subtracts amount, clamping the result at zero
func (r *LedgerRepository) DeductUpTo(ctx context.Context, userID string, amount int64) (int64, error) {
	var balance int64
	err := r.db.QueryRow(ctx, SQLDeductUpTo, userID, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrAccountNotFound
		}
		return 0, fmt.Errorf(ErrMsgDebitFailed, err)
	}
	return balance, nil
}

// SetBalance overwrites the balance, creating the account if needed
func (r *LedgerRepository) SetBalance(ctx context.Context, userID string, amount int64) error {
	if _, err := r.db.Exec(ctx, SQLSetBalance, userID, amount); err != nil {
		return fmt.Errorf(ErrMsgSetBalanceFailed, err)
	}
	return nil
}
