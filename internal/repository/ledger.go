package repository

import "context"

// Ledger defines the interface for balance persistence.
// All mutating operations are single atomic statements; there is no
// read-then-write window for callers to race through.
type Ledger interface {
	// GetBalance returns the stored balance, 0 for unknown users.
	GetBalance(ctx context.Context, userID string) (int64, error)

	// Credit adds amount to the balance, creating the account if needed.
	// Returns the new balance.
	Credit(ctx context.Context, userID string, amount int64) (int64, error)

	// Debit subtracts amount only when the balance covers it.
	// Returns domain.ErrInsufficientFunds otherwise; the balance is untouched.
	Debit(ctx context.Context, userID string, amount int64) (int64, error)

	// DeductUpTo subtracts amount, clamping the result at zero.
	// Returns the new balance. Missing accounts map to domain.ErrAccountNotFound.
	DeductUpTo(ctx context.Context, userID string, amount int64) (int64, error)

	// SetBalance overwrites the balance, creating the account if needed.
	SetBalance(ctx context.Context, userID string, amount int64) error
}
