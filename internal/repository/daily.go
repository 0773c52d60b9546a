package repository

import (
	"context"

	"github.com/osse101/GuildCoin_Go/internal/domain"
)

// Daily defines the interface for daily reward persistence
type Daily interface {
	// GetClaim returns the user's claim record, nil when they never claimed.
	GetClaim(ctx context.Context, userID string) (*domain.DailyClaim, error)

	// RecordClaim upserts the claim row and credits the reward to the
	// ledger inside a single transaction, so a crash or a racing check
	// cannot pay without recording, or record without paying.
	// Returns the new ledger balance.
	RecordClaim(ctx context.Context, claim domain.DailyClaim, reward int64) (int64, error)

	// ResetClaim deletes the claim record (admin reset). Resetting an
	// absent record is not an error.
	ResetClaim(ctx context.Context, userID string) error
}
