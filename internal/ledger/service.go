package ledger

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/osse101/GuildCoin_Go/internal/domain"
	"github.com/osse101/GuildCoin_Go/internal/logger"
	"github.com/osse101/GuildCoin_Go/internal/metrics"
	"github.com/osse101/GuildCoin_Go/internal/repository"
)

// Service defines the interface for ledger operations
type Service interface {
	// GetBalance returns the user's balance, 0 for unknown users.
	GetBalance(ctx context.Context, userID string) (int64, error)

	// Credit adds amount (> 0) and returns the new balance.
	Credit(ctx context.Context, userID string, amount int64) (int64, error)

	// Debit removes amount (> 0) if the balance covers it; returns the new
	// balance or domain.ErrInsufficientFunds with no state change.
	Debit(ctx context.Context, userID string, amount int64) (int64, error)

	// DeductUpTo removes up to amount (> 0), clamping at zero.
	DeductUpTo(ctx context.Context, userID string, amount int64) (int64, error)

	// SetBalance overwrites the balance with amount (>= 0).
	SetBalance(ctx context.Context, userID string, amount int64) error

	// CreditActivity pays the message faucet roll and returns the amount paid.
	CreditActivity(ctx context.Context, userID string) (int64, error)
}

type service struct {
	repo repository.Ledger
	rnd  func(n int) int // For the faucet roll
}

// NewService creates a new ledger service
func NewService(repo repository.Ledger) Service {
	return &service{
		repo: repo,
		rnd:  rand.Intn,
	}
}

func (s *service) GetBalance(ctx context.Context, userID string) (int64, error) {
	return s.repo.GetBalance(ctx, userID)
}

func (s *service) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	if err := validateAmount(amount); err != nil {
		return 0, err
	}

	balance, err := s.repo.Credit(ctx, userID, amount)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info(LogMsgBalanceAdjusted, "user_id", userID, "amount", amount, "balance", balance)
	return balance, nil
}

func (s *service) Debit(ctx context.Context, userID string, amount int64) (int64, error) {
	if err := validateAmount(amount); err != nil {
		return 0, err
	}

	balance, err := s.repo.Debit(ctx, userID, amount)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info(LogMsgBalanceAdjusted, "user_id", userID, "amount", -amount, "balance", balance)
	return balance, nil
}

func (s *service) DeductUpTo(ctx context.Context, userID string, amount int64) (int64, error) {
	if err := validateAmount(amount); err != nil {
		return 0, err
	}

	balance, err := s.repo.DeductUpTo(ctx, userID, amount)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info(LogMsgBalanceAdjusted, "user_id", userID, "amount", -amount, "balance", balance)
	return balance, nil
}

func (s *service) SetBalance(ctx context.Context, userID string, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: amount must not be negative, got %d", domain.ErrInvalidInput, amount)
	}

	if err := s.repo.SetBalance(ctx, userID, amount); err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgBalanceSet, "user_id", userID, "balance", amount)
	return nil
}

func (s *service) CreditActivity(ctx context.Context, userID string) (int64, error) {
	amount := int64(ActivityCreditMin + s.rnd(ActivityCreditMax-ActivityCreditMin+1))

	if _, err := s.repo.Credit(ctx, userID, amount); err != nil {
		return 0, err
	}

	metrics.ActivityMessages.Inc()
	metrics.CoinsMinted.Add(float64(amount))

	logger.FromContext(ctx).Debug(LogMsgActivityCredited, "user_id", userID, "amount", amount)
	return amount, nil
}

// validateAmount rejects non-positive adjustment amounts
func validateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %d", domain.ErrInvalidInput, amount)
	}
	return nil
}
