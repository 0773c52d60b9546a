package ledger

import (
	"context"
	"sync"

	"github.com/osse101/GuildCoin_Go/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of repository.Ledger
// for testing. It mirrors the atomic semantics of the Postgres statements so
// service tests exercise the same insufficient-funds and clamping behavior.
type FakeRepository struct {
	mu       sync.Mutex
	balances map[string]int64

	// FailNext forces the next operation to return this error, then clears.
	FailNext error
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{balances: make(map[string]int64)}
}

func (f *FakeRepository) takeErr() error {
	err := f.FailNext
	f.FailNext = nil
	return err
}

func (f *FakeRepository) GetBalance(ctx context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return 0, err
	}
	return f.balances[userID], nil
}

func (f *FakeRepository) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return 0, err
	}
	f.balances[userID] += amount
	return f.balances[userID], nil
}

func (f *FakeRepository) Debit(ctx context.Context, userID string, amount int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return 0, err
	}
	balance, ok := f.balances[userID]
	if !ok || balance < amount {
		return 0, domain.ErrInsufficientFunds
	}
	f.balances[userID] = balance - amount
	return f.balances[userID], nil
}

func (f *FakeRepository) DeductUpTo(ctx context.Context, userID string, amount int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return 0, err
	}
	balance, ok := f.balances[userID]
	if !ok {
		return 0, domain.ErrAccountNotFound
	}
	balance -= amount
	if balance < 0 {
		balance = 0
	}
	f.balances[userID] = balance
	return balance, nil
}

func (f *FakeRepository) SetBalance(ctx context.Context, userID string, amount int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return err
	}
	f.balances[userID] = amount
	return nil
}

// Balance reads the stored balance directly (test helper).
func (f *FakeRepository) Balance(userID string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balances[userID]
}
