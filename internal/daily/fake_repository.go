package daily

import (
	"context"
	"sync"

	"github.com/osse101/GuildCoin_Go/internal/domain"
)

// FakeRepository is an in-memory repository.Daily for tests. It mirrors the
// database guard that rejects a second claim on the same calendar day.
type FakeRepository struct {
	mu       sync.Mutex
	claims   map[string]domain.DailyClaim
	balances map[string]int64

	// FailNext, when set, is returned by the next call and cleared.
	FailNext error
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		claims:   make(map[string]domain.DailyClaim),
		balances: make(map[string]int64),
	}
}

func (f *FakeRepository) takeErr() error {
	err := f.FailNext
	f.FailNext = nil
	return err
}

func (f *FakeRepository) GetClaim(_ context.Context, userID string) (*domain.DailyClaim, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return nil, err
	}
	claim, ok := f.claims[userID]
	if !ok {
		return nil, nil
	}
	return &claim, nil
}

func (f *FakeRepository) RecordClaim(_ context.Context, claim domain.DailyClaim, reward int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return 0, err
	}
	if prev, ok := f.claims[claim.UserID]; ok {
		py, pm, pd := prev.LastClaim.UTC().Date()
		ny, nm, nd := claim.LastClaim.UTC().Date()
		if py == ny && pm == nm && pd == nd {
			return 0, domain.ErrAlreadyClaimed
		}
	}
	f.claims[claim.UserID] = claim
	f.balances[claim.UserID] += reward
	return f.balances[claim.UserID], nil
}

func (f *FakeRepository) ResetClaim(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return err
	}
	delete(f.claims, userID)
	return nil
}

// SetClaim seeds a claim record for tests.
func (f *FakeRepository) SetClaim(claim domain.DailyClaim) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.claims[claim.UserID] = claim
}

// Balance returns the coins credited to a user so far.
func (f *FakeRepository) Balance(userID string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balances[userID]
}
