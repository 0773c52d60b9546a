package admin

import (
	"context"
	"sort"
	"sync"

	"github.com/osse101/GuildCoin_Go/internal/domain"
)

// FakeRepository is an in-memory repository.AdminRoles for tests.
type FakeRepository struct {
	mu    sync.Mutex
	roles map[string]bool

	// FailNext, when set, is returned by the next call and cleared.
	FailNext error
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{roles: make(map[string]bool)}
}

func (f *FakeRepository) takeErr() error {
	err := f.FailNext
	f.FailNext = nil
	return err
}

func (f *FakeRepository) ListRoles(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return nil, err
	}
	roles := make([]string, 0, len(f.roles))
	for roleID := range f.roles {
		roles = append(roles, roleID)
	}
	sort.Strings(roles)
	return roles, nil
}

func (f *FakeRepository) HasRole(_ context.Context, roleID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return false, err
	}
	return f.roles[roleID], nil
}

func (f *FakeRepository) AddRole(_ context.Context, roleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return err
	}
	if f.roles[roleID] {
		return domain.ErrRoleExists
	}
	f.roles[roleID] = true
	return nil
}

func (f *FakeRepository) RemoveRole(_ context.Context, roleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return err
	}
	if !f.roles[roleID] {
		return domain.ErrRoleNotFound
	}
	delete(f.roles, roleID)
	return nil
}
