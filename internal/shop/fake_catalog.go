package shop

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/osse101/GuildCoin_Go/internal/domain"
)

// FakeCatalog is an in-memory repository.Catalog for tests.
type FakeCatalog struct {
	mu     sync.Mutex
	items  map[int]domain.ShopItem
	nextID int

	// FailNext, when set, is returned by the next call and cleared.
	FailNext error
}

func NewFakeCatalog() *FakeCatalog {
	return &FakeCatalog{items: make(map[int]domain.ShopItem), nextID: 1}
}

func (f *FakeCatalog) takeErr() error {
	err := f.FailNext
	f.FailNext = nil
	return err
}

func (f *FakeCatalog) ListItems(_ context.Context) ([]domain.ShopItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return nil, err
	}
	items := make([]domain.ShopItem, 0, len(f.items))
	for _, item := range f.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	return items, nil
}

func (f *FakeCatalog) GetItem(_ context.Context, name string) (*domain.ShopItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return nil, err
	}
	for _, item := range f.items {
		if item.Name == name {
			found := item
			return &found, nil
		}
	}
	return nil, domain.ErrItemNotFound
}

func (f *FakeCatalog) GetItemByID(_ context.Context, id int) (*domain.ShopItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return nil, err
	}
	item, ok := f.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &item, nil
}

func (f *FakeCatalog) FindItems(_ context.Context, fragment string) ([]domain.ShopItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return nil, err
	}
	var matches []domain.ShopItem
	for _, item := range f.items {
		if strings.Contains(strings.ToLower(item.Name), strings.ToLower(fragment)) {
			matches = append(matches, item)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	return matches, nil
}

func (f *FakeCatalog) AddItem(_ context.Context, item domain.ShopItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return err
	}
	for _, existing := range f.items {
		if existing.Name == item.Name {
			return domain.ErrItemExists
		}
	}
	item.ID = f.nextID
	f.nextID++
	f.items[item.ID] = item
	return nil
}

func (f *FakeCatalog) RemoveItem(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return err
	}
	for id, item := range f.items {
		if item.Name == name {
			delete(f.items, id)
			return nil
		}
	}
	return domain.ErrItemNotFound
}

func (f *FakeCatalog) UpdatePrice(_ context.Context, id int, price int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeErr(); err != nil {
		return err
	}
	item, ok := f.items[id]
	if !ok {
		return domain.ErrItemNotFound
	}
	item.Price = price
	f.items[id] = item
	return nil
}
