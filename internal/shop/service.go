package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/GuildCoin_Go/internal/domain"
	"github.com/osse101/GuildCoin_Go/internal/logger"
	"github.com/osse101/GuildCoin_Go/internal/repository"
)

// Service defines the interface for catalog management
type Service interface {
	// ListItems returns the catalog ordered by ascending price.
	ListItems(ctx context.Context) ([]domain.ShopItem, error)

	// ResolveItem finds a single item by name fragment. An exact match wins;
	// otherwise a unique substring match is accepted. Multiple matches
	// return domain.ErrAmbiguousItem, none return domain.ErrItemNotFound.
	ResolveItem(ctx context.Context, query string) (*domain.ShopItem, error)

	// GetItemByID returns the item with the given id.
	GetItemByID(ctx context.Context, id int) (*domain.ShopItem, error)

	// AddItem inserts a new catalog entry.
	AddItem(ctx context.Context, name string, price int64, roleID string) error

	// RemoveItem deletes an item resolved by name fragment.
	RemoveItem(ctx context.Context, query string) (*domain.ShopItem, error)

	// UpdatePrice sets a new price on an item resolved by name fragment.
	UpdatePrice(ctx context.Context, query string, price int64) (*domain.ShopItem, error)
}

type service struct {
	catalog repository.Catalog
}

// NewService creates a new catalog service
func NewService(catalog repository.Catalog) Service {
	return &service{catalog: catalog}
}

func (s *service) ListItems(ctx context.Context) ([]domain.ShopItem, error) {
	items, err := s.catalog.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	return items, nil
}

func (s *service) ResolveItem(ctx context.Context, query string) (*domain.ShopItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidInput
	}

	item, err := s.catalog.GetItem(ctx, query)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, domain.ErrItemNotFound) {
		return nil, fmt.Errorf(ErrMsgLookupFailed, query, err)
	}

	matches, err := s.catalog.FindItems(ctx, query)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLookupFailed, query, err)
	}
	switch len(matches) {
	case 0:
		return nil, domain.ErrItemNotFound
	case 1:
		return &matches[0], nil
	default:
		return nil, domain.ErrAmbiguousItem
	}
}

func (s *service) GetItemByID(ctx context.Context, id int) (*domain.ShopItem, error) {
	return s.catalog.GetItemByID(ctx, id)
}

func (s *service) AddItem(ctx context.Context, name string, price int64, roleID string) error {
	name = strings.TrimSpace(name)
	if name == "" || price <= 0 || roleID == "" {
		return domain.ErrInvalidInput
	}

	err := s.catalog.AddItem(ctx, domain.ShopItem{Name: name, Price: price, RoleID: roleID})
	if err != nil {
		if errors.Is(err, domain.ErrItemExists) {
			return err
		}
		return fmt.Errorf(ErrMsgAddFailed, name, err)
	}

	logger.FromContext(ctx).Info(LogMsgItemAdded, "item", name, "price", price, "role_id", roleID)
	return nil
}

func (s *service) RemoveItem(ctx context.Context, query string) (*domain.ShopItem, error) {
	item, err := s.ResolveItem(ctx, query)
	if err != nil {
		return nil, err
	}

	if err := s.catalog.RemoveItem(ctx, item.Name); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgRemoveFailed, item.Name, err)
	}

	logger.FromContext(ctx).Info(LogMsgItemRemoved, "item", item.Name)
	return item, nil
}

func (s *service) UpdatePrice(ctx context.Context, query string, price int64) (*domain.ShopItem, error) {
	if price <= 0 {
		return nil, domain.ErrInvalidInput
	}

	item, err := s.ResolveItem(ctx, query)
	if err != nil {
		return nil, err
	}

	if err := s.catalog.UpdatePrice(ctx, item.ID, price); err != nil {
		return nil, fmt.Errorf(ErrMsgPriceFailed, item.ID, err)
	}

	logger.FromContext(ctx).Info(LogMsgPriceUpdated, "item", item.Name, "old_price", item.Price, "new_price", price)
	item.Price = price
	return item, nil
}
