package repository

import (
	"context"

	"github.com/osse101/GuildCoin_Go/internal/domain"
)

// Catalog defines the interface for shop item persistence
type Catalog interface {
	// ListItems returns all items ordered by ascending price.
	ListItems(ctx context.Context) ([]domain.ShopItem, error)

	// GetItem returns the item with the exact name, or domain.ErrItemNotFound.
	GetItem(ctx context.Context, name string) (*domain.ShopItem, error)

	// GetItemByID returns the item with the given id, or domain.ErrItemNotFound.
	GetItemByID(ctx context.Context, id int) (*domain.ShopItem, error)

	// FindItems returns all items whose name contains the fragment.
	FindItems(ctx context.Context, fragment string) ([]domain.ShopItem, error)

	// AddItem inserts a new item. Duplicate names map to domain.ErrItemExists.
	AddItem(ctx context.Context, item domain.ShopItem) error

	// RemoveItem deletes by exact name. Missing rows map to domain.ErrItemNotFound.
	RemoveItem(ctx context.Context, name string) error

	// UpdatePrice sets a new price by item id.
	UpdatePrice(ctx context.Context, id int, price int64) error
}
