package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GuildCoin_Go/internal/domain"
)

// CatalogRepository implements the shop catalog repository for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListItems returns all items ordered by ascending price
func (r *CatalogRepository) ListItems(ctx context.Context) ([]domain.ShopItem, error) {
	rows, err := r.db.Query(ctx, SQLListItems)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// GetItem returns the item with the exact name
func (r *CatalogRepository) GetItem(ctx context.Context, name string) (*domain.ShopItem, error) {
	return r.scanOne(ctx, SQLSelectItemByName, name)
}

// GetItemByID returns the item with the given id
func (r *CatalogRepository) GetItemByID(ctx context.Context, id int) (*domain.ShopItem, error) {
	return r.scanOne(ctx, SQLSelectItemByID, id)
}

// FindItems returns all items whose name contains the fragment (case-insensitive)
func (r *CatalogRepository) FindItems(ctx context.Context, fragment string) ([]domain.ShopItem, error) {
	rows, err := r.db.Query(ctx, SQLFindItems, fragment)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// AddItem inserts a new item
func (r *CatalogRepository) AddItem(ctx context.Context, item domain.ShopItem) error {
	if _, err := r.db.Exec(ctx, SQLInsertItem, item.Name, item.Price, item.RoleID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrCodeUniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrItemExists, item.Name)
		}
		return fmt.Errorf(ErrMsgAddItemFailed, err)
	}
	return nil
}

// RemoveItem deletes by exact name
func (r *CatalogRepository) RemoveItem(ctx context.Context, name string) error {
	tag, err := r.db.Exec(ctx, SQLDeleteItem, name)
	if err != nil {
		return fmt.Errorf(ErrMsgRemoveItemFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}
	return nil
}

// UpdatePrice sets a new price by item id
func (r *CatalogRepository) UpdatePrice(ctx context.Context, id int, price int64) error {
	tag, err := r.db.Exec(ctx, SQLUpdateItemPrice, id, price)
	if err != nil {
		return fmt.Errorf(ErrMsgUpdatePriceFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrItemNotFound, id)
	}
	return nil
}

func (r *CatalogRepository) scanOne(ctx context.Context, query string, arg any) (*domain.ShopItem, error) {
	var item domain.ShopItem
	err := r.db.QueryRow(ctx, query, arg).Scan(&item.ID, &item.Name, &item.Price, &item.RoleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}
	return &item, nil
}

func scanItems(rows pgx.Rows) ([]domain.ShopItem, error) {
	var items []domain.ShopItem
	for rows.Next() {
		var item domain.ShopItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.RoleID); err != nil {
			return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	return items, nil
}
