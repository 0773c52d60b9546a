package shop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GuildCoin_Go/internal/domain"
)

func seedCatalog(t *testing.T, catalog *FakeCatalog) {
	t.Helper()
	ctx := context.Background()
	items := []domain.ShopItem{
		{Name: "Supporter", Price: 10000, RoleID: "role-supporter"},
		{Name: "Patron", Price: 25000, RoleID: "role-patron"},
		{Name: "Champion", Price: 50000, RoleID: "role-champion"},
		{Name: "VIP", Price: 100000, RoleID: "role-vip"},
	}
	for _, item := range items {
		require.NoError(t, catalog.AddItem(ctx, item))
	}
}

func TestListItems_OrderedByPrice(t *testing.T) {
	catalog := NewFakeCatalog()
	seedCatalog(t, catalog)
	svc := NewService(catalog)

	items, err := svc.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 4)
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].Price, items[i].Price)
	}
}

func TestResolveItem(t *testing.T) {
	catalog := NewFakeCatalog()
	seedCatalog(t, catalog)
	svc := NewService(catalog)
	ctx := context.Background()

	tests := []struct {
		name    string
		query   string
		want    string
		wantErr error
	}{
		{"exact name", "Champion", "Champion", nil},
		{"case insensitive exact", "champion", "Champion", nil},
		{"unique substring", "Cham", "Champion", nil},
		{"ambiguous substring", "P", "", domain.ErrAmbiguousItem},
		{"no match", "Dragon", "", domain.ErrItemNotFound},
		{"blank query", "  ", "", domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := svc.ResolveItem(ctx, tt.query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, item.Name)
		})
	}
}

func TestAddItem(t *testing.T) {
	catalog := NewFakeCatalog()
	svc := NewService(catalog)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, "Gilded", 5000, "role-gilded"))

	err := svc.AddItem(ctx, "Gilded", 9000, "role-other")
	assert.ErrorIs(t, err, domain.ErrItemExists)

	assert.ErrorIs(t, svc.AddItem(ctx, "", 5000, "role-x"), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.AddItem(ctx, "Free", 0, "role-x"), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.AddItem(ctx, "NoRole", 100, ""), domain.ErrInvalidInput)
}

func TestRemoveItem(t *testing.T) {
	catalog := NewFakeCatalog()
	seedCatalog(t, catalog)
	svc := NewService(catalog)
	ctx := context.Background()

	removed, err := svc.RemoveItem(ctx, "Cham")
	require.NoError(t, err)
	assert.Equal(t, "Champion", removed.Name)

	_, err = svc.RemoveItem(ctx, "Champion")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	items, err := svc.ListItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestUpdatePrice(t *testing.T) {
	catalog := NewFakeCatalog()
	seedCatalog(t, catalog)
	svc := NewService(catalog)
	ctx := context.Background()

	item, err := svc.UpdatePrice(ctx, "VIP", 75000)
	require.NoError(t, err)
	assert.Equal(t, int64(75000), item.Price)

	fresh, err := svc.ResolveItem(ctx, "VIP")
	require.NoError(t, err)
	assert.Equal(t, int64(75000), fresh.Price)

	_, err = svc.UpdatePrice(ctx, "VIP", -5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.UpdatePrice(ctx, "Dragon", 100)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
