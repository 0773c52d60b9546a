package shop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GuildCoin_Go/internal/domain"
	"github.com/osse101/GuildCoin_Go/internal/ledger"
)

// fakeGranter records grants and optionally fails.
type fakeGranter struct {
	grants  []string
	failErr error
}

func (g *fakeGranter) GrantRole(_ context.Context, guildID, userID, roleID string) error {
	if g.failErr != nil {
		return g.failErr
	}
	g.grants = append(g.grants, guildID+":"+userID+":"+roleID)
	return nil
}

type purchaseFixture struct {
	purchaser Purchaser
	ledger    *ledger.FakeRepository
	catalog   *FakeCatalog
	granter   *fakeGranter
	item      domain.ShopItem
}

func newPurchaseFixture(t *testing.T, balance int64) *purchaseFixture {
	t.Helper()
	ctx := context.Background()

	catalog := NewFakeCatalog()
	require.NoError(t, catalog.AddItem(ctx, domain.ShopItem{
		Name: "Champion", Price: 50000, RoleID: "role-champion",
	}))
	item, err := catalog.GetItem(ctx, "Champion")
	require.NoError(t, err)

	ledgerRepo := ledger.NewFakeRepository()
	ledgerSvc := ledger.NewService(ledgerRepo)
	if balance > 0 {
		_, err := ledgerSvc.Credit(ctx, "buyer", balance)
		require.NoError(t, err)
	}

	granter := &fakeGranter{}
	return &purchaseFixture{
		purchaser: NewPurchaser(NewService(catalog), ledgerSvc, granter),
		ledger:    ledgerRepo,
		catalog:   catalog,
		granter:   granter,
		item:      *item,
	}
}

func TestPurchase_HappyPath(t *testing.T) {
	fx := newPurchaseFixture(t, 60000)
	ctx := context.Background()

	sess, err := fx.purchaser.Begin(ctx, "buyer", "guild1", fx.item.ID)
	require.NoError(t, err)
	assert.Equal(t, "buyer", sess.UserID)
	assert.Equal(t, fx.item.Name, sess.Item.Name)

	result, err := fx.purchaser.Confirm(ctx, "buyer", fx.item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), result.NewBalance)
	assert.Equal(t, []string{"guild1:buyer:role-champion"}, fx.granter.grants)
}

func TestPurchase_InsufficientFundsLeavesBalance(t *testing.T) {
	fx := newPurchaseFixture(t, 40000)
	ctx := context.Background()

	_, err := fx.purchaser.Begin(ctx, "buyer", "guild1", fx.item.ID)
	require.NoError(t, err)

	_, err = fx.purchaser.Confirm(ctx, "buyer", fx.item.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, int64(40000), fx.ledger.Balance("buyer"))
	assert.Empty(t, fx.granter.grants)
}

func TestPurchase_ConfirmWithoutSession(t *testing.T) {
	fx := newPurchaseFixture(t, 60000)

	_, err := fx.purchaser.Confirm(context.Background(), "buyer", fx.item.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Equal(t, int64(60000), fx.ledger.Balance("buyer"))
}

func TestPurchase_ConfirmIsSingleUse(t *testing.T) {
	fx := newPurchaseFixture(t, 120000)
	ctx := context.Background()

	_, err := fx.purchaser.Begin(ctx, "buyer", "guild1", fx.item.ID)
	require.NoError(t, err)

	_, err = fx.purchaser.Confirm(ctx, "buyer", fx.item.ID)
	require.NoError(t, err)

	// A second confirm finds no session; exactly one debit and one grant.
	_, err = fx.purchaser.Confirm(ctx, "buyer", fx.item.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Equal(t, int64(70000), fx.ledger.Balance("buyer"))
	assert.Len(t, fx.granter.grants, 1)
}

func TestPurchase_OtherUserCannotConfirm(t *testing.T) {
	fx := newPurchaseFixture(t, 60000)
	ctx := context.Background()

	_, err := fx.purchaser.Begin(ctx, "buyer", "guild1", fx.item.ID)
	require.NoError(t, err)

	_, err = fx.purchaser.Confirm(ctx, "intruder", fx.item.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// The owner's session is untouched.
	_, err = fx.purchaser.Confirm(ctx, "buyer", fx.item.ID)
	require.NoError(t, err)
}

func TestPurchase_GrantFailureRefunds(t *testing.T) {
	fx := newPurchaseFixture(t, 60000)
	fx.granter.failErr = errors.New("missing permission")
	ctx := context.Background()

	_, err := fx.purchaser.Begin(ctx, "buyer", "guild1", fx.item.ID)
	require.NoError(t, err)

	_, err = fx.purchaser.Confirm(ctx, "buyer", fx.item.ID)
	assert.ErrorIs(t, err, domain.ErrRoleGrantFailed)
	assert.Equal(t, int64(60000), fx.ledger.Balance("buyer"))
}

func TestPurchase_CancelDiscardsSession(t *testing.T) {
	fx := newPurchaseFixture(t, 60000)
	ctx := context.Background()

	_, err := fx.purchaser.Begin(ctx, "buyer", "guild1", fx.item.ID)
	require.NoError(t, err)

	sess := fx.purchaser.Cancel(ctx, "buyer", fx.item.ID)
	require.NotNil(t, sess)
	assert.Equal(t, fx.item.Name, sess.Item.Name)

	// Cancel again is a no-op.
	assert.Nil(t, fx.purchaser.Cancel(ctx, "buyer", fx.item.ID))

	_, err = fx.purchaser.Confirm(ctx, "buyer", fx.item.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Equal(t, int64(60000), fx.ledger.Balance("buyer"))
}

func TestPurchase_BeginUnknownItem(t *testing.T) {
	fx := newPurchaseFixture(t, 60000)

	_, err := fx.purchaser.Begin(context.Background(), "buyer", "guild1", 999)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestSessionStore_Expiry(t *testing.T) {
	store := newSessionStore(8, 20*time.Millisecond)
	store.Put(&Session{UserID: "buyer", Item: domain.ShopItem{ID: 1, Name: "X"}, CreatedAt: time.Now()})

	time.Sleep(50 * time.Millisecond)
	assert.Nil(t, store.Take("buyer", 1))
}
