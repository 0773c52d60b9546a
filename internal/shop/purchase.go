package shop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/GuildCoin_Go/internal/domain"
	"github.com/osse101/GuildCoin_Go/internal/ledger"
	"github.com/osse101/GuildCoin_Go/internal/logger"
	"github.com/osse101/GuildCoin_Go/internal/metrics"
)

// RoleGranter grants a role to a guild member. The chat platform layer
// provides the implementation.
type RoleGranter interface {
	GrantRole(ctx context.Context, guildID, userID, roleID string) error
}

// PurchaseResult is the outcome of a confirmed purchase.
type PurchaseResult struct {
	Item       domain.ShopItem
	NewBalance int64
}

// Purchaser runs the two-phase purchase flow: Begin opens a confirmable
// session, Confirm settles it, Cancel discards it. Sessions expire on
// their own after SessionTTL.
type Purchaser interface {
	// Begin opens a purchase session for the item. Funds are not checked
	// here; the debit happens at confirmation.
	Begin(ctx context.Context, userID, guildID string, itemID int) (*Session, error)

	// Confirm settles the session: debits the price, grants the role, and
	// refunds the debit if the grant fails. Returns
	// domain.ErrSessionNotFound when no live session exists,
	// domain.ErrInsufficientFunds when the balance does not cover the
	// price, and domain.ErrRoleGrantFailed after a refunded grant failure.
	Confirm(ctx context.Context, userID string, itemID int) (*PurchaseResult, error)

	// Cancel discards the session. Canceling an absent or expired session
	// is a no-op; the returned session is nil in that case.
	Cancel(ctx context.Context, userID string, itemID int) *Session
}

type purchaser struct {
	catalog  Service
	ledger   ledger.Service
	granter  RoleGranter
	sessions *sessionStore
	now      func() time.Time
}

// NewPurchaser creates a purchase flow backed by the catalog and ledger.
func NewPurchaser(catalog Service, ledgerSvc ledger.Service, granter RoleGranter) Purchaser {
	return &purchaser{
		catalog:  catalog,
		ledger:   ledgerSvc,
		granter:  granter,
		sessions: newSessionStore(SessionCacheSize, SessionTTL),
		now:      time.Now,
	}
}

func (p *purchaser) Begin(ctx context.Context, userID, guildID string, itemID int) (*Session, error) {
	item, err := p.catalog.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	sess := &Session{UserID: userID, GuildID: guildID, Item: *item, CreatedAt: p.now()}
	p.sessions.Put(sess)

	logger.FromContext(ctx).Info(LogMsgPurchaseStarted,
		"user_id", userID, "item", item.Name, "price", item.Price)
	return sess, nil
}

func (p *purchaser) Confirm(ctx context.Context, userID string, itemID int) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)

	sess := p.sessions.Take(userID, itemID)
	if sess == nil {
		log.Info(LogMsgPurchaseExpired, "user_id", userID, "item_id", itemID)
		return nil, domain.ErrSessionNotFound
	}
	item := sess.Item

	newBalance, err := p.ledger.Debit(ctx, userID, item.Price)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			metrics.PurchasesFailed.WithLabelValues(item.Name).Inc()
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgDebitFailed, err)
	}

	if err := p.granter.GrantRole(ctx, sess.GuildID, userID, item.RoleID); err != nil {
		log.Error(LogMsgGrantFailed,
			"user_id", userID, "item", item.Name, "role_id", item.RoleID, "error", err)
		metrics.PurchasesFailed.WithLabelValues(item.Name).Inc()

		if _, refundErr := p.ledger.Credit(ctx, userID, item.Price); refundErr != nil {
			log.Error(LogMsgRefundFailed, "user_id", userID, "amount", item.Price, "error", refundErr)
		} else {
			metrics.PurchasesRefunded.WithLabelValues(item.Name).Inc()
		}
		return nil, domain.ErrRoleGrantFailed
	}

	metrics.PurchasesCompleted.WithLabelValues(item.Name).Inc()
	log.Info(LogMsgPurchaseDone,
		"user_id", userID, "item", item.Name, "price", item.Price, "balance", newBalance)

	return &PurchaseResult{Item: item, NewBalance: newBalance}, nil
}

func (p *purchaser) Cancel(ctx context.Context, userID string, itemID int) *Session {
	sess := p.sessions.Take(userID, itemID)
	if sess == nil {
		return nil
	}
	logger.FromContext(ctx).Info(LogMsgPurchaseCanceled,
		"user_id", userID, "item", sess.Item.Name)
	return sess
}
