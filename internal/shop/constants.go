package shop

import "time"

// Purchase session limits
const (
	// SessionTTL is how long a pending purchase stays confirmable.
	SessionTTL = 2 * time.Minute
	// SessionCacheSize bounds the number of concurrent pending purchases.
	SessionCacheSize = 256
)

// Log Messages
const (
	LogMsgItemAdded        = "Shop item added"
	LogMsgItemRemoved      = "Shop item removed"
	LogMsgPriceUpdated     = "Shop item price updated"
	LogMsgPurchaseStarted  = "Purchase session opened"
	LogMsgPurchaseDone     = "Purchase completed"
	LogMsgPurchaseCanceled = "Purchase canceled"
	LogMsgPurchaseExpired  = "Purchase session missing or expired"
	LogMsgGrantFailed      = "Role grant failed, refunding purchase"
	LogMsgRefundFailed     = "Refund after failed grant did not apply"
)

// Error Messages
const (
	ErrMsgListFailed   = "failed to list shop items: %w"
	ErrMsgLookupFailed = "failed to look up shop item %q: %w"
	ErrMsgAddFailed    = "failed to add shop item %q: %w"
	ErrMsgRemoveFailed = "failed to remove shop item %q: %w"
	ErrMsgPriceFailed  = "failed to update price for item %d: %w"
	ErrMsgDebitFailed  = "failed to debit purchase: %w"
)
