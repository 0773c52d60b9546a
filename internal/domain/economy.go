package domain

import "time"

// Account is a single row in the ledger: one user, one balance.
// Accounts are created implicitly on first credit and never deleted.
type Account struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
}

// ShopItem is a purchasable catalog entry. Buying it grants RoleID.
type ShopItem struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Price  int64  `json:"price"`
	RoleID string `json:"role_id"`
}

// DailyClaim records a user's most recent daily reward and their streak.
type DailyClaim struct {
	UserID    string    `json:"user_id"`
	LastClaim time.Time `json:"last_claim"`
	Streak    int       `json:"streak"`
}

// AdminRole is a Discord role authorized to invoke admin commands.
type AdminRole struct {
	RoleID string `json:"role_id"`
}
