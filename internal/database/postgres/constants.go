package postgres

// =============================================================================
// Ledger SQL
// =============================================================================

const (
	// SQLSelectBalance retrieves a user's stored balance
	SQLSelectBalance = `SELECT balance FROM accounts WHERE user_id = $1`

	// SQLCreditBalance adds to the balance, creating the account on first credit
	SQLCreditBalance = `
		INSERT INTO accounts (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET balance = accounts.balance + EXCLUDED.balance
		RETURNING balance
	`

	// SQLDebitBalance subtracts only when the balance covers the amount.
	// Zero rows back means insufficient funds; the row is untouched.
	SQLDebitBalance = `
		UPDATE accounts
		SET balance = balance - $2
		WHERE user_id = $1 AND balance >= $2
		RETURNING balance
	`

	// SQLDeductUpTo subtracts with the result clamped at zero
	SQLDeductUpTo = `
		UPDATE accounts
		SET balance = GREATEST(balance - $2, 0)
		WHERE user_id = $1
		RETURNING balance
	`

	// SQLSetBalance overwrites the balance, creating the account if needed
	SQLSetBalance = `
		INSERT INTO accounts (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET balance = EXCLUDED.balance
	`
)

// =============================================================================
// Shop Catalog SQL
// =============================================================================

const (
	SQLListItems = `
		SELECT item_id, item_name, price, role_id
		FROM shop_items
		ORDER BY price, item_name
	`

	SQLSelectItemByName = `
		SELECT item_id, item_name, price, role_id
		FROM shop_items
		WHERE item_name = $1
	`

	SQLSelectItemByID = `
		SELECT item_id, item_name, price, role_id
		FROM shop_items
		WHERE item_id = $1
	`

	SQLFindItems = `
		SELECT item_id, item_name, price, role_id
		FROM shop_items
		WHERE item_name ILIKE '%' || $1 || '%'
		ORDER BY price, item_name
	`

	SQLInsertItem = `
		INSERT INTO shop_items (item_name, price, role_id)
		VALUES ($1, $2, $3)
	`

	SQLDeleteItem = `DELETE FROM shop_items WHERE item_name = $1`

	SQLUpdateItemPrice = `UPDATE shop_items SET price = $2 WHERE item_id = $1`
)

// =============================================================================
// Admin Role Registry SQL
// =============================================================================

const (
	SQLListAdminRoles  = `SELECT role_id FROM admin_roles ORDER BY role_id`
	SQLHasAdminRole    = `SELECT EXISTS (SELECT 1 FROM admin_roles WHERE role_id = $1)`
	SQLInsertAdminRole = `INSERT INTO admin_roles (role_id) VALUES ($1) ON CONFLICT DO NOTHING`
	SQLDeleteAdminRole = `DELETE FROM admin_roles WHERE role_id = $1`
)

// =============================================================================
// Daily Claim SQL
// =============================================================================

const (
	SQLSelectClaim = `
		SELECT user_id, last_claim, streak
		FROM daily_claims
		WHERE user_id = $1
	`

	// SQLUpsertClaim records a claim; the WHERE guard rejects a second claim
	// for the same calendar day so a racing worker and status command cannot
	// both pay out. Days are compared in UTC regardless of the session
	// TimeZone, matching the service's streak arithmetic.
	SQLUpsertClaim = `
		INSERT INTO daily_claims (user_id, last_claim, streak)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET last_claim = EXCLUDED.last_claim, streak = EXCLUDED.streak
		WHERE (daily_claims.last_claim AT TIME ZONE 'UTC')::date
		    < (EXCLUDED.last_claim AT TIME ZONE 'UTC')::date
	`

	SQLDeleteClaim = `DELETE FROM daily_claims WHERE user_id = $1`
)

// =============================================================================
// Error Message Constants
// =============================================================================

const (
	ErrMsgGetBalanceFailed  = "failed to get balance: %w"
	ErrMsgCreditFailed      = "failed to credit balance: %w"
	ErrMsgDebitFailed       = "failed to debit balance: %w"
	ErrMsgSetBalanceFailed  = "failed to set balance: %w"
	ErrMsgListItemsFailed   = "failed to list shop items: %w"
	ErrMsgGetItemFailed     = "failed to get shop item: %w"
	ErrMsgAddItemFailed     = "failed to add shop item: %w"
	ErrMsgRemoveItemFailed  = "failed to remove shop item: %w"
	ErrMsgUpdatePriceFailed = "failed to update item price: %w"
	ErrMsgListRolesFailed   = "failed to list admin roles: %w"
	ErrMsgAddRoleFailed     = "failed to add admin role: %w"
	ErrMsgRemoveRoleFailed  = "failed to remove admin role: %w"
	ErrMsgGetClaimFailed    = "failed to get daily claim: %w"
	ErrMsgRecordClaimFailed = "failed to record daily claim: %w"
	ErrMsgResetClaimFailed  = "failed to reset daily claim: %w"
	ErrMsgBeginTxFailed     = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed    = "failed to commit transaction: %w"
)

// PgErrCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
const PgErrCodeUniqueViolation = "23505"
