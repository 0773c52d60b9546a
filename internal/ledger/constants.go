package ledger

// Activity faucet payout bounds, inclusive. Every qualifying message pays a
// uniform roll in this range; there is no per-message cooldown.
const (
	ActivityCreditMin = 10
	ActivityCreditMax = 50
)

// Log Messages
const (
	LogMsgActivityCredited = "Activity credit paid"
	LogMsgBalanceAdjusted  = "Balance adjusted"
	LogMsgBalanceSet       = "Balance set"
)
