package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Business metric names
const (
	MetricNameCommandsHandled    = "commands_handled_total"
	MetricNameActivityMessages   = "activity_messages_total"
	MetricNameCoinsMinted        = "coins_minted_total"
	MetricNamePurchasesCompleted = "purchases_completed_total"
	MetricNamePurchasesFailed    = "purchases_failed_total"
	MetricNamePurchasesRefunded  = "purchases_refunded_total"
	MetricNameDailyRewardsPaid   = "daily_rewards_paid_total"
	MetricNameDailyRewardCoins   = "daily_reward_coins_total"
	MetricNameAdminActionsDenied = "admin_actions_denied_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextCommandsHandled    = "Total number of slash commands handled"
	HelpTextActivityMessages   = "Total number of messages that earned activity credit"
	HelpTextCoinsMinted        = "Total coins credited by the message faucet"
	HelpTextPurchasesCompleted = "Total number of completed shop purchases"
	HelpTextPurchasesFailed    = "Total number of purchase attempts that did not complete"
	HelpTextPurchasesRefunded  = "Total number of purchases refunded after a failed role grant"
	HelpTextDailyRewardsPaid   = "Total number of daily rewards paid out"
	HelpTextDailyRewardCoins   = "Total coins paid out as daily rewards"
	HelpTextAdminActionsDenied = "Total number of admin commands rejected for missing authorization"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelCommand = "command"
	LabelItem    = "item"
)
