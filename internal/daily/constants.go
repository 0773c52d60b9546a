package daily

// Reward amounts
const (
	// BaseReward is paid on every daily claim
	BaseReward = 1000
	// StreakBonus is the extra payout per day of streak
	StreakBonus = 200
	// MaxStreakBonus caps the streak portion of the payout
	MaxStreakBonus = 5000
)

// ActivityMinutesRequired is how many active minutes a user needs before the
// daily reward fires.
const ActivityMinutesRequired = 10

// Log Messages
const (
	LogMsgRewardPaid  = "Daily reward paid"
	LogMsgClaimReset  = "Daily claim reset"
	LogMsgSweepFailed = "Daily reward sweep failed for user"
)

// Error Messages
const (
	ErrMsgGetClaimFailed = "failed to load daily claim: %w"
	ErrMsgPayoutFailed   = "failed to pay daily reward: %w"
)
