package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Command Metrics
var (
	CommandsHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsHandled,
			Help: HelpTextCommandsHandled,
		},
		[]string{LabelCommand},
	)
)

// Faucet Metrics
var (
	ActivityMessages = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameActivityMessages,
			Help: HelpTextActivityMessages,
		},
	)

	CoinsMinted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsMinted,
			Help: HelpTextCoinsMinted,
		},
	)
)

// Shop Metrics
var (
	PurchasesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchasesCompleted,
			Help: HelpTextPurchasesCompleted,
		},
		[]string{LabelItem},
	)

	PurchasesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchasesFailed,
			Help: HelpTextPurchasesFailed,
		},
		[]string{LabelItem},
	)

	PurchasesRefunded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchasesRefunded,
			Help: HelpTextPurchasesRefunded,
		},
		[]string{LabelItem},
	)
)

// Daily Reward Metrics
var (
	DailyRewardsPaid = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyRewardsPaid,
			Help: HelpTextDailyRewardsPaid,
		},
	)

	DailyRewardCoins = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyRewardCoins,
			Help: HelpTextDailyRewardCoins,
		},
	)
)

// Admin Metrics
var (
	AdminActionsDenied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAdminActionsDenied,
			Help: HelpTextAdminActionsDenied,
		},
	)
)
