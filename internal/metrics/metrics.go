package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	Spins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpins,
			Help: HelpTextSpins,
		},
		[]string{LabelOutcome},
	)

	CoinsWagered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsWagered,
			Help: HelpTextCoinsWagered,
		},
	)

	CoinsPaidOut = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsPaidOut,
			Help: HelpTextCoinsPaidOut,
		},
	)

	DoubleOrNothing = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDoubleOrNothing,
			Help: HelpTextDoubleOrNothing,
		},
		[]string{LabelResult},
	)

	DoubleCoinsWon = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDoubleCoinsWon,
			Help: HelpTextDoubleCoinsWon,
		},
	)

	DoubleCoinsLost = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDoubleCoinsLost,
			Help: HelpTextDoubleCoinsLost,
		},
	)

	DailyBonusClaims = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyBonusClaims,
			Help: HelpTextDailyBonusClaims,
		},
	)

	DailyBonusCoins = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyBonusCoins,
			Help: HelpTextDailyBonusCoins,
		},
	)

	DailyBonusResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyBonusResets,
			Help: HelpTextDailyBonusResets,
		},
	)

	AchievementsUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAchievementsUnlocked,
			Help: HelpTextAchievementsUnlocked,
		},
		[]string{LabelAchievement},
	)

	WalletCoins = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameWalletCoins,
			Help: HelpTextWalletCoins,
		},
	)

	WinStreak = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameWinStreak,
			Help: HelpTextWinStreak,
		},
	)
)
