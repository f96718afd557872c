package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameSpins                = "slots_spins_total"
	MetricNameCoinsWagered         = "slots_coins_wagered_total"
	MetricNameCoinsPaidOut         = "slots_coins_paid_out_total"
	MetricNameDoubleOrNothing      = "gamble_double_or_nothing_total"
	MetricNameDoubleCoinsWon       = "gamble_double_coins_won_total"
	MetricNameDoubleCoinsLost      = "gamble_double_coins_lost_total"
	MetricNameDailyBonusClaims     = "bonus_daily_claims_total"
	MetricNameDailyBonusCoins      = "bonus_daily_coins_total"
	MetricNameDailyBonusResets     = "bonus_daily_resets_total"
	MetricNameAchievementsUnlocked = "achievements_unlocked_total"
	MetricNameWalletCoins          = "wallet_coins"
	MetricNameWinStreak            = "slots_win_streak"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextSpins                = "Total number of settled spins by outcome"
	HelpTextCoinsWagered         = "Total coins spent on spins"
	HelpTextCoinsPaidOut         = "Total coins paid out by spins after multipliers"
	HelpTextDoubleOrNothing      = "Total number of double-or-nothing offers by result"
	HelpTextDoubleCoinsWon       = "Total coins won on double-or-nothing"
	HelpTextDoubleCoinsLost      = "Total coins lost on double-or-nothing"
	HelpTextDailyBonusClaims     = "Total number of daily bonus claims"
	HelpTextDailyBonusCoins      = "Total coins credited by daily bonuses"
	HelpTextDailyBonusResets     = "Total number of daily bonus resets at the day boundary"
	HelpTextAchievementsUnlocked = "Total number of achievements unlocked"
	HelpTextWalletCoins          = "Current wallet balance"
	HelpTextWinStreak            = "Current consecutive win streak"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelType        = "type"
	LabelOutcome     = "outcome"
	LabelResult      = "result"
	LabelAchievement = "achievement"
)

// Double-or-nothing result label values
const (
	ResultWon     = "won"
	ResultLost    = "lost"
	ResultSkipped = "skipped"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)
