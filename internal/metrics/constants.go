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
	MetricNameEventsPublished = "events_published_total"
)

// Business metric names
const (
	MetricNameItemsSold         = "items_sold_total"
	MetricNameItemsBought       = "items_bought_total"
	MetricNameItemsEquipped     = "items_equipped_total"
	MetricNameItemsUnequipped   = "items_unequipped_total"
	MetricNameItemsGranted      = "items_granted_total"
	MetricNameItemsRevoked      = "items_revoked_total"
	MetricNameMoneyEarned       = "money_earned_total"
	MetricNameMoneySpent        = "money_spent_total"
	MetricNameCharactersCreated = "characters_created_total"
	MetricNameCharactersDeleted = "characters_deleted_total"
)

// Store metric names
const (
	MetricNameTransactionRollbacks = "transaction_rollbacks_total"
	MetricNameCatalogCacheRequests = "catalog_cache_requests_total"
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
	HelpTextEventsPublished = "Total number of events published"
)

// Business metric help text
const (
	HelpTextItemsSold         = "Total number of items sold"
	HelpTextItemsBought       = "Total number of items bought"
	HelpTextItemsEquipped     = "Total number of equip operations"
	HelpTextItemsUnequipped   = "Total number of unequip operations"
	HelpTextItemsGranted      = "Total number of items granted by administrators"
	HelpTextItemsRevoked      = "Total number of items revoked by administrators"
	HelpTextMoneyEarned       = "Total money credited to characters"
	HelpTextMoneySpent        = "Total money spent buying items"
	HelpTextCharactersCreated = "Total number of characters created"
	HelpTextCharactersDeleted = "Total number of characters deleted"
)

// Store metric help text
const (
	HelpTextTransactionRollbacks = "Total number of store transactions rolled back"
	HelpTextCatalogCacheRequests = "Catalog cache lookups by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelItem   = "item"
	LabelSource = "source"
	LabelResult = "result"
)

// Label values
const (
	SourceReward = "reward"
	SourceSale   = "sale"

	ResultHit  = "hit"
	ResultMiss = "miss"

	// UnmatchedRoute labels requests that matched no route, keeping path cardinality bounded
	UnmatchedRoute = "unmatched"
)

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
