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
	MetricNameRecipeWrites          = "recipe_writes_total"
	MetricNameRecipeIngredientLinks = "recipe_ingredient_links"
	MetricNameMembershipChanges     = "membership_changes_total"
	MetricNameFollowChanges         = "follow_changes_total"
	MetricNameShoppingListExports   = "shopping_list_exports_total"
	MetricNameShoppingListLines     = "shopping_list_lines"
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
	HelpTextRecipeWrites          = "Total number of committed recipe writes"
	HelpTextRecipeIngredientLinks = "Number of ingredient links per written recipe"
	HelpTextMembershipChanges     = "Total number of favorite and shopping cart changes"
	HelpTextFollowChanges         = "Total number of subscription changes"
	HelpTextShoppingListExports   = "Total number of shopping list downloads"
	HelpTextShoppingListLines     = "Number of aggregated lines per shopping list"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelOperation = "operation"
	LabelKind      = "kind"
)

// Operation label values
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
	OperationAdd    = "add"
	OperationRemove = "remove"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SizeBuckets are used for per-recipe and per-list counts
var SizeBuckets = []float64{1, 2, 5, 10, 20, 50, 100}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
