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

// Business metric names
const (
	MetricNameCostResolutionDuration = "cost_resolution_duration_seconds"
	MetricNameCostResolutionItems    = "cost_resolution_items_total"
	MetricNameLevelingPlans          = "leveling_plans_total"
	MetricNameBankSyncChanges        = "bank_sync_changes_total"
	MetricNameObservationsIngested   = "observations_ingested_total"
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

// Business metric help text
const (
	HelpTextCostResolutionDuration = "Time spent resolving layered craft costs"
	HelpTextCostResolutionItems    = "Items assigned to each cost resolution tier"
	HelpTextLevelingPlans          = "Leveling plans produced by outcome"
	HelpTextBankSyncChanges        = "Bank rows changed by sync operation"
	HelpTextObservationsIngested   = "Market observations stored"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelTier    = "tier"
	LabelOutcome = "outcome"
	LabelOp      = "op"
)

// Label values
const (
	OutcomeComplete = "complete"
	OutcomeHalted   = "halted"

	OpInsert = "insert"
	OpUpdate = "update"
	OpDelete = "delete"

	// PathUnmatched labels requests that matched no route
	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// CostResolutionBuckets covers in-process resolution of small to large catalogs
var CostResolutionBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1}
