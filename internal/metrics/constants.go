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
	MetricNameItemsCreated      = "items_created_total"
	MetricNameItemsDeleted      = "items_deleted_total"
	MetricNameSearchesPerformed = "searches_performed_total"
	MetricNameInventoryGrants   = "inventory_grants_total"
	MetricNameInventoryRemovals = "inventory_removals_total"
	MetricNameUsersRegistered   = "users_registered_total"
	MetricNameLoginFailures     = "login_failures_total"
	MetricNameItemCacheHits     = "item_cache_hits_total"
	MetricNameItemCacheMisses   = "item_cache_misses_total"
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
	HelpTextItemsCreated      = "Total number of catalog items created"
	HelpTextItemsDeleted      = "Total number of catalog items deleted"
	HelpTextSearchesPerformed = "Total number of item searches performed"
	HelpTextInventoryGrants   = "Total number of inventory grant operations"
	HelpTextInventoryRemovals = "Total number of inventory removal operations"
	HelpTextUsersRegistered   = "Total number of registered accounts"
	HelpTextLoginFailures     = "Total number of failed login attempts"
	HelpTextItemCacheHits     = "Total number of item cache hits"
	HelpTextItemCacheMisses   = "Total number of item cache misses"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
