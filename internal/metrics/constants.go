package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every stock metric
const Namespace = "gildedrose"

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

// Stock metric names
const (
	MetricNameDayTicks       = "day_ticks_total"
	MetricNameItemsAged      = "items_aged_total"
	MetricNameTickDuration   = "tick_duration_seconds"
	MetricNameCurrentDay     = "current_day"
	MetricNameItemQuality    = "item_quality"
	MetricNameItemSellIn     = "item_sell_in"
	MetricNameCatalogInserts = "catalog_items_inserted_total"
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

// Stock metric help text
const (
	HelpTextDayTicks       = "Total number of day advances by outcome"
	HelpTextItemsAged      = "Total number of items aged by category"
	HelpTextTickDuration   = "Time taken to age the whole stock by one day"
	HelpTextCurrentDay     = "Number of days the stock has been advanced"
	HelpTextItemQuality    = "Current quality of each stocked item"
	HelpTextItemSellIn     = "Current sell-in of each stocked item"
	HelpTextCatalogInserts = "Total number of items stocked from the catalog"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelItem     = "item"
	LabelCategory = "category"
)

// Tick outcome label values
const (
	StatusSuccess  = "success"
	StatusFailure  = "failure"
	StatusConflict = "conflict"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TickDurationBuckets covers a single-row stock up to a few hundred thousand rows
var TickDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
