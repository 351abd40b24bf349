package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "anglerbot_http_requests_total"
	MetricNameHTTPRequestDuration  = "anglerbot_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "anglerbot_http_requests_in_flight"

	MetricNameCatchAttempts    = "anglerbot_catch_attempts_total"
	MetricNameCatchSuccesses   = "anglerbot_catch_successes_total"
	MetricNameCatchFailures    = "anglerbot_catch_failures_total"
	MetricNamePerfectCatches   = "anglerbot_perfect_catches_total"
	MetricNameTreasureCaptures = "anglerbot_treasure_captures_total"
	MetricNameCatchQuality     = "anglerbot_catch_quality_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextCatchAttempts    = "Total number of catch attempts resolved"
	HelpTextCatchSuccesses   = "Total number of successful catches"
	HelpTextCatchFailures    = "Total number of failed catches"
	HelpTextPerfectCatches   = "Total number of perfect catches"
	HelpTextTreasureCaptures = "Total number of treasure chests captured"
	HelpTextCatchQuality     = "Successful catches by quality tier"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelQuality = "quality"
)

// HTTPLatencyBuckets are tuned for a fast, CPU-bound service.
var HTTPLatencyBuckets = []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
