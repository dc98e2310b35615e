package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "lootgrid_http_requests_total"
	MetricNameHTTPRequestDuration  = "lootgrid_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "lootgrid_http_requests_in_flight"

	MetricNameScreenshotsProcessed = "lootgrid_screenshots_processed_total"
	MetricNameScreenshotFailures   = "lootgrid_screenshot_failures_total"
	MetricNameScanDuration         = "lootgrid_scan_duration_seconds"
	MetricNameMatchesFound         = "lootgrid_matches_found_total"
	MetricNameComparisonsSkipped   = "lootgrid_comparisons_skipped_total"

	MetricNameGrantsTotal  = "lootgrid_grants_total"
	MetricNameGrantRetries = "lootgrid_grant_retries_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextScreenshotsProcessed = "Total number of screenshots swept against the catalog"
	HelpTextScreenshotFailures   = "Total number of screenshots that could not be processed"
	HelpTextScanDuration         = "Full catalog sweep latency per screenshot in seconds"
	HelpTextMatchesFound         = "Total number of accepted (item, slot) matches"
	HelpTextComparisonsSkipped   = "Comparisons skipped due to out-of-bounds or dimension mismatch"

	HelpTextGrantsTotal  = "Total number of grant attempts by result"
	HelpTextGrantRetries = "Total number of grant transaction retries"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelReason = "reason"
	LabelResult = "result"
)

// Grant result label values
const (
	GrantResultNew       = "new"
	GrantResultDuplicate = "duplicate"
)

// Failure reason label values
const (
	FailureReasonFetch  = "fetch"
	FailureReasonDecode = "decode"
)

// HTTPLatencyBuckets are tuned for a small ops API.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// ScanLatencyBuckets cover catalog sweeps, which are CPU bound and can
// take whole seconds on large catalogs.
var ScanLatencyBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}
