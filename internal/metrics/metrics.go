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

// Scan Metrics
var (
	ScreenshotsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameScreenshotsProcessed,
			Help: HelpTextScreenshotsProcessed,
		},
	)

	ScreenshotFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameScreenshotFailures,
			Help: HelpTextScreenshotFailures,
		},
		[]string{LabelReason},
	)

	ScanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameScanDuration,
			Help:    HelpTextScanDuration,
			Buckets: ScanLatencyBuckets,
		},
	)

	MatchesFound = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMatchesFound,
			Help: HelpTextMatchesFound,
		},
	)

	ComparisonsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameComparisonsSkipped,
			Help: HelpTextComparisonsSkipped,
		},
	)
)

// Ledger Metrics
var (
	GrantsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGrantsTotal,
			Help: HelpTextGrantsTotal,
		},
		[]string{LabelResult},
	)

	GrantRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGrantRetries,
			Help: HelpTextGrantRetries,
		},
	)
)
