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

// Catch outcome metrics
var (
	CatchAttempts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatchAttempts,
			Help: HelpTextCatchAttempts,
		},
	)

	CatchSuccesses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatchSuccesses,
			Help: HelpTextCatchSuccesses,
		},
	)

	CatchFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatchFailures,
			Help: HelpTextCatchFailures,
		},
	)

	PerfectCatches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePerfectCatches,
			Help: HelpTextPerfectCatches,
		},
	)

	TreasureCaptures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTreasureCaptures,
			Help: HelpTextTreasureCaptures,
		},
	)

	CatchQuality = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatchQuality,
			Help: HelpTextCatchQuality,
		},
		[]string{LabelQuality},
	)
)
