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

// Business Metrics
var (
	ItemsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsCreated,
			Help: HelpTextItemsCreated,
		},
	)

	ItemsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsDeleted,
			Help: HelpTextItemsDeleted,
		},
	)

	SearchesPerformed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSearchesPerformed,
			Help: HelpTextSearchesPerformed,
		},
	)

	InventoryGrants = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameInventoryGrants,
			Help: HelpTextInventoryGrants,
		},
	)

	InventoryRemovals = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameInventoryRemovals,
			Help: HelpTextInventoryRemovals,
		},
	)

	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUsersRegistered,
			Help: HelpTextUsersRegistered,
		},
	)

	LoginFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLoginFailures,
			Help: HelpTextLoginFailures,
		},
	)

	ItemCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemCacheHits,
			Help: HelpTextItemCacheHits,
		},
	)

	ItemCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemCacheMisses,
			Help: HelpTextItemCacheMisses,
		},
	)
)
