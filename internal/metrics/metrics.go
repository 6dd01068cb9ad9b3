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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	RecipeWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecipeWrites,
			Help: HelpTextRecipeWrites,
		},
		[]string{LabelOperation},
	)

	RecipeIngredientLinks = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRecipeIngredientLinks,
			Help:    HelpTextRecipeIngredientLinks,
			Buckets: SizeBuckets,
		},
	)

	MembershipChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMembershipChanges,
			Help: HelpTextMembershipChanges,
		},
		[]string{LabelKind, LabelOperation},
	)

	FollowChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFollowChanges,
			Help: HelpTextFollowChanges,
		},
		[]string{LabelOperation},
	)

	ShoppingListExports = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameShoppingListExports,
			Help: HelpTextShoppingListExports,
		},
	)

	ShoppingListLines = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameShoppingListLines,
			Help:    HelpTextShoppingListLines,
			Buckets: SizeBuckets,
		},
	)
)
