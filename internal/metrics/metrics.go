package metrics

import (
	"time"

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
	CostResolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameCostResolutionDuration,
			Help:    HelpTextCostResolutionDuration,
			Buckets: CostResolutionBuckets,
		},
	)

	CostResolutionItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCostResolutionItems,
			Help: HelpTextCostResolutionItems,
		},
		[]string{LabelTier},
	)

	LevelingPlans = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLevelingPlans,
			Help: HelpTextLevelingPlans,
		},
		[]string{LabelOutcome},
	)

	BankSyncChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBankSyncChanges,
			Help: HelpTextBankSyncChanges,
		},
		[]string{LabelOp},
	)

	ObservationsIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameObservationsIngested,
			Help: HelpTextObservationsIngested,
		},
	)
)

// RecordCostResolution records one layered resolution pass
func RecordCostResolution(elapsed time.Duration, market, derived, partial int) {
	CostResolutionDuration.Observe(elapsed.Seconds())
	CostResolutionItems.WithLabelValues("market").Add(float64(market))
	CostResolutionItems.WithLabelValues("derived").Add(float64(derived))
	CostResolutionItems.WithLabelValues("partial").Add(float64(partial))
}

// RecordLevelingPlan counts a finished plan
func RecordLevelingPlan(complete bool) {
	outcome := OutcomeHalted
	if complete {
		outcome = OutcomeComplete
	}
	LevelingPlans.WithLabelValues(outcome).Inc()
}

// RecordBankSync counts applied bank changes
func RecordBankSync(inserted, updated, deleted int) {
	BankSyncChanges.WithLabelValues(OpInsert).Add(float64(inserted))
	BankSyncChanges.WithLabelValues(OpUpdate).Add(float64(updated))
	BankSyncChanges.WithLabelValues(OpDelete).Add(float64(deleted))
}
