package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	transitionsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthydev",
		Subsystem: "schedule",
		Name:      "transitions_total",
		Help:      "Number of committed schedule block transitions by target status.",
	}, []string{"status"})

	seedsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "healthydev",
		Subsystem: "schedule",
		Name:      "default_seeds_total",
		Help:      "Number of days seeded with the default schedule.",
	})

	duplicateBlocksCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "healthydev",
		Subsystem: "schedule",
		Name:      "duplicate_blocks_total",
		Help:      "Number of loads that found blocks sharing title and time range on one day.",
	})

	sideEffectFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthydev",
		Subsystem: "schedule",
		Name:      "side_effect_failures_total",
		Help:      "Failed best-effort effects of a completion, by effect.",
	}, []string{"effect"})

	refetchCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthydev",
		Subsystem: "reconcile",
		Name:      "refetches_total",
		Help:      "Number of refetches triggered by change notifications.",
	}, []string{"table", "result"})

	activeOwnersGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "healthydev",
		Subsystem: "reconcile",
		Name:      "active_owners",
		Help:      "Owners with an open change subscription.",
	})
)

func init() {
	prometheus.MustRegister(
		transitionsCounter,
		seedsCounter,
		duplicateBlocksCounter,
		sideEffectFailures,
		refetchCounter,
		activeOwnersGauge,
	)
}

func RecordTransition(status string) {
	transitionsCounter.WithLabelValues(status).Inc()
}

func RecordSeed() {
	seedsCounter.Inc()
}

func RecordDuplicateBlocks() {
	duplicateBlocksCounter.Inc()
}

func RecordSideEffectFailure(effect string) {
	sideEffectFailures.WithLabelValues(effect).Inc()
}

func RecordRefetch(table string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	refetchCounter.WithLabelValues(table, result).Inc()
}

func SetActiveOwners(n int) {
	activeOwnersGauge.Set(float64(n))
}
