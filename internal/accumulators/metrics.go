package accumulators

import (
	"podcast-metrics/internal/shared/metrics"
)

var (
	metricRequestsAccumulatedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAccumulation,
			Name:      "requests_accumulated_total",
		},
	)

	metricCoveragesFinalizedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAccumulation,
			Name:      "coverages_finalized_total",
		},
	)
)
