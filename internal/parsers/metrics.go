package parsers

import (
	"podcast-metrics/internal/shared/metrics"
)

var (
	metricLinesParsedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubParsing,
			Name:      "lines_parsed_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
