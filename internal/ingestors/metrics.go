package ingestors

import (
	"podcast-metrics/internal/shared/metrics"
)

var (
	metricLogFilesReadTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "log_files_read_total",
		},
	)

	// metricLinesReadTotal counts lines handed to the parser, including the
	// ones it rejects. Parse outcomes are counted by the parsing subsystem.
	metricLinesReadTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_read_total",
		},
	)

	// metricUnresolvedPathsTotal counts well-formed lines whose path is not
	// an episode asset. Requests for feeds and artwork land here.
	metricUnresolvedPathsTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "unresolved_paths_total",
		},
	)

	metricRequestEventsProducedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "request_events_produced_total",
		},
	)
)
