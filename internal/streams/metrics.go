package streams

import (
	"podcast-metrics/internal/shared/metrics"
)

var (
	streamEpisodeRequests            = "episode_requests"
	metricRequestEventsProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "request_events_published_total",
		},
		[]string{"stream_id"},
	)

	metricRequestEventsConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "request_events_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
