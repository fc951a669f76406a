package streams

import (
	"context"

	"podcast-metrics/internal/events"
)

// RequestProducer publishes episode request events onto the partitioned
// queue, routed by the event's coverage key:
//
//	partitionKey = "<clientIP>|<episodeID>|<date>"
//
// Every request for the same (client, episode, date) is therefore handled by
// the same partition worker, which owns that key's accumulation state
// outright. Interval union happens under a single writer per key and never
// needs a cross-shard re-merge, while unrelated keys spread across
// partitions for parallelism.
//
//go:generate mockgen -source=request_producer.go -destination=./mocks/request_producer_mock.go -package=mocks
type RequestProducer interface {
	Produce(ctx context.Context, event *events.EpisodeRequestEvent) error
}

type requestProducer struct {
	queue *PartitionedQueue[events.EpisodeRequestEvent]
}

func NewRequestProducer(queue *PartitionedQueue[events.EpisodeRequestEvent]) RequestProducer {
	return &requestProducer{queue: queue}
}

func (producer *requestProducer) Produce(ctx context.Context, event *events.EpisodeRequestEvent) error {
	if err := producer.queue.Publish(ctx, event.CoverageKey().PartitionKey(), *event); err != nil {
		return err
	}

	metricRequestEventsProducedTotal.WithLabelValues(streamEpisodeRequests).Inc()
	return nil
}
