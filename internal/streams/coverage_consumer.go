package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sort"
	"sync"

	"podcast-metrics/internal/accumulators"
	"podcast-metrics/internal/events"
	"podcast-metrics/internal/models"
	"podcast-metrics/internal/shared/loggers"
	"podcast-metrics/internal/shared/metrics"
	"podcast-metrics/internal/shared/svcerrors"
)

//go:generate mockgen -source=coverage_consumer.go -destination=./mocks/coverage_consumer_mock.go -package=mocks
type CoverageConsumer interface {
	// Start spawns one worker goroutine per partition. Each worker owns a
	// private accumulator for the coverage keys routed to its partition.
	Start(ctx context.Context)

	// Drain blocks until every partition is exhausted (the queue must be
	// closed first) and returns all finalized coverages in deterministic
	// order. Per-key accumulation state is discarded in the process.
	Drain() []*models.ClientEpisodeCoverage
}

type coverageConsumer struct {
	queue        *PartitionedQueue[events.EpisodeRequestEvent]
	accumulators []accumulators.ByteAccumulator

	wg sync.WaitGroup

	logger loggers.Logger
}

func NewCoverageConsumer(queue *PartitionedQueue[events.EpisodeRequestEvent], logger loggers.Logger) CoverageConsumer {
	accs := make([]accumulators.ByteAccumulator, queue.PartitionCount())
	for i := range accs {
		accs[i] = accumulators.NewByteAccumulator()
	}
	return &coverageConsumer{
		queue:        queue,
		accumulators: accs,
		logger:       logger,
	}
}

func (consumer *coverageConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.partitions[partitionIndex]
		acc := consumer.accumulators[partitionIndex]
		consumer.wg.Add(1)
		go func(partitionIndex int) {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch, acc)
		}(partitionIndex)
	}
}

func (consumer *coverageConsumer) Drain() []*models.ClientEpisodeCoverage {
	consumer.wg.Wait()

	// Partitioning by full coverage key makes per-partition results
	// disjoint; collecting them is a plain concatenation.
	var coverages []*models.ClientEpisodeCoverage
	for _, acc := range consumer.accumulators {
		coverages = append(coverages, acc.Finalize()...)
	}

	sort.Slice(coverages, func(i, j int) bool {
		return coverages[i].Key.PartitionKey() < coverages[j].Key.PartitionKey()
	})
	return coverages
}

func (consumer *coverageConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.EpisodeRequestEvent, acc accumulators.ByteAccumulator) {
	logger := consumer.logger.With().
		Int(loggers.FieldPartitionId, partitionIndex).
		Logger()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}

			// Panic recovery keeps one poisoned event from killing
			// the partition worker.
			func() {
				defer func() {
					if r := recover(); r != nil {
						logger.Error().
							Bytes(loggers.FieldErrorStack, debug.Stack()).
							Msg("partition worker panic recovered")

						var panicErr error
						if err, ok := r.(error); ok {
							panicErr = err
						} else {
							panicErr = fmt.Errorf("%v", r)
						}

						svcErr := svcerrors.NewInternalErrorPanic(panicErr)
						metricRequestEventsConsumedTotal.WithLabelValues(streamEpisodeRequests, svcErr.Code).Inc()
					}
				}()

				acc.Add(&event)
				metricRequestEventsConsumedTotal.WithLabelValues(streamEpisodeRequests, metrics.ValueNoError).Inc()
			}()
		}
	}
}
