package accumulators

import (
	"sort"

	"podcast-metrics/internal/events"
	"podcast-metrics/internal/models"
)

//go:generate mockgen -source=byte_accumulator.go -destination=./mocks/byte_accumulator_mock.go -package=mocks
type ByteAccumulator interface {
	// Add merges one request's byte contribution into the coverage state
	// for its (client, episode, date) key.
	Add(event *events.EpisodeRequestEvent)

	// Finalize returns all accumulated coverages and discards the state.
	// After Finalize the accumulator is empty and reusable.
	Finalize() []*models.ClientEpisodeCoverage
}

// byteAccumulator is a keyed reduction over request events. It is not safe
// for concurrent use; each queue partition owns exactly one instance.
type byteAccumulator struct {
	coverages map[models.CoverageKey]*models.ClientEpisodeCoverage
}

func NewByteAccumulator() ByteAccumulator {
	return &byteAccumulator{
		coverages: make(map[models.CoverageKey]*models.ClientEpisodeCoverage),
	}
}

func (a *byteAccumulator) Add(event *events.EpisodeRequestEvent) {
	key := event.CoverageKey()
	coverage, ok := a.coverages[key]
	if !ok {
		coverage = models.NewClientEpisodeCoverage(key, event.EpisodeSize)
		a.coverages[key] = coverage
	}

	coverage.Add(event.Interval, event.BytesSent)
	metricRequestsAccumulatedTotal.Inc()
}

func (a *byteAccumulator) Finalize() []*models.ClientEpisodeCoverage {
	coverages := make([]*models.ClientEpisodeCoverage, 0, len(a.coverages))
	for _, coverage := range a.coverages {
		coverages = append(coverages, coverage)
	}
	a.coverages = make(map[models.CoverageKey]*models.ClientEpisodeCoverage)

	// Deterministic order keeps aggregation output stable across runs.
	sort.Slice(coverages, func(i, j int) bool {
		return coverages[i].Key.PartitionKey() < coverages[j].Key.PartitionKey()
	})

	metricCoveragesFinalizedTotal.Add(float64(len(coverages)))
	return coverages
}
