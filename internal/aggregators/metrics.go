package aggregators

import (
	"podcast-metrics/internal/shared/metrics"
)

var (
	// metricDownloadsClassifiedTotal counts per-client verdicts by class
	// (full, partial, none). One increment per (client, episode, date)
	// coverage, so the counter never reveals request volume per client.
	metricDownloadsClassifiedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "downloads_classified_total",
		},
		[]string{"class"},
	)

	// metricEpisodeDaysUpsertedTotal counts (episode, date) rows written to
	// the counters store.
	metricEpisodeDaysUpsertedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "episode_days_upserted_total",
		},
	)

	// metricMissingMetadataTotal counts coverages dropped because the
	// episode's size is unknown. A non-zero value means the manifest is
	// missing entries for paths that appear in the logs.
	metricMissingMetadataTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "missing_metadata_total",
		},
	)
)
