package aggregators

import (
	"context"
	"sort"

	"podcast-metrics/internal/accumulators"
	"podcast-metrics/internal/models"
	"podcast-metrics/internal/shared/loggers"
	"podcast-metrics/internal/shared/svcerrors"
	"podcast-metrics/internal/stores"
)

// AggregateResult summarizes one aggregation pass. It carries counts only;
// client identities are gone by the time it exists.
type AggregateResult struct {
	ClientsClassified       int
	EpisodeDaysUpserted     int
	FullDownloads           int
	PartialDownloads        int
	MissingMetadataEpisodes []string
}

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	Aggregate(ctx context.Context, coverages []*models.ClientEpisodeCoverage) (*AggregateResult, *svcerrors.ServiceError)
}

type aggregationService struct {
	classifier         accumulators.DownloadClassifier
	rolluper           DailyCountersRolluper
	dailyCountersStore stores.DailyCountersStore
}

func NewAggregationService(classifier accumulators.DownloadClassifier, rolluper DailyCountersRolluper, dailyCountersStore stores.DailyCountersStore) AggregationService {
	return &aggregationService{classifier: classifier, rolluper: rolluper, dailyCountersStore: dailyCountersStore}
}

// Aggregate classifies each coverage, folds the verdicts into per-(episode, date)
// counters and replaces those rows in the store. Counters are rebuilt from
// scratch every run, so reprocessing the same logs writes the same rows.
func (s *aggregationService) Aggregate(ctx context.Context, coverages []*models.ClientEpisodeCoverage) (*AggregateResult, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Int("coverages", len(coverages)).Msg("started aggregating client coverages")

	result := &AggregateResult{}
	grouped := make(map[groupKey]*models.DailyEpisodeCounters)
	missingMetadata := make(map[string]struct{})

	for _, coverage := range coverages {
		if coverage.EpisodeSize <= 0 {
			missingMetadata[coverage.Key.EpisodeID] = struct{}{}
			metricMissingMetadataTotal.Inc()
			continue
		}

		class, err := s.classifier.Classify(coverage.CoverageBytes(), coverage.EpisodeSize)
		if err != nil {
			return nil, errInternalCountersRollupFailed(err)
		}
		result.ClientsClassified++
		metricDownloadsClassifiedTotal.WithLabelValues(string(class)).Inc()
		switch class {
		case models.ClassFull:
			result.FullDownloads++
		case models.ClassPartial:
			result.PartialDownloads++
		}

		key := groupKey{episodeID: coverage.Key.EpisodeID, date: coverage.Key.Date}
		counters, ok := grouped[key]
		if !ok {
			counters = models.NewEmptyDailyEpisodeCounters(key.episodeID, key.date)
			grouped[key] = counters
		}
		if err := s.rolluper.Rollup(counters, class); err != nil {
			return nil, errInternalCountersRollupFailed(err)
		}
	}

	for _, counters := range sortedCounters(grouped) {
		if err := s.dailyCountersStore.Upsert(ctx, counters); err != nil {
			return nil, errInternalCountersStoreFailed(err)
		}
		result.EpisodeDaysUpserted++
		metricEpisodeDaysUpsertedTotal.Inc()
	}

	for episodeID := range missingMetadata {
		result.MissingMetadataEpisodes = append(result.MissingMetadataEpisodes, episodeID)
	}
	sort.Strings(result.MissingMetadataEpisodes)
	for _, episodeID := range result.MissingMetadataEpisodes {
		logger.Warn().Str(loggers.FieldEpisodeID, episodeID).Msg("episode size unknown, coverages dropped from counters")
	}

	return result, nil
}

type groupKey struct {
	episodeID string
	date      models.LogDate
}

func sortedCounters(grouped map[groupKey]*models.DailyEpisodeCounters) []*models.DailyEpisodeCounters {
	all := make([]*models.DailyEpisodeCounters, 0, len(grouped))
	for _, counters := range grouped {
		all = append(all, counters)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Date != all[j].Date {
			return all[i].Date < all[j].Date
		}
		return all[i].EpisodeID < all[j].EpisodeID
	})
	return all
}
