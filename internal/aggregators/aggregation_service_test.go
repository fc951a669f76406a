package aggregators

import (
	"context"
	"errors"
	"testing"

	"podcast-metrics/internal/accumulators"
	"podcast-metrics/internal/models"
	"podcast-metrics/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, store *mocks.MockDailyCountersStore) AggregationService {
	t.Helper()
	classifier, err := accumulators.NewThresholdClassifier(0.95)
	require.NoError(t, err)
	return NewAggregationService(classifier, NewDailyRolluper(), store)
}

func coverageOf(clientIP, episodeID string, date models.LogDate, size int64, intervals ...models.ByteInterval) *models.ClientEpisodeCoverage {
	coverage := models.NewClientEpisodeCoverage(models.CoverageKey{ClientIP: clientIP, EpisodeID: episodeID, Date: date}, size)
	for _, interval := range intervals {
		coverage.Add(interval, interval.Len())
	}
	return coverage
}

func TestAggregationService_Aggregate_GroupsByEpisodeAndDate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockDailyCountersStore(ctrl)
	service := newTestService(t, mockStore)

	coverages := []*models.ClientEpisodeCoverage{
		coverageOf("10.0.0.1", "001", "2023-05-08", 1_000_000, models.ByteInterval{Start: 0, End: 1_000_000}),
		coverageOf("10.0.0.2", "001", "2023-05-08", 1_000_000, models.ByteInterval{Start: 0, End: 100_000}),
		coverageOf("10.0.0.1", "002", "2023-05-08", 500_000, models.ByteInterval{Start: 0, End: 500_000}),
	}

	var upserted []*models.DailyEpisodeCounters
	mockStore.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Times(2).
		DoAndReturn(func(ctx context.Context, counters *models.DailyEpisodeCounters) error {
			upserted = append(upserted, counters)
			return nil
		})

	result, svcErr := service.Aggregate(context.Background(), coverages)
	require.Nil(t, svcErr)

	assert.Equal(t, 3, result.ClientsClassified)
	assert.Equal(t, 2, result.FullDownloads)
	assert.Equal(t, 1, result.PartialDownloads)
	assert.Equal(t, 2, result.EpisodeDaysUpserted)
	assert.Empty(t, result.MissingMetadataEpisodes)

	require.Len(t, upserted, 2)
	assert.Equal(t, "001", upserted[0].EpisodeID)
	assert.Equal(t, uint32(1), upserted[0].FullCount)
	assert.Equal(t, uint32(1), upserted[0].PartialCount)
	assert.Equal(t, "002", upserted[1].EpisodeID)
	assert.Equal(t, uint32(1), upserted[1].FullCount)
	assert.Equal(t, uint32(0), upserted[1].PartialCount)
}

func TestAggregationService_Aggregate_ThresholdBoundary(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockDailyCountersStore(ctrl)
	service := newTestService(t, mockStore)

	// 950_000 of 1_000_000 bytes is exactly the 0.95 threshold.
	coverages := []*models.ClientEpisodeCoverage{
		coverageOf("10.0.0.1", "001", "2023-05-08", 1_000_000, models.ByteInterval{Start: 0, End: 950_000}),
		coverageOf("10.0.0.2", "001", "2023-05-08", 1_000_000, models.ByteInterval{Start: 0, End: 949_999}),
	}

	mockStore.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, counters *models.DailyEpisodeCounters) error {
			assert.Equal(t, uint32(1), counters.FullCount)
			assert.Equal(t, uint32(1), counters.PartialCount)
			return nil
		})

	result, svcErr := service.Aggregate(context.Background(), coverages)
	require.Nil(t, svcErr)
	assert.Equal(t, 1, result.FullDownloads)
	assert.Equal(t, 1, result.PartialDownloads)
}

func TestAggregationService_Aggregate_MissingEpisodeSize(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockDailyCountersStore(ctrl)
	service := newTestService(t, mockStore)

	coverages := []*models.ClientEpisodeCoverage{
		coverageOf("10.0.0.1", "007", "2023-05-08", 0, models.ByteInterval{Start: 0, End: 100}),
		coverageOf("10.0.0.1", "001", "2023-05-08", 1_000_000, models.ByteInterval{Start: 0, End: 1_000_000}),
	}

	mockStore.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	result, svcErr := service.Aggregate(context.Background(), coverages)
	require.Nil(t, svcErr)

	assert.Equal(t, 1, result.ClientsClassified)
	assert.Equal(t, []string{"007"}, result.MissingMetadataEpisodes)
	assert.Equal(t, 1, result.EpisodeDaysUpserted)
}

func TestAggregationService_Aggregate_StoreFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockDailyCountersStore(ctrl)
	service := newTestService(t, mockStore)

	coverages := []*models.ClientEpisodeCoverage{
		coverageOf("10.0.0.1", "001", "2023-05-08", 1_000_000, models.ByteInterval{Start: 0, End: 1_000_000}),
	}

	mockStore.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	result, svcErr := service.Aggregate(context.Background(), coverages)
	assert.Nil(t, result)
	require.NotNil(t, svcErr)
	assert.Equal(t, codeInternalCountersStoreFailed, svcErr.Code)
}

func TestAggregationService_Aggregate_Empty(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockDailyCountersStore(ctrl)
	service := newTestService(t, mockStore)

	result, svcErr := service.Aggregate(context.Background(), nil)
	require.Nil(t, svcErr)
	assert.Zero(t, result.ClientsClassified)
	assert.Zero(t, result.EpisodeDaysUpserted)
}
