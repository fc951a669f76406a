package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"podcast-metrics/internal/models"
	"podcast-metrics/internal/shared/filestorages"
)

// DailyCountersStore durably keeps the per-(episode, date) download counters.
// Upsert replaces the stored entry outright: a run always covers whole,
// closed calendar dates, so replacing is what makes reprocessing idempotent.
//
//go:generate mockgen -source=daily_counters_store.go -destination=./mocks/daily_counters_store_mock.go -package=mocks
type DailyCountersStore interface {
	Upsert(ctx context.Context, counters *models.DailyEpisodeCounters) error
	Get(ctx context.Context, episodeID string, date models.LogDate) (*models.DailyEpisodeCounters, error)
	List(ctx context.Context) ([]*models.DailyEpisodeCounters, error)
}

type dailyCountersStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewDailyCountersStore(fileStorage filestorages.FileStorage) DailyCountersStore {
	return &dailyCountersStore{fileStorage: fileStorage, dir: "daily-counters"}
}

func (s *dailyCountersStore) Upsert(ctx context.Context, counters *models.DailyEpisodeCounters) error {
	jsonData, err := json.Marshal(counters)
	if err != nil {
		return fmt.Errorf("failed to marshal daily counters: %w", err)
	}
	reader := bytes.NewReader(jsonData)
	key := s.getKey(counters.EpisodeID, counters.Date)
	_, err = s.fileStorage.Put(ctx, key, reader, filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put daily counters: %w", err)
	}
	return nil
}

func (s *dailyCountersStore) Get(ctx context.Context, episodeID string, date models.LogDate) (*models.DailyEpisodeCounters, error) {
	key := s.getKey(episodeID, date)
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return models.NewEmptyDailyEpisodeCounters(episodeID, date), nil
		}
		return nil, fmt.Errorf("failed to get daily counters: %w", err)
	}

	defer readCloser.Close()
	counters, err := decodeCounters(readCloser)
	if err != nil {
		return nil, err
	}
	return counters, nil
}

func (s *dailyCountersStore) List(ctx context.Context) ([]*models.DailyEpisodeCounters, error) {
	keys, err := s.fileStorage.List(ctx, s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily counters: %w", err)
	}

	all := make([]*models.DailyEpisodeCounters, 0, len(keys))
	for _, key := range keys {
		readCloser, err := s.fileStorage.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to get daily counters %q: %w", key, err)
		}
		counters, err := decodeCounters(readCloser)
		readCloser.Close()
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", key, err)
		}
		all = append(all, counters)
	}
	return all, nil
}

func (s *dailyCountersStore) getKey(episodeID string, date models.LogDate) string {
	return fmt.Sprintf("%s/%s/%s.json", s.dir, date, episodeID)
}

func decodeCounters(r io.Reader) (*models.DailyEpisodeCounters, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read daily counters: %w", err)
	}
	var counters models.DailyEpisodeCounters
	if err := json.Unmarshal(data, &counters); err != nil {
		return nil, fmt.Errorf("failed to unmarshal daily counters: %w", err)
	}
	return &counters, nil
}
