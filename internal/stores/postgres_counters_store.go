package stores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"podcast-metrics/internal/models"
	"podcast-metrics/internal/shared/configs"
	"podcast-metrics/internal/shared/loggers"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OpenPostgres connects to PostgreSQL with retry and migrates the counters
// table. Transient startup races with the database are retried with backoff.
func OpenPostgres(cfg configs.PostgresConfig, logger loggers.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	var db *gorm.DB
	var err error
	const maxRetries = 5
	retryDelay := 2 * time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}

		logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Msg("database connection failed")

		if attempt < maxRetries {
			time.Sleep(retryDelay)
			retryDelay *= 2
		}
	}
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := db.AutoMigrate(&models.DailyEpisodeCounters{}); err != nil {
		return nil, fmt.Errorf("database migration failed: %w", err)
	}

	return db, nil
}

type postgresCountersStore struct {
	db *gorm.DB
}

// NewPostgresCountersStore returns a DailyCountersStore backed by a
// PostgreSQL table with a composite (episode_id, date) primary key.
func NewPostgresCountersStore(db *gorm.DB) DailyCountersStore {
	return &postgresCountersStore{db: db}
}

func (s *postgresCountersStore) Upsert(ctx context.Context, counters *models.DailyEpisodeCounters) error {
	// Replace-by-key, same semantics as the file backend.
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "episode_id"}, {Name: "date"}},
			UpdateAll: true,
		}).
		Create(counters).Error
	if err != nil {
		return fmt.Errorf("failed to upsert daily counters: %w", err)
	}
	return nil
}

func (s *postgresCountersStore) Get(ctx context.Context, episodeID string, date models.LogDate) (*models.DailyEpisodeCounters, error) {
	var counters models.DailyEpisodeCounters
	err := s.db.WithContext(ctx).
		Where("episode_id = ? AND date = ?", episodeID, date).
		First(&counters).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewEmptyDailyEpisodeCounters(episodeID, date), nil
		}
		return nil, fmt.Errorf("failed to get daily counters: %w", err)
	}
	return &counters, nil
}

func (s *postgresCountersStore) List(ctx context.Context) ([]*models.DailyEpisodeCounters, error) {
	var all []*models.DailyEpisodeCounters
	err := s.db.WithContext(ctx).
		Order("date, episode_id").
		Find(&all).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list daily counters: %w", err)
	}
	return all, nil
}
