package e2e_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"podcast-metrics/internal/app"
	"podcast-metrics/internal/models"
	"podcast-metrics/internal/shared/configs"
	"podcast-metrics/internal/shared/filestorages"
	"podcast-metrics/internal/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Three clients against one 1,000,000 byte episode:
//   - client A fetches two overlapping chunks that together cover the file
//   - client B fetches only the first 100,000 bytes
//   - client C never touches an episode path
//
// Expected stored counters for the day: full=1, partial=1.
const accessLog = `203.0.113.1 - - [08/May/2023:08:12:01 +0000] "GET /episode-001.m4a HTTP/1.1" 206 600000 "-" "AppleCoreMedia/1.0" "bytes=0-599999"
203.0.113.1 - - [08/May/2023:08:12:40 +0000] "GET /episode-001.m4a HTTP/1.1" 206 500000 "-" "AppleCoreMedia/1.0" "bytes=500000-999999"
203.0.113.2 - - [08/May/2023:09:30:00 +0000] "GET /episode-001.m4a HTTP/1.1" 206 100000 "-" "Overcast/3.0" "bytes=0-99999"
203.0.113.3 - - [08/May/2023:10:00:00 +0000] "GET /feed.xml HTTP/1.1" 200 4096 "-" "gPodder/3.10"
`

const manifest = `episodes:
  - id: "001"
    path: /episode-001.m4a
    size_bytes: 1000000
`

func writeFixtures(t *testing.T) *configs.Config {
	t.Helper()

	logDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(logDir, "access.log"), []byte(accessLog), 0o644))

	manifestPath := filepath.Join(t.TempDir(), "episodes.yml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifest), 0o644))

	return &configs.Config{
		Log:            configs.LogConfig{Level: "error"},
		Logs:           configs.LogsConfig{Dir: logDir, FilePrefix: "access.log"},
		Episodes:       configs.EpisodesConfig{ManifestPath: manifestPath},
		Classification: configs.ClassificationConfig{FullThreshold: 0.95},
		Storage:        configs.StorageConfig{Backend: "file", RootDir: t.TempDir()},
		Reports:        configs.ReportsConfig{CSVDir: t.TempDir()},
	}
}

func runOnce(t *testing.T, cfg *configs.Config) *models.RunReport {
	t.Helper()

	application, err := app.New(cfg)
	require.NoError(t, err)

	report, err := application.Run(context.Background(), nil)
	require.NoError(t, err)
	return report
}

func storedCounters(t *testing.T, cfg *configs.Config) []*models.DailyEpisodeCounters {
	t.Helper()

	fileStorage, err := filestorages.NewFileStorage(cfg.Storage.RootDir)
	require.NoError(t, err)
	all, err := stores.NewDailyCountersStore(fileStorage).List(context.Background())
	require.NoError(t, err)
	return all
}

func TestPipeline_FullAndPartialDownloads(t *testing.T) {
	cfg := writeFixtures(t)
	report := runOnce(t, cfg)

	assert.Equal(t, 1, report.FilesRead)
	assert.Equal(t, 4, report.LinesRead)
	assert.Equal(t, 0, report.ParseFailures)
	assert.Equal(t, 1, report.UnresolvedPaths)
	assert.Equal(t, 2, report.ClientsClassified)
	assert.Equal(t, 1, report.FullDownloads)
	assert.Equal(t, 1, report.PartialDownloads)
	assert.Equal(t, 1, report.EpisodeDaysUpserted)
	assert.Empty(t, report.MissingMetadataEpisodes)

	all := storedCounters(t, cfg)
	require.Len(t, all, 1)
	assert.Equal(t, "001", all[0].EpisodeID)
	assert.Equal(t, models.LogDate("2023-05-08"), all[0].Date)
	assert.Equal(t, uint32(1), all[0].FullCount)
	assert.Equal(t, uint32(1), all[0].PartialCount)
}

func TestPipeline_ReprocessingIsIdempotent(t *testing.T) {
	cfg := writeFixtures(t)

	first := runOnce(t, cfg)
	second := runOnce(t, cfg)
	assert.NotEqual(t, first.RunID, second.RunID)

	all := storedCounters(t, cfg)
	require.Len(t, all, 1)
	assert.Equal(t, uint32(1), all[0].FullCount)
	assert.Equal(t, uint32(1), all[0].PartialCount)
}

func TestPipeline_StoredRecordsCarryNoClientIdentity(t *testing.T) {
	cfg := writeFixtures(t)
	runOnce(t, cfg)

	var contents []byte
	err := filepath.WalkDir(cfg.Storage.RootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return readErr
		}
		contents = append(contents, data...)
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, contents)

	for _, clientIP := range []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"} {
		assert.NotContains(t, string(contents), clientIP)
	}
}

func TestPipeline_CSVExport(t *testing.T) {
	cfg := writeFixtures(t)
	runOnce(t, cfg)

	content, err := os.ReadFile(filepath.Join(cfg.Reports.CSVDir, "downloads.csv"))
	require.NoError(t, err)
	assert.Equal(t, "date,episode,full,partial\n2023-05-08,001,1,1\n", string(content))
}
