package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"podcast-metrics/internal/shared/loggers"
	"podcast-metrics/internal/stores"
)

const exportFileName = "downloads.csv"

//go:generate mockgen -source=csv_exporter.go -destination=./mocks/csv_exporter_mock.go -package=mocks
type CSVExporter interface {
	// Export writes every stored daily counter row to downloads.csv in dir
	// and returns the written path. The file is replaced on every export.
	Export(ctx context.Context, dir string) (string, error)
}

type csvExporter struct {
	dailyCountersStore stores.DailyCountersStore
}

func NewCSVExporter(dailyCountersStore stores.DailyCountersStore) CSVExporter {
	return &csvExporter{dailyCountersStore: dailyCountersStore}
}

func (e *csvExporter) Export(ctx context.Context, dir string) (string, error) {
	logger := loggers.Ctx(ctx)

	all, err := e.dailyCountersStore.List(ctx)
	if err != nil {
		return "", errInternalCountersReadFailed(err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	_ = writer.Write([]string{"date", "episode", "full", "partial"})
	for _, counters := range all {
		_ = writer.Write([]string{
			string(counters.Date),
			counters.EpisodeID,
			strconv.FormatUint(uint64(counters.FullCount), 10),
			strconv.FormatUint(uint64(counters.PartialCount), 10),
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", errInternalExportWriteFailed(exportFileName, err)
	}

	path := filepath.Join(dir, exportFileName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errInternalExportWriteFailed(path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", errInternalExportWriteFailed(path, err)
	}

	logger.Info().Str("path", path).Int("rows", len(all)).Msg("exported daily counters")
	return path, nil
}
