package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"podcast-metrics/internal/models"
	"podcast-metrics/internal/shared/filestorages"
)

var (
	ErrRunReportAlreadyExist = errors.New("run report already exists")
)

// RunReportStore keeps one observability record per processing run, written
// with create-if-not-exists semantics: run IDs are unique, so a second Put
// for the same ID means the same run is being recorded twice.
//
//go:generate mockgen -source=run_report_store.go -destination=./mocks/run_report_store_mock.go -package=mocks
type RunReportStore interface {
	Put(ctx context.Context, report *models.RunReport) error
}

type runReportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewRunReportStore(fileStorage filestorages.FileStorage) RunReportStore {
	return &runReportStore{fileStorage: fileStorage, dir: "run-reports"}
}

func (s *runReportStore) Put(ctx context.Context, report *models.RunReport) error {
	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal run report: %w", err)
	}
	reader := bytes.NewReader(jsonData)

	key := fmt.Sprintf("%s/%s.json", s.dir, report.RunID)

	_, err = s.fileStorage.Put(ctx, key, reader, filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrRunReportAlreadyExist
		}
		return fmt.Errorf("failed to put run report: %w", err)
	}
	return nil
}
