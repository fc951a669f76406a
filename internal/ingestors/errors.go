package ingestors

import (
	"fmt"

	"podcast-metrics/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeNoLogFilesFound = "ING_1000"

	codeInternalLogFileReadFailed = "ING_9000"
	codeInternalProducerFailed    = "ING_9001"
)

// errNoLogFilesFound returns an error when discovery finds nothing to ingest.
func errNoLogFilesFound(dir, prefix string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeNoLogFilesFound, fmt.Sprintf("no log files matching %q in %s", prefix, dir), nil)
}

// errInternalLogFileReadFailed returns an error when a log file cannot be opened or read.
func errInternalLogFileReadFailed(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogFileReadFailed, fmt.Errorf("logFileReadFailed: %s: %w", path, cause))
}

// errInternalProducerFailed returns an error when publishing a request event fails.
func errInternalProducerFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalProducerFailed, fmt.Errorf("requestProducerFailed: %w", cause))
}
