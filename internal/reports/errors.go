package reports

import (
	"fmt"

	"podcast-metrics/internal/shared/svcerrors"
)

const (
	codeInternalCountersReadFailed = "RPT_9000"
	codeInternalExportWriteFailed  = "RPT_9001"
)

func errInternalCountersReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCountersReadFailed, fmt.Errorf("countersReadFailed: %w", cause))
}

func errInternalExportWriteFailed(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalExportWriteFailed, fmt.Errorf("exportWriteFailed: %s: %w", path, cause))
}
