package accumulators

import (
	"fmt"

	"podcast-metrics/internal/shared/svcerrors"
)

const (
	codeInvalidThreshold   = "ACC_1000"
	codeMissingEpisodeSize = "ACC_1001"
)

func errInvalidThreshold(threshold float64) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidThreshold, fmt.Sprintf("full-download threshold must be in (0, 1], got %v", threshold), nil)
}

func errMissingEpisodeSize(size int64) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMissingEpisodeSize, fmt.Sprintf("episode size metadata missing or zero (%d)", size), nil)
}
