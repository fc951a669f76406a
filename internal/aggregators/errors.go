package aggregators

import (
	"fmt"

	"podcast-metrics/internal/shared/svcerrors"
)

const (
	codeInternalCountersRollupFailed = "AGG_9000"
	codeInternalCountersStoreFailed  = "AGG_9001"
)

// errInternalCountersRollupFailed returns an error when folding a verdict into daily counters fails.
func errInternalCountersRollupFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCountersRollupFailed, fmt.Errorf("countersRollupFailed: %w", cause))
}

// errInternalCountersStoreFailed returns an error when a daily counters store operation fails.
func errInternalCountersStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCountersStoreFailed, fmt.Errorf("countersStoreFailed: %w", cause))
}
