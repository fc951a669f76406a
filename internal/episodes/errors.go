package episodes

import (
	"fmt"

	"podcast-metrics/internal/shared/svcerrors"
)

const (
	codeManifestInvalid = "EPI_1000"

	codeInternalManifestReadFailed = "EPI_9000"
)

func errManifestInvalid(detail string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeManifestInvalid, "episode manifest invalid: "+detail, cause)
}

func errManifestReadFailed(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalManifestReadFailed, fmt.Errorf("manifestReadFailed %q: %w", path, cause))
}
