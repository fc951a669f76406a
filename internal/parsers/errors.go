package parsers

import (
	"fmt"

	"podcast-metrics/internal/shared/svcerrors"
)

const (
	codeMalformedLine      = "PRS_1000"
	codeInvalidTimestamp   = "PRS_1001"
	codeInvalidClientIP    = "PRS_1002"
	codeInvalidByteCount   = "PRS_1003"
	codeInvalidRequestLine = "PRS_1004"
	codeInvalidRange       = "PRS_1005"
)

func errMalformedLine(line string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedLine, "log line does not match the access-log schema", fmt.Errorf("line: %.120q", line))
}

func errInvalidTimestamp(value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidTimestamp, "unparseable timestamp field", fmt.Errorf("timestamp %q: %w", value, cause))
}

func errInvalidClientIP(value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidClientIP, "unparseable client address", fmt.Errorf("address %q: %w", value, cause))
}

func errInvalidByteCount(value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidByteCount, "unparseable bytes-sent field", fmt.Errorf("bytes sent %q: %w", value, cause))
}

func errInvalidRequestLine(request string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRequestLine, "malformed request line", fmt.Errorf("request %q", request))
}

func errInvalidRange(field string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRange, "malformed range field", fmt.Errorf("range %q", field))
}
