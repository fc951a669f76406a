package parsers

import (
	"net/netip"
	"regexp"
	"strconv"
	"strings"
	"time"

	"podcast-metrics/internal/models"
	"podcast-metrics/internal/shared/metrics"
)

// Schema version 1 of the access-log contract: nginx combined format with an
// optional trailing quoted field carrying the request's Range header.
//
//	<ip> - <user> [<time>] "<request>" <status> <bytes|-> "<referrer>" "<ua>" ["<range|->"]
var logLinePattern = regexp.MustCompile(
	`^(\S+) - (\S+) \[([^\]]+)\] "([^"]*)" (\d{3}) (\d+|-) "([^"]*)" "([^"]*)"(?: "([^"]*)")?\s*$`)

const timeLayout = "02/Jan/2006:15:04:05 -0700"

//go:generate mockgen -source=access_log_parser.go -destination=./mocks/access_log_parser_mock.go -package=mocks
type AccessLogParser interface {
	// ParseLine parses one raw log line into a RequestRecord. A failure
	// covers exactly that line; callers count it and move on.
	ParseLine(line string) (*models.RequestRecord, error)
}

type combinedLogParser struct{}

func NewCombinedLogParser() AccessLogParser {
	return &combinedLogParser{}
}

func (p *combinedLogParser) ParseLine(line string) (*models.RequestRecord, error) {
	groups := logLinePattern.FindStringSubmatch(line)
	if groups == nil {
		metricLinesParsedTotal.WithLabelValues(codeMalformedLine).Inc()
		return nil, errMalformedLine(line)
	}

	addr, err := netip.ParseAddr(groups[1])
	if err != nil {
		metricLinesParsedTotal.WithLabelValues(codeInvalidClientIP).Inc()
		return nil, errInvalidClientIP(groups[1], err)
	}

	ts, err := time.Parse(timeLayout, groups[3])
	if err != nil {
		metricLinesParsedTotal.WithLabelValues(codeInvalidTimestamp).Inc()
		return nil, errInvalidTimestamp(groups[3], err)
	}

	status, err := strconv.Atoi(groups[5])
	if err != nil {
		metricLinesParsedTotal.WithLabelValues(codeMalformedLine).Inc()
		return nil, errMalformedLine(line)
	}

	bytesSent := int64(0)
	if groups[6] != "-" {
		bytesSent, err = strconv.ParseInt(groups[6], 10, 64)
		if err != nil {
			metricLinesParsedTotal.WithLabelValues(codeInvalidByteCount).Inc()
			return nil, errInvalidByteCount(groups[6], err)
		}
	}

	method, path, err := splitRequestLine(groups[4], status)
	if err != nil {
		metricLinesParsedTotal.WithLabelValues(codeInvalidRequestLine).Inc()
		return nil, err
	}

	byteRange, err := parseRangeField(groups[9])
	if err != nil {
		metricLinesParsedTotal.WithLabelValues(codeInvalidRange).Inc()
		return nil, err
	}

	metricLinesParsedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return &models.RequestRecord{
		Time:      ts,
		ClientIP:  addr.String(),
		Method:    method,
		Path:      path,
		Status:    status,
		BytesSent: bytesSent,
		Range:     byteRange,
		Referrer:  groups[7],
		UserAgent: groups[8],
	}, nil
}

// splitRequestLine splits `GET /episode-001.m4a HTTP/1.1` into method and
// path. Garbage requests the server rejected with 400 arrive with an empty or
// broken request field and parse as empty method and path.
func splitRequestLine(request string, status int) (method, path string, err error) {
	if request == "" || status == 400 {
		return "", "", nil
	}

	fields := strings.SplitN(request, " ", 3)
	if len(fields) != 3 {
		return "", "", errInvalidRequestLine(request)
	}
	return fields[0], fields[1], nil
}

// parseRangeField converts the logged Range header into a ByteRange.
// Absent or "-" means the whole file. Only single bytes-unit ranges are
// understood; suffix ranges ("bytes=-500") have no known start offset and
// fall back to whole-file semantics.
func parseRangeField(field string) (*models.ByteRange, error) {
	if field == "" || field == "-" {
		return nil, nil
	}

	spec, ok := strings.CutPrefix(field, "bytes=")
	if !ok || strings.Contains(spec, ",") {
		return nil, errInvalidRange(field)
	}

	startStr, endStr, ok := strings.Cut(spec, "-")
	if !ok {
		return nil, errInvalidRange(field)
	}
	if startStr == "" {
		// suffix range
		return nil, nil
	}

	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil {
		return nil, errInvalidRange(field)
	}

	end := int64(-1)
	if endStr != "" {
		end, err = strconv.ParseInt(endStr, 10, 64)
		if err != nil || end < start {
			return nil, errInvalidRange(field)
		}
	}

	return &models.ByteRange{Start: start, End: end}, nil
}
