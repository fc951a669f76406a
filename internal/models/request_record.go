package models

import "time"

// RequestRecord is one parsed access-log line. It exists only while the line
// is being processed and is never persisted.
type RequestRecord struct {
	Time      time.Time
	ClientIP  string
	Method    string
	Path      string
	Status    int
	BytesSent int64
	Range     *ByteRange // nil when the whole file was requested
	Referrer  string
	UserAgent string
}

// ByteRange is the requested byte range from a Range header, with inclusive
// offsets as they appear on the wire. End is -1 for open-ended ranges
// ("bytes=500-").
type ByteRange struct {
	Start int64
	End   int64
}

// Len returns the requested length in bytes, or 0 when the range is open-ended.
func (r *ByteRange) Len() int64 {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// IsSuccess reports whether the response carried content (2xx).
func (rec *RequestRecord) IsSuccess() bool {
	return rec.Status >= 200 && rec.Status <= 299
}

// TransferredInterval returns the half-open byte interval this request
// actually delivered, clamped to the bytes sent: a client that aborts a range
// request mid-transfer only covers the bytes it received.
func (rec *RequestRecord) TransferredInterval() ByteInterval {
	if rec.BytesSent <= 0 {
		return ByteInterval{}
	}

	start := int64(0)
	length := rec.BytesSent
	if rec.Range != nil {
		start = rec.Range.Start
		if rangeLen := rec.Range.Len(); rangeLen > 0 && rangeLen < length {
			length = rangeLen
		}
	}

	return ByteInterval{Start: start, End: start + length}
}
