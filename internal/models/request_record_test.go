package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestRecord_IsSuccess(t *testing.T) {
	t.Parallel()

	assert.True(t, (&RequestRecord{Status: 200}).IsSuccess())
	assert.True(t, (&RequestRecord{Status: 206}).IsSuccess())
	assert.False(t, (&RequestRecord{Status: 302}).IsSuccess())
	assert.False(t, (&RequestRecord{Status: 404}).IsSuccess())
	assert.False(t, (&RequestRecord{Status: 500}).IsSuccess())
}

func TestTransferredInterval_WholeFile(t *testing.T) {
	t.Parallel()

	rec := &RequestRecord{Status: 200, BytesSent: 212698}
	assert.Equal(t, ByteInterval{Start: 0, End: 212698}, rec.TransferredInterval())
}

func TestTransferredInterval_RangeRequest(t *testing.T) {
	t.Parallel()

	// bytes=100-299 fully delivered
	rec := &RequestRecord{
		Status:    206,
		BytesSent: 200,
		Range:     &ByteRange{Start: 100, End: 299},
	}
	assert.Equal(t, ByteInterval{Start: 100, End: 300}, rec.TransferredInterval())
}

func TestTransferredInterval_AbortedRangeClampsToBytesSent(t *testing.T) {
	t.Parallel()

	// Client requested bytes=0-999999 but dropped after 1000 bytes.
	rec := &RequestRecord{
		Status:    206,
		BytesSent: 1000,
		Range:     &ByteRange{Start: 0, End: 999999},
	}
	assert.Equal(t, ByteInterval{Start: 0, End: 1000}, rec.TransferredInterval())
}

func TestTransferredInterval_OpenEndedRange(t *testing.T) {
	t.Parallel()

	// bytes=500- means "from 500 to the end"; only bytes sent bound it.
	rec := &RequestRecord{
		Status:    206,
		BytesSent: 250,
		Range:     &ByteRange{Start: 500, End: -1},
	}
	assert.Equal(t, ByteInterval{Start: 500, End: 750}, rec.TransferredInterval())
}

func TestTransferredInterval_NoBytesSent(t *testing.T) {
	t.Parallel()

	rec := &RequestRecord{Status: 304, BytesSent: 0}
	assert.True(t, rec.TransferredInterval().IsEmpty())
}

func TestByteRange_Len(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(200), (&ByteRange{Start: 100, End: 299}).Len())
	assert.Equal(t, int64(1), (&ByteRange{Start: 0, End: 0}).Len())
	assert.Equal(t, int64(0), (&ByteRange{Start: 500, End: -1}).Len())
}

func TestDateOf_UsesTimestampOffset(t *testing.T) {
	t.Parallel()

	// 2023-05-08 23:30 -0700 is already 2023-05-09 in UTC; the server's
	// own clock decides the date.
	loc := time.FixedZone("PDT", -7*3600)
	ts := time.Date(2023, 5, 8, 23, 30, 0, 0, loc)

	assert.Equal(t, LogDate("2023-05-08"), DateOf(ts))
}

func TestParseLogDate(t *testing.T) {
	t.Parallel()

	d, err := ParseLogDate("2023-05-08")
	assert.NoError(t, err)
	assert.Equal(t, "2023-05-08", d.String())

	_, err = ParseLogDate("08/May/2023")
	assert.Error(t, err)
}
