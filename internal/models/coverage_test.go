package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionLength_OverlappingIntervals(t *testing.T) {
	t.Parallel()

	// [0,100) + [50,150) + [90,200) over a 200-byte file covers all 200
	// bytes, not 300.
	intervals := []ByteInterval{
		{Start: 0, End: 100},
		{Start: 50, End: 150},
		{Start: 90, End: 200},
	}

	assert.Equal(t, int64(200), UnionLength(intervals))
}

func TestUnionLength_OrderIndependent(t *testing.T) {
	t.Parallel()

	a := []ByteInterval{{0, 100}, {50, 150}, {90, 200}}
	b := []ByteInterval{{90, 200}, {0, 100}, {50, 150}}
	c := []ByteInterval{{50, 150}, {90, 200}, {0, 100}}

	assert.Equal(t, UnionLength(a), UnionLength(b))
	assert.Equal(t, UnionLength(a), UnionLength(c))
}

func TestUnionLength_DisjointIntervals(t *testing.T) {
	t.Parallel()

	intervals := []ByteInterval{
		{Start: 0, End: 100},
		{Start: 200, End: 300},
	}

	assert.Equal(t, int64(200), UnionLength(intervals))
}

func TestUnionLength_AdjacentIntervalsMerge(t *testing.T) {
	t.Parallel()

	intervals := []ByteInterval{
		{Start: 0, End: 600000},
		{Start: 600000, End: 1000000},
	}

	assert.Equal(t, int64(1000000), UnionLength(intervals))
}

func TestUnionLength_ExactRetryDoesNotInflate(t *testing.T) {
	t.Parallel()

	intervals := []ByteInterval{
		{Start: 0, End: 1000},
		{Start: 0, End: 1000},
		{Start: 0, End: 1000},
	}

	assert.Equal(t, int64(1000), UnionLength(intervals))
}

func TestUnionLength_EmptyInput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(0), UnionLength(nil))
	assert.Equal(t, int64(0), UnionLength([]ByteInterval{}))
	assert.Equal(t, int64(0), UnionLength([]ByteInterval{{Start: 10, End: 10}}))
}

func TestUnionLength_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	intervals := []ByteInterval{{90, 200}, {0, 100}}
	_ = UnionLength(intervals)

	assert.Equal(t, []ByteInterval{{90, 200}, {0, 100}}, intervals)
}

func TestClientEpisodeCoverage_Add(t *testing.T) {
	t.Parallel()

	key := CoverageKey{ClientIP: "172.56.208.121", EpisodeID: "001", Date: "2023-05-08"}
	cov := NewClientEpisodeCoverage(key, 1000000)

	cov.Add(ByteInterval{Start: 0, End: 600000}, 600000)
	cov.Add(ByteInterval{Start: 600000, End: 1000000}, 400000)
	// A retried chunk adds raw volume but no new coverage.
	cov.Add(ByteInterval{Start: 0, End: 600000}, 600000)

	assert.Equal(t, int64(1000000), cov.CoverageBytes())
	assert.Equal(t, int64(1600000), cov.TotalBytesSent)
}

func TestClientEpisodeCoverage_EmptyIntervalCountsBytesOnly(t *testing.T) {
	t.Parallel()

	key := CoverageKey{ClientIP: "10.0.0.1", EpisodeID: "002", Date: "2023-05-08"}
	cov := NewClientEpisodeCoverage(key, 1000)

	cov.Add(ByteInterval{}, 0)

	assert.Equal(t, int64(0), cov.CoverageBytes())
	assert.Empty(t, cov.Intervals)
}

func TestCoverageKey_PartitionKey(t *testing.T) {
	t.Parallel()

	key := CoverageKey{ClientIP: "172.56.208.121", EpisodeID: "001", Date: "2023-05-08"}
	assert.Equal(t, "172.56.208.121|001|2023-05-08", key.PartitionKey())
}
