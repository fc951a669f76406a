package models

import "sort"

// ByteInterval is a half-open interval [Start, End) of file offsets.
type ByteInterval struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

func (i ByteInterval) Len() int64 {
	if i.End <= i.Start {
		return 0
	}
	return i.End - i.Start
}

func (i ByteInterval) IsEmpty() bool { return i.Len() == 0 }

// CoverageKey identifies the accumulation state for one client, episode and
// calendar date. The client identity never outlives the key.
type CoverageKey struct {
	ClientIP  string
	EpisodeID string
	Date      LogDate
}

// PartitionKey returns the routing key for sharded accumulation. All requests
// for the same (client, episode, date) land in the same partition.
func (k CoverageKey) PartitionKey() string {
	return k.ClientIP + "|" + k.EpisodeID + "|" + string(k.Date)
}

// ClientEpisodeCoverage accumulates the byte intervals one client received of
// one episode on one date. Created on the first matching request, discarded
// after classification.
type ClientEpisodeCoverage struct {
	Key            CoverageKey
	EpisodeSize    int64
	Intervals      []ByteInterval
	TotalBytesSent int64
}

func NewClientEpisodeCoverage(key CoverageKey, episodeSize int64) *ClientEpisodeCoverage {
	return &ClientEpisodeCoverage{Key: key, EpisodeSize: episodeSize}
}

// Add records one request's contribution. Empty intervals still count their
// raw transfer volume.
func (c *ClientEpisodeCoverage) Add(interval ByteInterval, bytesSent int64) {
	if !interval.IsEmpty() {
		c.Intervals = append(c.Intervals, interval)
	}
	c.TotalBytesSent += bytesSent
}

// CoverageBytes returns the length of the union of all recorded intervals.
// Overlapping and retried range requests never inflate the measure.
func (c *ClientEpisodeCoverage) CoverageBytes() int64 {
	return UnionLength(c.Intervals)
}

// UnionLength computes the total length of the union of the given intervals:
// sort by start offset, then linearly merge overlapping or adjacent intervals.
// The input slice is not modified.
func UnionLength(intervals []ByteInterval) int64 {
	merged := make([]ByteInterval, 0, len(intervals))
	for _, iv := range intervals {
		if !iv.IsEmpty() {
			merged = append(merged, iv)
		}
	}
	if len(merged) == 0 {
		return 0
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i].Start < merged[j].Start })

	total := int64(0)
	current := merged[0]
	for _, iv := range merged[1:] {
		if iv.Start <= current.End {
			if iv.End > current.End {
				current.End = iv.End
			}
			continue
		}
		total += current.Len()
		current = iv
	}
	total += current.Len()

	return total
}
