package events

import (
	"podcast-metrics/internal/models"
)

// EpisodeRequestEvent is one successful audio request, reduced to exactly
// what accumulation needs: who received which bytes of which episode on
// which date. Produced by ingestion, consumed by the partition workers that
// own the per-key coverage state.
//
// Events for the same (client, episode, date) share a partition key, so a
// single worker sees all of them and interval union never has to be merged
// across shards.
type EpisodeRequestEvent struct {
	ClientIP    string
	EpisodeID   string
	Date        models.LogDate
	EpisodeSize int64

	// Interval is the half-open byte interval the request delivered,
	// already clamped to the bytes actually sent. May be empty.
	Interval  models.ByteInterval
	BytesSent int64
}

// CoverageKey returns the accumulation key this event contributes to.
func (e *EpisodeRequestEvent) CoverageKey() models.CoverageKey {
	return models.CoverageKey{ClientIP: e.ClientIP, EpisodeID: e.EpisodeID, Date: e.Date}
}
