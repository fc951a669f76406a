package models

// DownloadClass is the verdict for one client/episode/date coverage.
type DownloadClass string

const (
	ClassNone    DownloadClass = "none"
	ClassPartial DownloadClass = "partial"
	ClassFull    DownloadClass = "full"
)

// DailyEpisodeCounters is the only entity that survives a processing run:
// the number of distinct clients with a full and with a partial download of
// one episode on one date. No client-identifying data is ever attached.
//
// Example JSON:
//
//	{
//	  "episodeId": "001",
//	  "date": "2023-05-08",
//	  "fullCount": 41,
//	  "partialCount": 7
//	}
type DailyEpisodeCounters struct {
	EpisodeID    string  `json:"episodeId" gorm:"primaryKey;size:64"`
	Date         LogDate `json:"date" gorm:"primaryKey;size:10"`
	FullCount    uint32  `json:"fullCount"`
	PartialCount uint32  `json:"partialCount"`
}

// TableName fixes the table name for the postgres backend.
func (DailyEpisodeCounters) TableName() string {
	return "daily_episode_counters"
}

func NewEmptyDailyEpisodeCounters(episodeID string, date LogDate) *DailyEpisodeCounters {
	return &DailyEpisodeCounters{EpisodeID: episodeID, Date: date}
}
