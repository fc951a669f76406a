package aggregators

import (
	"fmt"

	"podcast-metrics/internal/models"
)

//go:generate mockgen -source=daily_rolluper.go -destination=./mocks/daily_rolluper_mock.go -package=mocks
type DailyCountersRolluper interface {
	// Rollup mutates counters by folding in one client's verdict.
	Rollup(counters *models.DailyEpisodeCounters, class models.DownloadClass) error
}

type dailyRolluper struct{}

func NewDailyRolluper() DailyCountersRolluper {
	return &dailyRolluper{}
}

func (r *dailyRolluper) Rollup(counters *models.DailyEpisodeCounters, class models.DownloadClass) error {
	switch class {
	case models.ClassFull:
		counters.FullCount++
	case models.ClassPartial:
		counters.PartialCount++
	case models.ClassNone:
		// Zero coverage leaves no trace in the daily counters.
	default:
		return fmt.Errorf("unknown download class: %q", class)
	}
	return nil
}
