package models

import (
	"fmt"
	"time"
)

const logDateLayout = "2006-01-02"

// LogDate is a calendar date in YYYY-MM-DD form. Dates are taken in the log
// timestamp's own UTC offset, matching the serving server's clock.
type LogDate string

// DateOf returns the calendar date of t.
func DateOf(t time.Time) LogDate {
	return LogDate(t.Format(logDateLayout))
}

// ParseLogDate validates and returns a LogDate from its string form.
func ParseLogDate(s string) (LogDate, error) {
	if _, err := time.Parse(logDateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return LogDate(s), nil
}

func (d LogDate) String() string { return string(d) }
