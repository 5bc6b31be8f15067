package report

import (
	"time"

	"github.com/NBISweden/redmine-spent-time/internal/domain/timeentry"
)

// Range is an inclusive date window for a report. From is not required to
// precede To; an inverted range simply yields an empty report.
type Range struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// DefaultRange returns the trailing window of the given number of days
// ending today.
func DefaultRange(now time.Time, days int) Range {
	to := truncate(now)
	return Range{From: to.AddDate(0, 0, -(days - 1)), To: to}
}

// Contains reports whether the date falls inside the range, bounds included.
func (r Range) Contains(d time.Time) bool {
	d = truncate(d)
	return !d.Before(truncate(r.From)) && !d.After(truncate(r.To))
}

// Extend widens the range just enough to include the date. It never narrows.
func (r Range) Extend(d time.Time) Range {
	d = truncate(d)
	if d.After(r.To) {
		r.To = d
	} else if d.Before(r.From) {
		r.From = d
	}
	return r
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Day groups the entries of a single date with their total hours.
type Day struct {
	Date    time.Time             `json:"date"`
	Entries []timeentry.TimeEntry `json:"entries"`
	Hours   float64               `json:"hours"`
}

// Result is an aggregated report: every entry of the report user inside the
// range, grouped per day newest first. An empty result is valid.
type Result struct {
	UserID     int64                 `json:"user_id"`
	Range      Range                 `json:"range"`
	Entries    []timeentry.TimeEntry `json:"entries"`
	Days       []Day                 `json:"days"`
	TotalHours float64               `json:"total_hours"`
}
