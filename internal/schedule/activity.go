package schedule

import (
	"time"

	"github.com/Luxview-Media/luxview/internal/model"
)

// IsActiveOnDate checks the schedule's enable flag, date bounds and weekday
// filter for a calendar date. The recurrence pattern is not consulted here;
// see Expand.
func IsActiveOnDate(s model.Schedule, date time.Time) bool {
	if !s.IsActive {
		return false
	}
	d := dateOnly(date)
	if s.StartDate != nil && d.Before(dateOnly(*s.StartDate)) {
		return false
	}
	if s.EndDate != nil && d.After(dateOnly(*s.EndDate)) {
		return false
	}
	if s.DaysOfWeek != nil && !containsDay(s.DaysList(), mondayIndex(d.Weekday())) {
		return false
	}
	return true
}

// IsActiveAtTime checks the schedule's clock window, inclusive at both ends
// and wrapping across midnight when EndTime precedes StartTime.
func IsActiveAtTime(s model.Schedule, clock model.TimeOfDay) bool {
	if !s.IsActive {
		return false
	}
	if s.EndTime < s.StartTime {
		return clock >= s.StartTime || clock <= s.EndTime
	}
	return s.StartTime <= clock && clock <= s.EndTime
}

// withinDateBounds reports whether the date falls inside the schedule's
// start/end dates and recurrence end date, open ends unbounded.
func withinDateBounds(s model.Schedule, date time.Time) bool {
	d := dateOnly(date)
	if s.StartDate != nil && d.Before(dateOnly(*s.StartDate)) {
		return false
	}
	if s.EndDate != nil && d.After(dateOnly(*s.EndDate)) {
		return false
	}
	if s.RecurrenceEndDate != nil && d.After(dateOnly(*s.RecurrenceEndDate)) {
		return false
	}
	return true
}
