package schedule

import (
	"time"

	"github.com/Luxview-Media/luxview/internal/model"
)

// Expand produces the concrete dates on which the schedule's recurrence rule
// fires inside [from, to]. The effective generation bounds are the
// intersection of the requested range, the schedule's start/end dates and its
// recurrence end date. Every candidate date is additionally filtered through
// IsActiveOnDate, which repeats the date-range and weekday checks; the two
// paths are kept deliberately in agreement and tested as such.
//
// Expansion walks the whole range, so it belongs on bounded read paths
// (conflict detection, calendar projection), never on per-request resolution.
func Expand(s model.Schedule, from, to time.Time) []time.Time {
	genStart := dateOnly(from)
	if s.StartDate != nil {
		genStart = maxDate(genStart, dateOnly(*s.StartDate))
	}
	genEnd := dateOnly(to)
	if s.EndDate != nil {
		genEnd = minDate(genEnd, dateOnly(*s.EndDate))
	}
	if s.RecurrenceEndDate != nil {
		genEnd = minDate(genEnd, dateOnly(*s.RecurrenceEndDate))
	}
	if genStart.After(genEnd) {
		return nil
	}

	interval := s.RecurrenceInterval
	if interval < 1 {
		interval = 1
	}

	if !s.IsRecurring || s.RecurrenceType == model.RecurrenceNone {
		return expandOnce(s, genStart, genEnd)
	}

	switch s.RecurrenceType {
	case model.RecurrenceDaily:
		return expandDaily(s, genStart, genEnd, interval)
	case model.RecurrenceWeekly:
		return expandWeekly(s, genStart, genEnd, interval)
	case model.RecurrenceMonthly:
		return expandMonthly(s, dateOnly(from), genStart, genEnd, interval)
	case model.RecurrenceYearly:
		return expandYearly(s, genStart, genEnd, interval)
	}
	return nil
}

// expandOnce handles non-repeating schedules: the single occurrence is the
// schedule's start date. A schedule without a start date is treated as active
// on every day of the range, mirroring the "every day" semantics of an unset
// weekday filter.
func expandOnce(s model.Schedule, genStart, genEnd time.Time) []time.Time {
	if s.StartDate != nil {
		d := dateOnly(*s.StartDate)
		if !d.Before(genStart) && !d.After(genEnd) && IsActiveOnDate(s, d) {
			return []time.Time{d}
		}
		return nil
	}
	var dates []time.Time
	for d := genStart; !d.After(genEnd); d = d.AddDate(0, 0, 1) {
		if IsActiveOnDate(s, d) {
			dates = append(dates, d)
		}
	}
	return dates
}

func expandDaily(s model.Schedule, genStart, genEnd time.Time, interval int) []time.Time {
	var dates []time.Time
	for d := genStart; !d.After(genEnd); d = d.AddDate(0, 0, interval) {
		if IsActiveOnDate(s, d) {
			dates = append(dates, d)
		}
	}
	return dates
}

func expandWeekly(s model.Schedule, genStart, genEnd time.Time, interval int) []time.Time {
	days := s.DaysList()
	var dates []time.Time
	for d := genStart; !d.After(genEnd); {
		if containsDay(days, mondayIndex(d.Weekday())) && IsActiveOnDate(s, d) {
			dates = append(dates, d)
		}
		d = d.AddDate(0, 0, 1)
		// skip ahead when a new week begins and the rule repeats less often
		// than weekly
		if mondayIndex(d.Weekday()) == 0 && interval > 1 {
			d = d.AddDate(0, 0, 7*(interval-1))
		}
	}
	return dates
}

// expandMonthly fires on the same day-of-month as the effective start. Months
// lacking that day are skipped entirely rather than rolled over or clamped.
func expandMonthly(s model.Schedule, rangeStart, genStart, genEnd time.Time, interval int) []time.Time {
	targetDay := genStart.Day()
	var dates []time.Time
	for cur := genStart; !cur.After(genEnd); {
		if validDate(cur.Year(), cur.Month(), targetDay) {
			d := time.Date(cur.Year(), cur.Month(), targetDay, 0, 0, 0, 0, cur.Location())
			if !d.Before(rangeStart) && !d.After(genEnd) && IsActiveOnDate(s, d) {
				dates = append(dates, d)
			}
		}
		year, month := cur.Year(), int(cur.Month())+interval
		for month > 12 {
			month -= 12
			year++
		}
		cur = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, cur.Location())
	}
	return dates
}

// expandYearly advances by whole years from the effective start. A February
// 29th anchor falls back to the 28th in non-leap target years.
func expandYearly(s model.Schedule, genStart, genEnd time.Time, interval int) []time.Time {
	var dates []time.Time
	for cur := genStart; !cur.After(genEnd); {
		if IsActiveOnDate(s, cur) {
			dates = append(dates, cur)
		}
		year := cur.Year() + interval
		day := cur.Day()
		if !validDate(year, cur.Month(), day) {
			day = 28
		}
		cur = time.Date(year, cur.Month(), day, 0, 0, 0, 0, cur.Location())
	}
	return dates
}
