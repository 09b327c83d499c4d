// Package schedule implements the content resolution engine: given a device
// and an instant it decides what that device should be playing. It is a pure
// computation over data fetched through the Source interface; it performs no
// I/O of its own and is safe for concurrent use.
package schedule

import (
	"time"

	"github.com/Luxview-Media/luxview/internal/model"
)

// Window is a daily clock range plus an optional weekday filter. A window
// whose End precedes its Start crosses midnight: it is active from Start
// through 23:59 and again from 00:00 through End. Unset bounds relax the
// corresponding side of the check; both boundaries are inclusive.
type Window struct {
	Start *model.TimeOfDay
	End   *model.TimeOfDay
	Days  []int // 0=Monday..6=Sunday; nil means every day
}

// ScheduleWindow builds the window embedded in a schedule. Schedule clock
// fields are mandatory, so both bounds are always present.
func ScheduleWindow(s model.Schedule) Window {
	start, end := s.StartTime, s.EndTime
	w := Window{Start: &start, End: &end}
	if s.DaysOfWeek != nil {
		w.Days = s.DaysList()
	}
	return w
}

// AssignmentWindow builds the window embedded in an assignment, where every
// field is optional.
func AssignmentWindow(a model.Assignment) Window {
	return Window{Start: a.StartTime, End: a.EndTime, Days: a.DaysList()}
}

// Contains reports whether the instant falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if w.Days != nil && !containsDay(w.Days, mondayIndex(t.Weekday())) {
		return false
	}

	clock := model.ClockOf(t)
	switch {
	case w.Start != nil && w.End != nil:
		if *w.End < *w.Start {
			// crosses midnight, e.g. 22:00-02:00
			return clock >= *w.Start || clock <= *w.End
		}
		return *w.Start <= clock && clock <= *w.End
	case w.Start != nil:
		return clock >= *w.Start
	case w.End != nil:
		return clock <= *w.End
	default:
		return true
	}
}

// Overlaps reports whether two fully bounded windows share any minute of the
// day. Both windows are mapped onto a 48-hour timeline so that ranges
// crossing midnight compare correctly; touching endpoints do not count as
// overlap.
func (w Window) Overlaps(other Window) bool {
	if w.Start == nil || w.End == nil || other.Start == nil || other.End == nil {
		return false
	}
	s1, e1 := int(*w.Start), int(*w.End)
	s2, e2 := int(*other.Start), int(*other.End)
	if e1 < s1 {
		e1 += model.MinutesPerDay
	}
	if e2 < s2 {
		e2 += model.MinutesPerDay
	}
	return !(e1 <= s2 || e2 <= s1)
}
