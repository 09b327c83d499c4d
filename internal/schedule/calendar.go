package schedule

import (
	"fmt"
	"time"

	"github.com/Luxview-Media/luxview/internal/model"
)

const overrideColor = "#ff9800"

// EventFilter narrows calendar projection to one device or one group.
// Untargeted (broadcast) schedules always pass the filter.
type EventFilter struct {
	DeviceID *int
	GroupID  *int
}

func (f EventFilter) matches(s model.Schedule) bool {
	switch {
	case f.DeviceID != nil:
		if s.DeviceID != nil {
			return *s.DeviceID == *f.DeviceID
		}
		return s.DeviceGroupID == nil
	case f.GroupID != nil:
		if s.DeviceGroupID != nil {
			return *s.DeviceGroupID == *f.GroupID
		}
		return s.DeviceID == nil
	default:
		return true
	}
}

// Event is one renderable calendar entry for the planning UI. Projection is
// read-only: it never feeds back into playback decisions.
type Event struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Start        time.Time  `json:"start"`
	End          *time.Time `json:"end,omitempty"`
	AllDay       bool       `json:"all_day"`
	Color        string     `json:"color"`
	ScheduleID   int        `json:"schedule_id"`
	ContentType  string     `json:"content_type"`
	Priority     int        `json:"priority"`
	HasException bool       `json:"has_exception"`
	Overridden   bool       `json:"overridden"`
}

// ProjectEvents expands every matching schedule into dated events across
// [from, to]. Recurring schedules go through Expand; non-recurring ones
// produce at most one event. Blackout dates are suppressed, override dates
// relabeled and recolored.
func (e *Engine) ProjectEvents(from, to time.Time, filter EventFilter) ([]Event, error) {
	schedules, err := e.src.SchedulesInRange(dateOnly(from), dateOnly(to))
	if err != nil {
		return nil, err
	}

	var events []Event
	for _, s := range schedules {
		if !s.IsActive || !filter.matches(s) {
			continue
		}

		if s.IsRecurring && s.RecurrenceType != model.RecurrenceNone {
			for _, date := range Expand(s, from, to) {
				ev, err := e.buildEvent(s, date)
				if err != nil {
					return nil, err
				}
				if ev != nil {
					events = append(events, *ev)
				}
			}
			continue
		}

		date := dateOnly(from)
		if s.StartDate != nil {
			d := dateOnly(*s.StartDate)
			if d.After(dateOnly(to)) {
				continue
			}
			date = maxDate(date, d)
		}
		ev, err := e.buildEvent(s, date)
		if err != nil {
			return nil, err
		}
		if ev != nil {
			events = append(events, *ev)
		}
	}
	return events, nil
}

func (e *Engine) buildEvent(s model.Schedule, date time.Time) (*Event, error) {
	exc, err := e.src.ExceptionFor(s.ID, date)
	if err != nil {
		return nil, err
	}
	occ := ApplyException(s, date, exc)
	if occ == nil {
		// blackout dates are never displayed
		return nil, nil
	}

	ev := &Event{
		ID:           fmt.Sprintf("schedule_%d_%s", s.ID, date.Format("2006-01-02")),
		Title:        s.Name,
		Start:        date,
		AllDay:       s.IsAllDay,
		Color:        s.Color,
		ScheduleID:   s.ID,
		ContentType:  s.ContentType(),
		Priority:     s.Priority,
		HasException: occ.HasException,
		Overridden:   occ.Overridden,
	}
	if !s.IsAllDay {
		ev.Start = s.StartTime.On(date)
		end := s.EndTime.On(date)
		if s.EndTime < s.StartTime {
			end = end.AddDate(0, 0, 1)
		}
		ev.End = &end
	}
	if occ.Overridden {
		ev.Title = s.Name + " (Override)"
		ev.Color = overrideColor
	}
	return ev, nil
}
