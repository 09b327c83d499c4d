package schedule

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luxview-Media/luxview/internal/model"
)

// memSource is an in-memory Source for engine tests.
type memSource struct {
	devices     map[int]model.Device
	schedules   []model.Schedule
	exceptions  []model.ScheduleException
	assignments []model.Assignment
	playlists   map[int][]model.PlaylistItem
}

func (m *memSource) DeviceByID(id int) (model.Device, error) {
	d, ok := m.devices[id]
	if !ok {
		return model.Device{}, fmt.Errorf("device %d not found", id)
	}
	return d, nil
}

func (m *memSource) SchedulesActiveOn(date time.Time) ([]model.Schedule, error) {
	var out []model.Schedule
	for _, s := range m.schedules {
		if !s.IsActive {
			continue
		}
		if s.StartDate != nil && date.Before(dateOnly(*s.StartDate)) {
			continue
		}
		if s.EndDate != nil && date.After(dateOnly(*s.EndDate)) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *memSource) SchedulesInRange(from, to time.Time) ([]model.Schedule, error) {
	var out []model.Schedule
	for _, s := range m.schedules {
		if !s.IsActive {
			continue
		}
		if s.StartDate != nil && to.Before(dateOnly(*s.StartDate)) {
			continue
		}
		if s.EndDate != nil && from.After(dateOnly(*s.EndDate)) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *memSource) ExceptionFor(scheduleID int, date time.Time) (*model.ScheduleException, error) {
	for i := range m.exceptions {
		e := m.exceptions[i]
		if e.ScheduleID == scheduleID && sameDate(e.ExceptionDate, date) {
			return &e, nil
		}
	}
	return nil, nil
}

func (m *memSource) AssignmentsForDevice(deviceID int) ([]model.Assignment, error) {
	var out []model.Assignment
	for _, a := range m.assignments {
		if a.DeviceID == deviceID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memSource) PlaylistItems(playlistID int) ([]model.PlaylistItem, error) {
	return m.playlists[playlistID], nil
}

func intPtr(v int) *int { return &v }

func newTestEngine(src *memSource) *Engine {
	if src.devices == nil {
		src.devices = map[int]model.Device{1: {ID: 1, Name: "lobby", IsActive: true}}
	}
	return NewEngine(src, func() time.Time { return time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC) })
}

func weekdaySchedule(t *testing.T, id, priority int) model.Schedule {
	t.Helper()
	days := "0,1,2,3,4"
	return model.Schedule{
		ID:                 id,
		Name:               fmt.Sprintf("schedule %d", id),
		VideoID:            intPtr(100 + id),
		StartTime:          tod(t, "09:00"),
		EndTime:            tod(t, "17:00"),
		DaysOfWeek:         &days,
		Priority:           priority,
		IsRecurring:        true,
		RecurrenceType:     model.RecurrenceWeekly,
		RecurrenceInterval: 1,
		IsActive:           true,
	}
}

func TestResolvePicksHigherPriority(t *testing.T) {
	// A: priority 5, Mon-Fri 09:00-17:00, targets device 1.
	// B: priority 3, every day, all-day, targets all devices.
	a := weekdaySchedule(t, 1, 5)
	a.DeviceID = intPtr(1)
	b := weekdaySchedule(t, 2, 3)
	b.DaysOfWeek = nil
	b.IsAllDay = true

	engine := newTestEngine(&memSource{schedules: []model.Schedule{a, b}})

	// Wednesday noon: both apply, A wins on priority
	decision, err := engine.ResolveActiveSchedule(1, at(t, "2025-01-15 12:00"))
	require.NoError(t, err)
	require.NotNil(t, decision)
	assert.Equal(t, 1, decision.Schedule.ID)

	// Saturday noon: A's weekday filter excludes it, B wins
	decision, err = engine.ResolveActiveSchedule(1, at(t, "2025-01-18 12:00"))
	require.NoError(t, err)
	require.NotNil(t, decision)
	assert.Equal(t, 2, decision.Schedule.ID)
}

func TestResolveEqualPriorityBreaksTiesByLowerID(t *testing.T) {
	a := weekdaySchedule(t, 7, 5)
	b := weekdaySchedule(t, 3, 5)
	engine := newTestEngine(&memSource{schedules: []model.Schedule{a, b}})

	decision, err := engine.ResolveActiveSchedule(1, at(t, "2025-01-15 12:00"))
	require.NoError(t, err)
	require.NotNil(t, decision)
	assert.Equal(t, 3, decision.Schedule.ID)
}

func TestResolveIsIdempotent(t *testing.T) {
	engine := newTestEngine(&memSource{schedules: []model.Schedule{
		weekdaySchedule(t, 1, 5), weekdaySchedule(t, 2, 9),
	}})

	first, err := engine.ResolveActiveSchedule(1, at(t, "2025-01-15 12:00"))
	require.NoError(t, err)
	second, err := engine.ResolveActiveSchedule(1, at(t, "2025-01-15 12:00"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveSkipsNonMatchingTargets(t *testing.T) {
	other := weekdaySchedule(t, 1, 5)
	other.DeviceID = intPtr(99)
	grouped := weekdaySchedule(t, 2, 4)
	grouped.DeviceGroupID = intPtr(10)

	src := &memSource{
		devices:   map[int]model.Device{1: {ID: 1, GroupID: intPtr(10), IsActive: true}},
		schedules: []model.Schedule{other, grouped},
	}
	engine := newTestEngine(src)

	decision, err := engine.ResolveActiveSchedule(1, at(t, "2025-01-15 12:00"))
	require.NoError(t, err)
	require.NotNil(t, decision)
	assert.Equal(t, 2, decision.Schedule.ID, "group-targeted schedule applies via membership")
}

func TestResolveBlackoutRemovesCandidate(t *testing.T) {
	for _, recurrence := range []string{
		model.RecurrenceDaily, model.RecurrenceWeekly, model.RecurrenceMonthly, model.RecurrenceYearly,
	} {
		t.Run(recurrence, func(t *testing.T) {
			s := weekdaySchedule(t, 1, 5)
			s.DaysOfWeek = nil
			s.RecurrenceType = recurrence
			s.StartDate = dayPtr(t, "2025-01-15")

			src := &memSource{
				schedules: []model.Schedule{s},
				exceptions: []model.ScheduleException{{
					ScheduleID:    1,
					ExceptionDate: day(t, "2025-01-15"),
					ExceptionType: model.ExceptionBlackout,
				}},
			}
			engine := newTestEngine(src)

			decision, err := engine.ResolveActiveSchedule(1, at(t, "2025-01-15 12:00"))
			require.NoError(t, err)
			assert.Nil(t, decision)

			// the day after the blackout the schedule resolves again for
			// daily recurrence
			if recurrence == model.RecurrenceDaily {
				decision, err = engine.ResolveActiveSchedule(1, at(t, "2025-01-16 12:00"))
				require.NoError(t, err)
				assert.NotNil(t, decision)
			}
		})
	}
}

func TestResolveOverrideSubstitutesContent(t *testing.T) {
	s := weekdaySchedule(t, 1, 5)
	src := &memSource{
		schedules: []model.Schedule{s},
		exceptions: []model.ScheduleException{{
			ScheduleID:         1,
			ExceptionDate:      day(t, "2025-01-15"),
			ExceptionType:      model.ExceptionOverride,
			OverridePlaylistID: intPtr(55),
		}},
	}
	engine := newTestEngine(src)

	decision, err := engine.ResolveActiveSchedule(1, at(t, "2025-01-15 12:00"))
	require.NoError(t, err)
	require.NotNil(t, decision)
	assert.True(t, decision.Overridden)
	assert.Nil(t, decision.VideoID)
	require.NotNil(t, decision.PlaylistID)
	assert.Equal(t, 55, *decision.PlaylistID)
}

func TestResolveAllDayBypassesTimeWindow(t *testing.T) {
	s := weekdaySchedule(t, 1, 5)
	s.IsAllDay = true
	engine := newTestEngine(&memSource{schedules: []model.Schedule{s}})

	decision, err := engine.ResolveActiveSchedule(1, at(t, "2025-01-15 03:00"))
	require.NoError(t, err)
	assert.NotNil(t, decision)
}

func TestResolveRespectsRecurrenceEndDate(t *testing.T) {
	s := weekdaySchedule(t, 1, 5)
	s.RecurrenceEndDate = dayPtr(t, "2025-01-10")
	engine := newTestEngine(&memSource{schedules: []model.Schedule{s}})

	decision, err := engine.ResolveActiveSchedule(1, at(t, "2025-01-15 12:00"))
	require.NoError(t, err)
	assert.Nil(t, decision)
}

func TestActiveAssignmentsAggregation(t *testing.T) {
	start, end := tod(t, "22:00"), tod(t, "02:00")
	src := &memSource{
		assignments: []model.Assignment{
			// overnight window, active at 23:30 and 01:00, not at 03:00
			{ID: 1, DeviceID: 1, VideoID: intPtr(10), StartTime: &start, EndTime: &end, Priority: 1},
			// unconstrained playlist assignment, higher priority
			{ID: 2, DeviceID: 1, PlaylistID: intPtr(50), Priority: 5},
		},
		playlists: map[int][]model.PlaylistItem{
			50: {
				{ID: 1, PlaylistID: 50, VideoID: 20, Position: 0},
				{ID: 2, PlaylistID: 50, VideoID: 10, Position: 1}, // duplicate of assignment 1's video
				{ID: 3, PlaylistID: 50, VideoID: 30, Position: 2},
			},
		},
	}
	engine := newTestEngine(src)

	t.Run("inside overnight window", func(t *testing.T) {
		entries, err := engine.ActiveAssignments(1, at(t, "2025-01-15 23:30"))
		require.NoError(t, err)
		// playlist first (priority 5) in position order, then the direct
		// video is dropped as a duplicate of the playlist's second item
		require.Len(t, entries, 3)
		assert.Equal(t, 20, entries[0].VideoID)
		assert.Equal(t, 10, entries[1].VideoID)
		assert.Equal(t, 30, entries[2].VideoID)
		assert.Equal(t, 2, entries[0].AssignmentID)
	})

	t.Run("after overnight window", func(t *testing.T) {
		entries, err := engine.ActiveAssignments(1, at(t, "2025-01-16 03:00"))
		require.NoError(t, err)
		// only the unconstrained playlist remains
		require.Len(t, entries, 3)
		for _, e := range entries {
			assert.Equal(t, 2, e.AssignmentID)
		}
	})

	t.Run("early morning inside window", func(t *testing.T) {
		entries, err := engine.ActiveAssignments(1, at(t, "2025-01-16 01:00"))
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})
}

func TestDayPreview(t *testing.T) {
	s := weekdaySchedule(t, 1, 5)
	engine := newTestEngine(&memSource{schedules: []model.Schedule{s}})

	slots, err := engine.DayPreview(1, day(t, "2025-01-15"))
	require.NoError(t, err)
	require.Len(t, slots, 24)
	assert.Nil(t, slots[8].Decision, "08:00 precedes the window")
	require.NotNil(t, slots[9].Decision)
	assert.Equal(t, 1, slots[9].Decision.Schedule.ID)
	require.NotNil(t, slots[17].Decision, "17:00 is inclusive")
	assert.Nil(t, slots[18].Decision)
}
