package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luxview-Media/luxview/internal/model"
)

func TestProjectEventsRecurring(t *testing.T) {
	s := weekdaySchedule(t, 1, 5)
	s.Color = "#3788d8"
	engine := newTestEngine(&memSource{schedules: []model.Schedule{s}})

	// Mon 2025-01-13 .. Sun 2025-01-19: five weekday occurrences
	events, err := engine.ProjectEvents(day(t, "2025-01-13"), day(t, "2025-01-19"), EventFilter{})
	require.NoError(t, err)
	require.Len(t, events, 5)
	assert.Equal(t, "schedule_1_2025-01-13", events[0].ID)
	assert.Equal(t, at(t, "2025-01-13 09:00"), events[0].Start)
	require.NotNil(t, events[0].End)
	assert.Equal(t, at(t, "2025-01-13 17:00"), *events[0].End)
}

func TestProjectEventsBlackoutSuppressed(t *testing.T) {
	s := weekdaySchedule(t, 1, 5)
	src := &memSource{
		schedules: []model.Schedule{s},
		exceptions: []model.ScheduleException{{
			ScheduleID:    1,
			ExceptionDate: day(t, "2025-01-15"),
			ExceptionType: model.ExceptionBlackout,
		}},
	}
	engine := newTestEngine(src)

	events, err := engine.ProjectEvents(day(t, "2025-01-13"), day(t, "2025-01-19"), EventFilter{})
	require.NoError(t, err)
	require.Len(t, events, 4)
	for _, ev := range events {
		assert.NotEqual(t, "schedule_1_2025-01-15", ev.ID)
	}
}

func TestProjectEventsOverrideRelabeled(t *testing.T) {
	s := weekdaySchedule(t, 1, 5)
	s.Color = "#3788d8"
	src := &memSource{
		schedules: []model.Schedule{s},
		exceptions: []model.ScheduleException{{
			ScheduleID:      1,
			ExceptionDate:   day(t, "2025-01-15"),
			ExceptionType:   model.ExceptionOverride,
			OverrideVideoID: intPtr(77),
		}},
	}
	engine := newTestEngine(src)

	events, err := engine.ProjectEvents(day(t, "2025-01-15"), day(t, "2025-01-15"), EventFilter{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "schedule 1 (Override)", events[0].Title)
	assert.Equal(t, overrideColor, events[0].Color)
	assert.True(t, events[0].Overridden)
}

func TestProjectEventsNonRecurringSingleEvent(t *testing.T) {
	s := weekdaySchedule(t, 1, 5)
	s.IsRecurring = false
	s.RecurrenceType = model.RecurrenceNone
	s.StartDate = dayPtr(t, "2025-01-15")

	engine := newTestEngine(&memSource{schedules: []model.Schedule{s}})

	events, err := engine.ProjectEvents(day(t, "2025-01-01"), day(t, "2025-01-31"), EventFilter{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, at(t, "2025-01-15 09:00"), events[0].Start)
}

func TestProjectEventsAllDay(t *testing.T) {
	s := weekdaySchedule(t, 1, 5)
	s.DaysOfWeek = nil
	s.IsAllDay = true

	engine := newTestEngine(&memSource{schedules: []model.Schedule{s}})

	events, err := engine.ProjectEvents(day(t, "2025-01-15"), day(t, "2025-01-15"), EventFilter{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].AllDay)
	assert.Equal(t, day(t, "2025-01-15"), events[0].Start)
	assert.Nil(t, events[0].End)
}

func TestProjectEventsOvernightEndsNextDay(t *testing.T) {
	s := weekdaySchedule(t, 1, 5)
	s.StartTime = tod(t, "22:00")
	s.EndTime = tod(t, "02:00")

	engine := newTestEngine(&memSource{schedules: []model.Schedule{s}})

	events, err := engine.ProjectEvents(day(t, "2025-01-15"), day(t, "2025-01-15"), EventFilter{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.NotNil(t, events[0].End)
	assert.Equal(t, at(t, "2025-01-16 02:00"), *events[0].End)
}

func TestProjectEventsDeviceFilter(t *testing.T) {
	mine := weekdaySchedule(t, 1, 5)
	mine.DeviceID = intPtr(1)
	other := weekdaySchedule(t, 2, 5)
	other.DeviceID = intPtr(2)
	broadcast := weekdaySchedule(t, 3, 1)

	engine := newTestEngine(&memSource{schedules: []model.Schedule{mine, other, broadcast}})

	events, err := engine.ProjectEvents(day(t, "2025-01-15"), day(t, "2025-01-15"), EventFilter{DeviceID: intPtr(1)})
	require.NoError(t, err)
	require.Len(t, events, 2)
	ids := []int{events[0].ScheduleID, events[1].ScheduleID}
	assert.Contains(t, ids, 1)
	assert.Contains(t, ids, 3)
}
