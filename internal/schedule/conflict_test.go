package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luxview-Media/luxview/internal/model"
)

func TestFindConflictsTimeOverlap(t *testing.T) {
	a := weekdaySchedule(t, 1, 5)
	b := weekdaySchedule(t, 2, 3)
	b.StartTime = tod(t, "16:00")
	b.EndTime = tod(t, "18:00")

	engine := newTestEngine(&memSource{schedules: []model.Schedule{a, b}})

	conflicts, err := engine.FindConflicts(a, day(t, "2025-01-15"))
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, ConflictTimeOverlap, conflicts[0].Type)
	assert.Equal(t, 2, conflicts[0].Other.ID)
}

func TestFindConflictsEqualPriorityTagged(t *testing.T) {
	a := weekdaySchedule(t, 1, 5)
	b := weekdaySchedule(t, 2, 5)

	engine := newTestEngine(&memSource{schedules: []model.Schedule{a, b}})

	conflicts, err := engine.FindConflicts(a, day(t, "2025-01-15"))
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, ConflictPriorityConflict, conflicts[0].Type)
	assert.Contains(t, conflicts[0].Details, "same priority")
}

func TestFindConflictsDisjointTimes(t *testing.T) {
	a := weekdaySchedule(t, 1, 5)
	b := weekdaySchedule(t, 2, 5)
	b.StartTime = tod(t, "18:00")
	b.EndTime = tod(t, "20:00")

	engine := newTestEngine(&memSource{schedules: []model.Schedule{a, b}})

	conflicts, err := engine.FindConflicts(a, day(t, "2025-01-15"))
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindConflictsDisjointWeekdays(t *testing.T) {
	a := weekdaySchedule(t, 1, 5)
	b := weekdaySchedule(t, 2, 5)
	weekend := "5,6"
	b.DaysOfWeek = &weekend

	engine := newTestEngine(&memSource{schedules: []model.Schedule{a, b}})

	conflicts, err := engine.FindConflicts(a, day(t, "2025-01-15"))
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindConflictsTargetResolution(t *testing.T) {
	t.Run("different devices never conflict", func(t *testing.T) {
		a := weekdaySchedule(t, 1, 5)
		a.DeviceID = intPtr(1)
		b := weekdaySchedule(t, 2, 5)
		b.DeviceID = intPtr(2)

		engine := newTestEngine(&memSource{schedules: []model.Schedule{a, b}})
		conflicts, err := engine.FindConflicts(a, day(t, "2025-01-15"))
		require.NoError(t, err)
		assert.Empty(t, conflicts)
	})

	t.Run("device inside targeted group conflicts", func(t *testing.T) {
		a := weekdaySchedule(t, 1, 5)
		a.DeviceID = intPtr(1)
		b := weekdaySchedule(t, 2, 3)
		b.DeviceGroupID = intPtr(10)

		src := &memSource{
			devices:   map[int]model.Device{1: {ID: 1, GroupID: intPtr(10), IsActive: true}},
			schedules: []model.Schedule{a, b},
		}
		engine := newTestEngine(src)
		conflicts, err := engine.FindConflicts(a, day(t, "2025-01-15"))
		require.NoError(t, err)
		assert.Len(t, conflicts, 1)
	})

	t.Run("broadcast schedule conflicts with everything", func(t *testing.T) {
		a := weekdaySchedule(t, 1, 5)
		a.DeviceID = intPtr(1)
		b := weekdaySchedule(t, 2, 3) // no target

		engine := newTestEngine(&memSource{schedules: []model.Schedule{a, b}})
		conflicts, err := engine.FindConflicts(a, day(t, "2025-01-15"))
		require.NoError(t, err)
		assert.Len(t, conflicts, 1)
	})
}

func TestFindConflictsOvernightWindows(t *testing.T) {
	a := weekdaySchedule(t, 1, 5)
	a.StartTime = tod(t, "22:00")
	a.EndTime = tod(t, "02:00")
	b := weekdaySchedule(t, 2, 3)
	b.StartTime = tod(t, "23:00")
	b.EndTime = tod(t, "23:30")

	engine := newTestEngine(&memSource{schedules: []model.Schedule{a, b}})

	conflicts, err := engine.FindConflicts(a, day(t, "2025-01-15"))
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)
}

func TestFindConflictsSkipsOutOfDateRange(t *testing.T) {
	a := weekdaySchedule(t, 1, 5)
	b := weekdaySchedule(t, 2, 5)
	b.StartDate = dayPtr(t, "2025-06-01")

	engine := newTestEngine(&memSource{schedules: []model.Schedule{a, b}})

	conflicts, err := engine.FindConflicts(a, day(t, "2025-01-15"))
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}
