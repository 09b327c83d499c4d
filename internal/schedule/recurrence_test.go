package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luxview-Media/luxview/internal/model"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return v
}

func dayPtr(t *testing.T, s string) *time.Time {
	t.Helper()
	v := day(t, s)
	return &v
}

func recurring(t *testing.T, recurrenceType string, interval int) model.Schedule {
	t.Helper()
	return model.Schedule{
		ID:                 1,
		Name:               "test",
		StartTime:          tod(t, "09:00"),
		EndTime:            tod(t, "17:00"),
		IsRecurring:        true,
		RecurrenceType:     recurrenceType,
		RecurrenceInterval: interval,
		IsActive:           true,
	}
}

func TestExpandWeeklyNoDayFilterFiresEveryDay(t *testing.T) {
	s := recurring(t, model.RecurrenceWeekly, 1)

	// 2025-01-13 is a Monday
	dates := Expand(s, day(t, "2025-01-13"), day(t, "2025-01-19"))
	assert.Len(t, dates, 7)
}

func TestExpandWeeklyDayFilter(t *testing.T) {
	s := recurring(t, model.RecurrenceWeekly, 1)
	days := "0,2,4" // Mon, Wed, Fri
	s.DaysOfWeek = &days

	dates := Expand(s, day(t, "2025-01-13"), day(t, "2025-01-19"))
	require.Len(t, dates, 3)
	assert.Equal(t, day(t, "2025-01-13"), dates[0])
	assert.Equal(t, day(t, "2025-01-15"), dates[1])
	assert.Equal(t, day(t, "2025-01-17"), dates[2])
}

func TestExpandWeeklyIntervalSkipsWeeks(t *testing.T) {
	s := recurring(t, model.RecurrenceWeekly, 2)

	dates := Expand(s, day(t, "2025-01-13"), day(t, "2025-02-02"))
	// first week fully, second week skipped, third week through Feb 2
	require.Len(t, dates, 14)
	assert.Equal(t, day(t, "2025-01-19"), dates[6])
	assert.Equal(t, day(t, "2025-01-27"), dates[7])
}

func TestExpandDailyInterval(t *testing.T) {
	s := recurring(t, model.RecurrenceDaily, 2)
	s.StartDate = dayPtr(t, "2025-01-01")

	dates := Expand(s, day(t, "2025-01-01"), day(t, "2025-01-07"))
	require.Len(t, dates, 4)
	assert.Equal(t, day(t, "2025-01-01"), dates[0])
	assert.Equal(t, day(t, "2025-01-07"), dates[3])
}

func TestExpandMonthlySkipsShortMonths(t *testing.T) {
	// anchored on the 31st: February has no occurrence at all and March
	// fires on the 31st, never rolled back to the 28th
	s := recurring(t, model.RecurrenceMonthly, 1)
	s.StartDate = dayPtr(t, "2025-01-31")

	dates := Expand(s, day(t, "2025-01-01"), day(t, "2025-04-30"))
	require.Len(t, dates, 2)
	assert.Equal(t, day(t, "2025-01-31"), dates[0])
	assert.Equal(t, day(t, "2025-03-31"), dates[1])
}

func TestExpandYearlyLeapDayFallsBack(t *testing.T) {
	s := recurring(t, model.RecurrenceYearly, 1)
	s.StartDate = dayPtr(t, "2024-02-29")

	dates := Expand(s, day(t, "2024-01-01"), day(t, "2026-12-31"))
	require.Len(t, dates, 3)
	assert.Equal(t, day(t, "2024-02-29"), dates[0])
	assert.Equal(t, day(t, "2025-02-28"), dates[1])
	assert.Equal(t, day(t, "2026-02-28"), dates[2])
}

func TestExpandHonorsRecurrenceEndDate(t *testing.T) {
	s := recurring(t, model.RecurrenceWeekly, 1)
	s.RecurrenceEndDate = dayPtr(t, "2025-01-16")

	dates := Expand(s, day(t, "2025-01-13"), day(t, "2025-01-19"))
	assert.Len(t, dates, 4)
}

func TestExpandNonRecurring(t *testing.T) {
	t.Run("single occurrence on start date", func(t *testing.T) {
		s := recurring(t, model.RecurrenceNone, 1)
		s.IsRecurring = false
		s.StartDate = dayPtr(t, "2025-01-15")

		dates := Expand(s, day(t, "2025-01-01"), day(t, "2025-01-31"))
		require.Len(t, dates, 1)
		assert.Equal(t, day(t, "2025-01-15"), dates[0])
	})

	t.Run("start date outside range", func(t *testing.T) {
		s := recurring(t, model.RecurrenceNone, 1)
		s.IsRecurring = false
		s.StartDate = dayPtr(t, "2025-03-15")

		dates := Expand(s, day(t, "2025-01-01"), day(t, "2025-01-31"))
		assert.Empty(t, dates)
	})

	t.Run("no start date means every day", func(t *testing.T) {
		s := recurring(t, model.RecurrenceNone, 1)
		s.IsRecurring = false

		dates := Expand(s, day(t, "2025-01-13"), day(t, "2025-01-19"))
		assert.Len(t, dates, 7)
	})
}

// Every date the expander emits must also pass IsActiveOnDate: the expander
// checks date bounds and weekdays inline and then re-checks them through
// IsActiveOnDate, and the two paths have to agree.
func TestExpandAgreesWithIsActiveOnDate(t *testing.T) {
	days := "1,3" // Tue, Thu
	schedules := []model.Schedule{
		recurring(t, model.RecurrenceDaily, 3),
		recurring(t, model.RecurrenceWeekly, 2),
		recurring(t, model.RecurrenceMonthly, 1),
		recurring(t, model.RecurrenceYearly, 1),
	}
	schedules[1].DaysOfWeek = &days
	schedules[2].StartDate = dayPtr(t, "2025-01-29")

	from, to := day(t, "2025-01-01"), day(t, "2026-06-30")
	for _, s := range schedules {
		for _, d := range Expand(s, from, to) {
			assert.True(t, IsActiveOnDate(s, d),
				"%s schedule emitted %s which fails IsActiveOnDate", s.RecurrenceType, d.Format("2006-01-02"))
		}
	}
}

func TestExpandOutsideDateBounds(t *testing.T) {
	s := recurring(t, model.RecurrenceDaily, 1)
	s.StartDate = dayPtr(t, "2025-06-01")
	s.EndDate = dayPtr(t, "2025-06-30")

	assert.Empty(t, Expand(s, day(t, "2025-01-01"), day(t, "2025-01-31")))
	assert.Len(t, Expand(s, day(t, "2025-06-01"), day(t, "2025-06-07")), 7)
}
