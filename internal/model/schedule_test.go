package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestScheduleDaysList(t *testing.T) {
	s := Schedule{DaysOfWeek: strPtr("0,2,4")}
	assert.Equal(t, []int{0, 2, 4}, s.DaysList())

	// unset filter means every day for schedules
	s = Schedule{}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, s.DaysList())

	s = Schedule{DaysOfWeek: strPtr("")}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, s.DaysList())

	// garbage and out-of-range entries are dropped
	s = Schedule{DaysOfWeek: strPtr("1, 7, x, 5")}
	assert.Equal(t, []int{1, 5}, s.DaysList())
}

func TestAssignmentDaysList(t *testing.T) {
	a := Assignment{DaysOfWeek: strPtr("5,6")}
	assert.Equal(t, []int{5, 6}, a.DaysList())

	// unset filter relaxes the weekday check entirely
	a = Assignment{}
	assert.Nil(t, a.DaysList())
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "video", Schedule{VideoID: intPtr(3)}.ContentType())
	assert.Equal(t, "playlist", Schedule{PlaylistID: intPtr(8)}.ContentType())
	assert.Equal(t, "video", Assignment{VideoID: intPtr(3)}.ContentType())
	assert.Equal(t, "playlist", Assignment{PlaylistID: intPtr(8)}.ContentType())
}

func TestAssignmentIsScheduled(t *testing.T) {
	tod := TimeOfDay(540)
	assert.False(t, Assignment{}.IsScheduled())
	assert.True(t, Assignment{StartTime: &tod}.IsScheduled())
	assert.True(t, Assignment{DaysOfWeek: strPtr("0")}.IsScheduled())
}
