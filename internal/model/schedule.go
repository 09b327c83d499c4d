package model

import (
	"strconv"
	"strings"
	"time"
)

// Recurrence patterns for schedules.
const (
	RecurrenceNone    = "none"
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
	RecurrenceYearly  = "yearly"
)

// Exception types.
const (
	ExceptionBlackout = "blackout"
	ExceptionOverride = "override"
	ExceptionSpecial  = "special"
)

// Schedule is the exclusive-winner scheduling entity. Exactly one of VideoID
// and PlaylistID is set. DeviceID and DeviceGroupID are mutually exclusive;
// both nil means the schedule applies to every device.
type Schedule struct {
	ID          int     `db:"id"           json:"id"`
	Name        string  `db:"name"         json:"name"`
	Description *string `db:"description"  json:"description,omitempty"`

	VideoID    *int `db:"video_id"    json:"video_id"`
	PlaylistID *int `db:"playlist_id" json:"playlist_id"`

	DeviceID      *int `db:"device_id"       json:"device_id"`
	DeviceGroupID *int `db:"device_group_id" json:"device_group_id"`

	StartTime  TimeOfDay `db:"start_time"   json:"start_time"`
	EndTime    TimeOfDay `db:"end_time"     json:"end_time"`
	DaysOfWeek *string   `db:"days_of_week" json:"days_of_week"`

	StartDate *time.Time `db:"start_date" json:"start_date"`
	EndDate   *time.Time `db:"end_date"   json:"end_date"`

	Priority int `db:"priority" json:"priority"`

	IsRecurring        bool       `db:"is_recurring"         json:"is_recurring"`
	RecurrenceType     string     `db:"recurrence_type"      json:"recurrence_type"`
	RecurrenceInterval int        `db:"recurrence_interval"  json:"recurrence_interval"`
	RecurrenceEndDate  *time.Time `db:"recurrence_end_date"  json:"recurrence_end_date"`

	IsAllDay bool   `db:"is_all_day" json:"is_all_day"`
	Color    string `db:"color"      json:"color"`
	IsActive bool   `db:"is_active"  json:"is_active"`

	CreatedBy *int      `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ContentType reports "video" or "playlist".
func (s Schedule) ContentType() string {
	if s.VideoID != nil {
		return "video"
	}
	return "playlist"
}

// DaysList returns the selected weekday indices (0=Monday..6=Sunday).
// An unset filter means every day.
func (s Schedule) DaysList() []int {
	return parseDays(s.DaysOfWeek, true)
}

// ScheduleException is a date-specific override attached to one schedule. At
// most one exception exists per (schedule, date).
type ScheduleException struct {
	ID            int       `db:"id"             json:"id"`
	ScheduleID    int       `db:"schedule_id"    json:"schedule_id"`
	ExceptionDate time.Time `db:"exception_date" json:"exception_date"`
	ExceptionType string    `db:"exception_type" json:"exception_type"`

	OverrideVideoID    *int `db:"override_video_id"    json:"override_video_id"`
	OverridePlaylistID *int `db:"override_playlist_id" json:"override_playlist_id"`

	Reason    *string   `db:"reason"     json:"reason,omitempty"`
	CreatedBy *int      `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// parseDays turns a comma-separated weekday string into indices. When the
// filter is absent, allWhenEmpty selects between "every day" (schedules) and
// nil (assignments, where nil relaxes the check entirely).
func parseDays(s *string, allWhenEmpty bool) []int {
	if s == nil || *s == "" {
		if allWhenEmpty {
			return []int{0, 1, 2, 3, 4, 5, 6}
		}
		return nil
	}
	parts := strings.Split(*s, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		d, err := strconv.Atoi(p)
		if err != nil || d < 0 || d > 6 {
			continue
		}
		days = append(days, d)
	}
	return days
}
