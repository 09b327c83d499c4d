package model

import "time"

// Assignment binds content to a single device. Assignments are additive:
// every assignment whose window matches contributes to the playback list,
// unlike schedules where one winner is exclusive.
type Assignment struct {
	ID         int  `db:"id"          json:"id"`
	DeviceID   int  `db:"device_id"   json:"device_id"`
	VideoID    *int `db:"video_id"    json:"video_id"`
	PlaylistID *int `db:"playlist_id" json:"playlist_id"`

	// Optional window. Absent start/end relaxes the corresponding bound;
	// absent days means every day.
	StartTime  *TimeOfDay `db:"start_time"   json:"start_time"`
	EndTime    *TimeOfDay `db:"end_time"     json:"end_time"`
	DaysOfWeek *string    `db:"days_of_week" json:"days_of_week"`

	Priority   int       `db:"priority"    json:"priority"`
	AssignedAt time.Time `db:"assigned_at" json:"assigned_at"`
}

func (a Assignment) ContentType() string {
	if a.VideoID != nil {
		return "video"
	}
	return "playlist"
}

// IsScheduled reports whether the assignment carries any window constraint.
func (a Assignment) IsScheduled() bool {
	return a.StartTime != nil || a.EndTime != nil || a.DaysOfWeek != nil
}

// DaysList returns the weekday filter, nil when unset.
func (a Assignment) DaysList() []int {
	return parseDays(a.DaysOfWeek, false)
}
