package packets

import "github.com/Luxview-Media/luxview/internal/model"

// devices

type CreateDeviceRequest struct {
	Name    string `json:"name" binding:"required"`
	Serial  string `json:"serial" binding:"required"`
	GroupID *int   `json:"group_id"`
}

type UpdateDeviceRequest struct {
	Name     *string `json:"name"`
	GroupID  *int    `json:"group_id"`
	IsActive *bool   `json:"is_active"`
}

// device groups

type CreateGroupRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Color       string  `json:"color"`
}

type UpdateGroupRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

// videos

type UpdateVideoRequest struct {
	Title    *string `json:"title"`
	Duration *int    `json:"duration"`
}

// playlists

type CreatePlaylistRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type UpdatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type AddPlaylistItemRequest struct {
	VideoID  int  `json:"video_id" binding:"required"`
	Position *int `json:"position"`
	Duration *int `json:"duration"`
}

type ReorderPlaylistRequest struct {
	ItemIDs []int `json:"item_ids" binding:"required"`
}

// assignments

type CreateAssignmentRequest struct {
	DeviceID   int              `json:"device_id" binding:"required"`
	VideoID    *int             `json:"video_id"`
	PlaylistID *int             `json:"playlist_id"`
	StartTime  *model.TimeOfDay `json:"start_time"`
	EndTime    *model.TimeOfDay `json:"end_time"`
	DaysOfWeek *string          `json:"days_of_week"`
	Priority   int              `json:"priority"`
}

// schedules

type ScheduleRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`

	VideoID    *int `json:"video_id"`
	PlaylistID *int `json:"playlist_id"`

	DeviceID      *int `json:"device_id"`
	DeviceGroupID *int `json:"device_group_id"`

	StartTime  model.TimeOfDay `json:"start_time"`
	EndTime    model.TimeOfDay `json:"end_time"`
	DaysOfWeek *string         `json:"days_of_week"`

	StartDate *string `json:"start_date"` // YYYY-MM-DD
	EndDate   *string `json:"end_date"`

	Priority int `json:"priority"`

	IsRecurring        bool    `json:"is_recurring"`
	RecurrenceType     *string `json:"recurrence_type" binding:"omitempty,oneof=none daily weekly monthly yearly"`
	RecurrenceInterval *int    `json:"recurrence_interval"`
	RecurrenceEndDate  *string `json:"recurrence_end_date"`

	IsAllDay bool    `json:"is_all_day"`
	Color    *string `json:"color"`
	IsActive *bool   `json:"is_active"`
}

type ExceptionRequest struct {
	Date               string  `json:"date" binding:"required"` // YYYY-MM-DD
	Type               string  `json:"type" binding:"required,oneof=blackout override special"`
	OverrideVideoID    *int    `json:"override_video_id"`
	OverridePlaylistID *int    `json:"override_playlist_id"`
	Reason             *string `json:"reason"`
}
