package packets

import (
	"github.com/Luxview-Media/luxview/internal/model"
)

// DeviceCreatedResponse carries the plaintext API key exactly once; only the
// hash is stored.
type DeviceCreatedResponse struct {
	Device model.Device `json:"device"`
	APIKey string       `json:"api_key"`
}

type ConflictResponse struct {
	ScheduleID   int    `json:"schedule_id"`
	ScheduleName string `json:"schedule_name"`
	OtherID      int    `json:"other_id"`
	OtherName    string `json:"other_name"`
	ConflictType string `json:"conflict_type"`
	Details      string `json:"details"`
}

// PreviewSlot is one hourly probe of the resolver for the admin timeline.
type PreviewSlot struct {
	Hour         int     `json:"hour"`
	ScheduleID   *int    `json:"schedule_id"`
	ScheduleName *string `json:"schedule_name"`
	VideoID      *int    `json:"video_id"`
	PlaylistID   *int    `json:"playlist_id"`
	Overridden   bool    `json:"overridden"`
}
