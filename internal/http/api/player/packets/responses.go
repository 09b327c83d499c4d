package packets

// VideoPayload is the slice of video metadata a player needs to fetch and
// loop content.
type VideoPayload struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	Duration *int    `json:"duration,omitempty"`
	Checksum *string `json:"checksum,omitempty"`
}

// SyncResponse is the player's playback instruction. When Scheduled is true
// the videos come from the winning schedule and ActiveUntil says when to
// re-sync; otherwise they are the aggregated assignment list.
type SyncResponse struct {
	Scheduled    bool           `json:"scheduled"`
	ScheduleID   *int           `json:"schedule_id,omitempty"`
	ScheduleName *string        `json:"schedule_name,omitempty"`
	ActiveUntil  *string        `json:"schedule_active_until,omitempty"`
	Overridden   bool           `json:"overridden,omitempty"`
	Videos       []VideoPayload `json:"videos"`
}

type PairingCodeResponse struct {
	Code      string `json:"code"`
	ExpiresIn int    `json:"expires_in_seconds"`
}

type PairingStatusResponse struct {
	Paired bool   `json:"paired"`
	APIKey string `json:"api_key,omitempty"`
}
