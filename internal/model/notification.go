package model

import "time"

// Notification categories raised by background checks.
const (
	NotificationScheduleConflict = "schedule_conflict"
	NotificationDeviceOffline    = "device_offline"
)

type Notification struct {
	ID        int       `db:"id"         json:"id"`
	Category  string    `db:"category"   json:"category"`
	Title     string    `db:"title"      json:"title"`
	Message   string    `db:"message"    json:"message"`
	IsRead    bool      `db:"is_read"    json:"is_read"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
