package model

import "time"

// Device represents a player unit in the fleet.
type Device struct {
	ID           int        `db:"id"            json:"id"`
	Name         string     `db:"name"          json:"name"`
	Serial       string     `db:"serial"        json:"serial"`
	IPAddress    *string    `db:"ip_address"    json:"ip_address"`
	APIKeyHash   string     `db:"api_key_hash"  json:"-"`
	GroupID      *int       `db:"group_id"      json:"group_id"`
	IsActive     bool       `db:"is_active"     json:"is_active"`
	LastSeen     *time.Time `db:"last_seen"     json:"last_seen"`
	CurrentVideo *string    `db:"current_video" json:"current_video"`
	RegisteredAt time.Time  `db:"registered_at" json:"registered_at"`
	UpdatedAt    time.Time  `db:"updated_at"    json:"updated_at"`
}

type DeviceGroup struct {
	ID          int       `db:"id"          json:"id"`
	Name        string    `db:"name"        json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	Color       string    `db:"color"       json:"color"`
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"  json:"updated_at"`
}
