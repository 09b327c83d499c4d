package model

import "time"

type Playlist struct {
	ID          int       `db:"id"           json:"id"`
	Name        string    `db:"name"         json:"name"`
	Description *string   `db:"description"  json:"description,omitempty"`
	CreatedBy   int       `db:"created_by"   json:"created_by"`
	CreatedAt   time.Time `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"   json:"updated_at"`
	Items       []PlaylistItem `db:"-" json:"items,omitempty"`
}

type PlaylistItem struct {
	ID         int       `db:"id"           json:"id"`
	PlaylistID int       `db:"playlist_id"  json:"playlist_id"`
	VideoID    int       `db:"video_id"     json:"video_id"`
	Position   int       `db:"position"     json:"position"`
	Duration   *int      `db:"duration"     json:"duration,omitempty"`
	CreatedAt  time.Time `db:"created_at"   json:"created_at"`
	Video      *Video    `db:"-"            json:"video,omitempty"`
}
