package model

import "time"

type Video struct {
	ID        int       `db:"id"         json:"id"`
	Title     string    `db:"title"      json:"title"`
	Filename  string    `db:"filename"   json:"filename"`
	URL       string    `db:"url"        json:"url"`
	Size      int64     `db:"size"       json:"size"`
	Duration  *int      `db:"duration"   json:"duration,omitempty"`
	Checksum  *string   `db:"checksum"   json:"checksum,omitempty"`
	CreatedBy int       `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
