package models

import "time"

// MusicTrack is a saved track on a user's dashboard. Favorite status is the
// only field commonly toggled after creation.
type MusicTrack struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	Title           string    `gorm:"not null" json:"title"`
	Artist          string    `gorm:"not null" json:"artist"`
	Album           *string   `json:"album"`
	DurationSeconds int       `gorm:"not null" json:"duration_seconds"`
	Genre           *string   `json:"genre"`
	SpotifyURL      *string   `gorm:"column:spotify_url" json:"spotify_url"`
	IsFavorite      bool      `gorm:"not null;default:false;index" json:"is_favorite"`
	AddedAt         time.Time `gorm:"autoCreateTime;index" json:"added_at"`
}

// TableName overrides the table name for MusicTrack
func (MusicTrack) TableName() string {
	return "music_tracks"
}
