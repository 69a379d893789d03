package models

import "time"

// User owns the calendar events, weather records, and music tracks shown on
// the dashboard. Deleting a user cascades to all three dependent tables via
// the store's foreign keys, not application logic.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Location  *string   `json:"location"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	CalendarEvents []CalendarEvent `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	WeatherRecords []WeatherRecord `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	MusicTracks    []MusicTrack    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
