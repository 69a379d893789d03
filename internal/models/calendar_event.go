package models

import "time"

// CalendarEvent is a scheduled entry on a user's dashboard calendar. No
// ordering invariant relates StartTime and EndTime; the store accepts
// reversed ranges.
type CalendarEvent struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description *string   `json:"description"`
	StartTime   time.Time `gorm:"not null;index" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`
	Location    *string   `json:"location"`
	IsAllDay    bool      `gorm:"not null;default:false" json:"is_all_day"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	// UpdatedAt is refreshed on every update call, including no-op updates.
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName overrides the table name for CalendarEvent
func (CalendarEvent) TableName() string {
	return "calendar_events"
}
