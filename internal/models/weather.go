package models

import "time"

// WeatherRecord is an append-only observation; there is no update or delete
// operation for this entity. "Current weather" is the row with the maximum
// RecordedAt for a user.
type WeatherRecord struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Location    string    `gorm:"not null" json:"location"`
	Temperature Decimal   `gorm:"not null" json:"temperature"`
	Condition   string    `gorm:"not null" json:"condition"`
	Humidity    int       `gorm:"not null" json:"humidity"`
	WindSpeed   Decimal   `gorm:"not null" json:"wind_speed"`
	RecordedAt  time.Time `gorm:"autoCreateTime;index" json:"recorded_at"`
}

// TableName overrides the table name for WeatherRecord
func (WeatherRecord) TableName() string {
	return "weather"
}
