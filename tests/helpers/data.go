package helpers

import (
	"testing"
	"time"

	"github.com/paneldb/paneldb/internal/models"
	"gorm.io/gorm"
)

// CreateTestUser creates a user row for seeding
func CreateTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	user := models.User{
		Name:  name,
		Email: email,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return &user
}

// CreateTestEvent creates a calendar event row for seeding
func CreateTestEvent(t *testing.T, db *gorm.DB, userID uint, title string, start, end time.Time) *models.CalendarEvent {
	t.Helper()
	event := models.CalendarEvent{
		UserID:    userID,
		Title:     title,
		StartTime: start,
		EndTime:   end,
	}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("Failed to create calendar event: %v", err)
	}
	return &event
}

// CreateTestTrack creates a music track row for seeding. A non-zero addedAt
// overrides the store-assigned timestamp so ordering is deterministic.
func CreateTestTrack(t *testing.T, db *gorm.DB, userID uint, title string, favorite bool, addedAt time.Time) *models.MusicTrack {
	t.Helper()
	track := models.MusicTrack{
		UserID:          userID,
		Title:           title,
		Artist:          "Test Artist",
		DurationSeconds: 200,
		IsFavorite:      favorite,
		AddedAt:         addedAt,
	}
	if err := db.Create(&track).Error; err != nil {
		t.Fatalf("Failed to create music track: %v", err)
	}
	return &track
}

// CreateTestWeather creates a weather row for seeding. A non-zero recordedAt
// overrides the store-assigned timestamp.
func CreateTestWeather(t *testing.T, db *gorm.DB, userID uint, location string, temperature float64, recordedAt time.Time) *models.WeatherRecord {
	t.Helper()
	record := models.WeatherRecord{
		UserID:      userID,
		Location:    location,
		Temperature: models.NewDecimal(temperature),
		Condition:   "clear",
		Humidity:    50,
		WindSpeed:   models.NewDecimal(3.5),
		RecordedAt:  recordedAt,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("Failed to create weather record: %v", err)
	}
	return &record
}
