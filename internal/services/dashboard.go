package services

import (
	"log"
	"time"

	"github.com/paneldb/paneldb/internal/models"
	"github.com/paneldb/paneldb/internal/types"
	"gorm.io/gorm"
)

// Dashboard slice caps. Only the aggregation applies these; the plain list
// operations are uncapped.
const (
	dashboardEventLimit = 5
	dashboardTrackLimit = 10
)

// DashboardData is the aggregated dashboard view for one user.
type DashboardData struct {
	User           *models.User           `json:"user"`
	UpcomingEvents []models.CalendarEvent `json:"upcomingEvents"`
	CurrentWeather *models.WeatherRecord  `json:"currentWeather"`
	FavoriteTracks []models.MusicTrack    `json:"favoriteTracks"`
}

// GetDashboardData assembles one dashboard view from a user id: the user
// row, the next five events with start_time >= now, the latest weather row,
// and the ten most recently added favorite tracks. The four reads are
// independent and span no transaction, so concurrent writers can land
// between them; the dashboard is a best-effort snapshot.
func GetDashboardData(db *gorm.DB, userID uint) (*DashboardData, error) {
	user, err := GetUser(db, userID)
	if err != nil {
		log.Printf("Dashboard data fetch failed: %v", err)
		return nil, err
	}
	if user == nil {
		return nil, types.NewNotFoundError("user", userID)
	}

	now := time.Now()
	upcomingEvents := []models.CalendarEvent{}
	if err := db.Where("user_id = ? AND start_time >= ?", userID, now).
		Order("start_time ASC").
		Limit(dashboardEventLimit).
		Find(&upcomingEvents).Error; err != nil {
		log.Printf("Dashboard data fetch failed: %v", err)
		return nil, err
	}

	currentWeather, err := GetCurrentWeather(db, userID)
	if err != nil {
		log.Printf("Dashboard data fetch failed: %v", err)
		return nil, err
	}

	favoriteTracks := []models.MusicTrack{}
	if err := db.Where("user_id = ? AND is_favorite = ?", userID, true).
		Order("added_at DESC").
		Limit(dashboardTrackLimit).
		Find(&favoriteTracks).Error; err != nil {
		log.Printf("Dashboard data fetch failed: %v", err)
		return nil, err
	}

	return &DashboardData{
		User:           user,
		UpcomingEvents: upcomingEvents,
		CurrentWeather: currentWeather,
		FavoriteTracks: favoriteTracks,
	}, nil
}
