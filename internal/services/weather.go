package services

import (
	"errors"
	"log"

	"github.com/paneldb/paneldb/internal/models"
	"github.com/paneldb/paneldb/internal/types"
	"gorm.io/gorm"
)

// CreateWeatherRecordInput is the input for the createWeatherRecord
// operation. Temperature and wind speed arrive as floats and are stored at
// two-decimal precision; anything beyond that is lost by contract.
type CreateWeatherRecordInput struct {
	UserID      types.FlexID `json:"user_id"`
	Location    string       `json:"location"`
	Temperature float64      `json:"temperature"`
	Condition   string       `json:"condition"`
	Humidity    int          `json:"humidity"`
	WindSpeed   float64      `json:"wind_speed"`
}

// CreateWeatherRecord inserts an observation after verifying the owning user
// exists. Weather rows are append-only; no update or delete exists.
func CreateWeatherRecord(db *gorm.DB, input CreateWeatherRecordInput) (*models.WeatherRecord, error) {
	var user models.User
	if err := db.First(&user, input.UserID.Uint()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFoundError("user", input.UserID.Uint())
		}
		log.Printf("Weather record creation failed: %v", err)
		return nil, err
	}

	record := models.WeatherRecord{
		UserID:      input.UserID.Uint(),
		Location:    input.Location,
		Temperature: models.NewDecimal(input.Temperature),
		Condition:   input.Condition,
		Humidity:    input.Humidity,
		WindSpeed:   models.NewDecimal(input.WindSpeed),
	}

	if err := db.Create(&record).Error; err != nil {
		log.Printf("Weather record creation failed: %v", err)
		return nil, err
	}

	return &record, nil
}

// GetCurrentWeather returns the row with the maximum recorded_at for the
// user, or (nil, nil) when the user has no weather rows. Ties are broken
// arbitrarily by the store.
func GetCurrentWeather(db *gorm.DB, userID uint) (*models.WeatherRecord, error) {
	var record models.WeatherRecord
	err := db.Where("user_id = ?", userID).
		Order("recorded_at DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("Get current weather failed: %v", err)
		return nil, err
	}
	return &record, nil
}
