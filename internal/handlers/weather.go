package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paneldb/paneldb/internal/services"
	"github.com/paneldb/paneldb/internal/utils"
	"gorm.io/gorm"
)

// WeatherHandler handles weather record operations
type WeatherHandler struct {
	DB *gorm.DB
}

// CreateWeatherRecord handles POST /api/createWeatherRecord
// @Summary Record a weather observation
// @Description Store a weather observation for a user. Temperature and wind speed are rounded to two decimal places.
// @Tags Weather
// @Accept json
// @Produce json
// @Param body body services.CreateWeatherRecordInput true "Observation to record"
// @Success 200 {object} models.WeatherRecord
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /createWeatherRecord [post]
func (h *WeatherHandler) CreateWeatherRecord(c *fiber.Ctx) error {
	var input services.CreateWeatherRecordInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if input.UserID == 0 {
		return utils.ValidationErrorResponse(c, "user_id is required")
	}
	if input.Location == "" {
		return utils.ValidationErrorResponse(c, "location is required")
	}
	if input.Condition == "" {
		return utils.ValidationErrorResponse(c, "condition is required")
	}
	// Numeric fields decode as zero when absent, so a missing temperature
	// is stored as 0.00; the boundary does not distinguish the two.
	if input.Humidity < 0 || input.Humidity > 100 {
		return utils.ValidationErrorResponse(c, "humidity must be between 0 and 100")
	}
	if input.WindSpeed < 0 {
		return utils.ValidationErrorResponse(c, "wind_speed must not be negative")
	}

	record, err := services.CreateWeatherRecord(h.DB, input)
	if err != nil {
		return respondServiceError(c, err, "createWeatherRecord")
	}

	return c.Status(fiber.StatusOK).JSON(record)
}

// GetCurrentWeather handles GET /api/getCurrentWeather
// @Summary Get the latest weather observation for a user
// @Description Return the most recently recorded observation, or null when none exists
// @Tags Weather
// @Produce json
// @Param userId query int true "User ID"
// @Success 200 {object} models.WeatherRecord
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /getCurrentWeather [get]
func (h *WeatherHandler) GetCurrentWeather(c *fiber.Ctx) error {
	userID, err := queryID(c, "userId")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}

	record, err := services.GetCurrentWeather(h.DB, userID)
	if err != nil {
		return respondServiceError(c, err, "getCurrentWeather")
	}

	return c.Status(fiber.StatusOK).JSON(record)
}
