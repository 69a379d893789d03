package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paneldb/paneldb/internal/services"
	"github.com/paneldb/paneldb/internal/utils"
	"gorm.io/gorm"
)

// DashboardHandler handles the dashboard aggregation
type DashboardHandler struct {
	DB *gorm.DB
}

// GetDashboardData handles GET /api/getDashboardData
// @Summary Get aggregated dashboard data for a user
// @Description Return the user profile, the next five upcoming events, the latest weather observation and the ten most recent favorite tracks
// @Tags Dashboard
// @Produce json
// @Param userId query int true "User ID"
// @Success 200 {object} services.DashboardData
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /getDashboardData [get]
func (h *DashboardHandler) GetDashboardData(c *fiber.Ctx) error {
	userID, err := queryID(c, "userId")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}

	data, err := services.GetDashboardData(h.DB, userID)
	if err != nil {
		return respondServiceError(c, err, "getDashboardData")
	}

	return c.Status(fiber.StatusOK).JSON(data)
}
