package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles the liveness check
type HealthHandler struct{}

// Healthcheck handles GET /api/healthcheck
// @Summary Liveness check
// @Description Report that the service is up
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /healthcheck [get]
func (h *HealthHandler) Healthcheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
