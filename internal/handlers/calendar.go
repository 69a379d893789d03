package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paneldb/paneldb/internal/services"
	"github.com/paneldb/paneldb/internal/types"
	"github.com/paneldb/paneldb/internal/utils"
	"gorm.io/gorm"
)

// CalendarHandler handles calendar event operations
type CalendarHandler struct {
	DB *gorm.DB
}

// CreateCalendarEvent handles POST /api/createCalendarEvent
// @Summary Create a calendar event
// @Description Create a calendar event owned by a user. No ordering is enforced between start_time and end_time.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param body body services.CreateCalendarEventInput true "Event to create"
// @Success 200 {object} models.CalendarEvent
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /createCalendarEvent [post]
func (h *CalendarHandler) CreateCalendarEvent(c *fiber.Ctx) error {
	var input services.CreateCalendarEventInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if input.UserID == 0 {
		return utils.ValidationErrorResponse(c, "user_id is required")
	}
	if input.Title == "" {
		return utils.ValidationErrorResponse(c, "title is required")
	}
	if input.StartTime.IsZero() || input.EndTime.IsZero() {
		return utils.ValidationErrorResponse(c, "start_time and end_time are required")
	}

	event, err := services.CreateCalendarEvent(h.DB, input)
	if err != nil {
		return respondServiceError(c, err, "createCalendarEvent")
	}

	return c.Status(fiber.StatusOK).JSON(event)
}

// GetUserEvents handles GET /api/getUserEvents
// @Summary List a user's calendar events
// @Description List events for a user ordered ascending by start_time, optionally bounded by start_date/end_date
// @Tags Calendar
// @Produce json
// @Param user_id query int true "User ID"
// @Param start_date query string false "Lower bound on start_time (RFC3339 or YYYY-MM-DD)"
// @Param end_date query string false "Upper bound on start_time (RFC3339 or YYYY-MM-DD)"
// @Success 200 {array} models.CalendarEvent
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /getUserEvents [get]
func (h *CalendarHandler) GetUserEvents(c *fiber.Ctx) error {
	userID, err := queryID(c, "user_id")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	startDate, err := queryTime(c, "start_date")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}
	endDate, err := queryTime(c, "end_date")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}

	events, err := services.GetUserEvents(h.DB, userID, startDate, endDate)
	if err != nil {
		return respondServiceError(c, err, "getUserEvents")
	}

	return c.Status(fiber.StatusOK).JSON(events)
}

// UpdateCalendarEvent handles POST /api/updateCalendarEvent
// @Summary Update a calendar event
// @Description Apply a partial update to an event; updated_at is refreshed even when no field changes
// @Tags Calendar
// @Accept json
// @Produce json
// @Param body body services.UpdateCalendarEventInput true "Fields to update"
// @Success 200 {object} models.CalendarEvent
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /updateCalendarEvent [post]
func (h *CalendarHandler) UpdateCalendarEvent(c *fiber.Ctx) error {
	var input services.UpdateCalendarEventInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if input.ID == 0 {
		return utils.ValidationErrorResponse(c, "id is required")
	}
	if input.Title.Set && (!input.Title.Valid || input.Title.Value == "") {
		return utils.ValidationErrorResponse(c, "title must be a non-empty string")
	}
	if input.StartTime.Set && !input.StartTime.Valid {
		return utils.ValidationErrorResponse(c, "start_time must not be null")
	}
	if input.EndTime.Set && !input.EndTime.Valid {
		return utils.ValidationErrorResponse(c, "end_time must not be null")
	}
	if input.IsAllDay.Set && !input.IsAllDay.Valid {
		return utils.ValidationErrorResponse(c, "is_all_day must not be null")
	}

	event, err := services.UpdateCalendarEvent(h.DB, input)
	if err != nil {
		return respondServiceError(c, err, "updateCalendarEvent")
	}

	return c.Status(fiber.StatusOK).JSON(event)
}

// DeleteCalendarEvent handles POST /api/deleteCalendarEvent
// @Summary Delete a calendar event
// @Description Delete an event by id; deleted is true iff a row was removed
// @Tags Calendar
// @Accept json
// @Produce json
// @Param body body object true "Event id"
// @Success 200 {object} utils.DeleteResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /deleteCalendarEvent [post]
func (h *CalendarHandler) DeleteCalendarEvent(c *fiber.Ctx) error {
	var body struct {
		EventID types.FlexID `json:"eventId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}
	if body.EventID == 0 {
		return utils.ValidationErrorResponse(c, "eventId is required")
	}

	deleted, err := services.DeleteCalendarEvent(h.DB, body.EventID.Uint())
	if err != nil {
		return respondServiceError(c, err, "deleteCalendarEvent")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"deleted": deleted})
}
