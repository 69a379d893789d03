package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paneldb/paneldb/internal/services"
	"github.com/paneldb/paneldb/internal/utils"
	"gorm.io/gorm"
)

// UserHandler handles user operations
type UserHandler struct {
	DB *gorm.DB
}

// CreateUser handles POST /api/createUser
// @Summary Create a user
// @Description Create a user with a unique email
// @Tags Users
// @Accept json
// @Produce json
// @Param body body services.CreateUserInput true "User to create"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /createUser [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var input services.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if input.Name == "" {
		return utils.ValidationErrorResponse(c, "name is required")
	}
	if !validEmail(input.Email) {
		return utils.ValidationErrorResponse(c, "email must be a valid email address")
	}

	user, err := services.CreateUser(h.DB, input)
	if err != nil {
		return respondServiceError(c, err, "createUser")
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// GetUser handles GET /api/getUser
// @Summary Get a user
// @Description Get a user by id; returns null when absent
// @Tags Users
// @Produce json
// @Param userId query int true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /getUser [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	userID, err := queryID(c, "userId")
	if err != nil {
		return utils.ValidationErrorResponse(c, err.Error())
	}

	user, err := services.GetUser(h.DB, userID)
	if err != nil {
		return respondServiceError(c, err, "getUser")
	}

	// Absent user serializes as a JSON null body, not an error
	return c.Status(fiber.StatusOK).JSON(user)
}

// UpdateUser handles POST /api/updateUser
// @Summary Update a user
// @Description Apply a partial update to a user; absent fields are untouched, explicit nulls clear optional fields
// @Tags Users
// @Accept json
// @Produce json
// @Param body body services.UpdateUserInput true "Fields to update"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /updateUser [post]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var input services.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	if input.ID == 0 {
		return utils.ValidationErrorResponse(c, "id is required")
	}
	if input.Name.Set && (!input.Name.Valid || input.Name.Value == "") {
		return utils.ValidationErrorResponse(c, "name must be a non-empty string")
	}
	if input.Email.Set && (!input.Email.Valid || !validEmail(input.Email.Value)) {
		return utils.ValidationErrorResponse(c, "email must be a valid email address")
	}

	user, err := services.UpdateUser(h.DB, input)
	if err != nil {
		return respondServiceError(c, err, "updateUser")
	}

	return c.Status(fiber.StatusOK).JSON(user)
}
