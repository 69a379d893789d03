package handlers

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/paneldb/paneldb/internal/types"
	"github.com/paneldb/paneldb/internal/utils"
)

// queryID parses a required identifier query parameter. Non-positive values
// are valid inputs that simply never match a row, so negatives clamp to
// zero instead of erroring.
func queryID(c *fiber.Ctx, key string) (uint, error) {
	value := c.Query(key)
	if value == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	if n < 0 {
		return 0, nil
	}
	return uint(n), nil
}

// queryTime parses an optional timestamp query parameter, accepting RFC3339
// or a bare date.
func queryTime(c *fiber.Ctx, key string) (*time.Time, error) {
	value := c.Query(key)
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("%s must be an RFC3339 timestamp or YYYY-MM-DD date", key)
}

// validEmail reports whether s parses as an address.
func validEmail(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}

// validURL reports whether s parses as an absolute URL.
func validURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// respondServiceError maps a service error onto the transport: not-found to
// 404, referential integrity to 400, anything else propagates raw as 500.
func respondServiceError(c *fiber.Ctx, err error, operation string) error {
	var notFound *types.NotFoundError
	if errors.As(err, &notFound) {
		return utils.NotFoundResponse(c, notFound.Error())
	}

	var referential *types.ReferentialIntegrityError
	if errors.As(err, &referential) {
		return utils.ErrorResponse(c, referential.Error(), fiber.StatusBadRequest, "referential_integrity")
	}

	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, operation)
}
