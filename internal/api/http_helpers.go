package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/quitly/quitly/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError translates service sentinel errors into HTTP statuses. Store
// failures surface as 500s instead of being masked as empty results.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrHabitNotFound):
		return apiError(c, fiber.StatusNotFound, services.ErrHabitNotFound.Error())
	case errors.Is(err, services.ErrHabitOwnerMismatch):
		return apiError(c, fiber.StatusForbidden, services.ErrHabitOwnerMismatch.Error())
	case errors.Is(err, services.ErrInvalidCostPerDay),
		errors.Is(err, services.ErrInvalidFrequency):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "storage failure")
	}
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(value), nil
}

func parseUserIDQuery(c *fiber.Ctx) (uint, error) {
	raw := c.Query("user_id")
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.New("invalid user id")
	}
	return uint(value), nil
}
