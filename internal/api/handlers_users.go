package api

import "github.com/gofiber/fiber/v2"

type registerUserRequest struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// RegisterUser upserts a platform user id on first interaction. Registering
// the same id again returns the originally stored row.
func (handler *Handler) RegisterUser(c *fiber.Ctx) error {
	var payload registerUserRequest
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if payload.ID == 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	user, err := handler.userService.RegisterUser(payload.ID, payload.Username)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(user)
}

func (handler *Handler) GetUserHabits(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	habits, err := handler.habitService.ListHabits(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(habits)
}

func (handler *Handler) GetUserStats(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	stats, err := handler.statsService.UserTotalStatsFor(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(stats)
}

func (handler *Handler) GetUserProgress(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	progress, err := handler.statsService.ProgressFor(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(progress)
}
