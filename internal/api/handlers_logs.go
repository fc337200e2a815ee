package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type recordOutcomeRequest struct {
	UserID   uint `json:"user_id"`
	DidHabit bool `json:"did_habit"`
}

// RecordOutcome logs today's outcome for a habit. Posting again on the same
// day overwrites the earlier outcome instead of creating a second row.
func (handler *Handler) RecordOutcome(c *fiber.Ctx) error {
	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload recordOutcomeRequest
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if payload.UserID == 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	entry, err := handler.logService.RecordOutcome(habitID, payload.UserID, payload.DidHabit, time.Now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(entry)
}

func (handler *Handler) GetHabitLogs(c *fiber.Ctx) error {
	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	userID, err := parseUserIDQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	logs, err := handler.logService.History(habitID, userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(logs)
}
