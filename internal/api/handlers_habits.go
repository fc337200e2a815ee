package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quitly/quitly/internal/models"
	"github.com/quitly/quitly/internal/services"
)

type createHabitRequest struct {
	UserID          uint    `json:"user_id"`
	Name            string  `json:"name"`
	CostPerDay      float64 `json:"cost_per_day"`
	FrequencyPerDay int     `json:"frequency_per_day"`
}

// CreateHabit persists a habit from the front-end's already validated
// conversation result.
func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	var payload createHabitRequest
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if payload.UserID == 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	habit, err := handler.habitService.CreateHabit(payload.UserID, payload.Name, payload.CostPerDay, payload.FrequencyPerDay)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(habit)
}

type habitDetailResponse struct {
	Habit models.Habit        `json:"habit"`
	Stats services.HabitStats `json:"stats"`
	Goals []models.UserGoal   `json:"goals"`
}

// GetHabitDetail returns the habit with its stats and any reserved goal rows.
func (handler *Handler) GetHabitDetail(c *fiber.Ctx) error {
	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	userID, err := parseUserIDQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	habit, found, err := handler.repositories.Habits.FindByID(habitID)
	if err != nil {
		return serviceError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, services.ErrHabitNotFound.Error())
	}
	if habit.UserID != userID {
		return apiError(c, fiber.StatusForbidden, services.ErrHabitOwnerMismatch.Error())
	}

	stats, err := handler.statsService.HabitStatsFor(habitID, userID)
	if err != nil {
		return serviceError(c, err)
	}
	goals, err := handler.repositories.Goals.ListByHabit(habitID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(habitDetailResponse{
		Habit: habit,
		Stats: stats,
		Goals: goals,
	})
}

func (handler *Handler) GetHabitStats(c *fiber.Ctx) error {
	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	userID, err := parseUserIDQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	stats, err := handler.statsService.HabitStatsFor(habitID, userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(stats)
}
