package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	auth := app.Group("/api/auth")
	auth.Post("/token", handler.IssueToken)

	api := app.Group("/api", handler.AuthRequired)

	users := api.Group("/users")
	users.Post("", handler.RegisterUser)
	users.Get("/:id/habits", handler.GetUserHabits)
	users.Get("/:id/stats", handler.GetUserStats)
	users.Get("/:id/progress", handler.GetUserProgress)

	habits := api.Group("/habits")
	habits.Post("", handler.CreateHabit)
	habits.Get("/:id", handler.GetHabitDetail)
	habits.Get("/:id/stats", handler.GetHabitStats)
	habits.Get("/:id/logs", handler.GetHabitLogs)
	habits.Post("/:id/logs", handler.RecordOutcome)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
