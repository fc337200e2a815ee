package api

import (
	"time"

	"github.com/quitly/quitly/internal/db"
	"github.com/quitly/quitly/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db             *gorm.DB
	secretKey      []byte
	serviceKeyHash string
	tokenTTL       time.Duration
	location       *time.Location

	repositories *db.Repositories
	userService  *services.UserService
	habitService *services.HabitService
	logService   *services.LogService
	statsService *services.StatsService

	tokenLimiter *attemptLimiter
}

func NewHandler(database *gorm.DB, secretKey string, serviceKeyHash string, tokenTTL time.Duration, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	if tokenTTL <= 0 {
		tokenTTL = defaultServiceTokenTTL
	}

	handler := &Handler{
		db:             database,
		secretKey:      []byte(secretKey),
		serviceKeyHash: serviceKeyHash,
		tokenTTL:       tokenTTL,
		location:       location,
		tokenLimiter:   newAttemptLimiter(),
	}
	return handler.withDependencies(database)
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.userService = services.NewUserService(handler.repositories.Users)
	handler.habitService = services.NewHabitService(handler.repositories.Habits)
	handler.logService = services.NewLogService(handler.repositories.HabitLogs, handler.repositories.Habits, handler.location)
	handler.statsService = services.NewStatsService(handler.repositories.Habits, handler.repositories.HabitLogs)
	return handler
}
