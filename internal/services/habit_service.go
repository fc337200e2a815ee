package services

import (
	"fmt"

	"github.com/quitly/quitly/internal/models"
)

type HabitWriter interface {
	Create(habit *models.Habit) error
	ListByUser(userID uint) ([]models.Habit, error)
}

type HabitService struct {
	habits HabitWriter
}

func NewHabitService(habits HabitWriter) *HabitService {
	return &HabitService{habits: habits}
}

// CreateHabit persists a new habit for the user. The name arrives already
// validated by the front-end conversation and is stored as given. A zero
// frequency means the caller left it unset and falls back to the default.
func (service *HabitService) CreateHabit(userID uint, name string, costPerDay float64, frequencyPerDay int) (models.Habit, error) {
	if costPerDay < 0 {
		return models.Habit{}, ErrInvalidCostPerDay
	}
	if frequencyPerDay < 0 {
		return models.Habit{}, ErrInvalidFrequency
	}
	if frequencyPerDay == 0 {
		frequencyPerDay = models.DefaultFrequencyPerDay
	}

	habit := models.Habit{
		UserID:          userID,
		Name:            name,
		CostPerDay:      costPerDay,
		FrequencyPerDay: frequencyPerDay,
		GoalDays:        models.DefaultGoalDays,
	}
	if err := service.habits.Create(&habit); err != nil {
		return models.Habit{}, fmt.Errorf("%w: %w", ErrHabitCreateFailed, err)
	}
	return habit, nil
}

// ListHabits returns the user's habits newest first. No habits is an empty
// slice, not an error.
func (service *HabitService) ListHabits(userID uint) ([]models.Habit, error) {
	habits, err := service.habits.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHabitListFailed, err)
	}
	return habits, nil
}
