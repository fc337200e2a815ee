package db

import (
	"github.com/quitly/quitly/internal/models"
	"gorm.io/gorm"
)

// GoalRepository reads the reserved user_goals table. Nothing in this service
// writes goal rows yet; goal scheduling is a future feature.
type GoalRepository struct {
	database *gorm.DB
}

func NewGoalRepository(database *gorm.DB) *GoalRepository {
	return &GoalRepository{database: database}
}

func (repo *GoalRepository) ListByHabit(habitID uint) ([]models.UserGoal, error) {
	goals := make([]models.UserGoal, 0)
	if err := repo.database.
		Where("habit_id = ?", habitID).
		Order("created_at DESC, id DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}
