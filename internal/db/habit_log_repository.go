package db

import (
	"time"

	"github.com/quitly/quitly/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HabitLogRepository struct {
	database *gorm.DB
}

func NewHabitLogRepository(database *gorm.DB) *HabitLogRepository {
	return &HabitLogRepository{database: database}
}

// UpsertOutcome writes one day's outcome for a habit. Uniqueness over
// (habit_id, date) is enforced by the store: a conflicting insert turns into
// an update of the existing row, so concurrent same-day writers converge on a
// single row with the last committed outcome. created_at is refreshed on
// overwrite to record when the outcome was last stated.
func (repo *HabitLogRepository) UpsertOutcome(entry *models.HabitLog) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "habit_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]any{
			"did_habit":  entry.DidHabit,
			"user_id":    entry.UserID,
			"created_at": entry.CreatedAt,
		}),
	}).Create(entry).Error
}

func (repo *HabitLogRepository) ListByHabit(habitID uint) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	if err := repo.database.
		Where("habit_id = ?", habitID).
		Order("date DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *HabitLogRepository) ListByUser(userID uint) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *HabitLogRepository) FindByHabitAndDayRange(habitID uint, dayStart time.Time, dayEnd time.Time) (models.HabitLog, bool, error) {
	var entry models.HabitLog
	result := repo.database.
		Where("habit_id = ? AND date >= ? AND date < ?", habitID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.HabitLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.HabitLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *HabitLogRepository) CountByHabit(habitID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.HabitLog{}).
		Where("habit_id = ?", habitID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
