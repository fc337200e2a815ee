package services

import (
	"fmt"

	"github.com/quitly/quitly/internal/models"
)

type StatsHabitReader interface {
	FindByID(habitID uint) (models.Habit, bool, error)
	ListByUser(userID uint) ([]models.Habit, error)
}

type StatsLogReader interface {
	ListByHabit(habitID uint) ([]models.HabitLog, error)
}

type StatsService struct {
	habits StatsHabitReader
	logs   StatsLogReader
}

func NewStatsService(habits StatsHabitReader, logs StatsLogReader) *StatsService {
	return &StatsService{
		habits: habits,
		logs:   logs,
	}
}

type HabitStats struct {
	Streak      int     `json:"streak"`
	CleanDays   int     `json:"clean_days"`
	TotalDays   int     `json:"total_days"`
	MoneySaved  float64 `json:"money_saved"`
	SuccessRate float64 `json:"success_rate"`
}

type UserTotalStats struct {
	TotalHabits        int     `json:"total_habits"`
	TotalTrackedDays   int     `json:"total_tracked_days"`
	TotalCleanDays     int     `json:"total_clean_days"`
	TotalMoneySaved    float64 `json:"total_money_saved"`
	AverageSuccessRate float64 `json:"average_success_rate"`
}

type HabitProgress struct {
	Habit models.Habit `json:"habit"`
	Stats HabitStats   `json:"stats"`
}

// ComputeHabitStats derives all per-habit figures from the log history,
// ordered most recent day first. A habit with no logs yields the zero value;
// that is the designed base case, not an error fallback.
//
// The streak counts consecutive logged clean days starting from the most
// recent entry. A gap in logging does not break it; only an explicitly logged
// relapse does.
func ComputeHabitStats(logs []models.HabitLog, costPerDay float64) HabitStats {
	stats := HabitStats{}

	for _, entry := range logs {
		if entry.DidHabit {
			break
		}
		stats.Streak++
	}

	for _, entry := range logs {
		if !entry.DidHabit {
			stats.CleanDays++
		}
	}
	stats.TotalDays = len(logs)

	stats.MoneySaved = float64(stats.CleanDays) * costPerDay
	if stats.TotalDays > 0 {
		stats.SuccessRate = float64(stats.CleanDays) / float64(stats.TotalDays) * 100
	}
	return stats
}

// HabitStatsFor loads the habit's history and computes its stats.
func (service *StatsService) HabitStatsFor(habitID uint, userID uint) (HabitStats, error) {
	habit, found, err := service.habits.FindByID(habitID)
	if err != nil {
		return HabitStats{}, fmt.Errorf("%w: %w", ErrStatsLoadFailed, err)
	}
	if !found {
		return HabitStats{}, ErrHabitNotFound
	}
	if habit.UserID != userID {
		return HabitStats{}, ErrHabitOwnerMismatch
	}

	logs, err := service.logs.ListByHabit(habitID)
	if err != nil {
		return HabitStats{}, fmt.Errorf("%w: %w", ErrStatsLoadFailed, err)
	}
	return ComputeHabitStats(logs, habit.CostPerDay), nil
}

// UserTotalStatsFor aggregates across all the user's habits. Habits with no
// logged days contribute nothing to the success-rate average instead of
// dragging it toward zero. A user with no habits gets all zeros.
func (service *StatsService) UserTotalStatsFor(userID uint) (UserTotalStats, error) {
	progress, err := service.ProgressFor(userID)
	if err != nil {
		return UserTotalStats{}, err
	}

	totals := UserTotalStats{TotalHabits: len(progress)}
	ratedHabits := 0
	successRateSum := 0.0
	for _, item := range progress {
		totals.TotalTrackedDays += item.Stats.TotalDays
		totals.TotalCleanDays += item.Stats.CleanDays
		totals.TotalMoneySaved += item.Stats.MoneySaved
		if item.Stats.TotalDays > 0 {
			ratedHabits++
			successRateSum += item.Stats.SuccessRate
		}
	}
	if ratedHabits > 0 {
		totals.AverageSuccessRate = successRateSum / float64(ratedHabits)
	}
	return totals, nil
}

// ProgressFor pairs every habit of the user with its stats, newest habit
// first.
func (service *StatsService) ProgressFor(userID uint) ([]HabitProgress, error) {
	habits, err := service.habits.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStatsLoadFailed, err)
	}

	progress := make([]HabitProgress, 0, len(habits))
	for _, habit := range habits {
		logs, err := service.logs.ListByHabit(habit.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStatsLoadFailed, err)
		}
		progress = append(progress, HabitProgress{
			Habit: habit,
			Stats: ComputeHabitStats(logs, habit.CostPerDay),
		})
	}
	return progress, nil
}
