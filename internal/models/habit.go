package models

import "time"

const (
	DefaultFrequencyPerDay = 1
	DefaultGoalDays        = 30
)

type Habit struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	Name            string    `gorm:"not null" json:"name"`
	CostPerDay      float64   `gorm:"not null;default:0" json:"cost_per_day"`
	FrequencyPerDay int       `gorm:"not null;default:1" json:"frequency_per_day"`
	GoalDays        int       `gorm:"not null;default:30" json:"goal_days"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
}
