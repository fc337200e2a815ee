package models

import "time"

// UserGoal is reserved schema for the future goal-tracking feature. The core
// only reads these rows; nothing in this service writes or schedules them.
type UserGoal struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	HabitID   uint      `gorm:"not null;index" json:"habit_id"`
	GoalDays  int       `gorm:"not null" json:"goal_days"`
	StartDate time.Time `gorm:"type:date" json:"start_date"`
	EndDate   time.Time `gorm:"type:date" json:"end_date"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
