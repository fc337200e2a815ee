package models

import "time"

// User identifiers are assigned by the chat platform and supplied by the
// gateway, so the primary key is never autoincremented here.
type User struct {
	ID        uint       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Username  *string    `json:"username"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	Habits    []Habit    `gorm:"foreignKey:UserID" json:"-"`
	Logs      []HabitLog `gorm:"foreignKey:UserID" json:"-"`
}
