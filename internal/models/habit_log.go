package models

import "time"

// HabitLog stores one outcome per habit per calendar day. DidHabit true means
// the user relapsed, false means they abstained. The unique index over
// (habit_id, date) is what makes RecordOutcome an upsert instead of an append.
type HabitLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	HabitID   uint      `gorm:"not null;uniqueIndex:uidx_habit_date" json:"habit_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_habit_date" json:"date"`
	DidHabit  bool      `gorm:"not null" json:"did_habit"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
