package db

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepository
	Habits    *HabitRepository
	HabitLogs *HabitLogRepository
	Goals     *GoalRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Habits:    NewHabitRepository(database),
		HabitLogs: NewHabitLogRepository(database),
		Goals:     NewGoalRepository(database),
	}
}
