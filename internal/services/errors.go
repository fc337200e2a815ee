package services

import "errors"

var (
	ErrHabitNotFound      = errors.New("habit not found")
	ErrHabitOwnerMismatch = errors.New("habit belongs to another user")
	ErrInvalidCostPerDay  = errors.New("cost per day must not be negative")
	ErrInvalidFrequency   = errors.New("frequency per day must not be negative")

	ErrUserLookupFailed   = errors.New("load user failed")
	ErrUserRegisterFailed = errors.New("register user failed")
	ErrHabitCreateFailed  = errors.New("create habit failed")
	ErrHabitListFailed    = errors.New("list habits failed")
	ErrLogWriteFailed     = errors.New("write habit log failed")
	ErrLogListFailed      = errors.New("list habit logs failed")
	ErrStatsLoadFailed    = errors.New("load stats failed")
)
