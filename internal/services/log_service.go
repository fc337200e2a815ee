package services

import (
	"fmt"
	"time"

	"github.com/quitly/quitly/internal/models"
)

type LogWriter interface {
	UpsertOutcome(entry *models.HabitLog) error
	FindByHabitAndDayRange(habitID uint, dayStart time.Time, dayEnd time.Time) (models.HabitLog, bool, error)
	ListByHabit(habitID uint) ([]models.HabitLog, error)
}

type LogHabitReader interface {
	FindByID(habitID uint) (models.Habit, bool, error)
}

// LogService records daily outcomes. Its location fixes which calendar day
// "today" is; the store's unique index keeps the day idempotent.
type LogService struct {
	logs     LogWriter
	habits   LogHabitReader
	location *time.Location
}

func NewLogService(logs LogWriter, habits LogHabitReader, location *time.Location) *LogService {
	if location == nil {
		location = time.UTC
	}
	return &LogService{
		logs:     logs,
		habits:   habits,
		location: location,
	}
}

// RecordOutcome upserts the outcome for (habit, today). Repeated calls on the
// same day converge to one row carrying the last outcome. The habit must exist
// and belong to the calling user.
func (service *LogService) RecordOutcome(habitID uint, userID uint, didHabit bool, now time.Time) (models.HabitLog, error) {
	habit, found, err := service.habits.FindByID(habitID)
	if err != nil {
		return models.HabitLog{}, fmt.Errorf("%w: %w", ErrLogWriteFailed, err)
	}
	if !found {
		return models.HabitLog{}, ErrHabitNotFound
	}
	if habit.UserID != userID {
		return models.HabitLog{}, ErrHabitOwnerMismatch
	}

	day := DateAtLocation(now, service.location)
	entry := models.HabitLog{
		HabitID:   habitID,
		UserID:    userID,
		Date:      day,
		DidHabit:  didHabit,
		CreatedAt: now,
	}
	if err := service.logs.UpsertOutcome(&entry); err != nil {
		return models.HabitLog{}, fmt.Errorf("%w: %w", ErrLogWriteFailed, err)
	}

	// On a conflicting write the insert turned into an update, so re-read to
	// hand back the surviving row with its original id.
	dayStart, dayEnd := DayRange(day, service.location)
	persisted, found, err := service.logs.FindByHabitAndDayRange(habitID, dayStart, dayEnd)
	if err != nil {
		return models.HabitLog{}, fmt.Errorf("%w: %w", ErrLogWriteFailed, err)
	}
	if !found {
		return models.HabitLog{}, ErrLogWriteFailed
	}
	return persisted, nil
}

// History returns the habit's full log, most recent day first.
func (service *LogService) History(habitID uint, userID uint) ([]models.HabitLog, error) {
	habit, found, err := service.habits.FindByID(habitID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLogListFailed, err)
	}
	if !found {
		return nil, ErrHabitNotFound
	}
	if habit.UserID != userID {
		return nil, ErrHabitOwnerMismatch
	}

	logs, err := service.logs.ListByHabit(habitID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLogListFailed, err)
	}
	return logs, nil
}
