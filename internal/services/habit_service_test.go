package services

import (
	"errors"
	"testing"

	"github.com/quitly/quitly/internal/models"
)

type stubHabitWriter struct {
	created   []models.Habit
	nextID    uint
	createErr error
	listErr   error
}

func (stub *stubHabitWriter) Create(habit *models.Habit) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	stub.nextID++
	habit.ID = stub.nextID
	stub.created = append(stub.created, *habit)
	return nil
}

func (stub *stubHabitWriter) ListByUser(userID uint) ([]models.Habit, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	habits := make([]models.Habit, 0)
	for index := len(stub.created) - 1; index >= 0; index-- {
		if stub.created[index].UserID == userID {
			habits = append(habits, stub.created[index])
		}
	}
	return habits, nil
}

func TestCreateHabitAppliesDefaults(t *testing.T) {
	writer := &stubHabitWriter{}
	service := NewHabitService(writer)

	habit, err := service.CreateHabit(42, "smoking", 50, 0)
	if err != nil {
		t.Fatalf("CreateHabit() unexpected error: %v", err)
	}

	if habit.ID == 0 {
		t.Fatal("expected assigned habit id")
	}
	if habit.FrequencyPerDay != models.DefaultFrequencyPerDay {
		t.Fatalf("expected default frequency %d, got %d", models.DefaultFrequencyPerDay, habit.FrequencyPerDay)
	}
	if habit.GoalDays != models.DefaultGoalDays {
		t.Fatalf("expected default goal %d days, got %d", models.DefaultGoalDays, habit.GoalDays)
	}
	if habit.CostPerDay != 50 {
		t.Fatalf("expected cost 50, got %.2f", habit.CostPerDay)
	}
}

func TestCreateHabitRejectsNegativeInputs(t *testing.T) {
	service := NewHabitService(&stubHabitWriter{})

	if _, err := service.CreateHabit(42, "smoking", -1, 1); !errors.Is(err, ErrInvalidCostPerDay) {
		t.Fatalf("expected ErrInvalidCostPerDay, got %v", err)
	}
	if _, err := service.CreateHabit(42, "smoking", 10, -2); !errors.Is(err, ErrInvalidFrequency) {
		t.Fatalf("expected ErrInvalidFrequency, got %v", err)
	}
}

func TestCreateHabitWrapsStoreFailure(t *testing.T) {
	service := NewHabitService(&stubHabitWriter{createErr: errors.New("disk full")})

	if _, err := service.CreateHabit(42, "smoking", 10, 1); !errors.Is(err, ErrHabitCreateFailed) {
		t.Fatalf("expected ErrHabitCreateFailed, got %v", err)
	}
}

func TestListHabitsReturnsEmptySliceForNewUser(t *testing.T) {
	service := NewHabitService(&stubHabitWriter{})

	habits, err := service.ListHabits(42)
	if err != nil {
		t.Fatalf("ListHabits() unexpected error: %v", err)
	}
	if habits == nil || len(habits) != 0 {
		t.Fatalf("expected empty slice, got %#v", habits)
	}
}

func TestListHabitsWrapsStoreFailure(t *testing.T) {
	service := NewHabitService(&stubHabitWriter{listErr: errors.New("io failure")})

	if _, err := service.ListHabits(42); !errors.Is(err, ErrHabitListFailed) {
		t.Fatalf("expected ErrHabitListFailed, got %v", err)
	}
}
