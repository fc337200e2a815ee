package db

import (
	"testing"

	"github.com/quitly/quitly/internal/models"
)

func TestCreateIfAbsentFirstWriteWins(t *testing.T) {
	_, repos := openTestDatabase(t)

	original := "oleh"
	if err := repos.Users.CreateIfAbsent(&models.User{ID: 42, Username: &original}); err != nil {
		t.Fatalf("first registration: %v", err)
	}

	renamed := "renamed"
	if err := repos.Users.CreateIfAbsent(&models.User{ID: 42, Username: &renamed}); err != nil {
		t.Fatalf("repeat registration should be ignored, got: %v", err)
	}

	stored, found, err := repos.Users.FindByID(42)
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	if !found {
		t.Fatal("expected stored user")
	}
	if stored.Username == nil || *stored.Username != "oleh" {
		t.Fatalf("expected first username to survive, got %v", stored.Username)
	}

	count, err := repos.Users.CountUsers()
	if err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one user row, got %d", count)
	}
}

func TestFindByIDMissingUserIsNotAnError(t *testing.T) {
	_, repos := openTestDatabase(t)

	_, found, err := repos.Users.FindByID(99)
	if err != nil {
		t.Fatalf("find missing user: %v", err)
	}
	if found {
		t.Fatal("expected no user")
	}
}
