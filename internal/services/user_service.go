package services

import (
	"fmt"
	"strings"

	"github.com/quitly/quitly/internal/models"
)

type UserWriter interface {
	CreateIfAbsent(user *models.User) error
	FindByID(userID uint) (models.User, bool, error)
}

type UserService struct {
	users UserWriter
}

func NewUserService(users UserWriter) *UserService {
	return &UserService{users: users}
}

// RegisterUser upserts a platform-assigned user id. The write is
// ignore-on-conflict, so a second registration never mutates the stored row;
// the persisted user is returned either way.
func (service *UserService) RegisterUser(userID uint, username string) (models.User, error) {
	user := models.User{ID: userID}
	if trimmed := strings.TrimSpace(username); trimmed != "" {
		user.Username = &trimmed
	}

	if err := service.users.CreateIfAbsent(&user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUserRegisterFailed, err)
	}

	persisted, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUserLookupFailed, err)
	}
	if !found {
		return models.User{}, ErrUserRegisterFailed
	}
	return persisted, nil
}
