package db

import (
	"github.com/quitly/quitly/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

// CreateIfAbsent registers a user id seen for the first time. Re-registration
// is a no-op at the storage layer (first write wins), matching the
// ignore-on-conflict contract for externally assigned ids.
func (repo *UserRepository) CreateIfAbsent(user *models.User) error {
	return repo.database.Clauses(clause.OnConflict{DoNothing: true}).Create(user).Error
}

func (repo *UserRepository) FindByID(userID uint) (models.User, bool, error) {
	var user models.User
	result := repo.database.Limit(1).Find(&user, userID)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) CountUsers() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
