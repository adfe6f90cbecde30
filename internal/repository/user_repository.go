package repository

import (
	"gorm.io/gorm"

	"github.com/yukikurage/shift-schedule-api/internal/models"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDWithRecentSchedules finds a user and its latest schedules
func (r *GormUserRepository) FindByIDWithRecentSchedules(id string, limit int) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}

	if err := r.db.Where("user_id = ?", id).
		Order("week_start DESC").
		Limit(limit).
		Find(&user.Schedules).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// FindByTelegramID finds a user by chat identity
func (r *GormUserRepository) FindByTelegramID(telegramID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("telegram_id = ?", telegramID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users ordered by position and last name
func (r *GormUserRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("position ASC").Order("last_name ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update updates a user
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete removes a user and its schedules in a transaction
func (r *GormUserRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Schedule{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&models.User{}).Error
	})
}

// DeleteAll removes every schedule and every user in a transaction
func (r *GormUserRepository) DeleteAll() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Schedule{}).Error; err != nil {
			return err
		}

		return tx.Where("1 = 1").Delete(&models.User{}).Error
	})
}
