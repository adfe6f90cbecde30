package repository

import (
	"github.com/yukikurage/shift-schedule-api/internal/models"
	"github.com/yukikurage/shift-schedule-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByIDWithRecentSchedules finds a user and its latest schedules, newest week first
	FindByIDWithRecentSchedules(id string, limit int) (*models.User, error)

	// FindByTelegramID finds a user by chat identity
	FindByTelegramID(telegramID string) (*models.User, error)

	// List returns all users ordered by position and last name
	List() ([]models.User, error)

	// Update updates a user
	Update(user *models.User) error

	// Delete removes a user together with its schedules
	Delete(id string) error

	// DeleteAll removes every schedule and every user
	DeleteAll() error
}

// ScheduleRepository defines the interface for schedule data access
type ScheduleRepository interface {
	// Create creates a new schedule
	Create(schedule *models.Schedule) error

	// FindByID finds a schedule by ID, preloading its user
	FindByID(id string) (*models.Schedule, error)

	// FindByUserAndWeek finds the schedule of a user for the given week
	FindByUserAndWeek(userID string, week utils.WeekBounds) (*models.Schedule, error)

	// List returns schedules with their users, optionally restricted to one week
	List(week *utils.WeekBounds) ([]models.Schedule, error)

	// Update saves all fields of a schedule
	Update(schedule *models.Schedule) error

	// ConfirmWeek marks every schedule of the week as confirmed
	ConfirmWeek(week utils.WeekBounds) (int64, error)

	// ListWeeks returns the distinct week bounds that have schedules
	ListWeeks() ([]utils.WeekBounds, error)
}
