package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yukikurage/shift-schedule-api/internal/constants"
	"github.com/yukikurage/shift-schedule-api/internal/models"
	"github.com/yukikurage/shift-schedule-api/internal/notifier"
	"github.com/yukikurage/shift-schedule-api/internal/repository"
)

// UserService handles staff registration and administration.
type UserService struct {
	userRepo         repository.UserRepository
	notifier         notifier.Notifier
	registrationCode string
	log              *zap.Logger
}

// NewUserService creates a new UserService. registrationCode is the shared
// secret every registration must present.
func NewUserService(userRepo repository.UserRepository, n notifier.Notifier, registrationCode string, log *zap.Logger) *UserService {
	return &UserService{
		userRepo:         userRepo,
		notifier:         n,
		registrationCode: registrationCode,
		log:              log,
	}
}

// RegisterInput represents the information needed to register a staff member.
type RegisterInput struct {
	TelegramID string
	FirstName  string
	LastName   string
	Department models.Department
	Position   string
	SecretCode string
}

// Register creates a new user after checking the shared secret.
func (s *UserService) Register(input RegisterInput) (*models.User, error) {
	if s.registrationCode == "" || input.SecretCode != s.registrationCode {
		return nil, ErrInvalidSecretCode
	}

	telegramID := strings.TrimSpace(input.TelegramID)
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	position := strings.TrimSpace(input.Position)
	if telegramID == "" || firstName == "" || lastName == "" || position == "" {
		return nil, ErrMissingRegistrationFields
	}

	department := input.Department
	if department == "" {
		department = models.DepartmentStaff
	}
	if !department.Valid() {
		return nil, ErrInvalidDepartment
	}

	if _, err := s.userRepo.FindByTelegramID(telegramID); err == nil {
		return nil, ErrTelegramIDTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check telegram id: %w", err)
	}

	user := &models.User{
		TelegramID: telegramID,
		FirstName:  firstName,
		LastName:   lastName,
		Department: department,
		Position:   position,
		IsAdmin:    false,
	}
	if err := s.userRepo.Create(user); err != nil {
		// lost a race with a concurrent registration of the same telegram id
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTelegramIDTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

// ListUsers returns every user ordered by position and last name.
func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser returns a user with its most recent schedules.
func (s *UserService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByIDWithRecentSchedules(id, constants.RecentSchedulesLimit)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ChangeDepartment moves a user to another department.
func (s *UserService) ChangeDepartment(id string, department models.Department) (*models.User, error) {
	if !department.Valid() {
		return nil, ErrInvalidDepartment
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user.Department = department
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes a user and its schedules, then says goodbye over the chat bot.
// The farewell is best effort and does not affect the result.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.log.Info("user deleted", zap.String("user_id", id))

	if err := s.notifier.Send(ctx, user.TelegramID, notifier.FarewellMessage(*user)); err != nil {
		s.log.Warn("farewell notification failed", zap.String("user_id", id), zap.Error(err))
	}
	return nil
}

// ClearDatabase removes every schedule and every user.
func (s *UserService) ClearDatabase() error {
	if err := s.userRepo.DeleteAll(); err != nil {
		return fmt.Errorf("failed to clear database: %w", err)
	}
	s.log.Warn("database cleared")
	return nil
}
