package dto

import (
	"time"

	"github.com/yukikurage/shift-schedule-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID         string            `json:"id"`
	TelegramID string            `json:"telegram_id"`
	FirstName  string            `json:"first_name"`
	LastName   string            `json:"last_name"`
	Department models.Department `json:"department"`
	Position   string            `json:"position"`
	IsAdmin    bool              `json:"is_admin"`
	CreatedAt  time.Time         `json:"created_at"`
}

// UserSummaryDTO is the user shown next to a schedule
type UserSummaryDTO struct {
	ID         string `json:"id"`
	TelegramID string `json:"telegram_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Position   string `json:"position"`
}

// UserDetailDTO is a user with its most recent schedules
type UserDetailDTO struct {
	UserDTO
	Schedules []ScheduleDTO `json:"schedules"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:         user.ID,
		TelegramID: user.TelegramID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Department: user.Department,
		Position:   user.Position,
		IsAdmin:    user.IsAdmin,
		CreatedAt:  user.CreatedAt,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, len(users))
	for i, user := range users {
		out[i] = ToUserDTO(user)
	}
	return out
}

// ToUserSummaryDTO converts a User model to UserSummaryDTO
func ToUserSummaryDTO(user models.User) UserSummaryDTO {
	return UserSummaryDTO{
		ID:         user.ID,
		TelegramID: user.TelegramID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Position:   user.Position,
	}
}

// ToUserDetailDTO converts a User with preloaded schedules
func ToUserDetailDTO(user models.User) UserDetailDTO {
	return UserDetailDTO{
		UserDTO:   ToUserDTO(user),
		Schedules: ToScheduleDTOs(user.Schedules),
	}
}
