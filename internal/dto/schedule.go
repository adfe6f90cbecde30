package dto

import (
	"time"

	"github.com/yukikurage/shift-schedule-api/internal/models"
	"github.com/yukikurage/shift-schedule-api/internal/services"
)

// ScheduleDTO represents a schedule in API responses
type ScheduleDTO struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	WeekStart   time.Time       `json:"week_start"`
	WeekEnd     time.Time       `json:"week_end"`
	Monday      *string         `json:"monday"`
	Tuesday     *string         `json:"tuesday"`
	Wednesday   *string         `json:"wednesday"`
	Thursday    *string         `json:"thursday"`
	Friday      *string         `json:"friday"`
	Saturday    *string         `json:"saturday"`
	Sunday      *string         `json:"sunday"`
	TotalHours  int             `json:"total_hours"`
	IsConfirmed bool            `json:"is_confirmed"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	User        *UserSummaryDTO `json:"user,omitempty"`
}

// WeekDTO is one entry of the week picker
type WeekDTO struct {
	WeekStart time.Time `json:"week_start"`
	WeekEnd   time.Time `json:"week_end"`
	Label     string    `json:"label"`
}

// ToScheduleDTO converts a Schedule model to ScheduleDTO
func ToScheduleDTO(schedule models.Schedule) ScheduleDTO {
	dto := ScheduleDTO{
		ID:          schedule.ID,
		UserID:      schedule.UserID,
		WeekStart:   schedule.WeekStart,
		WeekEnd:     schedule.WeekEnd,
		Monday:      schedule.Monday,
		Tuesday:     schedule.Tuesday,
		Wednesday:   schedule.Wednesday,
		Thursday:    schedule.Thursday,
		Friday:      schedule.Friday,
		Saturday:    schedule.Saturday,
		Sunday:      schedule.Sunday,
		TotalHours:  schedule.TotalHours,
		IsConfirmed: schedule.IsConfirmed,
		CreatedAt:   schedule.CreatedAt,
		UpdatedAt:   schedule.UpdatedAt,
	}

	// Include user if preloaded
	if schedule.User.ID != "" {
		user := ToUserSummaryDTO(schedule.User)
		dto.User = &user
	}

	return dto
}

// ToScheduleDTOs converts a slice of schedules
func ToScheduleDTOs(schedules []models.Schedule) []ScheduleDTO {
	out := make([]ScheduleDTO, len(schedules))
	for i, schedule := range schedules {
		out[i] = ToScheduleDTO(schedule)
	}
	return out
}

// ToWeekDTOs converts the week registry output
func ToWeekDTOs(weeks []services.Week) []WeekDTO {
	out := make([]WeekDTO, len(weeks))
	for i, week := range weeks {
		out[i] = WeekDTO{
			WeekStart: week.Bounds.Start,
			WeekEnd:   week.Bounds.End,
			Label:     week.Label,
		}
	}
	return out
}
