package services

import "errors"

var (
	// InvalidInput
	ErrMissingScheduleFields     = errors.New("user_id, week_start and week_end are required")
	ErrMissingWeekBounds         = errors.New("week_start and week_end are required")
	ErrMissingDuplicateWeeks     = errors.New("source and target week bounds are required")
	ErrMissingRegistrationFields = errors.New("telegram_id, first_name, last_name and position are required")
	ErrInvalidDepartment         = errors.New("department must be one of: kitchen, staff")

	// Unauthorized
	ErrInvalidSecretCode = errors.New("invalid secret code")

	// Conflict
	ErrTelegramIDTaken = errors.New("a user with this telegram id is already registered")

	// NotFound
	ErrUserNotFound     = errors.New("user not found")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrSourceWeekEmpty  = errors.New("no schedules found for the source week")
)
