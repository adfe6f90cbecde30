package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yukikurage/shift-schedule-api/internal/export"
	"github.com/yukikurage/shift-schedule-api/internal/models"
	"github.com/yukikurage/shift-schedule-api/internal/notifier"
	"github.com/yukikurage/shift-schedule-api/internal/repository"
	"github.com/yukikurage/shift-schedule-api/internal/utils"
)

// ScheduleService handles schedule business logic
type ScheduleService struct {
	scheduleRepo repository.ScheduleRepository
	userRepo     repository.UserRepository
	notifier     notifier.Notifier
	loc          *time.Location
	log          *zap.Logger
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(
	scheduleRepo repository.ScheduleRepository,
	userRepo repository.UserRepository,
	n notifier.Notifier,
	loc *time.Location,
	log *zap.Logger,
) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		userRepo:     userRepo,
		notifier:     n,
		loc:          loc,
		log:          log,
	}
}

// SaveScheduleInput is a full week write for one user
type SaveScheduleInput struct {
	UserID string
	Week   utils.WeekBounds
	Days   models.WeekDays
}

// DuplicateWeekInput names the week to copy from and the week to copy into
type DuplicateWeekInput struct {
	From utils.WeekBounds
	To   utils.WeekBounds
}

// ConfirmWeekResult reports a week confirmation
type ConfirmWeekResult struct {
	Schedules         []models.Schedule
	NotificationsSent int
}

// ListSchedules returns schedules with their users, optionally for a single week
func (s *ScheduleService) ListSchedules(week *utils.WeekBounds) ([]models.Schedule, error) {
	schedules, err := s.scheduleRepo.List(week)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return schedules, nil
}

// SaveSchedule creates the user's schedule for the week or overwrites all seven
// days of the existing one. The result is never confirmed.
func (s *ScheduleService) SaveSchedule(input SaveScheduleInput) (*models.Schedule, error) {
	if input.UserID == "" || input.Week.IsZero() {
		return nil, ErrMissingScheduleFields
	}
	week := input.Week.UTC()

	if _, err := s.userRepo.FindByID(input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	existing, err := s.scheduleRepo.FindByUserAndWeek(input.UserID, week)
	switch {
	case err == nil:
		existing.SetDays(input.Days)
		existing.IsConfirmed = false
		if err := s.scheduleRepo.Update(existing); err != nil {
			return nil, fmt.Errorf("failed to update schedule: %w", err)
		}
		return s.reload(existing.ID)
	case errors.Is(err, gorm.ErrRecordNotFound):
		schedule := &models.Schedule{
			UserID:    input.UserID,
			WeekStart: week.Start,
			WeekEnd:   week.End,
		}
		schedule.SetDays(input.Days)
		if err := s.scheduleRepo.Create(schedule); err != nil {
			return nil, fmt.Errorf("failed to create schedule: %w", err)
		}
		return s.reload(schedule.ID)
	default:
		return nil, fmt.Errorf("failed to find schedule: %w", err)
	}
}

// PatchSchedule overlays the given days onto an existing schedule and
// recomputes its total. The confirmed flag is left as it was.
func (s *ScheduleService) PatchSchedule(id string, patch models.WeekPatch) (*models.Schedule, error) {
	schedule, err := s.scheduleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to find schedule: %w", err)
	}

	schedule.SetDays(schedule.WeekDays.Merge(patch))
	if err := s.scheduleRepo.Update(schedule); err != nil {
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}

	return schedule, nil
}

// DuplicateWeek copies every schedule of the source week into the target week,
// overwriting target schedules that already exist. Copies are never confirmed.
// Users are processed one by one without a surrounding transaction.
func (s *ScheduleService) DuplicateWeek(input DuplicateWeekInput) (int, error) {
	if input.From.IsZero() || input.To.IsZero() {
		return 0, ErrMissingDuplicateWeeks
	}
	from, to := input.From.UTC(), input.To.UTC()

	sources, err := s.scheduleRepo.List(&from)
	if err != nil {
		return 0, fmt.Errorf("failed to list source schedules: %w", err)
	}
	if len(sources) == 0 {
		return 0, ErrSourceWeekEmpty
	}

	written := 0
	for _, source := range sources {
		target, err := s.scheduleRepo.FindByUserAndWeek(source.UserID, to)
		switch {
		case err == nil:
			target.WeekDays = source.WeekDays
			target.TotalHours = source.TotalHours
			target.IsConfirmed = false
			if err := s.scheduleRepo.Update(target); err != nil {
				return written, fmt.Errorf("failed to update schedule for user %s: %w", source.UserID, err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			target = &models.Schedule{
				UserID:     source.UserID,
				WeekStart:  to.Start,
				WeekEnd:    to.End,
				WeekDays:   source.WeekDays,
				TotalHours: source.TotalHours,
			}
			if err := s.scheduleRepo.Create(target); err != nil {
				return written, fmt.Errorf("failed to create schedule for user %s: %w", source.UserID, err)
			}
		default:
			return written, fmt.Errorf("failed to find schedule for user %s: %w", source.UserID, err)
		}
		written++
	}

	s.log.Info("week duplicated",
		zap.String("from", from.Label(s.loc)),
		zap.String("to", to.Label(s.loc)),
		zap.Int("schedules", written),
	)
	return written, nil
}

// ConfirmWeek confirms every schedule of the week and then notifies each owner.
// Notification failures are logged and counted, never returned.
func (s *ScheduleService) ConfirmWeek(ctx context.Context, week utils.WeekBounds) (*ConfirmWeekResult, error) {
	if week.IsZero() {
		return nil, ErrMissingWeekBounds
	}
	week = week.UTC()

	if _, err := s.scheduleRepo.ConfirmWeek(week); err != nil {
		return nil, fmt.Errorf("failed to confirm schedules: %w", err)
	}

	schedules, err := s.scheduleRepo.List(&week)
	if err != nil {
		return nil, fmt.Errorf("failed to load confirmed schedules: %w", err)
	}

	sent := 0
	for _, schedule := range schedules {
		if err := s.notifier.Send(ctx, schedule.User.TelegramID, notifier.ScheduleMessage(schedule)); err != nil {
			s.log.Warn("schedule notification failed",
				zap.String("user_id", schedule.UserID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	s.log.Info("week confirmed",
		zap.String("week", week.Label(s.loc)),
		zap.Int("schedules", len(schedules)),
		zap.Int("notifications_sent", sent),
	)

	return &ConfirmWeekResult{Schedules: schedules, NotificationsSent: sent}, nil
}

// ExportWeek renders the week's schedules as an xlsx workbook and returns it with its file name.
func (s *ScheduleService) ExportWeek(week utils.WeekBounds) ([]byte, string, error) {
	if week.IsZero() {
		return nil, "", ErrMissingWeekBounds
	}
	week = week.UTC()

	schedules, err := s.scheduleRepo.List(&week)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list schedules: %w", err)
	}

	data, err := export.WeekWorkbook(week, s.loc, schedules)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build spreadsheet: %w", err)
	}

	return data, export.Filename(week, s.loc), nil
}

func (s *ScheduleService) reload(id string) (*models.Schedule, error) {
	schedule, err := s.scheduleRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	return schedule, nil
}
