package repository

import (
	"gorm.io/gorm"

	"github.com/yukikurage/shift-schedule-api/internal/database"
	"github.com/yukikurage/shift-schedule-api/internal/models"
	"github.com/yukikurage/shift-schedule-api/internal/utils"
)

// GormScheduleRepository is a GORM implementation of ScheduleRepository
type GormScheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &GormScheduleRepository{db: db}
}

// Create creates a new schedule
func (r *GormScheduleRepository) Create(schedule *models.Schedule) error {
	return r.db.Create(schedule).Error
}

// FindByID finds a schedule by ID with its user
func (r *GormScheduleRepository) FindByID(id string) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := r.db.Preload("User").Where("id = ?", id).First(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

// FindByUserAndWeek finds the schedule of a user for the given week
func (r *GormScheduleRepository) FindByUserAndWeek(userID string, week utils.WeekBounds) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := r.db.Scopes(database.ForWeek(week)).
		Where("schedules.user_id = ?", userID).
		First(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

// List returns schedules with their users, ordered by position and last name
func (r *GormScheduleRepository) List(week *utils.WeekBounds) ([]models.Schedule, error) {
	var schedules []models.Schedule

	query := r.db.Model(&models.Schedule{}).Scopes(database.OrderByStaff)
	if week != nil {
		query = query.Scopes(database.ForWeek(*week))
	}

	if err := query.Preload("User").Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// Update saves all fields of a schedule
func (r *GormScheduleRepository) Update(schedule *models.Schedule) error {
	return r.db.Omit("User").Save(schedule).Error
}

// ConfirmWeek marks every schedule of the week as confirmed in one statement
func (r *GormScheduleRepository) ConfirmWeek(week utils.WeekBounds) (int64, error) {
	result := r.db.Model(&models.Schedule{}).
		Scopes(database.ForWeek(week)).
		Update("is_confirmed", true)
	return result.RowsAffected, result.Error
}

// ListWeeks returns the distinct week bounds that have schedules
func (r *GormScheduleRepository) ListWeeks() ([]utils.WeekBounds, error) {
	var schedules []models.Schedule
	if err := r.db.Model(&models.Schedule{}).
		Distinct("week_start", "week_end").
		Order("week_start DESC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}

	weeks := make([]utils.WeekBounds, len(schedules))
	for i, schedule := range schedules {
		weeks[i] = schedule.Bounds()
	}
	return weeks, nil
}
