package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yukikurage/shift-schedule-api/internal/utils"
)

// WeekOrder lists the days of a schedule week, Monday first.
var WeekOrder = [7]time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// WeekDays holds one optional shift string per day. A nil or empty value is a day off.
type WeekDays struct {
	Monday    *string `gorm:"type:varchar(32)" json:"monday"`
	Tuesday   *string `gorm:"type:varchar(32)" json:"tuesday"`
	Wednesday *string `gorm:"type:varchar(32)" json:"wednesday"`
	Thursday  *string `gorm:"type:varchar(32)" json:"thursday"`
	Friday    *string `gorm:"type:varchar(32)" json:"friday"`
	Saturday  *string `gorm:"type:varchar(32)" json:"saturday"`
	Sunday    *string `gorm:"type:varchar(32)" json:"sunday"`
}

// WeekPatch maps a weekday to its new shift. A present key with a nil value clears the day.
type WeekPatch map[time.Weekday]*string

func (w *WeekDays) field(day time.Weekday) **string {
	switch day {
	case time.Monday:
		return &w.Monday
	case time.Tuesday:
		return &w.Tuesday
	case time.Wednesday:
		return &w.Wednesday
	case time.Thursday:
		return &w.Thursday
	case time.Friday:
		return &w.Friday
	case time.Saturday:
		return &w.Saturday
	default:
		return &w.Sunday
	}
}

// Day returns the shift assigned to day.
func (w WeekDays) Day(day time.Weekday) *string {
	return *w.field(day)
}

// SetDay assigns the shift for day.
func (w *WeekDays) SetDay(day time.Weekday, shift *string) {
	*w.field(day) = shift
}

// Merge returns a copy of w with every day present in patch replaced.
func (w WeekDays) Merge(patch WeekPatch) WeekDays {
	merged := w
	for day, shift := range patch {
		merged.SetDay(day, shift)
	}
	return merged
}

// TotalHours sums the shift hours of all seven days.
func (w WeekDays) TotalHours() int {
	total := 0
	for _, day := range WeekOrder {
		total += utils.ShiftHours(w.Day(day))
	}
	return total
}

type Schedule struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID      string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_schedules_user_week,priority:1" json:"user_id"`
	WeekStart   time.Time `gorm:"not null;uniqueIndex:idx_schedules_user_week,priority:2;index:idx_schedules_week,priority:1" json:"week_start"`
	WeekEnd     time.Time `gorm:"not null;uniqueIndex:idx_schedules_user_week,priority:3;index:idx_schedules_week,priority:2" json:"week_end"`
	WeekDays    `gorm:"embedded"`
	TotalHours  int       `gorm:"not null;default:0" json:"total_hours"`
	IsConfirmed bool      `gorm:"not null;default:false" json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// SetDays replaces all seven days and recomputes TotalHours.
func (s *Schedule) SetDays(days WeekDays) {
	s.WeekDays = days
	s.TotalHours = days.TotalHours()
}

// Bounds returns the schedule's week.
func (s Schedule) Bounds() utils.WeekBounds {
	return utils.WeekBounds{Start: s.WeekStart, End: s.WeekEnd}
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
