package database

import (
	"gorm.io/gorm"

	"github.com/yukikurage/shift-schedule-api/internal/utils"
)

// ForWeek restricts a schedules query to the given week bounds.
func ForWeek(week utils.WeekBounds) func(db *gorm.DB) *gorm.DB {
	w := week.UTC()
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("schedules.week_start = ? AND schedules.week_end = ?", w.Start, w.End)
	}
}

// OrderByStaff sorts schedules by their user's position and last name.
func OrderByStaff(db *gorm.DB) *gorm.DB {
	return db.Joins("JOIN users ON users.id = schedules.user_id").
		Order("users.position ASC").
		Order("users.last_name ASC")
}
