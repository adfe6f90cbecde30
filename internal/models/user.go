package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Department string

const (
	DepartmentKitchen Department = "kitchen"
	DepartmentStaff   Department = "staff"
)

// Valid reports whether d is one of the known departments.
func (d Department) Valid() bool {
	return d == DepartmentKitchen || d == DepartmentStaff
}

type User struct {
	ID         string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	TelegramID string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"telegram_id"`
	FirstName  string     `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName   string     `gorm:"type:varchar(255);not null" json:"last_name"`
	Department Department `gorm:"type:varchar(20);not null;default:'staff'" json:"department"`
	Position   string     `gorm:"type:varchar(255);not null" json:"position"`
	IsAdmin    bool       `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Relations
	Schedules []Schedule `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// FullName is "Last First", the order used on printed schedules.
func (u User) FullName() string {
	return u.LastName + " " + u.FirstName
}
