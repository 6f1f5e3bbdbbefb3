package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance is a member's check-in against a training session. One check-in
// per (session, user) per UTC calendar day; repeats are idempotent.
type Attendance struct {
	ID          uint      `json:"-" gorm:"primarykey"`
	UUID        string    `json:"id" gorm:"uniqueIndex;not null"`
	SessionID   string    `json:"sessionId" gorm:"index;not null"`
	UserID      string    `json:"userId" gorm:"index;not null"`
	CheckedInAt time.Time `json:"checkedInAt" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new attendance record
func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.UUID == "" {
		a.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Attendance model
func (Attendance) TableName() string {
	return "attendance"
}
