package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is a training-content catalog entry (a recorded class or seminar).
// Bookmarks reference sessions by UUID but do not require the catalog row to
// exist; the catalog is managed out of band.
type Session struct {
	ID              uint      `json:"-" gorm:"primarykey"`
	UUID            string    `json:"id" gorm:"uniqueIndex;not null"`
	Title           string    `json:"title" gorm:"not null"`
	Discipline      string    `json:"discipline" gorm:"index"` // e.g. judo, bjj, karate
	Instructor      string    `json:"instructor"`
	DurationSeconds int       `json:"durationSeconds"`
	VideoURL        string    `json:"videoUrl"`
	PublishedAt     time.Time `json:"publishedAt"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new session
func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.UUID == "" {
		s.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Session model
func (Session) TableName() string {
	return "sessions"
}
