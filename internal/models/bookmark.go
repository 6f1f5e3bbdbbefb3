package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bookmark is a member's saved timestamp-plus-note marker within a training
// session's video. The UUID is the externally visible identifier; the row ID
// never leaves the process.
type Bookmark struct {
	ID        uint      `json:"-" gorm:"primarykey"`
	UUID      string    `json:"id" gorm:"uniqueIndex;not null"`
	SessionID string    `json:"sessionId" gorm:"index;not null"`
	UserID    string    `json:"userId" gorm:"index;not null"`
	Timestamp int       `json:"timestamp" gorm:"not null"` // Seconds into the session video
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new bookmark
func (b *Bookmark) BeforeCreate(tx *gorm.DB) error {
	if b.UUID == "" {
		b.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Bookmark model
func (Bookmark) TableName() string {
	return "bookmarks"
}
