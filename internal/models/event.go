package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RSVP status values
const (
	RSVPStatusGoing     = "going"
	RSVPStatusWaitlist  = "waitlist"
	RSVPStatusCancelled = "cancelled"
)

// Event is an association event members can browse and RSVP to: seminars,
// gradings, tournaments, open-mat days.
type Event struct {
	ID          uint      `json:"-" gorm:"primarykey"`
	UUID        string    `json:"id" gorm:"uniqueIndex;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"startsAt" gorm:"index;not null"`
	EndsAt      time.Time `json:"endsAt"`
	Capacity    int       `json:"capacity"` // 0 means unlimited
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new event
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.UUID == "" {
		e.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Event model
func (Event) TableName() string {
	return "events"
}

// RSVP records a member's intent to attend an event. At most one row per
// (event, user); cancelling flips the status rather than deleting the row so
// a re-RSVP keeps its history.
type RSVP struct {
	ID        uint      `json:"-" gorm:"primarykey"`
	UUID      string    `json:"id" gorm:"uniqueIndex;not null"`
	EventID   uint      `json:"-" gorm:"index;not null"`
	EventUUID string    `json:"eventId" gorm:"index;not null"`
	UserID    string    `json:"userId" gorm:"index;not null"`
	Status    string    `json:"status" gorm:"not null;default:going"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Event Event `json:"-" gorm:"foreignKey:EventID"`
}

// BeforeCreate generates a UUID before creating a new RSVP
func (r *RSVP) BeforeCreate(tx *gorm.DB) error {
	if r.UUID == "" {
		r.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the RSVP model
func (RSVP) TableName() string {
	return "rsvps"
}
