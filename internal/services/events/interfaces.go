package events

import (
	"context"
	"errors"
	"time"

	"github.com/dojohq/portal-api/internal/models"
)

// Sentinel errors returned by the service
var (
	ErrUserIDRequired = errors.New("User ID is required")
	ErrEventNotFound  = errors.New("Event not found")
	ErrRSVPNotFound   = errors.New("RSVP not found")
)

// Repository defines the interface for event and RSVP data access
type Repository interface {
	// ListEvents returns events starting within [from, to). A zero `to`
	// means no upper bound.
	ListEvents(ctx context.Context, from, to time.Time) ([]models.Event, error)
	GetEventByUUID(ctx context.Context, uuid string) (*models.Event, error)

	// CountGoingRSVPs counts confirmed attendees for capacity checks.
	CountGoingRSVPs(ctx context.Context, eventID uint) (int64, error)
	GetRSVP(ctx context.Context, eventID uint, userID string) (*models.RSVP, error)
	CreateRSVP(ctx context.Context, rsvp *models.RSVP) error
	UpdateRSVP(ctx context.Context, rsvp *models.RSVP) error
	ListRSVPs(ctx context.Context, eventID uint, userID string) ([]models.RSVP, error)
}

// Service defines the interface for event business logic
type Service interface {
	ListEvents(ctx context.Context, from, to time.Time) ([]models.Event, error)
	GetEvent(ctx context.Context, uuid string) (*models.Event, error)

	// CreateRSVP registers the member for the event. Full events yield a
	// waitlist RSVP; a cancelled RSVP is reactivated in place.
	CreateRSVP(ctx context.Context, eventUUID, userID string) (*models.RSVP, error)
	CancelRSVP(ctx context.Context, eventUUID, userID string) error
	ListRSVPs(ctx context.Context, eventUUID, userID string) ([]models.RSVP, error)
}
