package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/dojohq/portal-api/internal/models"
)

// ErrUserIDRequired is returned when the caller identity is missing.
var ErrUserIDRequired = errors.New("User ID is required")

// Repository defines the interface for attendance data access
type Repository interface {
	CreateAttendance(ctx context.Context, record *models.Attendance) error

	// GetCheckInSince returns the member's check-in for a session at or
	// after the given instant, or nil when none exists.
	GetCheckInSince(ctx context.Context, sessionID, userID string, since time.Time) (*models.Attendance, error)

	ListBySessionAndUser(ctx context.Context, sessionID, userID string) ([]models.Attendance, error)
}

// Service defines the interface for attendance business logic
type Service interface {
	// CheckIn records attendance. Repeats within the same UTC day return
	// the existing record with created=false.
	CheckIn(ctx context.Context, sessionID, userID string) (record *models.Attendance, created bool, err error)

	ListCheckIns(ctx context.Context, sessionID, userID string) ([]models.Attendance, error)
}
