package sessions

import (
	"context"
	"errors"

	"github.com/dojohq/portal-api/internal/models"
)

// ErrNotFound is returned when no session matches the given identifier.
var ErrNotFound = errors.New("Session not found")

// Repository defines the interface for session catalog data access
type Repository interface {
	ListSessions(ctx context.Context) ([]models.Session, error)
	GetSessionByUUID(ctx context.Context, uuid string) (*models.Session, error)
}

// Service defines the interface for session catalog business logic
type Service interface {
	ListSessions(ctx context.Context) ([]models.Session, error)
	GetSession(ctx context.Context, uuid string) (*models.Session, error)
}
