package bookmarks

import (
	"context"
	"errors"

	"github.com/dojohq/portal-api/internal/models"
)

// Sentinel errors returned by the service. Handlers map each to its own
// HTTP envelope, so they must stay distinguishable with errors.Is.
var (
	ErrUserIDRequired   = errors.New("User ID is required")
	ErrInvalidTimestamp = errors.New("Invalid timestamp")
	ErrNotFound         = errors.New("Bookmark not found")
	ErrUnauthorized     = errors.New("Unauthorized")
	ErrSessionMismatch  = errors.New("Bookmark does not belong to this session")
)

// Store defines the interface for bookmark persistence. Implementations:
// MemoryStore (volatile, per-process) and Repository (gorm-backed).
type Store interface {
	// Create inserts the bookmark, generating its UUID when unset.
	Create(ctx context.Context, bookmark *models.Bookmark) error

	// GetByUUID returns the bookmark or ErrNotFound. No ownership check
	// is performed here; callers enforce authorization.
	GetByUUID(ctx context.Context, uuid string) (*models.Bookmark, error)

	// ListBySessionAndUser returns the caller's bookmarks for a session,
	// in creation order.
	ListBySessionAndUser(ctx context.Context, sessionID, userID string) ([]models.Bookmark, error)

	// Update persists the bookmark and refreshes its UpdatedAt.
	Update(ctx context.Context, bookmark *models.Bookmark) error

	// Delete removes the bookmark or returns ErrNotFound.
	Delete(ctx context.Context, uuid string) error
}

// Service defines the interface for bookmark business logic
type Service interface {
	// CreateBookmark validates and stores a new bookmark. timestamp is nil
	// when the request carried no usable numeric value.
	CreateBookmark(ctx context.Context, sessionID, userID string, timestamp *int, note string) (*models.Bookmark, error)

	// ListBookmarks returns the caller's bookmarks for a session.
	ListBookmarks(ctx context.Context, sessionID, userID string) ([]models.Bookmark, error)

	// GetBookmark returns one bookmark after the ownership and session
	// scope checks.
	GetBookmark(ctx context.Context, sessionID, bookmarkID, userID string) (*models.Bookmark, error)

	// UpdateBookmark changes the note (nil retains the current value) and
	// refreshes UpdatedAt. The timestamp is never altered.
	UpdateBookmark(ctx context.Context, sessionID, bookmarkID, userID string, note *string) (*models.Bookmark, error)

	// DeleteBookmark removes the bookmark after the same checks.
	DeleteBookmark(ctx context.Context, sessionID, bookmarkID, userID string) error
}
