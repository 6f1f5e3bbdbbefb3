package bookmarks

import (
	"context"
	"sync"

	"github.com/dojohq/portal-api/internal/models"
)

// ServiceImpl implements the Service interface. The mutex serializes the
// authorize-then-mutate sequences so a delete cannot race the ownership
// check of a concurrent update.
type ServiceImpl struct {
	store Store
	mu    sync.Mutex
}

// NewService creates a new bookmark service backed by the given store
func NewService(store Store) *ServiceImpl {
	return &ServiceImpl{store: store}
}

// CreateBookmark validates and stores a new bookmark
func (s *ServiceImpl) CreateBookmark(ctx context.Context, sessionID, userID string, timestamp *int, note string) (*models.Bookmark, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}
	// Zero is a valid position; only absent or negative values are rejected
	if timestamp == nil || *timestamp < 0 {
		return nil, ErrInvalidTimestamp
	}

	bookmark := &models.Bookmark{
		SessionID: sessionID,
		UserID:    userID,
		Timestamp: *timestamp,
		Note:      note,
	}
	if err := s.store.Create(ctx, bookmark); err != nil {
		return nil, err
	}
	return bookmark, nil
}

// ListBookmarks returns the caller's bookmarks for a session
func (s *ServiceImpl) ListBookmarks(ctx context.Context, sessionID, userID string) ([]models.Bookmark, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}
	return s.store.ListBySessionAndUser(ctx, sessionID, userID)
}

// GetBookmark returns one bookmark after the ownership and scope checks
func (s *ServiceImpl) GetBookmark(ctx context.Context, sessionID, bookmarkID, userID string) (*models.Bookmark, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}
	return s.authorize(ctx, sessionID, bookmarkID, userID)
}

// UpdateBookmark changes the note and refreshes UpdatedAt. A nil note
// retains the current value; the timestamp is never altered.
func (s *ServiceImpl) UpdateBookmark(ctx context.Context, sessionID, bookmarkID, userID string, note *string) (*models.Bookmark, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bookmark, err := s.authorize(ctx, sessionID, bookmarkID, userID)
	if err != nil {
		return nil, err
	}
	if note != nil {
		bookmark.Note = *note
	}
	if err := s.store.Update(ctx, bookmark); err != nil {
		return nil, err
	}
	return bookmark, nil
}

// DeleteBookmark removes the bookmark after the same checks
func (s *ServiceImpl) DeleteBookmark(ctx context.Context, sessionID, bookmarkID, userID string) error {
	if userID == "" {
		return ErrUserIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.authorize(ctx, sessionID, bookmarkID, userID); err != nil {
		return err
	}
	return s.store.Delete(ctx, bookmarkID)
}

// authorize runs the shared item-level check sequence: existence, then
// ownership, then session scope. The order is part of the API contract.
func (s *ServiceImpl) authorize(ctx context.Context, sessionID, bookmarkID, userID string) (*models.Bookmark, error) {
	bookmark, err := s.store.GetByUUID(ctx, bookmarkID)
	if err != nil {
		return nil, err
	}
	if bookmark.UserID != userID {
		return nil, ErrUnauthorized
	}
	if bookmark.SessionID != sessionID {
		return nil, ErrSessionMismatch
	}
	return bookmark, nil
}
