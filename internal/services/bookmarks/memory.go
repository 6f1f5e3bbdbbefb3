package bookmarks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dojohq/portal-api/internal/models"
)

// MemoryStore holds bookmarks in a process-local map keyed by UUID. All data
// is lost on restart. Safe for concurrent handler dispatch.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*memoryEntry
	seq   uint64
}

type memoryEntry struct {
	bookmark models.Bookmark
	seq      uint64 // insertion order, stable across equal timestamps
}

// NewMemoryStore creates an empty in-memory bookmark store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]*memoryEntry),
	}
}

// Create inserts the bookmark, generating its UUID when unset
func (s *MemoryStore) Create(ctx context.Context, bookmark *models.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if bookmark.UUID == "" {
		bookmark.UUID = uuid.New().String()
	}
	now := time.Now().UTC()
	bookmark.CreatedAt = now
	bookmark.UpdatedAt = now

	s.seq++
	s.items[bookmark.UUID] = &memoryEntry{bookmark: *bookmark, seq: s.seq}
	return nil
}

// GetByUUID returns a copy of the bookmark or ErrNotFound
func (s *MemoryStore) GetByUUID(ctx context.Context, id string) (*models.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	bookmark := entry.bookmark
	return &bookmark, nil
}

// ListBySessionAndUser returns the caller's bookmarks for a session in
// creation order
func (s *MemoryStore) ListBySessionAndUser(ctx context.Context, sessionID, userID string) ([]models.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*memoryEntry, 0)
	for _, entry := range s.items {
		if entry.bookmark.SessionID == sessionID && entry.bookmark.UserID == userID {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].seq < entries[j].seq
	})

	result := make([]models.Bookmark, 0, len(entries))
	for _, entry := range entries {
		result = append(result, entry.bookmark)
	}
	return result, nil
}

// Update persists the bookmark and refreshes its UpdatedAt
func (s *MemoryStore) Update(ctx context.Context, bookmark *models.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.items[bookmark.UUID]
	if !ok {
		return ErrNotFound
	}
	bookmark.UpdatedAt = time.Now().UTC()
	entry.bookmark = *bookmark
	return nil
}

// Delete removes the bookmark or returns ErrNotFound
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}
