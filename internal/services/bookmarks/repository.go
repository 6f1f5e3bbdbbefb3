package bookmarks

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dojohq/portal-api/internal/models"
)

// Repository is the gorm-backed Store implementation, the persistent
// substitution point for the volatile MemoryStore.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new database-backed bookmark store
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the bookmark; the model hook generates the UUID
func (r *Repository) Create(ctx context.Context, bookmark *models.Bookmark) error {
	if err := r.db.WithContext(ctx).Create(bookmark).Error; err != nil {
		return fmt.Errorf("creating bookmark: %w", err)
	}
	return nil
}

// GetByUUID retrieves a bookmark by its UUID
func (r *Repository) GetByUUID(ctx context.Context, uuid string) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	if err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&bookmark).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting bookmark: %w", err)
	}
	return &bookmark, nil
}

// ListBySessionAndUser retrieves the caller's bookmarks for a session
func (r *Repository) ListBySessionAndUser(ctx context.Context, sessionID, userID string) ([]models.Bookmark, error) {
	var result []models.Bookmark
	if err := r.db.WithContext(ctx).
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		Order("created_at ASC, id ASC").
		Find(&result).Error; err != nil {
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}
	return result, nil
}

// Update persists the bookmark; gorm refreshes UpdatedAt on save
func (r *Repository) Update(ctx context.Context, bookmark *models.Bookmark) error {
	result := r.db.WithContext(ctx).Save(bookmark)
	if result.Error != nil {
		return fmt.Errorf("updating bookmark: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a bookmark by its UUID
func (r *Repository) Delete(ctx context.Context, uuid string) error {
	result := r.db.WithContext(ctx).Where("uuid = ?", uuid).Delete(&models.Bookmark{})
	if result.Error != nil {
		return fmt.Errorf("deleting bookmark: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
