package sessions

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dojohq/portal-api/internal/models"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new session repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// ListSessions returns the catalog ordered by most recently published
func (r *RepositoryImpl) ListSessions(ctx context.Context) ([]models.Session, error) {
	var result []models.Session
	if err := r.db.WithContext(ctx).
		Order("published_at DESC").
		Find(&result).Error; err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	return result, nil
}

// GetSessionByUUID retrieves a session by its UUID
func (r *RepositoryImpl) GetSessionByUUID(ctx context.Context, uuid string) (*models.Session, error) {
	var session models.Session
	if err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	return &session, nil
}
