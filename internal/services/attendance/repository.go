package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/dojohq/portal-api/internal/models"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new attendance repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateAttendance inserts a check-in record
func (r *RepositoryImpl) CreateAttendance(ctx context.Context, record *models.Attendance) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("creating attendance: %w", err)
	}
	return nil
}

// GetCheckInSince returns the member's check-in at or after the given
// instant, or nil when none exists
func (r *RepositoryImpl) GetCheckInSince(ctx context.Context, sessionID, userID string, since time.Time) (*models.Attendance, error) {
	var record models.Attendance
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND user_id = ? AND checked_in_at >= ?", sessionID, userID, since).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting check-in: %w", err)
	}
	return &record, nil
}

// ListBySessionAndUser returns the member's check-ins for a session
func (r *RepositoryImpl) ListBySessionAndUser(ctx context.Context, sessionID, userID string) ([]models.Attendance, error) {
	var result []models.Attendance
	if err := r.db.WithContext(ctx).
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		Order("checked_in_at ASC").
		Find(&result).Error; err != nil {
		return nil, fmt.Errorf("listing attendance: %w", err)
	}
	return result, nil
}
