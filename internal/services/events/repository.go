package events

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

// NewRepository creates a new event repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// ListEvents returns events starting within [from, to), soonest first
func (r *RepositoryImpl) ListEvents(ctx context.Context, from, to time.Time) ([]models.Event, error) {
	query := r.db.WithContext(ctx).Where("starts_at >= ?", from)
	if !to.IsZero() {
		query = query.Where("starts_at < ?", to)
	}

	var result []models.Event
	if err := query.Order("starts_at ASC").Find(&result).Error; err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return result, nil
}

// GetEventByUUID retrieves an event by its UUID
func (r *RepositoryImpl) GetEventByUUID(ctx context.Context, uuid string) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("getting event: %w", err)
	}
	return &event, nil
}

// CountGoingRSVPs counts confirmed attendees for capacity checks
func (r *RepositoryImpl) CountGoingRSVPs(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RSVP{}).
		Where("event_id = ? AND status = ?", eventID, models.RSVPStatusGoing).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting RSVPs: %w", err)
	}
	return count, nil
}

// GetRSVP retrieves a member's RSVP row for an event, whatever its status
func (r *RepositoryImpl) GetRSVP(ctx context.Context, eventID uint, userID string) (*models.RSVP, error) {
	var rsvp models.RSVP
	if err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&rsvp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRSVPNotFound
		}
		return nil, fmt.Errorf("getting RSVP: %w", err)
	}
	return &rsvp, nil
}

// CreateRSVP creates a new RSVP row
func (r *RepositoryImpl) CreateRSVP(ctx context.Context, rsvp *models.RSVP) error {
	if err := r.db.WithContext(ctx).Create(rsvp).Error; err != nil {
		return fmt.Errorf("creating RSVP: %w", err)
	}
	return nil
}

// UpdateRSVP persists status changes to an existing RSVP
func (r *RepositoryImpl) UpdateRSVP(ctx context.Context, rsvp *models.RSVP) error {
	result := r.db.WithContext(ctx).Save(rsvp)
	if result.Error != nil {
		return fmt.Errorf("updating RSVP: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRSVPNotFound
	}
	return nil
}

// ListRSVPs returns a member's RSVPs for an event
func (r *RepositoryImpl) ListRSVPs(ctx context.Context, eventID uint, userID string) ([]models.RSVP, error) {
	var result []models.RSVP
	if err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Order("created_at ASC").
		Find(&result).Error; err != nil {
		return nil, fmt.Errorf("listing RSVPs: %w", err)
	}
	return result, nil
}
