package attendance

import (
	"context"
	"sync"
	"time"

	"github.com/dojohq/portal-api/internal/models"
)

// ServiceImpl implements the Service interface. The mutex serializes the
// duplicate check against concurrent check-ins from the same member.
type ServiceImpl struct {
	repository Repository
	mu         sync.Mutex
}

// NewService creates a new attendance service
func NewService(repository Repository) *ServiceImpl {
	return &ServiceImpl{repository: repository}
}

// CheckIn records attendance for a training session. At most one check-in
// per (session, user) per UTC day; repeats return the existing record.
func (s *ServiceImpl) CheckIn(ctx context.Context, sessionID, userID string) (*models.Attendance, bool, error) {
	if userID == "" {
		return nil, false, ErrUserIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	dayStart := now.Truncate(24 * time.Hour)

	existing, err := s.repository.GetCheckInSince(ctx, sessionID, userID, dayStart)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	record := &models.Attendance{
		SessionID:   sessionID,
		UserID:      userID,
		CheckedInAt: now,
	}
	if err := s.repository.CreateAttendance(ctx, record); err != nil {
		return nil, false, err
	}
	return record, true, nil
}

// ListCheckIns returns the member's check-ins for a session
func (s *ServiceImpl) ListCheckIns(ctx context.Context, sessionID, userID string) ([]models.Attendance, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}
	return s.repository.ListBySessionAndUser(ctx, sessionID, userID)
}
