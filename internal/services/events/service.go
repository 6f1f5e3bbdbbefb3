package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dojohq/portal-api/internal/models"
	"github.com/dojohq/portal-api/internal/services/cache"
)

// ServiceImpl implements the Service interface. The mutex serializes the
// capacity check against concurrent RSVPs so a full event cannot oversell.
type ServiceImpl struct {
	repository Repository
	cache      cache.Cache
	cacheTTL   time.Duration
	mu         sync.Mutex
}

// NewService creates a new event service. cache may be nil to disable
// list caching.
func NewService(repository Repository, c cache.Cache, ttl time.Duration) *ServiceImpl {
	return &ServiceImpl{
		repository: repository,
		cache:      c,
		cacheTTL:   ttl,
	}
}

// ListEvents returns events in the given window, defaulting to upcoming
func (s *ServiceImpl) ListEvents(ctx context.Context, from, to time.Time) ([]models.Event, error) {
	if from.IsZero() {
		// Truncated so the default window shares a cache key within the
		// same minute
		from = time.Now().UTC().Truncate(time.Minute)
	}

	key := listCacheKey(from, to)
	if s.cache != nil {
		if data, ok := s.cache.Get(ctx, key); ok {
			var cached []models.Event
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	result, err := s.repository.ListEvents(ctx, from, to)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = s.cache.Set(ctx, key, data, s.cacheTTL)
		}
	}
	return result, nil
}

// GetEvent retrieves an event by its UUID
func (s *ServiceImpl) GetEvent(ctx context.Context, uuid string) (*models.Event, error) {
	return s.repository.GetEventByUUID(ctx, uuid)
}

// CreateRSVP registers the member for the event
func (s *ServiceImpl) CreateRSVP(ctx context.Context, eventUUID, userID string) (*models.RSVP, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.repository.GetEventByUUID(ctx, eventUUID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repository.GetRSVP(ctx, event.ID, userID)
	if err != nil && !errors.Is(err, ErrRSVPNotFound) {
		return nil, err
	}

	// An active RSVP is returned as-is; repeat POSTs are idempotent
	if existing != nil && existing.Status != models.RSVPStatusCancelled {
		return existing, nil
	}

	status, err := s.admissionStatus(ctx, event)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Status = status
		if err := s.repository.UpdateRSVP(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	rsvp := &models.RSVP{
		EventID:   event.ID,
		EventUUID: event.UUID,
		UserID:    userID,
		Status:    status,
	}
	if err := s.repository.CreateRSVP(ctx, rsvp); err != nil {
		return nil, err
	}
	return rsvp, nil
}

// CancelRSVP cancels the member's active RSVP for the event
func (s *ServiceImpl) CancelRSVP(ctx context.Context, eventUUID, userID string) error {
	if userID == "" {
		return ErrUserIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.repository.GetEventByUUID(ctx, eventUUID)
	if err != nil {
		return err
	}

	rsvp, err := s.repository.GetRSVP(ctx, event.ID, userID)
	if err != nil {
		return err
	}
	if rsvp.Status == models.RSVPStatusCancelled {
		return ErrRSVPNotFound
	}

	rsvp.Status = models.RSVPStatusCancelled
	return s.repository.UpdateRSVP(ctx, rsvp)
}

// ListRSVPs returns the member's RSVPs for an event
func (s *ServiceImpl) ListRSVPs(ctx context.Context, eventUUID, userID string) ([]models.RSVP, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}

	event, err := s.repository.GetEventByUUID(ctx, eventUUID)
	if err != nil {
		return nil, err
	}
	return s.repository.ListRSVPs(ctx, event.ID, userID)
}

// admissionStatus decides going vs waitlist from remaining capacity
func (s *ServiceImpl) admissionStatus(ctx context.Context, event *models.Event) (string, error) {
	if event.Capacity <= 0 {
		return models.RSVPStatusGoing, nil
	}
	going, err := s.repository.CountGoingRSVPs(ctx, event.ID)
	if err != nil {
		return "", err
	}
	if going >= int64(event.Capacity) {
		return models.RSVPStatusWaitlist, nil
	}
	return models.RSVPStatusGoing, nil
}

func listCacheKey(from, to time.Time) string {
	return fmt.Sprintf("events:list:%d:%d", from.Unix(), to.Unix())
}
