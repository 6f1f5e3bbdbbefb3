package sessions

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dojohq/portal-api/internal/models"
	"github.com/dojohq/portal-api/internal/services/cache"
)

const listCacheKey = "sessions:list"

// ServiceImpl implements the Service interface. The list read is cached:
// the catalog changes rarely and backs the portal's browse page.
type ServiceImpl struct {
	repository Repository
	cache      cache.Cache
	cacheTTL   time.Duration
}

// NewService creates a new session service. cache may be nil to disable
// list caching.
func NewService(repository Repository, c cache.Cache, ttl time.Duration) Service {
	return &ServiceImpl{
		repository: repository,
		cache:      c,
		cacheTTL:   ttl,
	}
}

// ListSessions returns the training catalog, cache first
func (s *ServiceImpl) ListSessions(ctx context.Context) ([]models.Session, error) {
	if s.cache != nil {
		if data, ok := s.cache.Get(ctx, listCacheKey); ok {
			var cached []models.Session
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
			// Corrupt entry; fall through to the repository
		}
	}

	result, err := s.repository.ListSessions(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = s.cache.Set(ctx, listCacheKey, data, s.cacheTTL)
		}
	}
	return result, nil
}

// GetSession retrieves a session by its UUID
func (s *ServiceImpl) GetSession(ctx context.Context, uuid string) (*models.Session, error) {
	return s.repository.GetSessionByUUID(ctx, uuid)
}
