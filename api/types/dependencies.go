package types

import (
	"go.uber.org/zap"

	"github.com/dojohq/portal-api/internal/database"
	"github.com/dojohq/portal-api/internal/services/attendance"
	"github.com/dojohq/portal-api/internal/services/bookmarks"
	"github.com/dojohq/portal-api/internal/services/cache"
	"github.com/dojohq/portal-api/internal/services/events"
	"github.com/dojohq/portal-api/internal/services/sessions"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                *database.DB
	Logger            *zap.Logger
	Cache             cache.Cache
	BookmarkService   bookmarks.Service
	SessionService    sessions.Service
	EventService      events.Service
	AttendanceService attendance.Service
}
