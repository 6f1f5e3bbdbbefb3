package sessions

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dojohq/portal-api/api/types"
	"github.com/dojohq/portal-api/internal/services/sessions"
)

// ListSessions retrieves the training catalog
// @Summary      List training sessions
// @Description  Retrieve the training-session catalog, most recently published first
// @Tags         training
// @Produce      json
// @Success      200 {object} types.SessionListResponse "Sessions and count"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/training [get]
func ListSessions(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := deps.SessionService.ListSessions(c.Request.Context())
		if err != nil {
			if deps.Logger != nil {
				deps.Logger.Error("listing sessions failed", zap.Error(err))
			}
			types.SendInternalError(c, "Failed to retrieve sessions")
			return
		}

		types.SendSuccess(c, types.SessionListResponse{
			Sessions: result,
			Count:    len(result),
		})
	}
}

// GetSession retrieves one catalog entry
// @Summary      Get training session
// @Description  Retrieve a single training session by ID
// @Tags         training
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} types.SessionResponse "Session"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/training/{sessionId} [get]
func GetSession(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := deps.SessionService.GetSession(c.Request.Context(), c.Param("sessionId"))
		if err != nil {
			if errors.Is(err, sessions.ErrNotFound) {
				types.SendNotFound(c, err.Error())
				return
			}
			if deps.Logger != nil {
				deps.Logger.Error("getting session failed", zap.Error(err))
			}
			types.SendInternalError(c, "Failed to retrieve session")
			return
		}

		types.SendSuccess(c, types.SessionResponse{Session: session})
	}
}
