package attendance

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dojohq/portal-api/api/types"
	"github.com/dojohq/portal-api/internal/services/attendance"
)

type checkInRequest struct {
	UserID string `json:"userId"`
}

// CheckIn records attendance for a training session
// @Summary      Check in to a session
// @Description  Record the caller's attendance; repeat check-ins within the same UTC day return the existing record
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        body body checkInRequest true "Caller identity (userId)"
// @Success      201 {object} types.AttendanceResponse "New check-in"
// @Success      200 {object} types.AttendanceResponse "Existing same-day check-in"
// @Failure      400 {object} types.ErrorResponse "Missing user ID"
// @Router       /api/v1/training/{sessionId}/attendance [post]
func CheckIn(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionId")

		var req checkInRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		record, created, err := deps.AttendanceService.CheckIn(c.Request.Context(), sessionID, req.UserID)
		if err != nil {
			respondError(c, deps, err)
			return
		}

		response := types.AttendanceResponse{Success: true, Attendance: record}
		if created {
			types.SendCreated(c, response)
			return
		}
		types.SendSuccess(c, response)
	}
}

// ListCheckIns retrieves the caller's check-ins for a session
// @Summary      List check-ins
// @Description  Retrieve the caller's attendance records for a training session
// @Tags         attendance
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        userId query string true "Caller's user ID"
// @Success      200 {object} types.AttendanceListResponse "Check-ins and count"
// @Failure      400 {object} types.ErrorResponse "Missing user ID"
// @Router       /api/v1/training/{sessionId}/attendance [get]
func ListCheckIns(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionId")
		userID := c.Query("userId")

		result, err := deps.AttendanceService.ListCheckIns(c.Request.Context(), sessionID, userID)
		if err != nil {
			respondError(c, deps, err)
			return
		}

		types.SendSuccess(c, types.AttendanceListResponse{
			Attendance: result,
			Count:      len(result),
		})
	}
}

func respondError(c *gin.Context, deps *types.Dependencies, err error) {
	if errors.Is(err, attendance.ErrUserIDRequired) {
		types.SendBadRequest(c, err.Error())
		return
	}
	if deps.Logger != nil {
		deps.Logger.Error("attendance handler failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	types.SendInternalError(c, "Internal server error")
}
