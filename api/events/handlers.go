package events

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dojohq/portal-api/api/types"
	"github.com/dojohq/portal-api/internal/services/events"
)

type rsvpRequest struct {
	UserID string `json:"userId"`
}

// ListEvents retrieves events within an optional date range
// @Summary      List events
// @Description  Browse association events; from/to bound the window (RFC3339), defaulting to upcoming
// @Tags         events
// @Produce      json
// @Param        from query string false "Range start (RFC3339)"
// @Param        to query string false "Range end (RFC3339, exclusive)"
// @Success      200 {object} types.EventListResponse "Events and count"
// @Failure      400 {object} types.ErrorResponse "Invalid range bound"
// @Router       /api/v1/events [get]
func ListEvents(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, ok := parseTimeQuery(c, "from")
		if !ok {
			return
		}
		to, ok := parseTimeQuery(c, "to")
		if !ok {
			return
		}

		result, err := deps.EventService.ListEvents(c.Request.Context(), from, to)
		if err != nil {
			if deps.Logger != nil {
				deps.Logger.Error("listing events failed", zap.Error(err))
			}
			types.SendInternalError(c, "Failed to retrieve events")
			return
		}

		types.SendSuccess(c, types.EventListResponse{
			Events: result,
			Count:  len(result),
		})
	}
}

// GetEvent retrieves one event
// @Summary      Get event
// @Description  Retrieve a single event by ID
// @Tags         events
// @Produce      json
// @Param        eventId path string true "Event ID"
// @Success      200 {object} types.EventResponse "Event"
// @Failure      404 {object} types.ErrorResponse "Event not found"
// @Router       /api/v1/events/{eventId} [get]
func GetEvent(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := deps.EventService.GetEvent(c.Request.Context(), c.Param("eventId"))
		if err != nil {
			respondError(c, deps, err)
			return
		}

		types.SendSuccess(c, types.EventResponse{Event: event})
	}
}

// CreateRSVP registers the caller for an event
// @Summary      RSVP to an event
// @Description  Register for an event; full events yield a waitlist RSVP, and a cancelled RSVP is reactivated
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventId path string true "Event ID"
// @Param        body body rsvpRequest true "Caller identity (userId)"
// @Success      201 {object} types.RSVPResponse "RSVP with status going or waitlist"
// @Failure      400 {object} types.ErrorResponse "Missing user ID"
// @Failure      404 {object} types.ErrorResponse "Event not found"
// @Router       /api/v1/events/{eventId}/rsvp [post]
func CreateRSVP(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID := c.Param("eventId")

		var req rsvpRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		rsvp, err := deps.EventService.CreateRSVP(c.Request.Context(), eventID, req.UserID)
		if err != nil {
			respondError(c, deps, err)
			return
		}

		types.SendCreated(c, types.RSVPResponse{Success: true, RSVP: rsvp})
	}
}

// CancelRSVP cancels the caller's active RSVP
// @Summary      Cancel RSVP
// @Description  Cancel the caller's active RSVP for an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventId path string true "Event ID"
// @Param        body body rsvpRequest true "Caller identity (userId)"
// @Success      200 {object} types.MessageResponse "Cancellation confirmation"
// @Failure      400 {object} types.ErrorResponse "Missing user ID"
// @Failure      404 {object} types.ErrorResponse "Event or active RSVP not found"
// @Router       /api/v1/events/{eventId}/rsvp [delete]
func CancelRSVP(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID := c.Param("eventId")

		var req rsvpRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if err := deps.EventService.CancelRSVP(c.Request.Context(), eventID, req.UserID); err != nil {
			respondError(c, deps, err)
			return
		}

		types.SendSuccess(c, types.MessageResponse{
			Success: true,
			Message: "RSVP cancelled",
		})
	}
}

// ListRSVPs retrieves the caller's RSVPs for an event
// @Summary      List RSVPs
// @Description  Retrieve the caller's RSVPs for an event
// @Tags         events
// @Produce      json
// @Param        eventId path string true "Event ID"
// @Param        userId query string true "Caller's user ID"
// @Success      200 {object} types.RSVPListResponse "RSVPs and count"
// @Failure      400 {object} types.ErrorResponse "Missing user ID"
// @Failure      404 {object} types.ErrorResponse "Event not found"
// @Router       /api/v1/events/{eventId}/rsvps [get]
func ListRSVPs(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID := c.Param("eventId")
		userID := c.Query("userId")

		result, err := deps.EventService.ListRSVPs(c.Request.Context(), eventID, userID)
		if err != nil {
			respondError(c, deps, err)
			return
		}

		types.SendSuccess(c, types.RSVPListResponse{
			RSVPs: result,
			Count: len(result),
		})
	}
}

// parseTimeQuery reads an optional RFC3339 query parameter. Responds with a
// 400 and returns false when the value is present but malformed.
func parseTimeQuery(c *gin.Context, name string) (time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		types.SendBadRequest(c, "Invalid "+name)
		return time.Time{}, false
	}
	return t, true
}

func respondError(c *gin.Context, deps *types.Dependencies, err error) {
	switch {
	case errors.Is(err, events.ErrUserIDRequired):
		types.SendBadRequest(c, err.Error())
	case errors.Is(err, events.ErrEventNotFound), errors.Is(err, events.ErrRSVPNotFound):
		types.SendNotFound(c, err.Error())
	default:
		if deps.Logger != nil {
			deps.Logger.Error("event handler failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
		}
		types.SendInternalError(c, "Internal server error")
	}
}
