package events

import (
	"github.com/gin-gonic/gin"

	"github.com/dojohq/portal-api/api/types"
)

// RegisterRoutes registers event and RSVP routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListEvents(deps))
	router.GET("/:eventId", GetEvent(deps))

	router.POST("/:eventId/rsvp", CreateRSVP(deps))
	router.DELETE("/:eventId/rsvp", CancelRSVP(deps))
	router.GET("/:eventId/rsvps", ListRSVPs(deps))
}
