package sessions

import (
	"github.com/gin-gonic/gin"

	"github.com/dojohq/portal-api/api/types"
)

// RegisterRoutes registers training catalog routes on the training group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListSessions(deps))
	router.GET("/:sessionId", GetSession(deps))
}
