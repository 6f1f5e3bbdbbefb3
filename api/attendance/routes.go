package attendance

import (
	"github.com/gin-gonic/gin"

	"github.com/dojohq/portal-api/api/types"
)

// RegisterRoutes registers attendance routes on the training group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/:sessionId/attendance", CheckIn(deps))
	router.GET("/:sessionId/attendance", ListCheckIns(deps))
}
