package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dojohq/portal-api/api/types"
	"github.com/dojohq/portal-api/internal/services/cache"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Report service, database, and cache health
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]interface{} "Health status"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		if deps != nil && deps.DB != nil {
			response["database"] = getDatabaseStatus(deps)
		} else {
			response["database"] = gin.H{"status": "not configured"}
		}

		if deps != nil && deps.Cache != nil {
			response["cache"] = getCacheStatus(c, deps)
		}

		c.JSON(http.StatusOK, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) gin.H {
	if deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}

// getCacheStatus reports cache health; only the Redis backend has a
// connection worth probing
func getCacheStatus(c *gin.Context, deps *types.Dependencies) gin.H {
	if rc, ok := deps.Cache.(*cache.RedisCache); ok {
		if err := rc.HealthCheck(c.Request.Context()); err != nil {
			return gin.H{"status": "unhealthy", "error": err.Error()}
		}
	}
	return gin.H{"status": "healthy"}
}
