package bookmarks

import (
	"github.com/gin-gonic/gin"

	"github.com/dojohq/portal-api/api/types"
)

// RegisterRoutes registers bookmark routes on the training group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:sessionId/bookmarks", ListBookmarks(deps))
	router.POST("/:sessionId/bookmarks", CreateBookmark(deps))

	router.GET("/:sessionId/bookmarks/:bookmarkId", GetBookmark(deps))
	router.PUT("/:sessionId/bookmarks/:bookmarkId", UpdateBookmark(deps))
	router.DELETE("/:sessionId/bookmarks/:bookmarkId", DeleteBookmark(deps))
}
