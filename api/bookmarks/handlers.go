package bookmarks

import (
	"encoding/json"
	"errors"
	"math"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dojohq/portal-api/api/types"
	"github.com/dojohq/portal-api/internal/services/bookmarks"
)

type createBookmarkRequest struct {
	UserID string `json:"userId"`
	// Raw so that a non-numeric value maps to the invalid-timestamp error
	// instead of a generic bind failure
	Timestamp json.RawMessage `json:"timestamp"`
	Note      *string         `json:"note"`
}

type updateBookmarkRequest struct {
	UserID string  `json:"userId"`
	Note   *string `json:"note"`
	// A timestamp in the body is silently ignored; the field is immutable
}

type deleteBookmarkRequest struct {
	UserID string `json:"userId"`
}

// ListBookmarks retrieves the caller's bookmarks for a training session
// @Summary      List bookmarks for a session
// @Description  Retrieve all of the caller's bookmarks for a training session, in creation order
// @Tags         bookmarks
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        userId query string true "Caller's user ID"
// @Success      200 {object} types.BookmarkListResponse "Bookmarks and count"
// @Failure      400 {object} types.ErrorResponse "Missing user ID"
// @Router       /api/v1/training/{sessionId}/bookmarks [get]
func ListBookmarks(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionId")
		userID := c.Query("userId")

		result, err := deps.BookmarkService.ListBookmarks(c.Request.Context(), sessionID, userID)
		if err != nil {
			respondError(c, deps, err)
			return
		}

		types.SendSuccess(c, types.BookmarkListResponse{
			Bookmarks: result,
			Count:     len(result),
		})
	}
}

// CreateBookmark creates a new bookmark in a training session
// @Summary      Create bookmark
// @Description  Save a timestamped note marker within a training session's video
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        bookmark body createBookmarkRequest true "Bookmark data (userId, timestamp, note)"
// @Success      201 {object} types.BookmarkCreatedResponse "Created bookmark"
// @Failure      400 {object} types.ErrorResponse "Missing user ID or invalid timestamp"
// @Router       /api/v1/training/{sessionId}/bookmarks [post]
func CreateBookmark(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionId")

		var req createBookmarkRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		note := ""
		if req.Note != nil {
			note = *req.Note
		}

		bookmark, err := deps.BookmarkService.CreateBookmark(
			c.Request.Context(), sessionID, req.UserID, parseTimestamp(req.Timestamp), note)
		if err != nil {
			respondError(c, deps, err)
			return
		}

		types.SendCreated(c, types.BookmarkCreatedResponse{
			Success:  true,
			Bookmark: bookmark,
		})
	}
}

// GetBookmark retrieves one bookmark after ownership checks
// @Summary      Get bookmark
// @Description  Retrieve a single bookmark; the caller must own it and address it through its session
// @Tags         bookmarks
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        bookmarkId path string true "Bookmark ID"
// @Param        userId query string true "Caller's user ID"
// @Success      200 {object} types.BookmarkResponse "Bookmark"
// @Failure      400 {object} types.ErrorResponse "Missing user ID or wrong session"
// @Failure      403 {object} types.ErrorResponse "Not the owner"
// @Failure      404 {object} types.ErrorResponse "Bookmark not found"
// @Router       /api/v1/training/{sessionId}/bookmarks/{bookmarkId} [get]
func GetBookmark(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionId")
		bookmarkID := c.Param("bookmarkId")
		userID := c.Query("userId")

		bookmark, err := deps.BookmarkService.GetBookmark(c.Request.Context(), sessionID, bookmarkID, userID)
		if err != nil {
			respondError(c, deps, err)
			return
		}

		types.SendSuccess(c, types.BookmarkResponse{Bookmark: bookmark})
	}
}

// UpdateBookmark updates a bookmark's note
// @Summary      Update bookmark
// @Description  Change a bookmark's note; the timestamp is immutable and updatedAt is always refreshed
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        bookmarkId path string true "Bookmark ID"
// @Param        bookmark body updateBookmarkRequest true "Update data (userId, note)"
// @Success      200 {object} types.BookmarkUpdatedResponse "Updated bookmark"
// @Failure      400 {object} types.ErrorResponse "Missing user ID or wrong session"
// @Failure      403 {object} types.ErrorResponse "Not the owner"
// @Failure      404 {object} types.ErrorResponse "Bookmark not found"
// @Router       /api/v1/training/{sessionId}/bookmarks/{bookmarkId} [put]
func UpdateBookmark(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionId")
		bookmarkID := c.Param("bookmarkId")

		var req updateBookmarkRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		bookmark, err := deps.BookmarkService.UpdateBookmark(
			c.Request.Context(), sessionID, bookmarkID, req.UserID, req.Note)
		if err != nil {
			respondError(c, deps, err)
			return
		}

		types.SendSuccess(c, types.BookmarkUpdatedResponse{
			Success:  true,
			Bookmark: bookmark,
		})
	}
}

// DeleteBookmark removes a bookmark
// @Summary      Delete bookmark
// @Description  Permanently remove a bookmark; the caller must own it
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        bookmarkId path string true "Bookmark ID"
// @Param        body body deleteBookmarkRequest true "Caller identity (userId)"
// @Success      200 {object} types.MessageResponse "Deletion confirmation"
// @Failure      400 {object} types.ErrorResponse "Missing user ID or wrong session"
// @Failure      403 {object} types.ErrorResponse "Not the owner"
// @Failure      404 {object} types.ErrorResponse "Bookmark not found"
// @Router       /api/v1/training/{sessionId}/bookmarks/{bookmarkId} [delete]
func DeleteBookmark(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionId")
		bookmarkID := c.Param("bookmarkId")

		var req deleteBookmarkRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if err := deps.BookmarkService.DeleteBookmark(
			c.Request.Context(), sessionID, bookmarkID, req.UserID); err != nil {
			respondError(c, deps, err)
			return
		}

		types.SendSuccess(c, types.MessageResponse{
			Success: true,
			Message: "Bookmark deleted successfully",
		})
	}
}

// parseTimestamp extracts a non-null numeric timestamp from the raw body
// value. Missing, null, or non-numeric values all come back nil and are
// rejected by the service as invalid.
func parseTimestamp(raw json.RawMessage) *int {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	// Floor keeps fractional negatives negative so they stay rejected
	ts := int(math.Floor(f))
	return &ts
}

// respondError maps service errors onto the documented envelopes. The four
// client errors stay distinguishable; everything else is a 500.
func respondError(c *gin.Context, deps *types.Dependencies, err error) {
	switch {
	case errors.Is(err, bookmarks.ErrUserIDRequired),
		errors.Is(err, bookmarks.ErrInvalidTimestamp),
		errors.Is(err, bookmarks.ErrSessionMismatch):
		types.SendBadRequest(c, err.Error())
	case errors.Is(err, bookmarks.ErrNotFound):
		types.SendNotFound(c, err.Error())
	case errors.Is(err, bookmarks.ErrUnauthorized):
		types.SendForbidden(c, err.Error())
	default:
		if deps.Logger != nil {
			deps.Logger.Error("bookmark handler failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
		}
		types.SendInternalError(c, "Internal server error")
	}
}
