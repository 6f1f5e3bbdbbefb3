package types

import "github.com/dojohq/portal-api/internal/models"

// ErrorResponse is the uniform error envelope: a single error string.
// Every failure maps to this shape, never a partial success.
type ErrorResponse struct {
	Error string `json:"error"`
}

// BookmarkListResponse for the bookmark collection resource
type BookmarkListResponse struct {
	Bookmarks []models.Bookmark `json:"bookmarks"`
	Count     int               `json:"count"`
}

// BookmarkCreatedResponse wraps a newly created bookmark
type BookmarkCreatedResponse struct {
	Success  bool             `json:"success"`
	Bookmark *models.Bookmark `json:"bookmark"`
}

// BookmarkResponse for getting a single bookmark
type BookmarkResponse struct {
	Bookmark *models.Bookmark `json:"bookmark"`
}

// BookmarkUpdatedResponse wraps an updated bookmark
type BookmarkUpdatedResponse struct {
	Success  bool             `json:"success"`
	Bookmark *models.Bookmark `json:"bookmark"`
}

// MessageResponse confirms a mutation with a human-readable message
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SessionListResponse for the training catalog
type SessionListResponse struct {
	Sessions []models.Session `json:"sessions"`
	Count    int              `json:"count"`
}

// SessionResponse for a single catalog entry
type SessionResponse struct {
	Session *models.Session `json:"session"`
}

// EventListResponse for event browsing
type EventListResponse struct {
	Events []models.Event `json:"events"`
	Count  int            `json:"count"`
}

// EventResponse for a single event
type EventResponse struct {
	Event *models.Event `json:"event"`
}

// RSVPResponse wraps a created or reactivated RSVP
type RSVPResponse struct {
	Success bool         `json:"success"`
	RSVP    *models.RSVP `json:"rsvp"`
}

// RSVPListResponse for a member's RSVPs on an event
type RSVPListResponse struct {
	RSVPs []models.RSVP `json:"rsvps"`
	Count int           `json:"count"`
}

// AttendanceResponse wraps a check-in record
type AttendanceResponse struct {
	Success    bool               `json:"success"`
	Attendance *models.Attendance `json:"attendance"`
}

// AttendanceListResponse for a member's check-ins on a session
type AttendanceListResponse struct {
	Attendance []models.Attendance `json:"attendance"`
	Count      int                 `json:"count"`
}
