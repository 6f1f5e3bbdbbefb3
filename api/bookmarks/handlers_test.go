package bookmarks_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookmarksapi "github.com/dojohq/portal-api/api/bookmarks"
	"github.com/dojohq/portal-api/api/types"
	"github.com/dojohq/portal-api/internal/models"
	"github.com/dojohq/portal-api/internal/services/bookmarks"
)

type BookmarkTestSuite struct {
	t       *testing.T
	service bookmarks.Service
	router  *gin.Engine
}

func setupBookmarkTestSuite(t *testing.T) *BookmarkTestSuite {
	gin.SetMode(gin.TestMode)

	service := bookmarks.NewService(bookmarks.NewMemoryStore())
	deps := &types.Dependencies{BookmarkService: service}

	router := gin.New()
	group := router.Group("/training")
	bookmarksapi.RegisterRoutes(group, deps)

	return &BookmarkTestSuite{
		t:       t,
		service: service,
		router:  router,
	}
}

func (suite *BookmarkTestSuite) createBookmark(sessionID, userID string, timestamp int, note string) *models.Bookmark {
	bookmark, err := suite.service.CreateBookmark(context.Background(), sessionID, userID, &timestamp, note)
	require.NoError(suite.t, err, "Failed to create test bookmark")
	return bookmark
}

func (suite *BookmarkTestSuite) do(method, url string, payload map[string]interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if payload != nil {
		body, _ := json.Marshal(payload)
		req = httptest.NewRequest(method, url, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func TestCreateBookmark(t *testing.T) {
	suite := setupBookmarkTestSuite(t)

	tests := []struct {
		name           string
		payload        map[string]interface{}
		expectedStatus int
		validateFunc   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful creation",
			payload: map[string]interface{}{
				"userId":    "u1",
				"timestamp": 250,
				"note":      "Armbar setup",
			},
			expectedStatus: http.StatusCreated,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response types.BookmarkCreatedResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.True(t, response.Success)
				require.NotNil(t, response.Bookmark)
				assert.NotEmpty(t, response.Bookmark.UUID)
				assert.Equal(t, "s1", response.Bookmark.SessionID)
				assert.Equal(t, "u1", response.Bookmark.UserID)
				assert.Equal(t, 250, response.Bookmark.Timestamp)
				assert.Equal(t, "Armbar setup", response.Bookmark.Note)
			},
		},
		{
			name: "zero timestamp is valid",
			payload: map[string]interface{}{
				"userId":    "u1",
				"timestamp": 0,
			},
			expectedStatus: http.StatusCreated,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response types.BookmarkCreatedResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				require.NotNil(t, response.Bookmark)
				assert.Equal(t, 0, response.Bookmark.Timestamp)
			},
		},
		{
			name: "missing note defaults to empty string",
			payload: map[string]interface{}{
				"userId":    "u1",
				"timestamp": 90,
			},
			expectedStatus: http.StatusCreated,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response types.BookmarkCreatedResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				require.NotNil(t, response.Bookmark)
				assert.Equal(t, "", response.Bookmark.Note)
			},
		},
		{
			name: "missing user ID",
			payload: map[string]interface{}{
				"timestamp": 10,
			},
			expectedStatus: http.StatusBadRequest,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				assertErrorBody(t, w, "User ID is required")
			},
		},
		{
			name: "missing user ID takes priority over missing timestamp",
			payload: map[string]interface{}{
				"note": "no identity",
			},
			expectedStatus: http.StatusBadRequest,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				assertErrorBody(t, w, "User ID is required")
			},
		},
		{
			name: "missing timestamp",
			payload: map[string]interface{}{
				"userId": "u1",
			},
			expectedStatus: http.StatusBadRequest,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				assertErrorBody(t, w, "Invalid timestamp")
			},
		},
		{
			name: "negative timestamp",
			payload: map[string]interface{}{
				"userId":    "u1",
				"timestamp": -5,
			},
			expectedStatus: http.StatusBadRequest,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				assertErrorBody(t, w, "Invalid timestamp")
			},
		},
		{
			name: "non-numeric timestamp",
			payload: map[string]interface{}{
				"userId":    "u1",
				"timestamp": "abc",
			},
			expectedStatus: http.StatusBadRequest,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				assertErrorBody(t, w, "Invalid timestamp")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := suite.do(http.MethodPost, "/training/s1/bookmarks", tt.payload)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateFunc != nil {
				tt.validateFunc(t, w)
			}
		})
	}
}

func TestCreateBookmarkGeneratesUniqueIDs(t *testing.T) {
	suite := setupBookmarkTestSuite(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		w := suite.do(http.MethodPost, "/training/s1/bookmarks", map[string]interface{}{
			"userId":    "u1",
			"timestamp": i,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var response types.BookmarkCreatedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.NotNil(t, response.Bookmark)
		assert.False(t, seen[response.Bookmark.UUID], "duplicate bookmark ID %s", response.Bookmark.UUID)
		seen[response.Bookmark.UUID] = true
	}
}

func TestListBookmarks(t *testing.T) {
	suite := setupBookmarkTestSuite(t)

	suite.createBookmark("s1", "u1", 10, "first")
	suite.createBookmark("s1", "u1", 20, "second")
	suite.createBookmark("s1", "u2", 30, "someone else")
	suite.createBookmark("s2", "u1", 40, "other session")

	tests := []struct {
		name           string
		url            string
		expectedStatus int
		validateFunc   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "filters by session and user",
			url:            "/training/s1/bookmarks?userId=u1",
			expectedStatus: http.StatusOK,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response types.BookmarkListResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, 2, response.Count)
				require.Len(t, response.Bookmarks, 2)
				assert.Equal(t, "first", response.Bookmarks[0].Note)
				assert.Equal(t, "second", response.Bookmarks[1].Note)
			},
		},
		{
			name:           "empty result for unknown session",
			url:            "/training/nope/bookmarks?userId=u1",
			expectedStatus: http.StatusOK,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response types.BookmarkListResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, 0, response.Count)
			},
		},
		{
			name:           "missing user ID",
			url:            "/training/s1/bookmarks",
			expectedStatus: http.StatusBadRequest,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				assertErrorBody(t, w, "User ID is required")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := suite.do(http.MethodGet, tt.url, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateFunc != nil {
				tt.validateFunc(t, w)
			}
		})
	}
}

func TestGetBookmark(t *testing.T) {
	suite := setupBookmarkTestSuite(t)
	bookmark := suite.createBookmark("s1", "u1", 120, "sweep detail")

	tests := []struct {
		name           string
		url            string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "owner reads own bookmark",
			url:            fmt.Sprintf("/training/s1/bookmarks/%s?userId=u1", bookmark.UUID),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing user ID",
			url:            fmt.Sprintf("/training/s1/bookmarks/%s", bookmark.UUID),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "User ID is required",
		},
		{
			name:           "unknown bookmark",
			url:            "/training/s1/bookmarks/does-not-exist?userId=u1",
			expectedStatus: http.StatusNotFound,
			expectedError:  "Bookmark not found",
		},
		{
			name:           "non-owner gets unauthorized, not not-found",
			url:            fmt.Sprintf("/training/s1/bookmarks/%s?userId=intruder", bookmark.UUID),
			expectedStatus: http.StatusForbidden,
			expectedError:  "Unauthorized",
		},
		{
			name:           "wrong session is a scope mismatch",
			url:            fmt.Sprintf("/training/s2/bookmarks/%s?userId=u1", bookmark.UUID),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Bookmark does not belong to this session",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := suite.do(http.MethodGet, tt.url, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assertErrorBody(t, w, tt.expectedError)
			} else {
				var response types.BookmarkResponse
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				require.NotNil(t, response.Bookmark)
				assert.Equal(t, "sweep detail", response.Bookmark.Note)
			}
		})
	}
}

func TestUpdateBookmark(t *testing.T) {
	suite := setupBookmarkTestSuite(t)
	bookmark := suite.createBookmark("s1", "u1", 250, "original")

	t.Run("updates note and refreshes updatedAt", func(t *testing.T) {
		w := suite.do(http.MethodPut,
			fmt.Sprintf("/training/s1/bookmarks/%s", bookmark.UUID),
			map[string]interface{}{"userId": "u1", "note": "revised"})

		assert.Equal(t, http.StatusOK, w.Code)

		var response types.BookmarkUpdatedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Success)
		require.NotNil(t, response.Bookmark)
		assert.Equal(t, "revised", response.Bookmark.Note)
		assert.Equal(t, 250, response.Bookmark.Timestamp)
		assert.False(t, response.Bookmark.UpdatedAt.Before(bookmark.UpdatedAt))
	})

	t.Run("timestamp in body is ignored", func(t *testing.T) {
		w := suite.do(http.MethodPut,
			fmt.Sprintf("/training/s1/bookmarks/%s", bookmark.UUID),
			map[string]interface{}{"userId": "u1", "note": "still here", "timestamp": 9999})

		assert.Equal(t, http.StatusOK, w.Code)

		var response types.BookmarkUpdatedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.NotNil(t, response.Bookmark)
		assert.Equal(t, 250, response.Bookmark.Timestamp)
	})

	t.Run("omitted note retains current value", func(t *testing.T) {
		w := suite.do(http.MethodPut,
			fmt.Sprintf("/training/s1/bookmarks/%s", bookmark.UUID),
			map[string]interface{}{"userId": "u1"})

		assert.Equal(t, http.StatusOK, w.Code)

		var response types.BookmarkUpdatedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.NotNil(t, response.Bookmark)
		assert.Equal(t, "still here", response.Bookmark.Note)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		w := suite.do(http.MethodPut,
			fmt.Sprintf("/training/s1/bookmarks/%s", bookmark.UUID),
			map[string]interface{}{"userId": "intruder", "note": "hijack"})

		assert.Equal(t, http.StatusForbidden, w.Code)
		assertErrorBody(t, w, "Unauthorized")
	})

	t.Run("unknown bookmark", func(t *testing.T) {
		w := suite.do(http.MethodPut,
			"/training/s1/bookmarks/does-not-exist",
			map[string]interface{}{"userId": "u1", "note": "x"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assertErrorBody(t, w, "Bookmark not found")
	})
}

func TestDeleteBookmark(t *testing.T) {
	suite := setupBookmarkTestSuite(t)
	bookmark := suite.createBookmark("s1", "u1", 60, "to delete")

	t.Run("non-owner cannot delete", func(t *testing.T) {
		w := suite.do(http.MethodDelete,
			fmt.Sprintf("/training/s1/bookmarks/%s", bookmark.UUID),
			map[string]interface{}{"userId": "intruder"})

		assert.Equal(t, http.StatusForbidden, w.Code)
		assertErrorBody(t, w, "Unauthorized")
	})

	t.Run("owner deletes", func(t *testing.T) {
		w := suite.do(http.MethodDelete,
			fmt.Sprintf("/training/s1/bookmarks/%s", bookmark.UUID),
			map[string]interface{}{"userId": "u1"})

		assert.Equal(t, http.StatusOK, w.Code)

		var response types.MessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.Equal(t, "Bookmark deleted successfully", response.Message)
	})

	t.Run("deleted bookmark is gone", func(t *testing.T) {
		w := suite.do(http.MethodGet,
			fmt.Sprintf("/training/s1/bookmarks/%s?userId=u1", bookmark.UUID), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assertErrorBody(t, w, "Bookmark not found")
	})

	t.Run("repeat delete is not found", func(t *testing.T) {
		w := suite.do(http.MethodDelete,
			fmt.Sprintf("/training/s1/bookmarks/%s", bookmark.UUID),
			map[string]interface{}{"userId": "u1"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assertErrorBody(t, w, "Bookmark not found")
	})
}

func assertErrorBody(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, expected, response["error"])
}
