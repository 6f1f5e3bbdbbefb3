package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupModelTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(AllModels()...))
	return db
}

func TestAllModelsMigrate(t *testing.T) {
	db := setupModelTestDB(t)

	for _, table := range []string{"sessions", "events", "rsvps", "attendance", "bookmarks"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestBeforeCreateGeneratesUUIDs(t *testing.T) {
	db := setupModelTestDB(t)

	bookmark := &Bookmark{SessionID: "s1", UserID: "u1", Timestamp: 10}
	require.NoError(t, db.Create(bookmark).Error)
	assert.NotEmpty(t, bookmark.UUID)

	event := &Event{Title: "Seminar", StartsAt: time.Now()}
	require.NoError(t, db.Create(event).Error)
	assert.NotEmpty(t, event.UUID)

	session := &Session{Title: "Class"}
	require.NoError(t, db.Create(session).Error)
	assert.NotEmpty(t, session.UUID)

	// A preset UUID survives the hook.
	preset := &Bookmark{UUID: "fixed", SessionID: "s1", UserID: "u1"}
	require.NoError(t, db.Create(preset).Error)
	assert.Equal(t, "fixed", preset.UUID)
}

func TestBookmarkJSONShape(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	bookmark := Bookmark{
		ID:        42,
		UUID:      "abc-123",
		SessionID: "s1",
		UserID:    "u1",
		Timestamp: 250,
		Note:      "detail",
		CreatedAt: now,
		UpdatedAt: now,
	}

	data, err := json.Marshal(bookmark)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))

	// The row ID is internal; the UUID is exposed as "id".
	assert.NotContains(t, fields, "ID")
	assert.Equal(t, "abc-123", fields["id"])
	assert.Equal(t, "s1", fields["sessionId"])
	assert.Equal(t, "u1", fields["userId"])
	assert.Equal(t, float64(250), fields["timestamp"])
	assert.Equal(t, "detail", fields["note"])
	assert.Equal(t, "2026-08-23T12:00:00Z", fields["createdAt"])
}
