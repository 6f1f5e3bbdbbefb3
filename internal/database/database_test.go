package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dojohq/portal-api/internal/models"
	"github.com/dojohq/portal-api/pkg/config"
)

func TestInitializeCreatesDirectoryAndConnects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portal.db")

	db, err := Initialize(config.DatabaseConfig{Path: path})
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	assert.NoError(t, db.HealthCheck())
	assert.FileExists(t, path)
}

func TestAutoMigrateAllModels(t *testing.T) {
	db, err := Initialize(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "portal.db"),
	})
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	assert.True(t, db.Migrator().HasTable("bookmarks"))
	assert.True(t, db.Migrator().HasTable("sessions"))
	assert.True(t, db.Migrator().HasTable("events"))
}

func TestHealthCheckAfterClose(t *testing.T) {
	db, err := Initialize(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "portal.db"),
	})
	require.NoError(t, err)

	require.NoError(t, db.Close())
	assert.Error(t, db.HealthCheck())
}

func TestHealthCheckNilReceiver(t *testing.T) {
	var db *DB
	assert.Error(t, db.HealthCheck())
}
