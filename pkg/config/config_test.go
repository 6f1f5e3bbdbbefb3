package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAppliesDefaults(t *testing.T) {
	// Init is once-only per process; the test binary runs from pkg/config
	// where no settings file exists, so defaults apply.
	require.NoError(t, Init())

	assert.Equal(t, "development", GetString("environment"))
	assert.Equal(t, "0.0.0.0", GetString("server.host"))
	assert.Equal(t, 8080, GetInt("server.port"))
	assert.Equal(t, 30*time.Second, GetDuration("server.read_timeout"))
	assert.Equal(t, 10*time.Second, GetDuration("server.shutdown_timeout"))

	assert.Equal(t, "./data/portal.db", GetString("database.path"))
	assert.Equal(t, 100, GetInt("database.max_connections"))

	assert.Equal(t, "memory", GetString("bookmarks.store"))
	assert.Equal(t, "memory", GetString("cache.backend"))
	assert.Equal(t, 5*time.Minute, GetDuration("cache.ttl"))

	assert.True(t, GetBool("rate_limiting.enabled"))
	assert.Equal(t, 10, GetInt("rate_limiting.rps"))
	assert.Equal(t, 20, GetInt("rate_limiting.burst"))

	assert.Equal(t, "info", GetString("logging.level"))
	assert.False(t, GetBool("logging.json"))
}

func TestGetConfigUnmarshals(t *testing.T) {
	require.NoError(t, Init())

	cfg, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Bookmarks.Store)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, "localhost:6379", cfg.Cache.Redis.Addr)
	assert.Equal(t, time.Hour, cfg.Database.ConnectionMaxLifetime)
}

func TestValidateRejectsBadValues(t *testing.T) {
	require.NoError(t, Init())

	t.Run("bad port", func(t *testing.T) {
		viper.Set("server.port", 0)
		defer viper.Set("server.port", 8080)
		assert.Error(t, validate())
	})

	t.Run("bad bookmarks store", func(t *testing.T) {
		viper.Set("bookmarks.store", "tape")
		defer viper.Set("bookmarks.store", "memory")
		assert.Error(t, validate())
	})

	t.Run("bad cache backend", func(t *testing.T) {
		viper.Set("cache.backend", "memcached")
		defer viper.Set("cache.backend", "memory")
		assert.Error(t, validate())
	})

	t.Run("rate limits are auto-corrected", func(t *testing.T) {
		viper.Set("rate_limiting.rps", -1)
		viper.Set("rate_limiting.burst", 0)
		require.NoError(t, validate())
		assert.Equal(t, 10, GetInt("rate_limiting.rps"))
		assert.Equal(t, 20, GetInt("rate_limiting.burst"))
	})
}
