package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		setDefaults()

		// Environment variable overrides, e.g. DOJO_SERVER_PORT
		viper.SetEnvPrefix("DOJO")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// A missing config file is fine - defaults and env vars apply
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func setDefaults() {
	viper.SetDefault("environment", "development")

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.idle_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1<<20)

	viper.SetDefault("database.path", "./data/portal.db")
	viper.SetDefault("database.max_connections", 100)
	viper.SetDefault("database.max_idle_connections", 10)
	viper.SetDefault("database.connection_max_lifetime", time.Hour)
	viper.SetDefault("database.log_queries", false)

	viper.SetDefault("bookmarks.store", "memory")

	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.ttl", 5*time.Minute)
	viper.SetDefault("cache.max_size_mb", 16)
	viper.SetDefault("cache.redis.addr", "localhost:6379")
	viper.SetDefault("cache.redis.db", 0)
	viper.SetDefault("cache.redis.dial_timeout", 5*time.Second)
	viper.SetDefault("cache.redis.read_timeout", 3*time.Second)
	viper.SetDefault("cache.redis.write_timeout", 3*time.Second)
	viper.SetDefault("cache.redis.pool_size", 10)

	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.rps", 10)
	viper.SetDefault("rate_limiting.burst", 20)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.json", false)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	switch store := viper.GetString("bookmarks.store"); store {
	case "memory", "database":
	default:
		return fmt.Errorf("invalid bookmarks store: %q (want memory or database)", store)
	}

	switch backend := viper.GetString("cache.backend"); backend {
	case "memory", "redis", "none":
	default:
		return fmt.Errorf("invalid cache backend: %q (want memory, redis, or none)", backend)
	}

	// Auto-correct nonsensical rate limit values instead of failing startup
	if viper.GetInt("rate_limiting.rps") <= 0 {
		viper.Set("rate_limiting.rps", 10)
	}
	if viper.GetInt("rate_limiting.burst") <= 0 {
		viper.Set("rate_limiting.burst", 20)
	}

	return nil
}
