package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dojohq/portal-api/api"
	"github.com/dojohq/portal-api/api/types"
	"github.com/dojohq/portal-api/internal/database"
	"github.com/dojohq/portal-api/internal/logging"
	"github.com/dojohq/portal-api/internal/models"
	"github.com/dojohq/portal-api/internal/services/cache"
	"github.com/dojohq/portal-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Dojo Portal API server with the configured settings.

Example:
  portal-api serve
  portal-api serve --port 9090
  portal-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return err
	}
	logger.Info("database ready", zap.String("path", cfg.Database.Path))

	appCache, err := buildCache(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		switch c := appCache.(type) {
		case *cache.MemoryCache:
			c.Stop()
		case *cache.RedisCache:
			_ = c.Close()
		}
	}()

	deps := &types.Dependencies{
		DB:     db,
		Logger: logger,
		Cache:  appCache,
	}

	address := fmt.Sprintf("%s:%d", serverHost, serverPort)
	server := api.NewServer(api.Options{
		Address:        address,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	})
	server.SetLogger(logger)
	server.SetDatabase(db)
	server.SetDependencies(deps)

	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	logger.Info("server ready", zap.String("address", address))

	select {
	case <-stop:
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		logger.Error("server failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
		return err
	}

	logger.Info("server stopped")
	return nil
}

// buildCache constructs the configured read-cache backend
func buildCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case "redis":
		rc, err := cache.NewRedisCache(ctx, cfg.Cache.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis cache: %w", err)
		}
		logger.Info("redis cache ready", zap.String("addr", cfg.Cache.Redis.Addr))
		return rc, nil
	case "none":
		return nil, nil
	default:
		return cache.NewMemoryCache(cfg.Cache.MaxSizeMB), nil
	}
}
