package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-voice-tools/config"
	deliveryHttp "clinic-voice-tools/internal/delivery/http"
	"clinic-voice-tools/internal/delivery/http/handler"
	"clinic-voice-tools/internal/delivery/http/middleware"
	"clinic-voice-tools/internal/infrastructure/cache"
	"clinic-voice-tools/internal/infrastructure/database"
	"clinic-voice-tools/internal/infrastructure/metrics"
	"clinic-voice-tools/internal/repository"
	"clinic-voice-tools/internal/resolver"
	"clinic-voice-tools/internal/service"
	"clinic-voice-tools/internal/usecase"
	"clinic-voice-tools/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App wires the tool server and the stores it reads.
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Directory   service.DoctorDirectory
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
// and the doctor directory seeded.
func New(ctx context.Context, envFile string) (*App, error) {
	app := &App{}

	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	setupLogger(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewConnection(cfg.DB, logrus.IsLevelEnabled(logrus.DebugLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
	}

	app.Directory = newDirectory(cfg, db, app.RedisClient)
	if err := app.Directory.Initialize(ctx); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to initialize doctor directory: %w", err)
	}
	logrus.Info("Doctor directory ready")

	app.Server = initializeServer(cfg, app.Directory)

	return app, nil
}

func setupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

func newDirectory(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) service.DoctorDirectory {
	log := logrus.StandardLogger()

	directory := service.NewDoctorDirectory(db, log, repository.NewDoctorRepository(), validator.NewValidator(), service.SeedDoctors)
	if redisClient == nil {
		return directory
	}
	return service.NewCachedDoctorDirectory(directory, redisClient, log, cfg.Redis.CacheTTL)
}

func initializeServer(cfg *config.Config, directory service.DoctorDirectory) *http.Server {
	log := logrus.StandardLogger()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	toolMetrics := metrics.NewToolMetrics(registry)

	toolUsecase := usecase.NewToolUsecase(
		log,
		directory,
		resolver.NewTermResolver(resolver.DefaultTermRules),
		resolver.NewTimeNormalizer(resolver.DefaultTimeRules),
		toolMetrics,
	)

	toolHandler := handler.NewToolHandler(toolUsecase, toolMetrics, log)

	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins)
	requestLoggerMiddleware := middleware.NewRequestLoggerMiddleware(log)

	router := deliveryHttp.NewRouter(toolHandler, corsMiddleware, requestLoggerMiddleware, registry)

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

const shutdownTimeout = 10 * time.Second

// Run serves until SIGINT or SIGTERM, then shuts down.
func (app *App) Run() {
	go func() {
		logrus.WithField("env", app.Config.App.Env).Infof("Server starting on port %s", app.Config.App.Port)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logrus.Infof("Received %s, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}
	logrus.Info("Server shutdown complete")
}

// Shutdown drains in-flight tool calls and releases the stores. The stores
// are released even when draining times out.
func (app *App) Shutdown(ctx context.Context) error {
	defer app.Close()
	if app.Server == nil {
		return nil
	}
	return app.Server.Shutdown(ctx)
}

// Close releases the database and Redis handles.
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
