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

	"nutrition-booking/config"
	deliveryHttp "nutrition-booking/internal/delivery/http"
	"nutrition-booking/internal/delivery/http/handler"
	"nutrition-booking/internal/delivery/http/middleware"
	"nutrition-booking/internal/infrastructure/cache"
	"nutrition-booking/internal/infrastructure/database"
	"nutrition-booking/internal/repository"
	"nutrition-booking/internal/service"
	"nutrition-booking/internal/usecase"
	"nutrition-booking/pkg/jwt"
	"nutrition-booking/pkg/metrics"
	"nutrition-booking/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server

	locker     service.SlotLocker
	dispatcher *service.NotificationDispatcher
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	log, err := setupLogger(cfg.App.LogLevel)
	if err != nil {
		return nil, err
	}
	app.Log = log
	log.Info("Configuration loaded successfully")

	// Apply migrations
	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(cfg.DB, log); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis when a driver needs it
	if cache.RequiresRedis(cfg) {
		redisClient, err := cache.NewRedisClient(cfg.Redis, log)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
	}

	// Initialize all layers
	if err := app.initializeServer(); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) (*logrus.Logger, error) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(parsed)
	return logrus.StandardLogger(), nil
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer() error {
	cfg := app.Config
	log := app.Log

	loc, err := cfg.App.Location()
	if err != nil {
		return fmt.Errorf("failed to load timezone: %w", err)
	}

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	tx := repository.NewTransactor(app.DB)
	typeRepo := repository.NewAppointmentTypeRepository()
	slotRepo := repository.NewTimeSlotRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditRepo)
	app.locker = app.newSlotLocker()
	app.dispatcher = service.NewNotificationDispatcher(app.newEventPublisher(), cfg.Notify.Buffer, cfg.Notify.Workers, log, m)

	opts := usecase.BookingOptions{
		Location:            loc,
		ReserveTimeout:      cfg.Booking.ReserveTimeout,
		AvailabilityMaxDays: cfg.Booking.AvailabilityMaxDays,
	}

	// Initialize usecases
	typeUsecase := usecase.NewAppointmentTypeUsecase(tx, log, typeRepo, auditService)
	slotUsecase := usecase.NewTimeSlotUsecase(tx, log, slotRepo, appointmentRepo, typeRepo, auditService, app.locker, m, opts)
	availabilityUsecase := usecase.NewAvailabilityUsecase(tx, log, slotRepo, opts)
	appointmentUsecase := usecase.NewAppointmentUsecase(tx, log, appointmentRepo, slotRepo, typeRepo, auditService, app.locker, app.dispatcher, m, opts)
	auditLogUsecase := usecase.NewAuditLogUsecase(tx, log, auditRepo)

	if cfg.App.SeedAppointmentTypes {
		seeded, err := typeUsecase.SeedDefaults(context.Background())
		if err != nil {
			return fmt.Errorf("failed to seed appointment types: %w", err)
		}
		if seeded > 0 {
			log.Infof("Seeded %d default appointment types", seeded)
		}
	}

	// Initialize handlers
	typeHandler := handler.NewAppointmentTypeHandler(typeUsecase, customValidator)
	slotHandler := handler.NewTimeSlotHandler(slotUsecase, customValidator)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, app.RedisClient)
	corsMiddleware := middleware.NewCORSMiddleware()
	observabilityMiddleware := middleware.NewObservabilityMiddleware(log, m)

	// Initialize router
	router := deliveryHttp.NewRouter(
		typeHandler,
		slotHandler,
		availabilityHandler,
		appointmentHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		observabilityMiddleware,
	)
	if cfg.Metrics.Enabled {
		router.WithMetrics(cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	}
	httpRouter := router.Setup()

	// Create server
	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           httpRouter,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return nil
}

func (app *App) newSlotLocker() service.SlotLocker {
	if app.Config.Booking.LockDriver == config.LockDriverRedis {
		app.Log.Info("Using Redis slot locker")
		return service.NewRedisSlotLocker(app.RedisClient, app.Config.Booking.LockTTL, app.Log)
	}
	app.Log.Info("Using in-process slot locker")
	return service.NewMemorySlotLocker(app.Log)
}

func (app *App) newEventPublisher() service.EventPublisher {
	if app.Config.Notify.Driver == config.NotifyDriverRedis {
		app.Log.Infof("Publishing appointment events to Redis channel %s", app.Config.Notify.Channel)
		return service.NewRedisEventPublisher(app.RedisClient, app.Config.Notify.Channel)
	}
	return service.NewLogEventPublisher(app.Log)
}

// Run starts the HTTP server and blocks until a shutdown signal or a server failure
func (app *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		app.Log.Info("Shutting down server...")

		// Create shutdown context with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			app.Log.Errorf("Server forced to shutdown: %v", err)
		}
		return nil
	})

	err := g.Wait()

	// Close connections
	app.Close()
	app.Log.Info("Server shutdown complete")

	return err
}

// Close drains background workers, then closes all connections (database, redis)
func (app *App) Close() {
	if app.dispatcher != nil {
		app.dispatcher.Stop()
	}
	if app.locker != nil {
		app.locker.Stop()
	}

	// Close database connection
	if app.DB != nil {
		if err := database.Close(app.DB); err != nil {
			app.Log.Warnf("Failed to close database: %v", err)
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			app.Log.Warnf("Failed to close Redis: %v", err)
		}
	}
}
