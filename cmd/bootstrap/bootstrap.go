package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"health-monitoring-api/config"
	deliveryHttp "health-monitoring-api/internal/delivery/http"
	"health-monitoring-api/internal/delivery/http/handler"
	"health-monitoring-api/internal/delivery/http/middleware"
	"health-monitoring-api/internal/infrastructure/cache"
	"health-monitoring-api/internal/infrastructure/database"
	"health-monitoring-api/internal/repository"
	"health-monitoring-api/internal/service"
	"health-monitoring-api/internal/usecase"
	"health-monitoring-api/pkg/jwt"
	"health-monitoring-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply schema migrations before opening the pool
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	patientProfileRepo := repository.NewPatientProfileRepository()
	consultationRepo := repository.NewConsultationRepository()
	labOrderRepo := repository.NewLabOrderRepository()
	labResultRepo := repository.NewLabResultRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	conversationRepo := repository.NewConversationRepository()
	messageRepo := repository.NewMessageRepository()
	vitalRepo := repository.NewVitalRepository()
	medicationRepo := repository.NewMedicationRepository()
	alertRepo := repository.NewAlertRepository()
	doctorScheduleRepo := repository.NewDoctorScheduleRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, doctorProfileRepo, patientProfileRepo, auditService, jwtService, redisClient)
	doctorDashboardUsecase := usecase.NewDoctorDashboardUsecase(db, log, doctorProfileRepo, patientProfileRepo, consultationRepo, labOrderRepo, appointmentRepo, conversationRepo, messageRepo, alertRepo)
	doctorPatientUsecase := usecase.NewDoctorPatientUsecase(db, log, doctorProfileRepo, patientProfileRepo, consultationRepo, labOrderRepo, appointmentRepo, medicationRepo, vitalRepo)
	consultationUsecase := usecase.NewConsultationUsecase(db, log, doctorProfileRepo, patientProfileRepo, consultationRepo, labOrderRepo, labResultRepo, appointmentRepo, auditService)
	messagingUsecase := usecase.NewMessagingUsecase(db, log, doctorProfileRepo, patientProfileRepo, conversationRepo, messageRepo, auditService)
	doctorScheduleUsecase := usecase.NewDoctorScheduleUsecase(db, log, doctorProfileRepo, doctorScheduleRepo, auditService)
	patientDashboardUsecase := usecase.NewPatientDashboardUsecase(db, log, patientProfileRepo, vitalRepo, appointmentRepo, medicationRepo)
	patientAppointmentUsecase := usecase.NewPatientAppointmentUsecase(db, log, patientProfileRepo, appointmentRepo, auditService)
	patientHealthUsecase := usecase.NewPatientHealthUsecase(db, log, patientProfileRepo, vitalRepo, medicationRepo, labResultRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorDashboardUsecase, doctorPatientUsecase)
	consultationHandler := handler.NewConsultationHandler(consultationUsecase, customValidator)
	messageHandler := handler.NewMessageHandler(messagingUsecase, customValidator)
	doctorScheduleHandler := handler.NewDoctorScheduleHandler(doctorScheduleUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientDashboardUsecase, patientAppointmentUsecase, patientHealthUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		doctorHandler,
		consultationHandler,
		messageHandler,
		doctorScheduleHandler,
		patientHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
