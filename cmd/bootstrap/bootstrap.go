package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifelink/config"
	deliveryHttp "lifelink/internal/delivery/http"
	"lifelink/internal/delivery/http/handler"
	"lifelink/internal/delivery/http/middleware"
	"lifelink/internal/infrastructure/cache"
	"lifelink/internal/infrastructure/database"
	"lifelink/internal/repository"
	"lifelink/internal/service"
	"lifelink/internal/usecase"
	"lifelink/pkg/jwt"
	"lifelink/pkg/validator"

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

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Migrations applied successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

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
	roleRepo := repository.NewRoleRepository()
	donorRepo := repository.NewDonorProfileRepository()
	bloodBankRepo := repository.NewBloodBankRepository()
	inventoryRepo := repository.NewBloodInventoryRepository()
	scheduleRepo := repository.NewDonationScheduleRepository()
	patientRepo := repository.NewPatientProfileRepository()
	chatRoomRepo := repository.NewChatRoomRepository()
	messageRepo := repository.NewMessageRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize chat hub
	chatHub := service.NewChatHub(log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, donorRepo, bloodBankRepo, jwtService, redisClient)
	donorUsecase := usecase.NewDonorUsecase(db, log, donorRepo, scheduleRepo)
	scheduleUsecase := usecase.NewScheduleUsecase(db, log, userRepo, donorRepo, bloodBankRepo, scheduleRepo, inventoryRepo)
	bloodBankUsecase := usecase.NewBloodBankUsecase(db, log, userRepo, bloodBankRepo, inventoryRepo, scheduleRepo)
	inventoryUsecase := usecase.NewInventoryUsecase(db, log, bloodBankRepo, inventoryRepo)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo)
	searchUsecase := usecase.NewSearchUsecase(db, log, userRepo, donorRepo, bloodBankRepo, inventoryRepo)
	chatUsecase := usecase.NewChatUsecase(db, log, userRepo, chatRoomRepo, messageRepo, chatHub)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	donorHandler := handler.NewDonorHandler(donorUsecase, customValidator)
	scheduleHandler := handler.NewScheduleHandler(scheduleUsecase, customValidator)
	bloodBankHandler := handler.NewBloodBankHandler(bloodBankUsecase, inventoryUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	searchHandler := handler.NewSearchHandler(searchUsecase)
	chatHandler := handler.NewChatHandler(chatUsecase, chatHub, customValidator, log)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		donorHandler,
		scheduleHandler,
		bloodBankHandler,
		patientHandler,
		searchHandler,
		chatHandler,
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
