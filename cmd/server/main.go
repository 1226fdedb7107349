package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"vendorhub.backend/internal/config"
	"vendorhub.backend/internal/infrastructure/notifications"
	"vendorhub.backend/internal/infrastructure/repositories"
	"vendorhub.backend/internal/interfaces/http/handlers"
	"vendorhub.backend/internal/interfaces/http/middleware"
	"vendorhub.backend/internal/usecases"
	"vendorhub.backend/pkg/logger"
	"vendorhub.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	merchantRepo := repositories.NewMerchantRepository(db)
	statusLogRepo := repositories.NewMerchantStatusLogRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	reservationRepo := repositories.NewReservationRepository(db)
	serviceOrderRepo := repositories.NewServiceOrderRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize notification publisher
	publisher := notifications.NewRedisPublisher(redis.GetClient(), cfg.Platform.EventChannelPrefix)

	// Initialize usecases
	feeRate := decimal.NewFromFloat(cfg.Platform.DefaultFeeRatePercent)
	transitionUsecase := usecases.NewTransitionUsecase(merchantRepo, bookingRepo, reservationRepo, serviceOrderRepo, statusLogRepo, uow, publisher)
	checklistUsecase := usecases.NewChecklistUsecase(merchantRepo, userRepo)
	merchantUsecase := usecases.NewMerchantUsecase(merchantRepo, userRepo, statusLogRepo, uow, checklistUsecase, transitionUsecase)
	bookingUsecase := usecases.NewBookingUsecase(bookingRepo, merchantRepo, feeRate)
	reservationUsecase := usecases.NewReservationUsecase(reservationRepo, merchantRepo, feeRate)
	serviceOrderUsecase := usecases.NewServiceOrderUsecase(serviceOrderRepo, merchantRepo, feeRate)

	// Initialize handlers
	merchantHandler := handlers.NewMerchantHandler(merchantUsecase, checklistUsecase, transitionUsecase)
	bookingHandler := handlers.NewBookingHandler(bookingUsecase, transitionUsecase)
	reservationHandler := handlers.NewReservationHandler(reservationUsecase, transitionUsecase)
	serviceOrderHandler := handlers.NewServiceOrderHandler(serviceOrderUsecase, transitionUsecase)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.ActorMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		merchantHandler:     merchantHandler,
		bookingHandler:      bookingHandler,
		reservationHandler:  reservationHandler,
		serviceOrderHandler: serviceOrderHandler,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
	}()

	// Start server
	log.Printf("🚀 VendorHub Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
