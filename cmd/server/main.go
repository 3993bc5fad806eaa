package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "rentora-backend/internal/api/http"
	"rentora-backend/internal/config"
	"rentora-backend/internal/logger"
	"rentora-backend/internal/repository/postgres"
	"rentora-backend/internal/security"
	"rentora-backend/internal/service"
	"rentora-backend/internal/storage"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Populated at build time via -ldflags.
var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// .env is optional; environment overrides the yaml file either way
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rentora backend...", "version", version, "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Storage
	localStorage, err := storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	logger.Info("Local storage initialized", "upload_dir", cfg.Storage.UploadDir)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Services
	profileSvc := service.NewProfileService(store.ProfileRepository)
	propertySvc := service.NewPropertyService(store.PropertyRepository, store.ProfileRepository)
	applicationSvc := service.NewApplicationService(
		store.ApplicationRepository,
		store.PropertyRepository,
		store.RentalRepository,
		store.ProfileRepository,
		store.NotificationRepository,
		emailSvc,
	)
	leaseSvc := service.NewLeaseService(
		store.LeaseRepository,
		store.ApplicationRepository,
		store.PropertyRepository,
		store.ProfileRepository,
		store.NotificationRepository,
		emailSvc,
	)
	maintenanceSvc := service.NewMaintenanceService(
		store.MaintenanceRepository,
		store.RentalRepository,
		store.PropertyRepository,
		store.ProfileRepository,
		store.NotificationRepository,
		emailSvc,
	)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.ProfileRepository)
	announcementSvc := service.NewAnnouncementService(store.AnnouncementRepository, store.ProfileRepository)
	notificationSvc := service.NewNotificationService(store.NotificationRepository)

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Handlers{
		Applications:  applicationSvc,
		Leases:        leaseSvc,
		Maintenance:   maintenanceSvc,
		Properties:    propertySvc,
		Rentals:       rentalSvc,
		Profiles:      profileSvc,
		Announcements: announcementSvc,
		Notifications: notificationSvc,
		Storage:       localStorage,
	}, tokenManager, db, version, buildTime)

	addr := cfg.GetServerAddress()
	logger.Info("HTTP server listening", "address", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
