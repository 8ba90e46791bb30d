package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/pressly/goose/v3"
	_ "github.com/lib/pq"

	api "bikeshare-rental-backend/internal/api/http"
	"bikeshare-rental-backend/internal/config"
	"bikeshare-rental-backend/internal/gateway"
	"bikeshare-rental-backend/internal/logger"
	"bikeshare-rental-backend/internal/repository/postgres"
	"bikeshare-rental-backend/internal/service"
	"bikeshare-rental-backend/migrations"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Bikeshare Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Downstream services", "equipment", cfg.Equipment.BaseURL, "payment", cfg.Payment.BaseURL, "notifier", cfg.Notifier.Provider)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Apply embedded migrations
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set migration dialect: %v", err)
	}
	if err := goose.Up(db, "."); err != nil {
		logger.Error("Failed to apply migrations", "error", err)
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	logger.Info("Database schema up to date")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Gateways
	equipmentGw := gateway.NewEquipmentGateway(cfg.Equipment.BaseURL, time.Duration(cfg.Equipment.TimeoutSeconds)*time.Second)
	paymentGw := gateway.NewPaymentGateway(cfg.Payment.BaseURL, time.Duration(cfg.Payment.TimeoutSeconds)*time.Second)

	var notifier gateway.NotificationGateway
	if cfg.Notifier.Provider == "sendgrid" {
		logger.Info("Using SendGrid for transactional email", "from", cfg.Notifier.FromEmail)
		notifier = gateway.NewSendGridNotifier(cfg.Notifier.SendGridAPIKey, cfg.Notifier.FromEmail, cfg.Notifier.FromName)
	} else {
		logger.Info("Using external notification service", "base_url", cfg.Notifier.BaseURL)
		notifier = gateway.NewExternalNotifier(cfg.Notifier.BaseURL, time.Duration(cfg.Notifier.TimeoutSeconds)*time.Second)
	}

	// Initialize Services
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.CyclistRepository,
		equipmentGw,
		paymentGw,
		notifier,
		cfg.Billing.BaseFeeCents,
	)
	cyclistSvc := service.NewCyclistService(
		store.CyclistRepository,
		store.RentalRepository,
		equipmentGw,
		paymentGw,
		notifier,
	)
	employeeSvc := service.NewEmployeeService(store.EmployeeRepository)

	// Initialize HTTP handlers
	rentalHandler := api.NewRentalHandler(rentalSvc)
	cyclistHandler := api.NewCyclistHandler(cyclistSvc)
	employeeHandler := api.NewEmployeeHandler(employeeSvc)

	router := api.NewRouter(rentalHandler, cyclistHandler, employeeHandler)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
