package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	httpapi "github.com/500AN/rental-system/internal/api/http"
	"github.com/500AN/rental-system/internal/config"
	"github.com/500AN/rental-system/internal/jobs"
	"github.com/500AN/rental-system/internal/logger"
	"github.com/500AN/rental-system/internal/repository/postgres"
	"github.com/500AN/rental-system/internal/scheduler"
	"github.com/500AN/rental-system/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Optional .env for local development; environment always wins over YAML
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rental System Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Amounts serialize as JSON numbers, matching the numeric columns they mirror
	decimal.MarshalJSONWithoutQuotes = true

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

	// Initialize Notifier
	notifier := service.NewNotifier(
		cfg.Notifications.SendGridAPIKey,
		cfg.Notifications.FromEmail,
		cfg.Notifications.FromName,
		cfg.Notifications.AdminEmail,
		cfg.Notifications.TwilioSID,
		cfg.Notifications.TwilioToken,
		cfg.Notifications.TwilioFrom,
	)

	// Initialize Services
	bookingSvc := service.NewBookingService(store.BookingRepository, store.CustomerRepository, notifier)
	inventorySvc := service.NewInventoryService(store.InventoryRepository)
	saleSvc := service.NewSaleService(store.SaleRepository)
	washingSvc := service.NewWashingService(store.WashingRepository, cfg.Washing.AlertThresholdDays)
	damageSvc := service.NewDamageService(store.DamageRepository)
	revenueSvc := service.NewRevenueService(store.RevenueRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository)
	employeeSvc := service.NewEmployeeService(store.EmployeeRepository)
	locationSvc := service.NewLocationService(store.LocationRepository)
	productSvc := service.NewProductService(store.ProductRepository)

	// Initialize HTTP router
	router := httpapi.NewRouter(httpapi.Services{
		Booking:   bookingSvc,
		Inventory: inventorySvc,
		Sale:      saleSvc,
		Washing:   washingSvc,
		Damage:    damageSvc,
		Revenue:   revenueSvc,
		Customer:  customerSvc,
		Employee:  employeeSvc,
		Location:  locationSvc,
		Product:   productSvc,
	})

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(store.BookingRepository, store.WashingRepository, notifier, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// Start HTTP server
	server := &http.Server{
		Addr:    cfg.GetServerAddress(),
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	if err := server.Close(); err != nil {
		logger.Error("Failed to close HTTP server", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
