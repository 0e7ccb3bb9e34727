package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "bragnetic-backend/internal/api/http"
	"bragnetic-backend/internal/captcha"
	"bragnetic-backend/internal/config"
	"bragnetic-backend/internal/logger"
	"bragnetic-backend/internal/repository/postgres"
	"bragnetic-backend/internal/security"
	"bragnetic-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "", "Path to configuration file (optional, env vars apply either way)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Bragnetic backend...", "log_level", cfg.Log.Level, "env", cfg.Server.Env)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

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
	tokenManager := security.NewTokenManager(cfg.Admin.JWTSecret)

	// Initialize external collaborators
	verifier := captcha.NewTurnstileVerifier(cfg.Turnstile.SecretKey)
	emailSvc := service.NewEmailService(
		cfg.Email.SendGridAPIKey,
		cfg.Email.FromAddress,
		cfg.Email.FromName,
		cfg.Email.NotifyAddress,
	)

	// Initialize Services
	submissionSvc := service.NewSubmissionService(
		store.CreatorRepository,
		store.BrandRepository,
		store.ContactRepository,
		store.WaitlistRepository,
		verifier,
		emailSvc,
	)
	authSvc := service.NewAuthService(cfg.Admin.Password, tokenManager)
	adminSvc := service.NewAdminService(
		store.CreatorRepository,
		store.BrandRepository,
		store.ContactRepository,
		store.WaitlistRepository,
	)
	if cfg.Admin.Password == "" {
		logger.Warn("ADMIN_PASSWORD not set - admin login is disabled")
	}

	// Set up HTTP server
	router := httpapi.NewRouter(submissionSvc, authSvc, adminSvc, cfg.IsProduction())
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := server.ListenAndServe(); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
