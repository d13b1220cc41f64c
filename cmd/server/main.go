// Package main initializes and starts the user-directory HTTP server,
// setting up configuration, logging, the database connection,
// repositories, services, and handlers.
package main

import (
	"cmp"
	"fmt"
	"os"
	"time"

	nethttp "net/http"

	"github.com/Ragul-Ragavendran-R/user-management-app/internal/config"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/db"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/logger"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/repository"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/server/handler/http"
	"github.com/Ragul-Ragavendran-R/user-management-app/internal/service"
	"go.uber.org/zap"
)

const tokenValidity = 24 * time.Hour

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	if err := log.Init(options.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Log.Sync() }()
	zapLogger := log.Log

	if options.JWTSecret == "" {
		zapLogger.Fatal("jwt secret is required (-jwt-secret or JWT_SECRET)")
	}

	// Initialize the Postgres connection.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Seed the operator account the admin client logs in as.
	operatorEmail := cmp.Or(os.Getenv("OPERATOR_EMAIL"), "eve.holt@reqres.in")
	operatorPassword := cmp.Or(os.Getenv("OPERATOR_PASSWORD"), "cityslicka")
	if err := db.SeedOperator(postgresDB, operatorEmail, operatorPassword); err != nil {
		zapLogger.Fatal("cannot seed operator account", zap.Error(err))
	}

	// Initialize the repository and business-logic services.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	authService := service.NewAuthService(userRepo, []byte(options.JWTSecret), tokenValidity)
	userService := service.NewUserService(userRepo)

	// Create HTTP handlers for auth and user CRUD endpoints.
	authHandler := &http.AuthHandler{AuthService: authService}
	usersHandler := &http.UsersHandler{UserService: userService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, usersHandler, options.APIKey, authService, zapLogger)

	zapLogger.Info("starting directory server", zap.String("addr", options.Addr))
	if err := nethttp.ListenAndServe(options.Addr, router); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
