package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fekuna/ecommerce-inventory-service/config"
	"github.com/fekuna/ecommerce-inventory-service/internal/server"
	"github.com/fekuna/ecommerce-inventory-service/pkg/logger"
	"github.com/fekuna/ecommerce-inventory-service/pkg/postgres"

	invH "github.com/fekuna/ecommerce-inventory-service/internal/inventory/handler"
	invRepoPkg "github.com/fekuna/ecommerce-inventory-service/internal/inventory/repository"
	invUCPkg "github.com/fekuna/ecommerce-inventory-service/internal/inventory/usecase"

	salesH "github.com/fekuna/ecommerce-inventory-service/internal/sales/handler"
	salesRepoPkg "github.com/fekuna/ecommerce-inventory-service/internal/sales/repository"
	salesUCPkg "github.com/fekuna/ecommerce-inventory-service/internal/sales/usecase"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     false,
		DisableStacktrace: false,
	}

	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	pgConfig := &postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	}

	db, err := postgres.NewPostgres(pgConfig)
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Run Migrations
	if err := runMigrations(cfg.Server.MigrationsPath, postgres.DSN(pgConfig)); err != nil {
		appLogger.Fatal("Could not run database migrations", zap.Error(err))
	}
	appLogger.Info("Database schema up to date")

	// 5. Initialize Repositories
	salesRepo := salesRepoPkg.NewPGRepository(db)
	invRepo := invRepoPkg.NewPGRepository(db)

	// 6. Initialize UseCases
	salesUC := salesUCPkg.NewSalesUseCase(salesRepo, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, appLogger)

	// 7. Initialize Handlers
	salesHandler := salesH.NewSalesHandler(salesUC, appLogger)
	invHandler := invH.NewInventoryHandler(invUC, appLogger)

	// 8. Start HTTP Server
	router := server.NewRouter(cfg, appLogger, salesHandler, invHandler)

	srv := &http.Server{
		Addr:    cfg.Server.HTTPPort,
		Handler: router,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}

func runMigrations(path, dsn string) error {
	m, err := migrate.New("file://"+path, dsn)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
