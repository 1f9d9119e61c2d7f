package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tair/stock-ledger/docs"
	"github.com/tair/stock-ledger/internal/inventory"
	httpDelivery "github.com/tair/stock-ledger/internal/inventory/delivery/http"
	"github.com/tair/stock-ledger/internal/inventory/repository"
	"github.com/tair/stock-ledger/kafka"
	"github.com/tair/stock-ledger/pkg/database"
	"github.com/tair/stock-ledger/pkg/logger"
	"github.com/tair/stock-ledger/pkg/tracing"
)

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "stock-ledger")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting stock ledger service")

	// Tracing
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
	} else {
		defer tracing.Shutdown(context.Background(), tp)
	}

	// Kafka movement events are optional, enabled by KAFKA_BROKERS
	var publisher *kafka.Publisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize Kafka publisher")
		}
		defer publisher.Close()
	}

	// Storage: postgres by default, in-memory for local development
	var (
		handler *httpDelivery.LedgerHandler
		sqlDB   *sql.DB
	)
	switch driver := getEnv("STORAGE_DRIVER", "postgres"); driver {
	case "memory":
		logger.Logger.Warn().Msg("Using in-memory storage, data will not survive a restart")
		handler = httpDelivery.NewLedgerHandler(repository.NewMemoryLedgerRepository(), publisher)
	default:
		dbConfig := database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "stockledger"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		}

		db, err := database.NewGormConnection(dbConfig)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
		}

		sqlDB, err = db.DB()
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
		}
		defer sqlDB.Close()

		if err := repository.NewGormLedgerRepository(db).AutoMigrate(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
		}

		// Wire DI
		handler, err = inventory.InitializeHTTPHandler(db, publisher)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
		}

		logger.Logger.Info().Str("db", dbConfig.DBName).Msg("Database initialized successfully")
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	go startHTTPServer(handler, sqlDB, httpPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(handler *httpDelivery.LedgerHandler, db *sql.DB, port string) {
	router := mux.NewRouter()

	middlewareConfig := httpDelivery.DefaultMiddlewareConfig()
	httpDelivery.RegisterMiddlewares(router, middlewareConfig)

	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router, db)
	httpDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	corsHandler := httpDelivery.SetupCORS(middlewareConfig)

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Str("swagger_endpoint", "/swagger/index.html").
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, corsHandler(router)); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
