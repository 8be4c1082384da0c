package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"orderwizard/cmd"
	"orderwizard/internal/adapters/out/postgres/draftrepo"
	"orderwizard/internal/adapters/out/postgres/kycrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(configs.LogLevel),
	})))

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobManager := app.NewJobManager(slog.Default())
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}

	err = startWebServer(ctx, app, configs.HTTPPort)
	jobManager.StopAll()
	if closeErr := app.Close(); closeErr != nil {
		slog.Error("failed to release resources", "error", closeErr)
	}
	if err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:          os.Getenv("HTTP_PORT"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         os.Getenv("DB_SSLMODE"),
		CountriesAPIURL:   os.Getenv("COUNTRIES_API_URL"),
		StatesAPIURL:      os.Getenv("STATES_API_URL"),
		StatesAPIKey:      os.Getenv("STATES_API_KEY"),
		CountriesCacheTTL: os.Getenv("COUNTRIES_CACHE_TTL"),
		OrdersAPIURL:      os.Getenv("ORDERS_API_URL"),
		OrdersAPIToken:    os.Getenv("ORDERS_API_TOKEN"),
		RatesAPIURL:       os.Getenv("RATES_API_URL"),
		ServiceTimeout:    os.Getenv("SERVICE_TIMEOUT"),
		ShippingSurcharge: os.Getenv("WIZARD_SHIPPING_SURCHARGE"),
		HSNPolicy:         os.Getenv("WIZARD_HSN_POLICY"),
		OrderIDRequired:   os.Getenv("WIZARD_ORDER_ID_REQUIRED"),
		DraftTTL:          os.Getenv("WIZARD_DRAFT_TTL"),
		KafkaHost:         os.Getenv("KAFKA_HOST"),
		OrderPlacedTopic:  os.Getenv("ORDER_PLACED_TOPIC"),
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	return config
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err = gormDB.AutoMigrate(&draftrepo.DraftDTO{}, &kycrepo.CustomerDTO{}, &kycrepo.DocumentDTO{}); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	return gormDB, nil
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string) error {
	e, err := app.NewHTTPRouter(ctx)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("http server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
