package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"parcel/cmd"
	httpadapter "parcel/internal/adapters/in/http"
	"parcel/internal/adapters/out/postgres"
	geocache "parcel/internal/adapters/out/redis"
	"parcel/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

func main() {
	configs := getConfigs()

	logger := logging.NewLogger(os.Stdout, configs.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	redisClient := openRedis(ctx, configs, logger)
	if redisClient != nil {
		defer redisClient.Close()
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		DBHost:                getEnv("DB_HOST", "localhost"),
		DBPort:                getEnv("DB_PORT", "5432"),
		DBUser:                getEnv("DB_USER", ""),
		DBPassword:            getEnv("DB_PASSWORD", ""),
		DBName:                getEnv("DB_NAME", ""),
		DBSslMode:             getEnv("DB_SSLMODE", "disable"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		JWTSecret:             getEnv("JWT_SECRET", ""),
		ORSBaseURL:            getEnv("ORS_BASE_URL", "https://api.openrouteservice.org"),
		ORSAPIKey:             getEnv("ORS_API_KEY", ""),
		ORSProfile:            getEnv("ORS_PROFILE", ""),
		ORSCountry:            getEnv("ORS_COUNTRY", ""),
		UpstreamTimeout:       getDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		RedisAddr:             getEnv("REDIS_ADDR", ""),
		RedisPassword:         getEnv("REDIS_PASSWORD", ""),
		RedisDB:               getInt("REDIS_DB", 0),
		GeocodeCacheTTL:       getDuration("GEOCODE_CACHE_TTL", geocache.DefaultTTL),
		PricingStrategy:       getEnv("PRICING_STRATEGY", "bracketed"),
		SizeMeasure:           getEnv("SIZE_MEASURE", "volume"),
		DistanceMode:          getEnv("DISTANCE_MODE", "great_circle"),
		HeightLimited:         getBool("HEIGHT_LIMITED", false),
		AssignCourierOnCreate: getBool("ASSIGN_COURIER_ON_CREATE", true),
		AssignmentSchedule:    getEnv("ASSIGNMENT_SCHEDULE", ""),
	}
	return config
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s %q: %v", key, raw, err)
	}
	return d
}

func getBool(key string, fallback bool) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("Invalid %s %q: %v", key, raw, err)
	}
	return b
}

func getInt(key string, fallback int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s %q: %v", key, raw, err)
	}
	return n
}

// openRedis returns nil when no address is configured or Redis is unreachable;
// the service then geocodes without a cache.
func openRedis(ctx context.Context, configs cmd.Config, logger *slog.Logger) *redis.Client {
	if configs.RedisAddr == "" {
		return nil
	}

	client, err := geocache.NewClient(ctx, configs.RedisAddr, configs.RedisPassword, configs.RedisDB)
	if err != nil {
		logger.WarnContext(ctx, "geocode cache disabled", "error", err)
		return nil
	}
	return client
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	server, err := app.CreateHTTPServer()
	if err != nil {
		log.Fatalf("Error building HTTP server: %v", err)
	}

	e, err := httpadapter.NewEcho(server, []byte(configs.JWTSecret), logger)
	if err != nil {
		log.Fatalf("Error building HTTP router: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()
	logger.InfoContext(ctx, "HTTP server started", "port", configs.HTTPPort)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpadapter.Shutdown(shutdownCtx, e); err != nil {
		logger.ErrorContext(shutdownCtx, "HTTP server shutdown failed", "error", err)
	}
}
