package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookclubhq/bookclub-server/internal/handlers"
	"github.com/bookclubhq/bookclub-server/internal/jwt"
	"github.com/bookclubhq/bookclub-server/internal/logger"
	"github.com/bookclubhq/bookclub-server/internal/middlewares"
	"github.com/bookclubhq/bookclub-server/internal/repositories"
	"github.com/bookclubhq/bookclub-server/internal/services"

	_ "github.com/bookclubhq/bookclub-server/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const defaultJWTSecret = "bookclub_dev_secret"

// Config holds every runtime setting read from the environment.
type Config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	MongoURI string
	MongoDB  string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	RedisPoolSize int

	KafkaAddr  string
	KafkaTopic string

	JWTSecretKey  string
	JWTAccessExp  time.Duration
	JWTRefreshExp time.Duration
}

// @title bookclub-server API
// @version 1.0.0
// @description Backend for a social reading platform: auth, clubs, reading analytics and book recommendations
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application configuration.
func parseConfig(path string) (*Config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	cfg := &Config{
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "bookclub"),

		PGHost:     getEnv("POSTGRES_HOST", "localhost"),
		PGUser:     getEnv("POSTGRES_USER", "user"),
		PGPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:       getEnv("POSTGRES_DB", "bookclub"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		KafkaAddr:  getEnv("KAFKA_ADDR", ""),
		KafkaTopic: getEnv("KAFKA_TOPIC", "reading-sessions"),

		JWTSecretKey: getEnv("JWT_SECRET_KEY", defaultJWTSecret),
	}

	var err error
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return nil, err
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return nil, err
	}
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return nil, err
	}
	if cfg.JWTAccessExp, err = time.ParseDuration(getEnv("JWT_ACCESS_EXP", "168h")); err != nil {
		return nil, err
	}
	if cfg.JWTRefreshExp, err = time.ParseDuration(getEnv("JWT_REFRESH_EXP", "720h")); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run initializes the logger, the data stores and the HTTP server, sets up
// routes and middleware and handles graceful shutdown.
func run(ctx context.Context, cfg *Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	if cfg.JWTSecretKey == defaultJWTSecret {
		logger.Log.Warn("JWT_SECRET_KEY is not set, using the built-in development secret")
	}

	// Connect to MongoDB
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return fmt.Errorf("MongoDB connection error: %w", err)
	}
	defer mongoClient.Disconnect(ctx)
	if err := mongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}
	mongoDB := mongoClient.Database(cfg.MongoDB)

	if err := repositories.EnsureUserIndexes(ctx, mongoDB); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}
	if err := repositories.EnsureAnalyticsIndexes(ctx, mongoDB); err != nil {
		return fmt.Errorf("analytics indexes: %w", err)
	}
	if err := repositories.EnsureRecommendationIndexes(ctx, mongoDB); err != nil {
		return fmt.Errorf("recommendation indexes: %w", err)
	}

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		PoolSize: cfg.RedisPoolSize,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer is optional; without it session events are skipped.
	var kafkaWriter *kafka.Writer
	if cfg.KafkaAddr != "" {
		kafkaWriter = &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaAddr),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
	} else {
		logger.Log.Warn("KAFKA_ADDR is not set, session events will not be published")
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithAccessExpiration(cfg.JWTAccessExp),
		jwt.WithRefreshExpiration(cfg.JWTRefreshExp),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(mongoDB)
	userWriteRepo := repositories.NewUserWriteRepository(mongoDB)
	analyticsRepo := repositories.NewAnalyticsRepository(mongoDB)
	recommendationRepo := repositories.NewRecommendationRepository(mongoDB)
	clubRepo := repositories.NewClubRepository(db)
	progressRepo := repositories.NewProgressRepository(db)
	statsCache := repositories.NewStatsCache(rdb)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	analyticsService := services.NewAnalyticsService(analyticsRepo, analyticsRepo, kafkaWriterOrNil(kafkaWriter))
	recommendationService := services.NewRecommendationService(recommendationRepo, recommendationRepo)
	statsService := services.NewStatsService(analyticsRepo, recommendationRepo, statsCache)
	clubService := services.NewClubService(clubRepo, progressRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	auth := middlewares.AuthMiddleware(tokens)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", handlers.NewRegisterHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService))

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.Get("/auth/me", handlers.NewMeHandler(authService))
			r.Put("/auth/profile", handlers.NewUpdateProfileHandler(authService))
			r.Put("/auth/change-password", handlers.NewChangePasswordHandler(authService))

			r.Post("/analytics", handlers.NewRecordSessionHandler(analyticsService))
			r.Post("/recommendations", handlers.NewCreateRecommendationHandler(recommendationService))

			r.Get("/stats/global", handlers.NewGlobalStatsHandler(statsService))
			r.Get("/stats/club/{clubID}", handlers.NewClubStatsHandler(statsService))
			r.Get("/stats/trending", handlers.NewTrendingBooksHandler(statsService))

			r.Post("/clubs", handlers.NewCreateClubHandler(clubService))
			r.Get("/clubs", handlers.NewListClubsHandler(clubService))
			r.Get("/clubs/{clubID}", handlers.NewGetClubHandler(clubService))
			r.Post("/clubs/{clubID}/join", handlers.NewJoinClubHandler(clubService))
			r.Delete("/clubs/{clubID}/leave", handlers.NewLeaveClubHandler(clubService))
			r.Put("/clubs/{clubID}/progress", handlers.NewSaveProgressHandler(clubService))
			r.Get("/clubs/{clubID}/progress", handlers.NewListProgressHandler(clubService))
		})

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(auth, middlewares.RequireAdmin)

			r.Get("/auth/users", handlers.NewListUsersHandler(authService))
			r.Delete("/auth/users/{userID}", handlers.NewDeleteUserHandler(authService))
		})

		// Owner-or-admin routes
		r.Group(func(r chi.Router) {
			r.Use(auth, middlewares.RequireOwnerOrAdmin("userID"))

			r.Get("/analytics/{userID}", handlers.NewListAnalyticsHandler(analyticsService))
			r.Get("/analytics/{userID}/summary", handlers.NewAnalyticsSummaryHandler(analyticsService))
			r.Get("/recommendations/{userID}", handlers.NewListRecommendationsHandler(recommendationService))
			r.Get("/recommendations/{userID}/by-genre", handlers.NewRecommendationsByGenreHandler(recommendationService))
			r.Delete("/recommendations/{userID}/{bookID}", handlers.NewDeleteRecommendationHandler(recommendationService))
		})
	})

	r.Get("/health", handlers.NewHealthHandler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// kafkaWriterOrNil keeps the services.KafkaWriter interface value nil when
// no writer was configured, instead of a non-nil interface holding a nil
// pointer.
func kafkaWriterOrNil(w *kafka.Writer) services.KafkaWriter {
	if w == nil {
		return nil
	}
	return w
}
