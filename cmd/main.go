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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/treeseverywhere/api/internal/handlers"
	"github.com/treeseverywhere/api/internal/jwt"
	"github.com/treeseverywhere/api/internal/logger"
	"github.com/treeseverywhere/api/internal/middlewares"
	"github.com/treeseverywhere/api/internal/migrations"
	"github.com/treeseverywhere/api/internal/repositories"
	"github.com/treeseverywhere/api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Trees Everywhere API
// @version 1.0.0
// @description Service for tracking trees planted by users across accounts
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic, logLevel,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		logLevel,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers []string, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config; an empty broker list disables event publishing
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaBrokers = strings.Split(brokers, ",")
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "tree-plantings")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka producer, and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers []string, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Run migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		logger.Log.Fatal("migrations failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka producer for planting events
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBrokers...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka producer configured for topic %s", kafkaTopic)
	} else {
		logger.Log.Info("Kafka brokers not configured, planting events disabled")
	}

	// Initialize JWT service
	jwtService := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	accountReadRepo := repositories.NewAccountReadRepository(db)
	accountWriteRepo := repositories.NewAccountWriteRepository(db, txGetter)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	profileReadRepo := repositories.NewProfileReadRepository(db)
	profileWriteRepo := repositories.NewProfileWriteRepository(db, txGetter)
	treeReadRepo := repositories.NewTreeReadRepository(db)
	treeWriteRepo := repositories.NewTreeWriteRepository(db, txGetter)
	plantedReadRepo := repositories.NewPlantedTreeReadRepository(db)
	plantedWriteRepo := repositories.NewPlantedTreeWriteRepository(db, txGetter)
	denylistRepo := repositories.NewTokenDenylistRepository(rdb, jwtService.Exp())

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtService, denylistRepo)
	accountService := services.NewAccountService(accountReadRepo, accountWriteRepo)
	userService := services.NewUserService(userReadRepo, userWriteRepo, accountReadRepo)
	profileService := services.NewProfileService(profileReadRepo, profileWriteRepo, userReadRepo)
	treeService := services.NewTreeService(treeReadRepo, treeWriteRepo)
	plantingService := services.NewPlantingService(
		plantedReadRepo, plantedWriteRepo,
		userReadRepo, accountReadRepo, treeReadRepo,
		kafkaWriter,
	)

	// Middleware
	authMiddleware := middlewares.AuthMiddleware(jwtService, denylistRepo, userReadRepo)
	optionalAuth := middlewares.OptionalAuthMiddleware(jwtService, denylistRepo, userReadRepo)
	txMiddleware := middlewares.TxMiddleware(db)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware())
	r.Use(middlewares.MetricsMiddleware())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.With(authMiddleware).Delete("/logout", handlers.NewLogoutHandler(authService))
		r.With(authMiddleware).Get("/me", handlers.NewMeHandler(userService))

		// Public reads
		r.Group(func(r chi.Router) {
			r.Use(optionalAuth)
			r.Get("/accounts/", handlers.NewAccountListHandler(accountService))
			r.Get("/accounts/{id}/", handlers.NewAccountGetHandler(accountService))
			r.Get("/users/", handlers.NewUserListHandler(userService))
			r.Get("/users/{id}/", handlers.NewUserGetHandler(userService))
			r.Get("/profiles/", handlers.NewProfileListHandler(profileService))
			r.Get("/profiles/{id}/", handlers.NewProfileGetHandler(profileService))
			r.Get("/trees/", handlers.NewTreeListHandler(treeService))
			r.Get("/trees/{id}/", handlers.NewTreeGetHandler(treeService))
		})

		// The planted collection has no list form; the stub rejects with
		// 405 for everyone, so it sits outside the auth group.
		r.Get("/planted/", handlers.NewPlantedListHandler())

		// Authenticated reads
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/planted/own/", handlers.NewPlantedOwnHandler(plantingService))
			r.Get("/planted/account/", handlers.NewPlantedByAccountHandler(plantingService))
			r.Get("/planted/{id}/", handlers.NewPlantedGetHandler(plantingService))
			r.Get("/users/{id}/planted/", handlers.NewPlantedByUserHandler(plantingService))
		})

		// Planting stays outside the per-request transaction: the batch
		// route manages its own partial-failure semantics, and the single
		// route must have its row committed before publishing the event.
		r.With(authMiddleware).Post("/planted/", handlers.NewPlantedCreateHandler(plantingService))
		r.With(authMiddleware).Post("/planted/batch/", handlers.NewPlantedCreateBatchHandler(plantingService))

		// Authenticated writes, wrapped in a transaction
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(txMiddleware)

			// Update handlers take partial bodies, so PUT and PATCH share them
			r.Post("/accounts/", handlers.NewAccountCreateHandler(accountService))
			r.Put("/accounts/{id}/", handlers.NewAccountUpdateHandler(accountService))
			r.Patch("/accounts/{id}/", handlers.NewAccountUpdateHandler(accountService))
			r.Delete("/accounts/{id}/", handlers.NewAccountDeleteHandler(accountService))

			r.Post("/users/", handlers.NewUserCreateHandler(userService))
			r.Put("/users/{id}/", handlers.NewUserUpdateHandler(userService))
			r.Patch("/users/{id}/", handlers.NewUserUpdateHandler(userService))
			r.Delete("/users/{id}/", handlers.NewUserDeleteHandler(userService))

			r.Post("/profiles/", handlers.NewProfileCreateHandler(profileService))
			r.Put("/profiles/{id}/", handlers.NewProfileUpdateHandler(profileService))
			r.Patch("/profiles/{id}/", handlers.NewProfileUpdateHandler(profileService))
			r.Delete("/profiles/{id}/", handlers.NewProfileDeleteHandler(profileService))

			r.Post("/trees/", handlers.NewTreeCreateHandler(treeService))
			r.Put("/trees/{id}/", handlers.NewTreeUpdateHandler(treeService))
			r.Patch("/trees/{id}/", handlers.NewTreeUpdateHandler(treeService))
			r.Delete("/trees/{id}/", handlers.NewTreeDeleteHandler(treeService))

			r.Put("/planted/{id}/", handlers.NewPlantedUpdateHandler(plantingService))
			r.Patch("/planted/{id}/", handlers.NewPlantedUpdateHandler(plantingService))
			r.Delete("/planted/{id}/", handlers.NewPlantedDeleteHandler(plantingService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))
	r.Handle("/metrics", middlewares.MetricsHandler())

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
