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
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/kbellil/interior-design-api/internal/classifier"
	"github.com/kbellil/interior-design-api/internal/handlers"
	"github.com/kbellil/interior-design-api/internal/jwt"
	"github.com/kbellil/interior-design-api/internal/logger"
	"github.com/kbellil/interior-design-api/internal/middlewares"
	"github.com/kbellil/interior-design-api/internal/repositories"
	"github.com/kbellil/interior-design-api/internal/services"
	"github.com/kbellil/interior-design-api/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// schema is applied at startup so a fresh database is usable without a
// separate migration step.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	email VARCHAR(255) NOT NULL UNIQUE,
	username VARCHAR(50) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS user_profiles (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL UNIQUE REFERENCES users (id),
	bio TEXT,
	phone VARCHAR(30),
	favorite_style VARCHAR(50),
	profile_picture VARCHAR(500),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS design_history (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users (id),
	original_image_path VARCHAR(500) NOT NULL,
	generated_image_path VARCHAR(500) NOT NULL,
	room_type VARCHAR(50),
	style VARCHAR(50),
	confidence VARCHAR(50),
	is_favorite BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_design_history_user_created
	ON design_history (user_id, created_at DESC);
`

// @title Interior Design API
// @version 1.0.0
// @description Backend for an interior design mobile app: room photo classification, style transformation, and per-user design history
// @host localhost:8000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		jwtSecret, jwtExpSecond,
		uploadsDir, modelPath, deleteFiles,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		jwtSecret, jwtExpSecond,
		uploadsDir, modelPath, deleteFiles,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, JWT, storage, and model configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	jwtSecretKey string, jwtExpSecond int,
	uploadsDir, modelPath string, deleteFiles bool,
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
	appPort = getEnv("APP_PORT", "8000")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "interior_design")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "1800")); err != nil {
		return
	}

	// Storage and model config
	uploadsDir = getEnv("UPLOADS_DIR", "uploads")
	modelPath = getEnv("MODEL_PATH", "room_classifier.json")
	if deleteFiles, err = strconv.ParseBool(getEnv("DELETE_FILES_ON_DELETE", "false")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, classifier, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	jwtSecretKey string, jwtExpSecond int,
	uploadsDir, modelPath string, deleteFiles bool,
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
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("schema bootstrap failed: %w", err)
	}

	// Load the classification model. The service stays up without it;
	// classification endpoints report the model as unavailable.
	var model classifier.Model
	if m, err := classifier.LoadModel(modelPath); err != nil {
		logger.Log.Warnw("classification model not loaded", "path", modelPath, "err", err)
	} else {
		model = m
		logger.Log.Infof("Classification model loaded from %s", modelPath)
	}
	clf := classifier.New(model)

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize storage
	images := storage.NewImageStore(uploadsDir, deleteFiles)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	profileReadRepo := repositories.NewProfileReadRepository(db)
	profileWriteRepo := repositories.NewProfileWriteRepository(db, middlewares.GetTxFromContext)
	designReadRepo := repositories.NewDesignReadRepository(db)
	designWriteRepo := repositories.NewDesignWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	historyService := services.NewHistoryService(designReadRepo, designWriteRepo, images)
	profileService := services.NewProfileService(profileReadRepo, profileWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"*"},
	}).Handler)

	// Public routes
	r.Get("/", handlers.NewInfoHandler(clf))
	r.Get("/health", handlers.NewHealthHandler(clf))
	r.Post("/predict", handlers.NewPredictHandler(clf))
	r.Post("/api/auth/register", handlers.NewRegisterHandler(authService))
	r.Post("/api/auth/login", handlers.NewLoginHandler(authService))

	// Protected routes
	authMiddleware := middlewares.AuthMiddleware(tokens, userReadRepo)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/api/auth/me", handlers.NewMeHandler())
		r.Get("/api/profile", handlers.NewProfileGetHandler(profileService))
		r.Post("/api/classify-room", handlers.NewClassifyRoomHandler(clf))
		r.Get("/history/all", handlers.NewHistoryListHandler(historyService))
		r.Get("/history/stats/summary", handlers.NewHistoryStatsHandler(historyService))
		r.Get("/history/{id}", handlers.NewHistoryGetHandler(historyService))
		r.Get("/history/download/{id}/{type}", handlers.NewHistoryDownloadHandler(historyService))

		// Mutating routes run inside a transaction.
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))

			r.Put("/api/profile", handlers.NewProfileUpdateHandler(profileService))
			r.Post("/api/transform-room", handlers.NewTransformRoomHandler(historyService))
			r.Post("/history/save", handlers.NewHistorySaveHandler(historyService))
			r.Put("/history/{id}/favorite", handlers.NewHistoryFavoriteHandler(historyService))
			r.Delete("/history/{id}", handlers.NewHistoryDeleteHandler(historyService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

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
