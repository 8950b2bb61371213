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
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/JorgeDuranS/MedicLab/internal/handlers"
	"github.com/JorgeDuranS/MedicLab/internal/jwt"
	"github.com/JorgeDuranS/MedicLab/internal/logger"
	"github.com/JorgeDuranS/MedicLab/internal/middlewares"
	"github.com/JorgeDuranS/MedicLab/internal/models"
	"github.com/JorgeDuranS/MedicLab/internal/repositories"
	"github.com/JorgeDuranS/MedicLab/internal/services"
	"github.com/JorgeDuranS/MedicLab/internal/ssrf"

	_ "github.com/JorgeDuranS/MedicLab/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title MedicLab API
// @version 1.0.0
// @description Medical appointment scheduling API with SSRF-hardened avatar fetching and a security audit trail
// @host localhost:8080
// @BasePath /api
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
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds all application settings resolved from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int

	kafkaBrokers       []string
	kafkaSecurityTopic string

	jwtSecretKey string
	jwtExpSecond int

	avatarAllowedDomains         []string
	avatarExtensionExemptDomains []string
	avatarFetchTimeoutSecond     int
	avatarMaxBytes               int64
	ssrfAllowLoopback            bool

	rateLimitLogin    int
	rateLimitRegister int
	rateLimitAvatar   int
	rateLimitDefault  int
}

// splitList parses a comma-separated env value into trimmed entries.
func splitList(val string) []string {
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, JWT, avatar-pipeline, and
// rate-limit configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	cfg := &config{}
	var err error

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "mediclab")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return nil, err
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return nil, err
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return nil, err
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return nil, err
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, err
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return nil, err
	}
	if cfg.redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return nil, err
	}

	// Kafka config, empty brokers disable the audit mirror
	cfg.kafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.kafkaSecurityTopic = getEnv("KAFKA_SECURITY_TOPIC", "security-events")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "1800")); err != nil {
		return nil, err
	}

	// Avatar pipeline config
	cfg.avatarAllowedDomains = splitList(getEnv("AVATAR_ALLOWED_DOMAINS", "imgur.com,i.imgur.com,gravatar.com,www.gravatar.com"))
	cfg.avatarExtensionExemptDomains = splitList(getEnv("AVATAR_EXTENSION_EXEMPT_DOMAINS", "gravatar.com,www.gravatar.com"))
	if cfg.avatarFetchTimeoutSecond, err = strconv.Atoi(getEnv("AVATAR_FETCH_TIMEOUT_SECOND", "5")); err != nil {
		return nil, err
	}
	if cfg.avatarMaxBytes, err = strconv.ParseInt(getEnv("AVATAR_MAX_BYTES", strconv.Itoa(5*1024*1024)), 10, 64); err != nil {
		return nil, err
	}
	if cfg.ssrfAllowLoopback, err = strconv.ParseBool(getEnv("SSRF_ALLOW_LOOPBACK", "false")); err != nil {
		return nil, err
	}

	// Rate limit config
	if cfg.rateLimitLogin, err = strconv.Atoi(getEnv("RATE_LIMIT_LOGIN_PER_MINUTE", "5")); err != nil {
		return nil, err
	}
	if cfg.rateLimitRegister, err = strconv.Atoi(getEnv("RATE_LIMIT_REGISTER_PER_MINUTE", "3")); err != nil {
		return nil, err
	}
	if cfg.rateLimitAvatar, err = strconv.Atoi(getEnv("RATE_LIMIT_AVATAR_PER_MINUTE", "3")); err != nil {
		return nil, err
	}
	if cfg.rateLimitDefault, err = strconv.Atoi(getEnv("RATE_LIMIT_DEFAULT_PER_HOUR", "100")); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.pgHost, cfg.pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka mirror for the audit trail, optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaBrokers...),
			Topic:    cfg.kafkaSecurityTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka audit mirror enabled on topic %s", cfg.kafkaSecurityTopic)
	}

	// Initialize JWT service
	tokenJWT := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	appointmentReadRepo := repositories.NewAppointmentReadRepository(db, middlewares.GetTxFromContext)
	appointmentWriteRepo := repositories.NewAppointmentWriteRepository(db, middlewares.GetTxFromContext)
	securityLogWriteRepo := repositories.NewSecurityLogWriteRepository(db)
	securityLogReadRepo := repositories.NewSecurityLogReadRepository(db)

	// Avatar fetch pipeline
	validator := ssrf.NewValidator(ssrf.Config{
		AllowedDomains:         cfg.avatarAllowedDomains,
		ExtensionExemptDomains: cfg.avatarExtensionExemptDomains,
		AllowLoopback:          cfg.ssrfAllowLoopback,
	}, nil)
	fetcher := ssrf.NewFetcher(validator,
		ssrf.WithTimeout(time.Duration(cfg.avatarFetchTimeoutSecond)*time.Second),
		ssrf.WithMaxBytes(cfg.avatarMaxBytes),
	)

	// Initialize services
	auditService := services.NewAuditService(securityLogWriteRepo, securityLogReadRepo, kafkaWriter)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokenJWT)
	userService := services.NewUserService(userReadRepo, userWriteRepo)
	avatarService := services.NewAvatarService(fetcher, userWriteRepo)
	appointmentService := services.NewAppointmentService(appointmentReadRepo, appointmentWriteRepo, userReadRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService, auditService)
	loginHandler := handlers.NewLoginHandler(authService, auditService, cfg.jwtExpSecond)
	logoutHandler := handlers.NewLogoutHandler(auditService)
	getProfileHandler := handlers.NewGetProfileHandler(userService)
	updateProfileHandler := handlers.NewUpdateProfileHandler(userService, auditService)
	updateAvatarHandler := handlers.NewUpdateAvatarHandler(avatarService, auditService)
	listDoctorsHandler := handlers.NewListDoctorsHandler(userService)
	listPatientsHandler := handlers.NewListPatientsHandler(userService)
	listAppointmentsHandler := handlers.NewListAppointmentsHandler(appointmentService)
	createAppointmentHandler := handlers.NewCreateAppointmentHandler(appointmentService, auditService)
	getAppointmentHandler := handlers.NewGetAppointmentHandler(appointmentService, auditService)
	updateAppointmentHandler := handlers.NewUpdateAppointmentHandler(appointmentService, auditService)
	adminListUsersHandler := handlers.NewAdminListUsersHandler(userService, auditService)
	adminGetUserHandler := handlers.NewAdminGetUserHandler(userService)
	adminUpdateUserHandler := handlers.NewAdminUpdateUserHandler(userService, auditService)
	adminListLogsHandler := handlers.NewAdminListLogsHandler(auditService)
	adminLogActionsHandler := handlers.NewAdminLogActionsHandler(auditService)
	adminLogStatsHandler := handlers.NewAdminLogStatsHandler(auditService)
	healthHandler := handlers.NewHealthHandler(db)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(tokenJWT, auditService)

	r.Route("/api", func(r chi.Router) {
		// Public routes with tight per-ip limits
		r.With(middlewares.RateLimitMiddleware(rdb, auditService, "register", cfg.rateLimitRegister, time.Minute)).
			Post("/auth/register", registerHandler)
		r.With(middlewares.RateLimitMiddleware(rdb, auditService, "login", cfg.rateLimitLogin, time.Minute)).
			Post("/auth/login", loginHandler)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(middlewares.RateLimitMiddleware(rdb, auditService, "api", cfg.rateLimitDefault, time.Hour))

			r.Post("/auth/logout", logoutHandler)

			r.Get("/users/me", getProfileHandler)
			r.Put("/users/me", updateProfileHandler)
			r.With(middlewares.RateLimitMiddleware(rdb, auditService, "avatar", cfg.rateLimitAvatar, time.Minute)).
				Put("/users/me/avatar", updateAvatarHandler)

			r.With(middlewares.RequireRoles(auditService, models.RolePatient, models.RoleAdmin)).
				Get("/users/doctors", listDoctorsHandler)
			r.With(middlewares.RequireRoles(auditService, models.RoleDoctor, models.RoleAdmin)).
				Get("/users/patients", listPatientsHandler)

			r.Get("/appointments", listAppointmentsHandler)
			r.Post("/appointments", createAppointmentHandler)
			r.Get("/appointments/{id}", getAppointmentHandler)
			r.With(middlewares.TxMiddleware(db)).
				Put("/appointments/{id}", updateAppointmentHandler)

			r.Route("/admin", func(r chi.Router) {
				r.Use(middlewares.RequireRoles(auditService, models.RoleAdmin))
				r.Get("/users", adminListUsersHandler)
				r.Get("/users/{id}", adminGetUserHandler)
				r.Put("/users/{id}", adminUpdateUserHandler)
				r.Get("/appointments", listAppointmentsHandler)
				r.Get("/appointments/{id}", getAppointmentHandler)
				r.Get("/logs", adminListLogsHandler)
				r.Get("/logs/actions", adminLogActionsHandler)
				r.Get("/logs/stats", adminLogStatsHandler)
			})
		})
	})

	r.Get("/health", healthHandler)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
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
