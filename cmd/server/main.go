package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/van-rental-manager/internal/config"
	"github.com/sbilibin2017/van-rental-manager/internal/handlers"
	"github.com/sbilibin2017/van-rental-manager/internal/jwt"
	"github.com/sbilibin2017/van-rental-manager/internal/logger"
	"github.com/sbilibin2017/van-rental-manager/internal/middlewares"
	"github.com/sbilibin2017/van-rental-manager/internal/notifications"
	"github.com/sbilibin2017/van-rental-manager/internal/repositories"
	"github.com/sbilibin2017/van-rental-manager/internal/services"
	"github.com/sbilibin2017/van-rental-manager/internal/sessions"
	"github.com/sbilibin2017/van-rental-manager/internal/templates"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/van-rental-manager/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title van-rental-manager
// @version 1.0.0
// @description Bookkeeping for van rentals: accounts, sessions and per-user rental records
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
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

// run initializes the logger, database, Redis, mailer and Kafka writer, and
// serves HTTP until a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	logger.Log.Infow("Connected to PostgreSQL", "host", cfg.PGHost, "db", cfg.PGDB)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	mailer, err := notifications.NewMailer(notifications.Config{
		Server:   cfg.MailServer,
		Port:     cfg.MailPort,
		Username: cfg.MailUsername,
		Password: cfg.MailPassword,
		Sender:   cfg.MailDefaultSender,
	})
	if err != nil {
		return err
	}

	var events services.KafkaWriter
	if writer := newEventWriter(cfg); writer != nil {
		defer writer.Close()
		events = writer
	}

	renderer, err := templates.New()
	if err != nil {
		return err
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetConnFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetConnFromContext)
	rentalReadRepo := repositories.NewRentalReadRepository(db, middlewares.GetConnFromContext)
	rentalWriteRepo := repositories.NewRentalWriteRepository(db, middlewares.GetConnFromContext)
	sessionRepo := repositories.NewSessionRepository(rdb, cfg.SessionTTL)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, mailer)
	rentalService := services.NewRentalService(rentalReadRepo, rentalWriteRepo, mailer, events)

	sessionManager := sessions.NewManager(
		sessionRepo,
		jwt.New(jwt.WithSecretKey(cfg.SecretKey), jwt.WithExpiration(cfg.SessionTTL)),
		cfg.SessionTTL,
		cfg.SecureCookie,
	)

	r := newRouter(routerDeps{
		db:       db,
		auth:     authService,
		rentals:  rentalService,
		sessions: sessionManager,
		renderer: renderer,
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.Addr())),
	))

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
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

// newEventWriter returns the rental event writer, or nil when no brokers are configured.
// Each message is flushed on its own so requests do not wait for a batch to fill.
func newEventWriter(cfg *config.Config) *kafka.Writer {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		BatchSize:              1,
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

type authService interface {
	handlers.Registerer
	handlers.Loginer
	middlewares.UserGetter
}

type rentalService interface {
	handlers.RentalLister
	handlers.RentalGetter
	handlers.RentalAdder
	handlers.RentalUpdater
	handlers.RentalDeleter
}

type sessionManager interface {
	middlewares.SessionLoader
	handlers.SessionRenewer
	handlers.SessionDestroyer
}

type routerDeps struct {
	db       *sqlx.DB
	auth     authService
	rentals  rentalService
	sessions sessionManager
	renderer handlers.Renderer
}

// newRouter wires the middleware chain and the application routes.
func newRouter(d routerDeps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.ConnMiddleware(d.db))
	r.Use(middlewares.SessionMiddleware(d.sessions))
	r.Use(middlewares.LoadUserMiddleware(d.auth))

	r.Get("/", handlers.NewIndexHandler())

	// Public routes
	r.Route("/auth", func(r chi.Router) {
		r.Get("/register", handlers.NewRegisterPageHandler(d.renderer, d.sessions))
		r.Post("/register", handlers.NewRegisterHandler(d.auth, d.renderer, d.sessions))
		r.Get("/login", handlers.NewLoginPageHandler(d.renderer, d.sessions))
		r.Post("/login", handlers.NewLoginHandler(d.auth, d.renderer, d.sessions))
		r.Get("/logout", handlers.NewLogoutHandler(d.sessions))
	})

	// Protected routes
	r.Route("/van", func(r chi.Router) {
		r.Use(middlewares.RequireAuthMiddleware)
		r.Get("/", handlers.NewRentalsHandler(d.rentals, d.renderer, d.sessions))
		r.Get("/rental/add", handlers.NewAddRentalPageHandler(d.renderer, d.sessions))
		r.Post("/rental/add", handlers.NewAddRentalHandler(d.rentals, d.renderer, d.sessions))
		r.Get("/rental/{id:[0-9]+}/update", handlers.NewUpdateRentalPageHandler(d.rentals, d.renderer, d.sessions))
		r.Post("/rental/{id:[0-9]+}/update", handlers.NewUpdateRentalHandler(d.rentals, d.renderer, d.sessions))
		r.Post("/rental/{id:[0-9]+}/delete", handlers.NewDeleteRentalHandler(d.rentals, d.sessions))
	})

	return r
}
