package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sumaiya48/summer-camp-server/internal/config"
	"github.com/sumaiya48/summer-camp-server/internal/database"
	"github.com/sumaiya48/summer-camp-server/internal/handler"
	"github.com/sumaiya48/summer-camp-server/internal/logger"
	"github.com/sumaiya48/summer-camp-server/internal/payment"
	"github.com/sumaiya48/summer-camp-server/internal/repository"
	"github.com/sumaiya48/summer-camp-server/internal/router"
	"github.com/sumaiya48/summer-camp-server/internal/service"
	"github.com/sumaiya48/summer-camp-server/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Summer Camp API")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to MongoDB ────────────────────────────────────────────
	client, err := database.NewMongoClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(cfg.MongoDatabase)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure indexes")
	}

	// ─── Connect to Redis ──────────────────────────────────────────────
	// The cache is an optimization; the API serves from the store without it.
	var rdb *redis.Client
	if r, err := database.NewRedisClient(ctx, cfg, log); err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, listing cache disabled")
	} else {
		rdb = r
		defer rdb.Close()
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	classRepo := repository.NewClassRepository(db)
	selectionRepo := repository.NewSelectionRepository(db)
	instructorRepo := repository.NewInstructorRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	userService := service.NewUserService(userRepo)
	classService := service.NewClassService(classRepo, rdb, cfg.ListCacheTTL, log)
	selectionService := service.NewSelectionService(selectionRepo)
	instructorService := service.NewInstructorService(instructorRepo, rdb, cfg.ListCacheTTL, log)
	paymentService := service.NewPaymentService(paymentRepo, selectionRepo, payment.NewStripeBridge(cfg.StripeSecretKey), log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Class:      handler.NewClassHandler(classService),
		Selection:  handler.NewSelectionHandler(selectionService),
		Instructor: handler.NewInstructorHandler(instructorService),
		User:       handler.NewUserHandler(userService),
		Payment:    handler.NewPaymentHandler(paymentService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, userService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
