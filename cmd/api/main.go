package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creator-settlement/config"
	httpHandler "creator-settlement/internal/adapter/http/handler"
	pgStorage "creator-settlement/internal/adapter/storage/postgres"
	redisStorage "creator-settlement/internal/adapter/storage/redis"
	"creator-settlement/internal/core/ports"
	"creator-settlement/internal/keychain"
	"creator-settlement/internal/service"
	"creator-settlement/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Creator Settlement API")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Master seed is injected once here; the keychain never exposes it.
	keys, err := keychain.New(cfg.Seed.Mnemonic, cfg.Seed.Passphrase)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize keychain")
	}

	// Initialize repositories
	addrRepo := pgStorage.NewDepositAddressRepo(pool)
	counterRepo := pgStorage.NewCounterRepo(pool)
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	walletTxRepo := pgStorage.NewWalletTransactionRepo(pool)
	withdrawalRepo := pgStorage.NewWithdrawalRepo(pool)
	taxFormRepo := pgStorage.NewTaxFormRepo(pool)
	profileRepo := pgStorage.NewProfileRepo(pool)
	sourceRepo := pgStorage.NewSourceRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	addressCache := redisStorage.NewAddressCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	notifier := service.NewWebhookNotifier(cfg.Notify, sigSvc, &http.Client{Timeout: 10 * time.Second}, log)

	// Initialize business services
	depositSvc := service.NewDepositAddressService(addrRepo, counterRepo, keys, addressCache, transactor, log)
	taxSvc := service.NewTaxService(taxFormRepo, profileRepo, withdrawalRepo, log)
	withdrawalSvc := service.NewWithdrawalService(
		walletRepo,
		walletTxRepo,
		withdrawalRepo,
		taxSvc,
		notifier,
		transactor,
		cfg.Payout,
		log,
	)
	reconcilerSvc := service.NewReconcilerService(
		ledgerRepo,
		walletRepo,
		walletTxRepo,
		sourceRepo,
		sourceRepo,
		sourceRepo,
		notifier,
		transactor,
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthChecker(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		DepositSvc:     depositSvc,
		WithdrawalSvc:  withdrawalSvc,
		ReconcilerSvc:  reconcilerSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
