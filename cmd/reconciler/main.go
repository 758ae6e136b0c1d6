package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creator-settlement/config"
	pgStorage "creator-settlement/internal/adapter/storage/postgres"
	"creator-settlement/internal/scheduler"
	"creator-settlement/internal/service"
	"creator-settlement/pkg/logger"
)

func main() {
	backfill := flag.Bool("backfill", false, "run the one-shot legacy ledger backfill and exit")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Bool("backfill", *backfill).
		Str("schedule", cfg.Reconcile.Schedule).
		Msg("Starting Creator Settlement reconciler")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize repositories
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	walletTxRepo := pgStorage.NewWalletTransactionRepo(pool)
	sourceRepo := pgStorage.NewSourceRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize services
	sigSvc := service.NewHMACSignatureService()
	notifier := service.NewWebhookNotifier(cfg.Notify, sigSvc, &http.Client{Timeout: 10 * time.Second}, log)
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

	if *backfill {
		report, err := reconcilerSvc.BackfillLegacy(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Legacy backfill failed")
		}
		log.Info().
			Int("entries_created", report.EntriesCreated).
			Msg("Legacy backfill complete")
		return
	}

	// Cron loop
	sched := scheduler.New(reconcilerSvc, log)
	if err := sched.Start(cfg.Reconcile.Schedule); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down reconciler...")

	// Wait for any in-flight sweep before exiting.
	<-sched.Stop().Done()
	log.Info().Msg("Reconciler exited")
}
