// Package scheduler runs periodic reconciliation sweeps on a cron schedule.
package scheduler

import (
	"context"
	"time"

	"creator-settlement/internal/core/ports"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Each sweep gets a bounded context so a stuck run cannot pile up behind
// the next tick.
const sweepTimeout = 5 * time.Minute

// Scheduler triggers full reconciliation runs on a cron schedule.
type Scheduler struct {
	cron       *cron.Cron
	reconciler ports.ReconcilerService
	log        zerolog.Logger
}

// New creates a Scheduler.
func New(reconciler ports.ReconcilerService, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		reconciler: reconciler,
		log:        log,
	}
}

// Start registers the sweep job and starts the cron loop. The schedule
// accepts standard cron specs and descriptors like "@every 10m".
func (s *Scheduler) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, s.sweep)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("schedule", schedule).Msg("reconciliation scheduler started")
	return nil
}

// Stop halts the cron loop and returns a context that is done once any
// in-flight sweep finishes.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	report, err := s.reconciler.Run(ctx, ports.ReconcileFilter{})
	if err != nil {
		s.log.Error().Err(err).Msg("scheduled reconciliation failed")
		return
	}

	s.log.Info().
		Int("campaigns_processed", report.CampaignsProcessed).
		Int("boosts_processed", report.BoostsProcessed).
		Int("entries_created", report.EntriesCreated).
		Int("entries_updated", report.EntriesUpdated).
		Int64("amount_credited", report.AmountCredited).
		Msg("scheduled reconciliation complete")
}
