package service

import (
	"context"
	"fmt"
	"time"

	"creator-settlement/internal/core/domain"
	"creator-settlement/internal/core/ports"
	"creator-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ReconcilerServiceImpl implements ports.ReconcilerService. Each run walks
// active campaigns and boosts, recomputes what every approved submission has
// earned from its current view count, and credits only the delta over what
// the ledger already recorded. Re-running with unchanged views is a no-op.
type ReconcilerServiceImpl struct {
	ledgerRepo   ports.LedgerRepository
	walletRepo   ports.WalletRepository
	walletTxRepo ports.WalletTransactionRepository
	policies     ports.PaymentPolicySource
	metrics      ports.SubmissionMetricsFeed
	legacy       ports.LegacyLedgerSource
	notifier     ports.NotificationService
	transactor   ports.DBTransactor
	log          zerolog.Logger
}

// NewReconcilerService creates a new ReconcilerServiceImpl.
func NewReconcilerService(
	ledgerRepo ports.LedgerRepository,
	walletRepo ports.WalletRepository,
	walletTxRepo ports.WalletTransactionRepository,
	policies ports.PaymentPolicySource,
	metrics ports.SubmissionMetricsFeed,
	legacy ports.LegacyLedgerSource,
	notifier ports.NotificationService,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *ReconcilerServiceImpl {
	return &ReconcilerServiceImpl{
		ledgerRepo:   ledgerRepo,
		walletRepo:   walletRepo,
		walletTxRepo: walletTxRepo,
		policies:     policies,
		metrics:      metrics,
		legacy:       legacy,
		notifier:     notifier,
		transactor:   transactor,
		log:          log,
	}
}

// cpmAmount converts a view count to cents at a cents-per-1000-views rate.
func cpmAmount(views, rate int64) int64 {
	return views * rate / 1000
}

// Run executes one reconciliation pass, optionally narrowed to one source.
func (s *ReconcilerServiceImpl) Run(ctx context.Context, filter ports.ReconcileFilter) (*ports.ReconcileReport, error) {
	report := &ports.ReconcileReport{}
	start := time.Now()

	if filter.SourceType == nil || *filter.SourceType == domain.SourceCampaign {
		var only *uuid.UUID
		if filter.SourceType != nil {
			only = filter.SourceID
		}
		campaigns, err := s.policies.ListActiveCampaigns(ctx, only)
		if err != nil {
			return nil, fmt.Errorf("list active campaigns: %w", err)
		}
		for _, c := range campaigns {
			// One broken source must not block everyone else's accrual.
			if err := s.reconcileCampaign(ctx, c, report); err != nil {
				s.log.Error().Err(err).Str("campaign_id", c.ID.String()).Msg("campaign reconciliation failed, continuing sweep")
				report.SourcesFailed++
				continue
			}
			report.CampaignsProcessed++
		}
	}

	if filter.SourceType == nil || *filter.SourceType == domain.SourceBoost {
		var only *uuid.UUID
		if filter.SourceType != nil {
			only = filter.SourceID
		}
		boosts, err := s.policies.ListActiveBoosts(ctx, only)
		if err != nil {
			return nil, fmt.Errorf("list active boosts: %w", err)
		}
		for _, b := range boosts {
			if err := s.reconcileBoost(ctx, b, report); err != nil {
				s.log.Error().Err(err).Str("boost_id", b.ID.String()).Msg("boost reconciliation failed, continuing sweep")
				report.SourcesFailed++
				continue
			}
			report.BoostsProcessed++
		}
	}

	s.log.Info().
		Int("campaigns", report.CampaignsProcessed).
		Int("boosts", report.BoostsProcessed).
		Int("entries_created", report.EntriesCreated).
		Int("entries_updated", report.EntriesUpdated).
		Int("sources_failed", report.SourcesFailed).
		Int64("amount_credited", report.AmountCredited).
		Dur("elapsed", time.Since(start)).
		Msg("reconciliation run complete")

	return report, nil
}

func (s *ReconcilerServiceImpl) reconcileCampaign(ctx context.Context, c ports.CampaignPolicy, report *ports.ReconcileReport) error {
	subs, err := s.metrics.ListApprovedSubmissions(ctx, domain.SourceCampaign, c.ID)
	if err != nil {
		return fmt.Errorf("list campaign submissions: %w", err)
	}

	for _, sub := range subs {
		if c.CPMRate > 0 {
			entry := s.buildEntry(sub, domain.SourceCampaign, c.ID, domain.PaymentCPM, c.CPMRate, 0)
			entry.AccruedAmount = cpmAmount(sub.Views, c.CPMRate)
			if err := s.applyEntry(ctx, entry, c.WalletRouting, report); err != nil {
				return err
			}
		}
		if c.FlatRate > 0 {
			entry := s.buildEntry(sub, domain.SourceCampaign, c.ID, domain.PaymentFlatRate, c.FlatRate, 0)
			entry.AccruedAmount = c.FlatRate
			if err := s.applyEntry(ctx, entry, c.WalletRouting, report); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *ReconcilerServiceImpl) reconcileBoost(ctx context.Context, b ports.BoostPolicy, report *ports.ReconcileReport) error {
	subs, err := s.metrics.ListApprovedSubmissions(ctx, domain.SourceBoost, b.ID)
	if err != nil {
		return fmt.Errorf("list boost submissions: %w", err)
	}

	for _, sub := range subs {
		// The agreed flat amount for the submission itself.
		if sub.PayoutAmount > 0 {
			entry := s.buildEntry(sub, domain.SourceBoost, b.ID, domain.PaymentFlatRate, sub.PayoutAmount, 0)
			entry.AccruedAmount = sub.PayoutAmount
			if err := s.applyEntry(ctx, entry, b.WalletRouting, report); err != nil {
				return err
			}
		}

		for _, bonus := range b.Bonuses {
			switch bonus.Kind {
			case domain.PaymentMilestone:
				// A milestone pays its fixed bonus once views cross the
				// threshold. Each threshold is its own ledger entry.
				if sub.Views < bonus.Threshold {
					continue
				}
				entry := s.buildEntry(sub, domain.SourceBoost, b.ID, domain.PaymentMilestone, bonus.Bonus, bonus.Threshold)
				entry.AccruedAmount = bonus.Bonus
				if err := s.applyEntry(ctx, entry, b.WalletRouting, report); err != nil {
					return err
				}
			case domain.PaymentViewBonus:
				// A CPM bonus pays on views above the tier's floor. Each tier
				// is keyed by its threshold so multiple tiers on one boost
				// accrue as separate ledger rows.
				if sub.Views < bonus.MinViews {
					continue
				}
				amount := cpmAmount(sub.Views-bonus.MinViews, bonus.CPMRate)
				if amount <= 0 {
					continue
				}
				entry := s.buildEntry(sub, domain.SourceBoost, b.ID, domain.PaymentViewBonus, bonus.CPMRate, bonus.Threshold)
				entry.AccruedAmount = amount
				if err := s.applyEntry(ctx, entry, b.WalletRouting, report); err != nil {
					return err
				}
			default:
				s.log.Warn().
					Str("boost_id", b.ID.String()).
					Str("kind", string(bonus.Kind)).
					Msg("skipping bonus tier with unknown kind")
			}
		}
	}
	return nil
}

func (s *ReconcilerServiceImpl) buildEntry(sub ports.SubmissionMetrics, st domain.SourceType, sourceID uuid.UUID, pt domain.PaymentType, rate, threshold int64) *domain.LedgerEntry {
	return &domain.LedgerEntry{
		ID:                 uuid.New(),
		UserID:             sub.UserID,
		SourceType:         st,
		SourceID:           sourceID,
		SubmissionID:       sub.SubmissionID,
		PaymentType:        pt,
		ViewsSnapshot:      sub.Views,
		Rate:               rate,
		MilestoneThreshold: threshold,
		Status:             domain.LedgerAccruing,
		LastCalculatedAt:   time.Now().UTC(),
	}
}

// applyEntry upserts one ledger entry and credits the accrual delta, all in
// one transaction. Accruals never shrink: if the analytics feed reports fewer
// views than before, the prior accrual stands and the delta is zero.
func (s *ReconcilerServiceImpl) applyEntry(ctx context.Context, entry *domain.LedgerEntry, walletRouting bool, report *ports.ReconcileReport) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	existing, err := s.ledgerRepo.GetForUpdate(ctx, dbTx, entry.SubmissionID, entry.PaymentType, entry.MilestoneThreshold)
	if err != nil {
		return fmt.Errorf("lock ledger entry: %w", err)
	}

	var delta int64
	if existing != nil {
		if entry.AccruedAmount <= existing.AccruedAmount {
			entry.AccruedAmount = existing.AccruedAmount
			if entry.ViewsSnapshot < existing.ViewsSnapshot {
				entry.ViewsSnapshot = existing.ViewsSnapshot
			}
		} else {
			delta = entry.AccruedAmount - existing.AccruedAmount
		}
		entry.ID = existing.ID
		entry.PaidAmount = existing.PaidAmount
		entry.Status = existing.Status
	} else {
		delta = entry.AccruedAmount
	}

	created, err := s.ledgerRepo.Upsert(ctx, dbTx, entry)
	if err != nil {
		return fmt.Errorf("upsert ledger entry: %w", err)
	}

	// Wallet routing off means the source accrues for reporting only and is
	// settled outside the platform. The ledger still records it.
	if walletRouting && delta > 0 {
		wallet, err := s.walletRepo.Credit(ctx, dbTx, entry.UserID, delta)
		if err != nil {
			return fmt.Errorf("credit wallet: %w", err)
		}
		walletTx := &domain.WalletTransaction{
			ID:          uuid.New(),
			WalletID:    wallet.ID,
			UserID:      entry.UserID,
			Amount:      delta,
			Direction:   domain.DirectionCredit,
			Kind:        domain.KindAccrual,
			ReferenceID: entry.ID,
			CreatedAt:   time.Now().UTC(),
		}
		if err := s.walletTxRepo.Create(ctx, dbTx, walletTx); err != nil {
			return fmt.Errorf("create wallet transaction: %w", err)
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	if created {
		report.EntriesCreated++
	} else if delta > 0 {
		report.EntriesUpdated++
	}
	if walletRouting && delta > 0 {
		report.AmountCredited += delta
		s.notifier.BalanceCredited(ctx, entry.UserID, delta, entry.SubmissionID)
	}
	return nil
}

// ListEarnings returns a user's most recent ledger entries.
func (s *ReconcilerServiceImpl) ListEarnings(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	entries, err := s.ledgerRepo.ListByUserID(ctx, userID, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list ledger entries: %w", err))
	}
	return entries, nil
}

// BackfillLegacy imports pre-unification payment rows as paid transfer
// entries. One-shot and idempotent: rows whose natural key already exists in
// the ledger are skipped, and nothing is credited since these payments
// already settled historically.
func (s *ReconcilerServiceImpl) BackfillLegacy(ctx context.Context) (*ports.ReconcileReport, error) {
	report := &ports.ReconcileReport{}

	entries, err := s.legacy.ListLegacyEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list legacy payments: %w", err)
	}

	for _, legacy := range entries {
		entry := legacy
		entry.PaymentType = domain.PaymentTransfer
		entry.Status = domain.LedgerPaid
		entry.LastCalculatedAt = time.Now().UTC()

		dbTx, err := s.transactor.Begin(ctx)
		if err != nil {
			return nil, fmt.Errorf("begin tx: %w", err)
		}

		existing, err := s.ledgerRepo.GetForUpdate(ctx, dbTx, entry.SubmissionID, entry.PaymentType, 0)
		if err != nil {
			dbTx.Rollback(ctx) //nolint:errcheck
			return nil, fmt.Errorf("lock ledger entry: %w", err)
		}
		if existing != nil {
			dbTx.Rollback(ctx) //nolint:errcheck
			continue
		}

		if _, err := s.ledgerRepo.Upsert(ctx, dbTx, &entry); err != nil {
			dbTx.Rollback(ctx) //nolint:errcheck
			return nil, fmt.Errorf("insert legacy entry: %w", err)
		}
		if err := dbTx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("commit tx: %w", err)
		}
		report.EntriesCreated++
	}

	s.log.Info().
		Int("entries_created", report.EntriesCreated).
		Msg("legacy backfill complete")

	return report, nil
}
