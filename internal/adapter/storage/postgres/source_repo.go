package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"creator-settlement/internal/core/domain"
	"creator-settlement/internal/core/ports"

	"github.com/google/uuid"
)

// SourceRepo reads the collaborator data the reconciler consumes: payment
// policies on campaigns and boosts, approved-submission metrics, and the
// legacy payment rows for the backfill. Implements ports.PaymentPolicySource,
// ports.SubmissionMetricsFeed and ports.LegacyLedgerSource.
type SourceRepo struct {
	pool Pool
}

// NewSourceRepo creates a new SourceRepo.
func NewSourceRepo(pool Pool) *SourceRepo {
	return &SourceRepo{pool: pool}
}

// ListActiveCampaigns returns payment policies for active campaigns,
// optionally narrowed to one campaign.
func (r *SourceRepo) ListActiveCampaigns(ctx context.Context, campaignID *uuid.UUID) ([]ports.CampaignPolicy, error) {
	query := `SELECT id, brand_id, cpm_rate, flat_rate, wallet_routing FROM campaigns
		WHERE status = 'active' AND ($1::uuid IS NULL OR id = $1)`

	rows, err := r.pool.Query(ctx, query, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list active campaigns: %w", err)
	}
	defer rows.Close()

	var policies []ports.CampaignPolicy
	for rows.Next() {
		var p ports.CampaignPolicy
		if err := rows.Scan(&p.ID, &p.BrandID, &p.CPMRate, &p.FlatRate, &p.WalletRouting); err != nil {
			return nil, fmt.Errorf("scan campaign policy: %w", err)
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}

// ListActiveBoosts returns payment policies for active boosts. Bonus tiers
// live in a JSONB column since their shape varies per boost.
func (r *SourceRepo) ListActiveBoosts(ctx context.Context, boostID *uuid.UUID) ([]ports.BoostPolicy, error) {
	query := `SELECT id, brand_id, view_bonuses, wallet_routing FROM boosts
		WHERE status = 'active' AND ($1::uuid IS NULL OR id = $1)`

	rows, err := r.pool.Query(ctx, query, boostID)
	if err != nil {
		return nil, fmt.Errorf("list active boosts: %w", err)
	}
	defer rows.Close()

	var policies []ports.BoostPolicy
	for rows.Next() {
		var p ports.BoostPolicy
		var bonuses []byte
		if err := rows.Scan(&p.ID, &p.BrandID, &bonuses, &p.WalletRouting); err != nil {
			return nil, fmt.Errorf("scan boost policy: %w", err)
		}
		if len(bonuses) > 0 {
			if err := json.Unmarshal(bonuses, &p.Bonuses); err != nil {
				return nil, fmt.Errorf("unmarshal boost bonuses: %w", err)
			}
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}

// ListApprovedSubmissions returns current view counts for approved
// submissions under one source.
func (r *SourceRepo) ListApprovedSubmissions(ctx context.Context, sourceType domain.SourceType, sourceID uuid.UUID) ([]ports.SubmissionMetrics, error) {
	query := `SELECT id, user_id, views, COALESCE(payout_amount, 0) FROM submissions
		WHERE source_type = $1 AND source_id = $2 AND status = 'approved'`

	rows, err := r.pool.Query(ctx, query, sourceType, sourceID)
	if err != nil {
		return nil, fmt.Errorf("list approved submissions: %w", err)
	}
	defer rows.Close()

	var metrics []ports.SubmissionMetrics
	for rows.Next() {
		var m ports.SubmissionMetrics
		if err := rows.Scan(&m.SubmissionID, &m.UserID, &m.Views, &m.PayoutAmount); err != nil {
			return nil, fmt.Errorf("scan submission metrics: %w", err)
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

// ListLegacyEntries reads the pre-unification payment rows for the one-shot
// backfill. Every legacy row maps to a paid transfer entry.
func (r *SourceRepo) ListLegacyEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	query := `SELECT id, user_id, source_type, source_id, submission_id, amount, paid_at
		FROM legacy_payments ORDER BY paid_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list legacy payments: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.SourceType, &e.SourceID, &e.SubmissionID, &e.PaidAmount, &e.PaidAt); err != nil {
			return nil, fmt.Errorf("scan legacy payment: %w", err)
		}
		e.PaymentType = domain.PaymentTransfer
		e.Status = domain.LedgerPaid
		e.AccruedAmount = e.PaidAmount
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
