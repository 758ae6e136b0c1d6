package postgres

import (
	"context"
	"errors"
	"fmt"

	"creator-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TaxFormRepo implements ports.TaxFormRepository. Forms are filed elsewhere;
// this repo only reads them.
type TaxFormRepo struct {
	pool Pool
}

// NewTaxFormRepo creates a new TaxFormRepo.
func NewTaxFormRepo(pool Pool) *TaxFormRepo {
	return &TaxFormRepo{pool: pool}
}

const taxFormColumns = `id, user_id, form_type, status, country, treaty_country, claims_treaty_benefits, expires_at, created_at`

// GetByID fetches one tax form. Returns nil, nil when absent.
func (r *TaxFormRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TaxForm, error) {
	query := `SELECT ` + taxFormColumns + ` FROM tax_forms WHERE id = $1`
	return scanTaxForm(r.pool.QueryRow(ctx, query, id))
}

// GetLatestByUserID fetches the user's most recently filed form, verified or
// not, so callers can report a pending form's status.
func (r *TaxFormRepo) GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*domain.TaxForm, error) {
	query := `SELECT ` + taxFormColumns + ` FROM tax_forms
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`
	return scanTaxForm(r.pool.QueryRow(ctx, query, userID))
}

func scanTaxForm(row pgx.Row) (*domain.TaxForm, error) {
	f := &domain.TaxForm{}
	err := row.Scan(
		&f.ID, &f.UserID, &f.FormType, &f.Status, &f.Country,
		&f.TreatyCountry, &f.ClaimsTreatyBenefits, &f.ExpiresAt, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan tax form: %w", err)
	}
	return f, nil
}
