package postgres

import (
	"context"
	"errors"
	"fmt"

	"creator-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProfileRepo implements ports.ProfileRepository.
type ProfileRepo struct {
	pool Pool
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(pool Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// GetByUserID fetches the profile fields the settlement core consults.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := `SELECT user_id, tax_country FROM profiles WHERE user_id = $1`

	p := &domain.Profile{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(&p.UserID, &p.TaxCountry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	return p, nil
}
