package postgres

import (
	"context"
	"fmt"

	"creator-settlement/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// CounterRepo implements ports.DerivationCounterRepository.
type CounterRepo struct {
	pool Pool
}

// NewCounterRepo creates a new CounterRepo.
func NewCounterRepo(pool Pool) *CounterRepo {
	return &CounterRepo{pool: pool}
}

// AllocateNext hands out the next unused derivation index for a chain family.
// One statement, one round trip: the upsert-increment takes a row lock for
// the rest of the enclosing transaction, so concurrent callers serialize on
// the counter row and can never see the same index.
func (r *CounterRepo) AllocateNext(ctx context.Context, tx pgx.Tx, family domain.ChainFamily) (uint32, error) {
	query := `INSERT INTO derivation_counters (chain_family, next_index)
		VALUES ($1, 1)
		ON CONFLICT (chain_family)
		DO UPDATE SET next_index = derivation_counters.next_index + 1
		RETURNING next_index - 1`

	var index uint32
	if err := tx.QueryRow(ctx, query, family).Scan(&index); err != nil {
		return 0, fmt.Errorf("allocate derivation index: %w", err)
	}
	return index, nil
}
