package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Transactor hands out the transactions every money movement runs in: the
// wallet debit plus its request row, or a ledger upsert plus its credit.
type Transactor struct {
	pool Pool
}

// NewTransactor creates a new Transactor wrapping the connection pool.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// Begin starts a read-committed transaction. Settlement correctness comes
// from FOR UPDATE row locks and advisory locks, not elevated isolation, so
// the level is pinned explicitly rather than left to the server default.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
}
