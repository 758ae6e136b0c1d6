package postgres

import (
	"context"
	"testing"
	"time"

	"creator-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntry() *domain.LedgerEntry {
	return &domain.LedgerEntry{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		SourceType:       domain.SourceCampaign,
		SourceID:         uuid.New(),
		SubmissionID:     uuid.New(),
		PaymentType:      domain.PaymentCPM,
		ViewsSnapshot:    10000,
		Rate:             500,
		AccruedAmount:    5000,
		Status:           domain.LedgerAccruing,
		LastCalculatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func ledgerTestColumns() []string {
	return []string{
		"id", "user_id", "source_type", "source_id", "submission_id", "payment_type",
		"views_snapshot", "rate", "milestone_threshold", "accrued_amount", "paid_amount",
		"status", "last_calculated_at", "paid_at", "cleared_at",
	}
}

func ledgerRow(e *domain.LedgerEntry) *pgxmock.Rows {
	return pgxmock.NewRows(ledgerTestColumns()).AddRow(
		e.ID, e.UserID, e.SourceType, e.SourceID, e.SubmissionID, e.PaymentType,
		e.ViewsSnapshot, e.Rate, e.MilestoneThreshold, e.AccruedAmount, e.PaidAmount,
		e.Status, e.LastCalculatedAt, e.PaidAt, e.ClearedAt,
	)
}

func TestLedgerRepo_GetForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	e := newTestEntry()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM payment_ledger").
		WithArgs(e.SubmissionID, e.PaymentType, e.MilestoneThreshold).
		WillReturnRows(ledgerRow(e))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetForUpdate(context.Background(), tx, e.SubmissionID, e.PaymentType, e.MilestoneThreshold)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, e.ID, result.ID)
	assert.Equal(t, int64(5000), result.AccruedAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_GetForUpdate_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	submissionID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM payment_ledger").
		WithArgs(submissionID, domain.PaymentMilestone, int64(10000)).
		WillReturnRows(pgxmock.NewRows(ledgerTestColumns()))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetForUpdate(context.Background(), tx, submissionID, domain.PaymentMilestone, 10000)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_Upsert_ReportsCreated(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	e := newTestEntry()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO payment_ledger").
		WithArgs(
			e.ID, e.UserID, e.SourceType, e.SourceID, e.SubmissionID, e.PaymentType,
			e.ViewsSnapshot, e.Rate, e.MilestoneThreshold, e.AccruedAmount, e.PaidAmount,
			e.Status, e.LastCalculatedAt,
		).
		WillReturnRows(pgxmock.NewRows([]string{"inserted"}).AddRow(true))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	created, err := repo.Upsert(context.Background(), tx, e)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_Upsert_ReportsUpdated(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	e := newTestEntry()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO payment_ledger").
		WithArgs(
			e.ID, e.UserID, e.SourceType, e.SourceID, e.SubmissionID, e.PaymentType,
			e.ViewsSnapshot, e.Rate, e.MilestoneThreshold, e.AccruedAmount, e.PaidAmount,
			e.Status, e.LastCalculatedAt,
		).
		WillReturnRows(pgxmock.NewRows([]string{"inserted"}).AddRow(false))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	created, err := repo.Upsert(context.Background(), tx, e)
	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_ListByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	e := newTestEntry()

	mock.ExpectQuery("FROM payment_ledger").
		WithArgs(e.UserID, 20).
		WillReturnRows(ledgerRow(e))

	entries, err := repo.ListByUserID(context.Background(), e.UserID, 20)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, e.SubmissionID, entries[0].SubmissionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
