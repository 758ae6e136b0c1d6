package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"creator-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWithdrawal(userID uuid.UUID) *domain.WithdrawalRequest {
	return &domain.WithdrawalRequest{
		ID:     uuid.New(),
		UserID: userID,
		Amount: 10000,
		PayoutMethod: domain.MethodPayPal,
		PayoutDetails: domain.PayoutDetails{
			PayPal: &domain.PayPalPayoutDetails{Email: "creator@example.com"},
		},
		Status:            domain.WithdrawalPending,
		WithholdingRate:   30,
		WithholdingAmount: 3000,
		NetAmount:         7000,
		CreatedAt:         time.Now().UTC().Truncate(time.Microsecond),
	}
}

func withdrawalTestColumns() []string {
	return []string{
		"id", "user_id", "amount", "payout_method", "payout_details", "status",
		"tax_form_id", "withholding_rate", "withholding_amount", "net_amount",
		"created_at", "processed_at",
	}
}

func withdrawalRow(t *testing.T, req *domain.WithdrawalRequest) *pgxmock.Rows {
	t.Helper()
	details, err := json.Marshal(req.PayoutDetails)
	require.NoError(t, err)
	return pgxmock.NewRows(withdrawalTestColumns()).AddRow(
		req.ID, req.UserID, req.Amount, req.PayoutMethod, details, req.Status,
		req.TaxFormID, req.WithholdingRate, req.WithholdingAmount, req.NetAmount,
		req.CreatedAt, req.ProcessedAt,
	)
}

func TestWithdrawalRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	req := newTestWithdrawal(uuid.New())

	details, err := json.Marshal(req.PayoutDetails)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO payout_requests").
		WithArgs(
			req.ID, req.UserID, req.Amount, req.PayoutMethod, details, req.Status,
			req.TaxFormID, req.WithholdingRate, req.WithholdingAmount, req.NetAmount, req.CreatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, req)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepo_GetActiveByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	req := newTestWithdrawal(uuid.New())

	mock.ExpectBegin()
	mock.ExpectQuery("FROM payout_requests").
		WithArgs(req.UserID).
		WillReturnRows(withdrawalRow(t, req))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetActiveByUserID(context.Background(), tx, req.UserID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, req.ID, result.ID)
	require.NotNil(t, result.PayoutDetails.PayPal)
	assert.Equal(t, "creator@example.com", result.PayoutDetails.PayPal.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepo_GetActiveByUserID_NonePending(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM payout_requests").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows(withdrawalTestColumns()))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetActiveByUserID(context.Background(), tx, userID)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepo_SumPaidByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	userID := uuid.New()

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM payout_requests").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(55000)))

	total, err := repo.SumPaidByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(55000), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepo_ListByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	req := newTestWithdrawal(uuid.New())

	mock.ExpectQuery("FROM payout_requests").
		WithArgs(req.UserID, 50).
		WillReturnRows(withdrawalRow(t, req))

	reqs, err := repo.ListByUserID(context.Background(), req.UserID, 50)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, domain.WithdrawalPending, reqs[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
