package service

import (
	"context"
	"testing"
	"time"

	"creator-settlement/config"
	"creator-settlement/internal/core/domain"
	"creator-settlement/internal/core/ports"
	"creator-settlement/internal/core/ports/mocks"
	"creator-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type withdrawalTestDeps struct {
	svc            *WithdrawalServiceImpl
	walletRepo     *mocks.MockWalletRepository
	walletTxRepo   *mocks.MockWalletTransactionRepository
	withdrawalRepo *mocks.MockWithdrawalRepository
	taxSvc         *mocks.MockTaxService
	notifier       *mocks.MockNotificationService
	transactor     *mocks.MockDBTransactor
	ctrl           *gomock.Controller
}

func setupWithdrawalService(t *testing.T) *withdrawalTestDeps {
	ctrl := gomock.NewController(t)
	d := &withdrawalTestDeps{
		walletRepo:     mocks.NewMockWalletRepository(ctrl),
		walletTxRepo:   mocks.NewMockWalletTransactionRepository(ctrl),
		withdrawalRepo: mocks.NewMockWithdrawalRepository(ctrl),
		taxSvc:         mocks.NewMockTaxService(ctrl),
		notifier:       mocks.NewMockNotificationService(ctrl),
		transactor:     mocks.NewMockDBTransactor(ctrl),
		ctrl:           ctrl,
	}
	cfg := config.PayoutConfig{MinimumDefault: 1000, MinimumBank: 5000}
	d.svc = NewWithdrawalService(
		d.walletRepo, d.walletTxRepo, d.withdrawalRepo,
		d.taxSvc, d.notifier, d.transactor, cfg, zerolog.Nop(),
	)
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func paypalParams(userID uuid.UUID, amount int64) ports.WithdrawalParams {
	return ports.WithdrawalParams{
		UserID:       userID,
		Role:         "creator",
		Amount:       amount,
		PayoutMethod: domain.MethodPayPal,
		PayoutDetails: domain.PayoutDetails{
			PayPal: &domain.PayPalPayoutDetails{Email: "creator@example.com"},
		},
	}
}

func notRequired() *domain.TaxRequirement {
	return &domain.TaxRequirement{Required: false, Reason: domain.ReasonNotRequired}
}

func TestWithdrawalService_RequestWithdrawal_Success(t *testing.T) {
	d := setupWithdrawalService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	walletID := uuid.New()
	tx := &mockTx{}

	params := paypalParams(userID, 10000) // $100

	d.taxSvc.EXPECT().CheckRequirement(ctx, userID, int64(10000)).Return(notRequired(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByUserIDForUpdate(ctx, tx, userID).Return(&domain.Wallet{
		ID: walletID, UserID: userID, AvailableBalance: 25000,
	}, nil)
	d.withdrawalRepo.EXPECT().GetActiveByUserID(ctx, tx, userID).Return(nil, nil)
	d.taxSvc.EXPECT().UsableForm(ctx, userID).Return(nil, nil)
	d.taxSvc.EXPECT().WithholdingRate(ctx, nil).Return(30)

	var createdReq *domain.WithdrawalRequest
	d.walletRepo.EXPECT().Debit(ctx, tx, walletID, int64(10000)).Return(nil)
	d.withdrawalRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, req *domain.WithdrawalRequest) error {
			createdReq = req
			return nil
		})
	d.walletTxRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, wt *domain.WalletTransaction) error {
			assert.Equal(t, domain.DirectionDebit, wt.Direction)
			assert.Equal(t, domain.KindWithdrawal, wt.Kind)
			assert.Equal(t, int64(10000), wt.Amount)
			return nil
		})
	d.notifier.EXPECT().WithdrawalRequested(ctx, gomock.Any())

	result, err := d.svc.RequestWithdrawal(ctx, params)
	require.NoError(t, err)
	require.NotNil(t, result)

	// Full amount debited; withholding reduces the net, not the debit.
	assert.Equal(t, int64(15000), result.BalanceAfter)
	require.NotNil(t, createdReq)
	assert.Equal(t, int64(10000), createdReq.Amount)
	assert.Equal(t, 30, createdReq.WithholdingRate)
	assert.Equal(t, int64(3000), createdReq.WithholdingAmount)
	assert.Equal(t, int64(7000), createdReq.NetAmount)
	assert.Equal(t, domain.WithdrawalPending, createdReq.Status)
	assert.Nil(t, createdReq.TaxFormID)
}

func TestWithdrawalService_RequestWithdrawal_DomesticUnderThresholdNoWithholding(t *testing.T) {
	d := setupWithdrawalService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	walletID := uuid.New()
	tx := &mockTx{}

	params := paypalParams(userID, 10000)

	// A US payee under the reporting threshold has no form on file and none
	// required; the default nonresident rate must not apply.
	d.taxSvc.EXPECT().CheckRequirement(ctx, userID, int64(10000)).Return(&domain.TaxRequirement{
		Required: false,
		Reason:   domain.ReasonUnderThreshold,
	}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByUserIDForUpdate(ctx, tx, userID).Return(&domain.Wallet{
		ID: walletID, UserID: userID, AvailableBalance: 25000,
	}, nil)
	d.withdrawalRepo.EXPECT().GetActiveByUserID(ctx, tx, userID).Return(nil, nil)
	d.taxSvc.EXPECT().UsableForm(ctx, userID).Return(nil, nil)

	var createdReq *domain.WithdrawalRequest
	d.walletRepo.EXPECT().Debit(ctx, tx, walletID, int64(10000)).Return(nil)
	d.withdrawalRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, req *domain.WithdrawalRequest) error {
			createdReq = req
			return nil
		})
	d.walletTxRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.notifier.EXPECT().WithdrawalRequested(ctx, gomock.Any())

	result, err := d.svc.RequestWithdrawal(ctx, params)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, createdReq)
	assert.Equal(t, 0, createdReq.WithholdingRate)
	assert.Equal(t, int64(0), createdReq.WithholdingAmount)
	assert.Equal(t, int64(10000), createdReq.NetAmount)
}

func TestWithdrawalService_RequestWithdrawal_ZeroWithholdingWithW9(t *testing.T) {
	d := setupWithdrawalService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	walletID := uuid.New()
	tx := &mockTx{}
	form := &domain.TaxForm{ID: uuid.New(), UserID: userID, FormType: domain.FormW9, Status: domain.TaxFormVerified}

	d.taxSvc.EXPECT().CheckRequirement(ctx, userID, int64(2000)).Return(notRequired(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByUserIDForUpdate(ctx, tx, userID).Return(&domain.Wallet{
		ID: walletID, UserID: userID, AvailableBalance: 5000,
	}, nil)
	d.withdrawalRepo.EXPECT().GetActiveByUserID(ctx, tx, userID).Return(nil, nil)
	d.taxSvc.EXPECT().UsableForm(ctx, userID).Return(form, nil)
	d.taxSvc.EXPECT().WithholdingRate(ctx, form).Return(0)
	d.walletRepo.EXPECT().Debit(ctx, tx, walletID, int64(2000)).Return(nil)

	var createdReq *domain.WithdrawalRequest
	d.withdrawalRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, req *domain.WithdrawalRequest) error {
			createdReq = req
			return nil
		})
	d.walletTxRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.notifier.EXPECT().WithdrawalRequested(ctx, gomock.Any())

	result, err := d.svc.RequestWithdrawal(ctx, paypalParams(userID, 2000))
	require.NoError(t, err)
	assert.Equal(t, int64(3000), result.BalanceAfter)
	require.NotNil(t, createdReq)
	assert.Equal(t, int64(0), createdReq.WithholdingAmount)
	assert.Equal(t, int64(2000), createdReq.NetAmount)
	require.NotNil(t, createdReq.TaxFormID)
	assert.Equal(t, form.ID, *createdReq.TaxFormID)
}

func TestWithdrawalService_RequestWithdrawal_InvalidAmount(t *testing.T) {
	d := setupWithdrawalService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.RequestWithdrawal(context.Background(), paypalParams(uuid.New(), 0))
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "VAL_001", appErr.Code)
}

func TestWithdrawalService_RequestWithdrawal_InvalidDetails(t *testing.T) {
	d := setupWithdrawalService(t)
	defer d.ctrl.Finish()

	params := ports.WithdrawalParams{
		UserID:       uuid.New(),
		Amount:       2000,
		PayoutMethod: domain.MethodCrypto,
		// no crypto details
	}
	_, err := d.svc.RequestWithdrawal(context.Background(), params)
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "VAL_004", appErr.Code)
}

func TestWithdrawalService_RequestWithdrawal_BelowMinimum(t *testing.T) {
	d := setupWithdrawalService(t)
	defer d.ctrl.Finish()

	params := ports.WithdrawalParams{
		UserID:       uuid.New(),
		Amount:       3000, // bank minimum is 5000
		PayoutMethod: domain.MethodBankTransfer,
		PayoutDetails: domain.PayoutDetails{
			Bank: &domain.BankPayoutDetails{AccountName: "A", AccountNumber: "123", RoutingNumber: "456"},
		},
	}
	_, err := d.svc.RequestWithdrawal(context.Background(), params)
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "POL_002", appErr.Code)
	assert.Equal(t, int64(5000), appErr.Details["minimum_amount"])
}

func TestWithdrawalService_RequestWithdrawal_AdminBypassesMinimum(t *testing.T) {
	d := setupWithdrawalService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	walletID := uuid.New()
	tx := &mockTx{}

	params := paypalParams(userID, 500) // below the 1000 default minimum
	params.Role = "admin"

	d.taxSvc.EXPECT().CheckRequirement(ctx, userID, int64(500)).Return(notRequired(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByUserIDForUpdate(ctx, tx, userID).Return(&domain.Wallet{
		ID: walletID, UserID: userID, AvailableBalance: 5000,
	}, nil)
	d.withdrawalRepo.EXPECT().GetActiveByUserID(ctx, tx, userID).Return(nil, nil)
	d.taxSvc.EXPECT().UsableForm(ctx, userID).Return(nil, nil)
	d.taxSvc.EXPECT().WithholdingRate(ctx, nil).Return(30)
	d.walletRepo.EXPECT().Debit(ctx, tx, walletID, int64(500)).Return(nil)
	d.withdrawalRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.walletTxRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.notifier.EXPECT().WithdrawalRequested(ctx, gomock.Any())

	result, err := d.svc.RequestWithdrawal(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, int64(4500), result.BalanceAfter)
}

func TestWithdrawalService_RequestWithdrawal_MethodDisabled(t *testing.T) {
	d := setupWithdrawalService(t)
	defer d.ctrl.Finish()

	cfg := config.PayoutConfig{MinimumDefault: 1000, DisabledMethods: []string{"paypal"}}
	svc := NewWithdrawalService(
		d.walletRepo, d.walletTxRepo, d.withdrawalRepo,
		d.taxSvc, d.notifier, d.transactor, cfg, zerolog.Nop(),
	)

	_, err := svc.RequestWithdrawal(context.Background(), paypalParams(uuid.New(), 2000))
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "POL_003", appErr.Code)
}

func TestWithdrawalService_RequestWithdrawal_TaxFormRequired(t *testing.T) {
	d := setupWithdrawalService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	formType := domain.FormW8BEN

	d.taxSvc.EXPECT().CheckRequirement(ctx, userID, int64(2000)).Return(&domain.TaxRequirement{
		Required: true,
		FormType: &formType,
		Reason:   domain.ReasonNonUSNoForm,
	}, nil)

	_, err := d.svc.RequestWithdrawal(ctx, paypalParams(userID, 2000))
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "POL_004", appErr.Code)
	assert.Equal(t, "w8ben", appErr.Details["form_type"])
	assert.Equal(t, "non_us_no_form", appErr.Details["reason"])
}

func TestWithdrawalService_RequestWithdrawal_InsufficientBalance(t *testing.T) {
	d := setupWithdrawalService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	tx := &mockTx{}

	d.taxSvc.EXPECT().CheckRequirement(ctx, userID, int64(10000)).Return(notRequired(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByUserIDForUpdate(ctx, tx, userID).Return(&domain.Wallet{
		ID: uuid.New(), UserID: userID, AvailableBalance: 9999,
	}, nil)

	_, err := d.svc.RequestWithdrawal(ctx, paypalParams(userID, 10000))
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "POL_001", appErr.Code)
	assert.Equal(t, int64(9999), appErr.Details["available_balance"])
	assert.Equal(t, int64(10000), appErr.Details["requested_amount"])
}

func TestWithdrawalService_RequestWithdrawal_NoWallet(t *testing.T) {
	d := setupWithdrawalService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	tx := &mockTx{}

	d.taxSvc.EXPECT().CheckRequirement(ctx, userID, int64(2000)).Return(notRequired(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByUserIDForUpdate(ctx, tx, userID).Return(nil, nil)

	_, err := d.svc.RequestWithdrawal(ctx, paypalParams(userID, 2000))
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "POL_001", appErr.Code)
	assert.Equal(t, int64(0), appErr.Details["available_balance"])
}

func TestWithdrawalService_RequestWithdrawal_PendingRequestExists(t *testing.T) {
	d := setupWithdrawalService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	tx := &mockTx{}
	pendingID := uuid.New()

	d.taxSvc.EXPECT().CheckRequirement(ctx, userID, int64(2000)).Return(notRequired(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByUserIDForUpdate(ctx, tx, userID).Return(&domain.Wallet{
		ID: uuid.New(), UserID: userID, AvailableBalance: 50000,
	}, nil)
	d.withdrawalRepo.EXPECT().GetActiveByUserID(ctx, tx, userID).Return(&domain.WithdrawalRequest{
		ID: pendingID, UserID: userID, Status: domain.WithdrawalPending,
	}, nil)

	_, err := d.svc.RequestWithdrawal(ctx, paypalParams(userID, 2000))
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "POL_005", appErr.Code)
	assert.Equal(t, 409, appErr.HTTPStatus)
	assert.Equal(t, pendingID.String(), appErr.Details["pending_request_id"])
}

func TestWithdrawalService_GetBalance_NoWallet(t *testing.T) {
	d := setupWithdrawalService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	d.walletRepo.EXPECT().GetByUserID(ctx, userID).Return(nil, nil)

	balance, err := d.svc.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestWithdrawalService_ListRequests_ClampsLimit(t *testing.T) {
	d := setupWithdrawalService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	created := time.Now().UTC()

	d.withdrawalRepo.EXPECT().ListByUserID(ctx, userID, 50).Return([]domain.WithdrawalRequest{
		{ID: uuid.New(), UserID: userID, Amount: 1000, CreatedAt: created},
	}, nil)

	reqs, err := d.svc.ListRequests(ctx, userID, -1)
	require.NoError(t, err)
	assert.Len(t, reqs, 1)
}
