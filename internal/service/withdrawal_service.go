package service

import (
	"context"
	"fmt"
	"time"

	"creator-settlement/config"
	"creator-settlement/internal/core/domain"
	"creator-settlement/internal/core/ports"
	"creator-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WithdrawalServiceImpl implements ports.WithdrawalService. RequestWithdrawal
// is the single entry point for creating payout requests: every check and
// every write happens inside one database transaction under a wallet row
// lock, so a request either fully exists with its debit or not at all.
type WithdrawalServiceImpl struct {
	walletRepo     ports.WalletRepository
	walletTxRepo   ports.WalletTransactionRepository
	withdrawalRepo ports.WithdrawalRepository
	taxSvc         ports.TaxService
	notifier       ports.NotificationService
	transactor     ports.DBTransactor
	payoutCfg      config.PayoutConfig
	log            zerolog.Logger
}

// NewWithdrawalService creates a new WithdrawalServiceImpl.
func NewWithdrawalService(
	walletRepo ports.WalletRepository,
	walletTxRepo ports.WalletTransactionRepository,
	withdrawalRepo ports.WithdrawalRepository,
	taxSvc ports.TaxService,
	notifier ports.NotificationService,
	transactor ports.DBTransactor,
	payoutCfg config.PayoutConfig,
	log zerolog.Logger,
) *WithdrawalServiceImpl {
	return &WithdrawalServiceImpl{
		walletRepo:     walletRepo,
		walletTxRepo:   walletTxRepo,
		withdrawalRepo: withdrawalRepo,
		taxSvc:         taxSvc,
		notifier:       notifier,
		transactor:     transactor,
		payoutCfg:      payoutCfg,
		log:            log,
	}
}

// RequestWithdrawal validates, debits, and records a payout request. The
// requested amount is debited in full; withholding reduces the remitted net,
// never the debit.
func (s *WithdrawalServiceImpl) RequestWithdrawal(ctx context.Context, params ports.WithdrawalParams) (*ports.WithdrawalResult, error) {
	if params.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if err := params.PayoutDetails.Validate(params.PayoutMethod); err != nil {
		return nil, apperror.ErrInvalidPayoutDetails(err.Error())
	}
	if s.payoutCfg.IsDisabled(string(params.PayoutMethod)) {
		return nil, apperror.ErrMethodDisabled(string(params.PayoutMethod))
	}
	// Admins may request below the method minimum.
	if params.Role != "admin" {
		if minimum := s.payoutCfg.MinimumFor(string(params.PayoutMethod)); params.Amount < minimum {
			return nil, apperror.ErrBelowMinimum(string(params.PayoutMethod), minimum)
		}
	}

	// Tax gate: blocked payouts never reach the balance check.
	taxReq, err := s.taxSvc.CheckRequirement(ctx, params.UserID, params.Amount)
	if err != nil {
		return nil, err
	}
	if taxReq.Required {
		formType := ""
		if taxReq.FormType != nil {
			formType = string(*taxReq.FormType)
		}
		return nil, apperror.ErrTaxFormRequired(formType, string(taxReq.Reason))
	}

	// Begin database transaction
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock & get wallet
	wallet, err := s.walletRepo.GetByUserIDForUpdate(ctx, dbTx, params.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrInsufficientBalance(params.Amount, 0)
	}
	if wallet.AvailableBalance < params.Amount {
		return nil, apperror.ErrInsufficientBalance(params.Amount, wallet.AvailableBalance)
	}

	// Business rule: one in-flight request per user
	active, err := s.withdrawalRepo.GetActiveByUserID(ctx, dbTx, params.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check active request: %w", err))
	}
	if active != nil {
		return nil, apperror.ErrPendingRequestExists(active.ID.String())
	}

	// Withholding is computed at request time and frozen on the record.
	form, err := s.taxSvc.UsableForm(ctx, params.UserID)
	if err != nil {
		return nil, err
	}
	var rate int
	if form == nil && taxReq.Reason == domain.ReasonUnderThreshold {
		// Domestic payee under the reporting threshold: no form is required
		// and nonresident withholding does not apply.
		rate = 0
	} else {
		rate = s.taxSvc.WithholdingRate(ctx, form)
	}
	withholding := params.Amount * int64(rate) / 100
	net := params.Amount - withholding

	now := time.Now().UTC()
	req := &domain.WithdrawalRequest{
		ID:                uuid.New(),
		UserID:            params.UserID,
		Amount:            params.Amount,
		PayoutMethod:      params.PayoutMethod,
		PayoutDetails:     params.PayoutDetails,
		Status:            domain.WithdrawalPending,
		WithholdingRate:   rate,
		WithholdingAmount: withholding,
		NetAmount:         net,
		CreatedAt:         now,
	}
	if form != nil {
		req.TaxFormID = &form.ID
	}

	// Persist: debit the full requested amount
	if err := s.walletRepo.Debit(ctx, dbTx, wallet.ID, params.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit wallet: %w", err))
	}

	// Persist: create payout request
	if err := s.withdrawalRepo.Create(ctx, dbTx, req); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create payout request: %w", err))
	}

	// Persist: audit record for the debit
	walletTx := &domain.WalletTransaction{
		ID:          uuid.New(),
		WalletID:    wallet.ID,
		UserID:      params.UserID,
		Amount:      params.Amount,
		Direction:   domain.DirectionDebit,
		Kind:        domain.KindWithdrawal,
		ReferenceID: req.ID,
		CreatedAt:   now,
	}
	if err := s.walletTxRepo.Create(ctx, dbTx, walletTx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create wallet transaction: %w", err))
	}

	// Commit
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	// Post-process: notify (best-effort, never rolls anything back)
	s.notifier.WithdrawalRequested(ctx, req)

	s.log.Info().
		Str("request_id", req.ID.String()).
		Str("user_id", params.UserID.String()).
		Int64("amount", params.Amount).
		Int("withholding_rate", rate).
		Int64("net_amount", net).
		Msg("withdrawal requested")

	return &ports.WithdrawalResult{
		Request:      req,
		BalanceAfter: wallet.AvailableBalance - params.Amount,
	}, nil
}

// ListRequests returns a user's most recent payout requests.
func (s *WithdrawalServiceImpl) ListRequests(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WithdrawalRequest, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	reqs, err := s.withdrawalRepo.ListByUserID(ctx, userID, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list payout requests: %w", err))
	}
	return reqs, nil
}

// GetBalance returns the user's withdrawable balance, zero if no wallet
// exists yet.
func (s *WithdrawalServiceImpl) GetBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return 0, nil
	}
	return wallet.AvailableBalance, nil
}
