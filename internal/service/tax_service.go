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

// domesticReportingThreshold is the IRS 1099 reporting threshold for US
// payees, in cents. Crossing it (including the requested payout) requires a
// verified W-9 on file.
const domesticReportingThreshold = 60000

// defaultWithholdingRate applies to non-US payees with no treaty claim.
const defaultWithholdingRate = 30

// treatyServicesRates maps treaty countries to the withholding rate for
// independent personal services, in whole percent. Countries absent from the
// map get the default rate.
var treatyServicesRates = map[string]int{
	"AU": 0, "AT": 0, "BE": 0, "CA": 0, "CZ": 0, "DK": 0, "FI": 0,
	"FR": 0, "DE": 0, "GR": 0, "HU": 0, "IS": 0, "IE": 0, "IL": 0,
	"IT": 0, "JP": 0, "KR": 0, "LU": 0, "MX": 0, "NL": 0, "NZ": 0,
	"NO": 0, "PL": 0, "PT": 0, "RO": 0, "SK": 0, "ZA": 0, "ES": 0,
	"SE": 0, "CH": 0, "GB": 0,
	"CN": 10,
	"IN": 15, "PH": 15, "TH": 15, "VN": 15,
}

// TaxServiceImpl implements ports.TaxService.
type TaxServiceImpl struct {
	taxFormRepo    ports.TaxFormRepository
	profileRepo    ports.ProfileRepository
	withdrawalRepo ports.WithdrawalRepository
	log            zerolog.Logger
}

// NewTaxService creates a new TaxServiceImpl.
func NewTaxService(
	taxFormRepo ports.TaxFormRepository,
	profileRepo ports.ProfileRepository,
	withdrawalRepo ports.WithdrawalRepository,
	log zerolog.Logger,
) *TaxServiceImpl {
	return &TaxServiceImpl{
		taxFormRepo:    taxFormRepo,
		profileRepo:    profileRepo,
		withdrawalRepo: withdrawalRepo,
		log:            log,
	}
}

// CheckRequirement decides whether a payout of payoutAmount is blocked
// pending a tax form. US payees need a W-9 once lifetime payouts (including
// this one) reach the reporting threshold; non-US payees always need a W-8.
func (s *TaxServiceImpl) CheckRequirement(ctx context.Context, userID uuid.UUID, payoutAmount int64) (*domain.TaxRequirement, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load profile: %w", err))
	}
	if profile == nil || profile.TaxCountry == nil || *profile.TaxCountry == "" {
		return &domain.TaxRequirement{
			Required: true,
			Reason:   domain.ReasonNoTaxCountry,
		}, nil
	}

	paid, err := s.withdrawalRepo.SumPaidByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sum paid withdrawals: %w", err))
	}
	cumulative := paid + payoutAmount

	isUS := *profile.TaxCountry == "US"

	var expected domain.TaxFormType
	if isUS {
		if cumulative < domesticReportingThreshold {
			return &domain.TaxRequirement{
				Required:       false,
				Reason:         domain.ReasonUnderThreshold,
				CumulativePaid: paid,
				Threshold:      domesticReportingThreshold,
			}, nil
		}
		expected = domain.FormW9
	} else {
		expected = domain.FormW8BEN
	}

	req := &domain.TaxRequirement{
		Required:       true,
		FormType:       &expected,
		CumulativePaid: paid,
		Threshold:      domesticReportingThreshold,
	}
	if isUS {
		req.Reason = domain.ReasonThresholdReached
	} else {
		req.Reason = domain.ReasonNonUSNoForm
	}

	form, err := s.taxFormRepo.GetLatestByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load tax form: %w", err))
	}
	if form == nil {
		return req, nil
	}

	req.ExistingFormID = &form.ID
	req.ExistingFormStatus = &form.Status

	if !matchesCountry(form.FormType, isUS) {
		req.Reason = domain.ReasonWrongFormType
		return req, nil
	}
	if !form.IsUsable(time.Now().UTC()) {
		if form.Status == domain.TaxFormVerified || form.Status == domain.TaxFormExpired {
			req.Reason = domain.ReasonFormExpired
		}
		return req, nil
	}

	// Usable form of the right kind: nothing blocks the payout.
	req.Required = false
	req.Reason = domain.ReasonNotRequired
	return req, nil
}

// UsableForm returns the user's verified, unexpired form, or nil.
func (s *TaxServiceImpl) UsableForm(ctx context.Context, userID uuid.UUID) (*domain.TaxForm, error) {
	form, err := s.taxFormRepo.GetLatestByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load tax form: %w", err))
	}
	if form == nil || !form.IsUsable(time.Now().UTC()) {
		return nil, nil
	}
	return form, nil
}

// WithholdingRate returns the whole-percent withholding rate for a payout
// backed by the given form. Nil means no usable form: the default rate
// applies.
func (s *TaxServiceImpl) WithholdingRate(ctx context.Context, form *domain.TaxForm) int {
	if form == nil {
		return defaultWithholdingRate
	}
	if form.FormType == domain.FormW9 {
		return 0
	}
	if !form.ClaimsTreatyBenefits || form.TreatyCountry == nil {
		return defaultWithholdingRate
	}
	rate, ok := treatyServicesRates[*form.TreatyCountry]
	if !ok {
		return defaultWithholdingRate
	}
	return rate
}

// matchesCountry reports whether a form kind fits the payee's residency.
func matchesCountry(ft domain.TaxFormType, isUS bool) bool {
	if isUS {
		return ft == domain.FormW9
	}
	return ft == domain.FormW8BEN || ft == domain.FormW8BENE
}
