package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaxFormType is the IRS form kind a payee files.
type TaxFormType string

const (
	FormW9     TaxFormType = "w9"
	FormW8BEN  TaxFormType = "w8ben"
	FormW8BENE TaxFormType = "w8bene"
)

// TaxFormStatus is the review state of a filed form.
type TaxFormStatus string

const (
	TaxFormPending  TaxFormStatus = "pending"
	TaxFormVerified TaxFormStatus = "verified"
	TaxFormRejected TaxFormStatus = "rejected"
	TaxFormExpired  TaxFormStatus = "expired"
)

// TaxForm is a filed tax form. Read-only from the settlement core's
// perspective: consulted before payouts, never mutated here.
type TaxForm struct {
	ID                   uuid.UUID     `json:"id"`
	UserID               uuid.UUID     `json:"user_id"`
	FormType             TaxFormType   `json:"form_type"`
	Status               TaxFormStatus `json:"status"`
	Country              string        `json:"country"`
	TreatyCountry        *string       `json:"treaty_country,omitempty"`
	ClaimsTreatyBenefits bool          `json:"claims_treaty_benefits"`
	ExpiresAt            *time.Time    `json:"expires_at,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
}

// IsUsable reports whether the form is verified and not past expiry.
func (f *TaxForm) IsUsable(now time.Time) bool {
	if f.Status != TaxFormVerified {
		return false
	}
	if f.ExpiresAt != nil && !f.ExpiresAt.After(now) {
		return false
	}
	return true
}

// RequirementReason explains a tax-requirement decision so the caller can
// prompt the user toward resolution.
type RequirementReason string

const (
	ReasonNotRequired      RequirementReason = "not_required"
	ReasonUnderThreshold   RequirementReason = "under_threshold"
	ReasonThresholdReached RequirementReason = "threshold_reached"
	ReasonNonUSNoForm      RequirementReason = "non_us_no_form"
	ReasonFormExpired      RequirementReason = "form_expired"
	ReasonWrongFormType    RequirementReason = "wrong_form_type"
	ReasonNoTaxCountry     RequirementReason = "no_tax_country"
)

// TaxRequirement is the result of checking whether a payout is blocked
// pending a tax form.
type TaxRequirement struct {
	Required           bool              `json:"required"`
	FormType           *TaxFormType      `json:"form_type,omitempty"`
	Reason             RequirementReason `json:"reason"`
	ExistingFormID     *uuid.UUID        `json:"existing_form_id,omitempty"`
	ExistingFormStatus *TaxFormStatus    `json:"existing_form_status,omitempty"`
	CumulativePaid     int64             `json:"cumulative_paid"`
	Threshold          int64             `json:"threshold"`
}

// Profile is the read-only slice of a user's profile the settlement core
// consults: tax residency only.
type Profile struct {
	UserID     uuid.UUID `json:"user_id"`
	TaxCountry *string   `json:"tax_country,omitempty"`
}
