package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OwnerRef identifies the owner of a deposit address: either a brand or a
// user, never both.
type OwnerRef struct {
	BrandID *uuid.UUID `json:"brand_id,omitempty"`
	UserID  *uuid.UUID `json:"user_id,omitempty"`
}

// Validate checks that exactly one owner kind is set.
func (o OwnerRef) Validate() error {
	if o.BrandID != nil && o.UserID != nil {
		return fmt.Errorf("owner must be a brand or a user, not both")
	}
	if o.BrandID == nil && o.UserID == nil {
		return fmt.Errorf("owner is required")
	}
	return nil
}

// IsBrand reports whether the owner is a brand.
func (o OwnerRef) IsBrand() bool { return o.BrandID != nil }

// Key returns a stable cache key for the owner.
func (o OwnerRef) Key() string {
	if o.BrandID != nil {
		return "brand:" + o.BrandID.String()
	}
	if o.UserID != nil {
		return "user:" + o.UserID.String()
	}
	return "none"
}

// DepositAddress is a derived on-chain address allocated to one owner on one
// network. At most one active row exists per (owner, network).
type DepositAddress struct {
	ID              uuid.UUID   `json:"id"`
	BrandID         *uuid.UUID  `json:"brand_id,omitempty"`
	UserID          *uuid.UUID  `json:"user_id,omitempty"`
	Network         Network     `json:"network"`
	ChainFamily     ChainFamily `json:"chain_family"`
	Address         string      `json:"address"`
	DerivationIndex uint32      `json:"derivation_index"`
	Label           *string     `json:"label,omitempty"`
	IsActive        bool        `json:"is_active"`
	CreatedAt       time.Time   `json:"created_at"`
}

// Owner returns the owner reference of the address row.
func (d *DepositAddress) Owner() OwnerRef {
	return OwnerRef{BrandID: d.BrandID, UserID: d.UserID}
}
