package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PayoutMethod is how a withdrawal is paid out.
type PayoutMethod string

const (
	MethodCrypto       PayoutMethod = "crypto"
	MethodBankTransfer PayoutMethod = "bank_transfer"
	MethodPayPal       PayoutMethod = "paypal"
)

// ParsePayoutMethod validates a payout method string.
func ParsePayoutMethod(s string) (PayoutMethod, error) {
	switch m := PayoutMethod(s); m {
	case MethodCrypto, MethodBankTransfer, MethodPayPal:
		return m, nil
	default:
		return "", fmt.Errorf("unsupported payout method: %q", s)
	}
}

// WithdrawalStatus is the lifecycle state of a payout request.
// pending -> processing -> {paid | failed}
type WithdrawalStatus string

const (
	WithdrawalPending    WithdrawalStatus = "pending"
	WithdrawalProcessing WithdrawalStatus = "processing"
	WithdrawalPaid       WithdrawalStatus = "paid"
	WithdrawalFailed     WithdrawalStatus = "failed"
)

// IsTerminal reports whether the status is final.
func (s WithdrawalStatus) IsTerminal() bool {
	return s == WithdrawalPaid || s == WithdrawalFailed
}

// CryptoPayoutDetails is the payout target for the crypto method.
type CryptoPayoutDetails struct {
	WalletAddress string  `json:"wallet_address"`
	Network       Network `json:"network"`
}

// BankPayoutDetails is the payout target for the bank_transfer method.
type BankPayoutDetails struct {
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	RoutingNumber string `json:"routing_number"`
}

// PayPalPayoutDetails is the payout target for the paypal method.
type PayPalPayoutDetails struct {
	Email string `json:"email"`
}

// PayoutDetails is a tagged variant: exactly the one field matching the
// request's payout method must be set.
type PayoutDetails struct {
	Crypto *CryptoPayoutDetails `json:"crypto,omitempty"`
	Bank   *BankPayoutDetails   `json:"bank,omitempty"`
	PayPal *PayPalPayoutDetails `json:"paypal,omitempty"`
}

// Validate checks the variant against the payout method. Address format
// validation is handled at the transport layer; this enforces shape only.
func (d PayoutDetails) Validate(method PayoutMethod) error {
	switch method {
	case MethodCrypto:
		if d.Crypto == nil {
			return fmt.Errorf("crypto payout details required")
		}
		if d.Crypto.WalletAddress == "" {
			return fmt.Errorf("wallet_address is required")
		}
		if _, err := d.Crypto.Network.Family(); err != nil {
			return err
		}
	case MethodBankTransfer:
		if d.Bank == nil {
			return fmt.Errorf("bank payout details required")
		}
		if d.Bank.AccountNumber == "" || d.Bank.RoutingNumber == "" {
			return fmt.Errorf("account_number and routing_number are required")
		}
	case MethodPayPal:
		if d.PayPal == nil {
			return fmt.Errorf("paypal payout details required")
		}
		if !strings.Contains(d.PayPal.Email, "@") {
			return fmt.Errorf("valid paypal email is required")
		}
	default:
		return fmt.Errorf("unsupported payout method: %q", string(method))
	}
	return nil
}

// WithdrawalRequest is a payout request created by the atomic withdrawal
// operation. Amount is debited in full; withholding is a remittance concern
// reported on the request, not a balance reduction.
type WithdrawalRequest struct {
	ID                uuid.UUID        `json:"id"`
	UserID            uuid.UUID        `json:"user_id"`
	Amount            int64            `json:"amount"`
	PayoutMethod      PayoutMethod     `json:"payout_method"`
	PayoutDetails     PayoutDetails    `json:"payout_details"`
	Status            WithdrawalStatus `json:"status"`
	TaxFormID         *uuid.UUID       `json:"tax_form_id,omitempty"`
	WithholdingRate   int              `json:"withholding_rate"` // whole percent
	WithholdingAmount int64            `json:"withholding_amount"`
	NetAmount         int64            `json:"net_amount"`
	CreatedAt         time.Time        `json:"created_at"`
	ProcessedAt       *time.Time       `json:"processed_at,omitempty"`
}
