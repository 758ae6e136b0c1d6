package dto

// DepositAddressRequest is the request body for address allocation.
// Omitting brand_id allocates for the authenticated user; setting it
// allocates for a brand and requires the brand role.
type DepositAddressRequest struct {
	Network string  `json:"network" binding:"required"`
	BrandID *string `json:"brand_id,omitempty" binding:"omitempty,uuid"`
	Label   *string `json:"label,omitempty" binding:"omitempty,max=100"`
}

// DepositAddressResponse is the response body for address allocation.
type DepositAddressResponse struct {
	Address         string `json:"address"`
	Network         string `json:"network"`
	DerivationIndex uint32 `json:"derivation_index"`
	AlreadyExists   bool   `json:"already_exists"`
}

// CryptoDetails is the payout target for the crypto method.
type CryptoDetails struct {
	WalletAddress string `json:"wallet_address" binding:"required"`
	Network       string `json:"network" binding:"required"`
}

// BankDetails is the payout target for the bank_transfer method.
type BankDetails struct {
	AccountName   string `json:"account_name" binding:"required,max=100"`
	AccountNumber string `json:"account_number" binding:"required,max=34"`
	RoutingNumber string `json:"routing_number" binding:"required,max=20"`
}

// PayPalDetails is the payout target for the paypal method.
type PayPalDetails struct {
	Email string `json:"email" binding:"required,email"`
}

// WithdrawalRequest is the request body for creating a payout request.
// Exactly the details field matching payout_method must be set.
type WithdrawalRequest struct {
	Amount       int64          `json:"amount" binding:"required,gt=0"`
	PayoutMethod string         `json:"payout_method" binding:"required"`
	Crypto       *CryptoDetails `json:"crypto,omitempty"`
	Bank         *BankDetails   `json:"bank,omitempty"`
	PayPal       *PayPalDetails `json:"paypal,omitempty"`
}

// WithdrawalResponse is the response body for a payout request.
type WithdrawalResponse struct {
	ID                string  `json:"id"`
	Amount            int64   `json:"amount"`
	PayoutMethod      string  `json:"payout_method"`
	Status            string  `json:"status"`
	WithholdingRate   int     `json:"withholding_rate"`
	WithholdingAmount int64   `json:"withholding_amount"`
	NetAmount         int64   `json:"net_amount"`
	BalanceAfter      int64   `json:"balance_after,omitempty"`
	CreatedAt         string  `json:"created_at"`
	ProcessedAt       *string `json:"processed_at,omitempty"`
}

// WalletResponse is the response for the balance query.
type WalletResponse struct {
	AvailableBalance int64 `json:"available_balance"`
}

// LedgerEntryResponse is one accrual row in the earnings history.
type LedgerEntryResponse struct {
	ID                 string `json:"id"`
	SourceType         string `json:"source_type"`
	SourceID           string `json:"source_id"`
	SubmissionID       string `json:"submission_id"`
	PaymentType        string `json:"payment_type"`
	ViewsSnapshot      int64  `json:"views_snapshot"`
	Rate               int64  `json:"rate"`
	MilestoneThreshold int64  `json:"milestone_threshold,omitempty"`
	AccruedAmount      int64  `json:"accrued_amount"`
	PaidAmount         int64  `json:"paid_amount"`
	Status             string `json:"status"`
	LastCalculatedAt   string `json:"last_calculated_at"`
}

// ReconcileRequest optionally narrows a reconciliation run to one source.
type ReconcileRequest struct {
	SourceType *string `json:"source_type,omitempty" binding:"omitempty,oneof=campaign boost"`
	SourceID   *string `json:"source_id,omitempty" binding:"omitempty,uuid"`
}
