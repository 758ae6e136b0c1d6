package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"creator-settlement/config"
	httpHandler "creator-settlement/internal/adapter/http/handler"
	redisStorage "creator-settlement/internal/adapter/storage/redis"
	"creator-settlement/internal/core/domain"
	"creator-settlement/internal/core/ports"
	"creator-settlement/internal/keychain"
	"creator-settlement/internal/service"
	"creator-settlement/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds a full application stack: real HTTP layer, middleware,
// services, and keychain, backed by in-memory repos and miniredis. The seed
// below is a published BIP-39 test vector.
const testMnemonic = "legal winner thank year wave sausage worth useful legal winner thank yellow"

type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis

	tokenSvc    ports.TokenService
	reconciler  ports.ReconcilerService
	wallets     *inMemoryWalletRepo
	withdrawals *inMemoryWithdrawalRepo
	taxForms    *inMemoryTaxFormRepo
	profiles    *inMemoryProfileRepo
	policies    *inMemoryPolicySource
	metrics     *inMemoryMetricsFeed
	legacy      *inMemoryLegacySource
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	keys, err := keychain.New(testMnemonic, "")
	require.NoError(t, err)

	counterRepo := newInMemoryCounterRepo()
	depositRepo := newInMemoryDepositRepo()
	ledgerRepo := newInMemoryLedgerRepo()
	walletRepo := newInMemoryWalletRepo()
	walletTxRepo := newInMemoryWalletTxRepo()
	withdrawalRepo := newInMemoryWithdrawalRepo()
	taxFormRepo := newInMemoryTaxFormRepo()
	profileRepo := newInMemoryProfileRepo()
	policies := newInMemoryPolicySource()
	metrics := newInMemoryMetricsFeed()
	legacy := newInMemoryLegacySource()
	transactor := newInMemoryTransactor()

	log := logger.New("debug", false)
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")
	sigSvc := service.NewHMACSignatureService()
	notifier := service.NewWebhookNotifier(config.NotifyConfig{}, sigSvc, http.DefaultClient, log)

	taxSvc := service.NewTaxService(taxFormRepo, profileRepo, withdrawalRepo, log)
	depositSvc := service.NewDepositAddressService(depositRepo, counterRepo, keys, redisStorage.NewAddressCache(rdb), transactor, log)
	withdrawalSvc := service.NewWithdrawalService(
		walletRepo, walletTxRepo, withdrawalRepo, taxSvc, notifier, transactor,
		config.PayoutConfig{MinimumDefault: 1000, MinimumBank: 5000}, log,
	)
	reconcilerSvc := service.NewReconcilerService(
		ledgerRepo, walletRepo, walletTxRepo, policies, metrics, legacy, notifier, transactor, log,
	)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		DepositSvc:    depositSvc,
		WithdrawalSvc: withdrawalSvc,
		ReconcilerSvc: reconcilerSvc,
		TokenSvc:      tokenSvc,
		Logger:        log,
	})

	return &testApp{
		server:      httptest.NewServer(router),
		redis:       mr,
		tokenSvc:    tokenSvc,
		reconciler:  reconcilerSvc,
		wallets:     walletRepo,
		withdrawals: withdrawalRepo,
		taxForms:    taxFormRepo,
		profiles:    profileRepo,
		policies:    policies,
		metrics:     metrics,
		legacy:      legacy,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

func (a *testApp) token(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	tok, _, err := a.tokenSvc.Generate(userID, role)
	require.NoError(t, err)
	return tok
}

func (a *testApp) doJSON(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(data)
	} else {
		buf = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, a.server.URL+path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	data, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %v", envelope)
	return data
}

func decodeError(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope
}

// usTaxReady sets up a US profile with a verified W-9, so payouts clear the
// tax gate at a zero withholding rate.
func (a *testApp) usTaxReady(userID uuid.UUID) {
	country := "US"
	a.profiles.put(&domain.Profile{UserID: userID, TaxCountry: &country})
	a.taxForms.put(&domain.TaxForm{
		ID:       uuid.New(),
		UserID:   userID,
		FormType: domain.FormW9,
		Status:   domain.TaxFormVerified,
		Country:  "US",
	})
}

// --- Deposit address tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_Unauthenticated(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp := app.doJSON(t, http.MethodGet, "/api/v1/wallet", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIntegration_DepositAddress_Idempotent(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID := uuid.New()
	token := app.token(t, userID, "creator")

	resp := app.doJSON(t, http.MethodPost, "/api/v1/deposit-addresses", token, map[string]string{"network": "solana"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	first := decodeData(t, resp)
	address := first["address"].(string)
	assert.NotEmpty(t, address)
	assert.Equal(t, false, first["already_exists"])

	// Second call returns the same address without allocating.
	resp2 := app.doJSON(t, http.MethodPost, "/api/v1/deposit-addresses", token, map[string]string{"network": "solana"})
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	second := decodeData(t, resp2)
	assert.Equal(t, address, second["address"])
	assert.Equal(t, true, second["already_exists"])
}

func TestIntegration_DepositAddress_EVMNetworksShareOneKey(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID := uuid.New()
	token := app.token(t, userID, "creator")

	respEth := app.doJSON(t, http.MethodPost, "/api/v1/deposit-addresses", token, map[string]string{"network": "ethereum"})
	require.Equal(t, http.StatusCreated, respEth.StatusCode)
	eth := decodeData(t, respEth)

	respBase := app.doJSON(t, http.MethodPost, "/api/v1/deposit-addresses", token, map[string]string{"network": "base"})
	require.Equal(t, http.StatusCreated, respBase.StatusCode)
	base := decodeData(t, respBase)

	// One derivation index backs the whole EVM family.
	assert.Equal(t, eth["address"], base["address"])
	assert.Equal(t, eth["derivation_index"], base["derivation_index"])
}

func TestIntegration_DepositAddress_BrandRequiresBrandRole(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	brandID := uuid.New()
	body := map[string]string{"network": "solana", "brand_id": brandID.String()}

	creatorToken := app.token(t, uuid.New(), "creator")
	resp := app.doJSON(t, http.MethodPost, "/api/v1/deposit-addresses", creatorToken, body)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	brandToken := app.token(t, uuid.New(), "brand")
	resp2 := app.doJSON(t, http.MethodPost, "/api/v1/deposit-addresses", brandToken, body)
	require.Equal(t, http.StatusCreated, resp2.StatusCode)
	data := decodeData(t, resp2)
	assert.NotEmpty(t, data["address"])
}

// --- Withdrawal tests ---

func TestIntegration_Withdrawal_EndToEnd(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID := uuid.New()
	token := app.token(t, userID, "creator")
	app.usTaxReady(userID)
	app.wallets.seed(userID, 50000)

	body := map[string]interface{}{
		"amount":        int64(20000),
		"payout_method": "paypal",
		"paypal":        map[string]string{"email": "creator@example.com"},
	}
	resp := app.doJSON(t, http.MethodPost, "/api/v1/withdrawals", token, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := decodeData(t, resp)

	assert.Equal(t, float64(20000), data["amount"])
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, float64(0), data["withholding_rate"])
	assert.Equal(t, float64(20000), data["net_amount"])
	assert.Equal(t, float64(30000), data["balance_after"])

	// Balance reflects the full debit.
	respBal := app.doJSON(t, http.MethodGet, "/api/v1/wallet", token, nil)
	require.Equal(t, http.StatusOK, respBal.StatusCode)
	bal := decodeData(t, respBal)
	assert.Equal(t, float64(30000), bal["available_balance"])

	// A second request while one is in flight is rejected.
	resp2 := app.doJSON(t, http.MethodPost, "/api/v1/withdrawals", token, body)
	assert.Equal(t, http.StatusConflict, resp2.StatusCode)
	errBody := decodeError(t, resp2)
	assert.Equal(t, "POL_005", errBody["error_code"])

	// History shows exactly the one request.
	respList := app.doJSON(t, http.MethodGet, "/api/v1/withdrawals", token, nil)
	require.Equal(t, http.StatusOK, respList.StatusCode)
	var listEnvelope map[string]interface{}
	require.NoError(t, json.NewDecoder(respList.Body).Decode(&listEnvelope))
	respList.Body.Close()
	items, ok := listEnvelope["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 1)
}

func TestIntegration_Withdrawal_TaxGateBlocksNonUSWithoutForm(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID := uuid.New()
	token := app.token(t, userID, "creator")
	country := "IN"
	app.profiles.put(&domain.Profile{UserID: userID, TaxCountry: &country})
	app.wallets.seed(userID, 10000)

	body := map[string]interface{}{
		"amount":        int64(2000),
		"payout_method": "paypal",
		"paypal":        map[string]string{"email": "creator@example.com"},
	}
	resp := app.doJSON(t, http.MethodPost, "/api/v1/withdrawals", token, body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decodeError(t, resp)
	assert.Equal(t, "POL_004", errBody["error_code"])
	details := errBody["details"].(map[string]interface{})
	assert.Equal(t, "w8ben", details["form_type"])

	// Balance is untouched: the gate fires before any debit.
	respBal := app.doJSON(t, http.MethodGet, "/api/v1/wallet", token, nil)
	bal := decodeData(t, respBal)
	assert.Equal(t, float64(10000), bal["available_balance"])
}

func TestIntegration_Withdrawal_TreatyWithholding(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID := uuid.New()
	token := app.token(t, userID, "creator")
	country := "IN"
	app.profiles.put(&domain.Profile{UserID: userID, TaxCountry: &country})
	app.taxForms.put(&domain.TaxForm{
		ID:                   uuid.New(),
		UserID:               userID,
		FormType:             domain.FormW8BEN,
		Status:               domain.TaxFormVerified,
		Country:              "IN",
		TreatyCountry:        &country,
		ClaimsTreatyBenefits: true,
	})
	app.wallets.seed(userID, 50000)

	body := map[string]interface{}{
		"amount":        int64(10000),
		"payout_method": "paypal",
		"paypal":        map[string]string{"email": "creator@example.com"},
	}
	resp := app.doJSON(t, http.MethodPost, "/api/v1/withdrawals", token, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := decodeData(t, resp)

	// India treaty rate for services is 15%. The full amount is debited;
	// withholding only reduces what gets remitted.
	assert.Equal(t, float64(15), data["withholding_rate"])
	assert.Equal(t, float64(1500), data["withholding_amount"])
	assert.Equal(t, float64(8500), data["net_amount"])
	assert.Equal(t, float64(40000), data["balance_after"])
}

func TestIntegration_Withdrawal_DomesticUnderThresholdNoWithholding(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID := uuid.New()
	token := app.token(t, userID, "creator")
	country := "US"
	app.profiles.put(&domain.Profile{UserID: userID, TaxCountry: &country})
	app.wallets.seed(userID, 30000)

	// US payee, no form on file, lifetime payouts under the reporting
	// threshold: the payout clears and nothing is withheld.
	body := map[string]interface{}{
		"amount":        int64(20000),
		"payout_method": "paypal",
		"paypal":        map[string]string{"email": "creator@example.com"},
	}
	resp := app.doJSON(t, http.MethodPost, "/api/v1/withdrawals", token, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := decodeData(t, resp)

	assert.Equal(t, float64(0), data["withholding_rate"])
	assert.Equal(t, float64(0), data["withholding_amount"])
	assert.Equal(t, float64(20000), data["net_amount"])
	assert.Equal(t, float64(10000), data["balance_after"])
}

func TestIntegration_Withdrawal_BelowMethodMinimum(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID := uuid.New()
	token := app.token(t, userID, "creator")
	app.usTaxReady(userID)
	app.wallets.seed(userID, 50000)

	body := map[string]interface{}{
		"amount":        int64(4000),
		"payout_method": "bank_transfer",
		"bank": map[string]string{
			"account_name":   "Jordan Creator",
			"account_number": "12345678",
			"routing_number": "021000021",
		},
	}
	resp := app.doJSON(t, http.MethodPost, "/api/v1/withdrawals", token, body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decodeError(t, resp)
	assert.Equal(t, "POL_002", errBody["error_code"])
}

// --- Reconciliation tests ---

func TestIntegration_Reconcile_CreditsDeltaOnly(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	creatorID := uuid.New()
	campaignID := uuid.New()
	submissionID := uuid.New()

	app.policies.addCampaign(ports.CampaignPolicy{
		ID:            campaignID,
		BrandID:       uuid.New(),
		CPMRate:       500, // $5.00 per 1000 views
		WalletRouting: true,
	})
	app.metrics.set(campaignID, []ports.SubmissionMetrics{
		{SubmissionID: submissionID, UserID: creatorID, Views: 10000},
	})

	adminToken := app.token(t, uuid.New(), "admin")
	creatorToken := app.token(t, creatorID, "creator")

	// First run accrues 10000 views * 500 / 1000 = 5000 cents.
	resp := app.doJSON(t, http.MethodPost, "/api/v1/admin/reconcile", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	report := decodeData(t, resp)
	assert.Equal(t, float64(1), report["campaigns_processed"])
	assert.Equal(t, float64(1), report["entries_created"])
	assert.Equal(t, float64(5000), report["amount_credited"])

	respBal := app.doJSON(t, http.MethodGet, "/api/v1/wallet", creatorToken, nil)
	bal := decodeData(t, respBal)
	assert.Equal(t, float64(5000), bal["available_balance"])

	// Re-running with unchanged views is a no-op.
	resp2 := app.doJSON(t, http.MethodPost, "/api/v1/admin/reconcile", adminToken, nil)
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	report2 := decodeData(t, resp2)
	assert.Equal(t, float64(0), report2["entries_created"])
	assert.Equal(t, float64(0), report2["amount_credited"])

	// More views credit only the delta.
	app.metrics.set(campaignID, []ports.SubmissionMetrics{
		{SubmissionID: submissionID, UserID: creatorID, Views: 14000},
	})
	resp3 := app.doJSON(t, http.MethodPost, "/api/v1/admin/reconcile", adminToken, nil)
	require.Equal(t, http.StatusOK, resp3.StatusCode)
	report3 := decodeData(t, resp3)
	assert.Equal(t, float64(2000), report3["amount_credited"])
	assert.Equal(t, float64(1), report3["entries_updated"])

	respBal2 := app.doJSON(t, http.MethodGet, "/api/v1/wallet", creatorToken, nil)
	bal2 := decodeData(t, respBal2)
	assert.Equal(t, float64(7000), bal2["available_balance"])

	// The earnings history shows the single updated accrual row.
	respEarn := app.doJSON(t, http.MethodGet, "/api/v1/earnings", creatorToken, nil)
	require.Equal(t, http.StatusOK, respEarn.StatusCode)
	var earnEnvelope map[string]interface{}
	require.NoError(t, json.NewDecoder(respEarn.Body).Decode(&earnEnvelope))
	entries := earnEnvelope["data"].([]interface{})
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]interface{})
	assert.Equal(t, "cpm", entry["payment_type"])
	assert.Equal(t, float64(7000), entry["accrued_amount"])
	assert.Equal(t, float64(14000), entry["views_snapshot"])
}

func TestIntegration_Reconcile_MilestoneAndViewBonus(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	creatorID := uuid.New()
	boostID := uuid.New()
	submissionID := uuid.New()

	app.policies.addBoost(ports.BoostPolicy{
		ID:      boostID,
		BrandID: uuid.New(),
		Bonuses: []ports.ViewBonusPolicy{
			{Kind: domain.PaymentMilestone, Threshold: 10000, Bonus: 2500},
			{Kind: domain.PaymentMilestone, Threshold: 50000, Bonus: 10000},
			{Kind: domain.PaymentViewBonus, Threshold: 5000, CPMRate: 100, MinViews: 5000},
		},
		WalletRouting: true,
	})
	app.metrics.set(boostID, []ports.SubmissionMetrics{
		{SubmissionID: submissionID, UserID: creatorID, Views: 12000, PayoutAmount: 30000},
	})

	adminToken := app.token(t, uuid.New(), "admin")
	creatorToken := app.token(t, creatorID, "creator")

	// 12000 views: flat 30000 + first milestone 2500 + view bonus on the
	// 7000 views past the floor = 700. The 50000 milestone has not been
	// crossed yet.
	resp := app.doJSON(t, http.MethodPost, "/api/v1/admin/reconcile", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	report := decodeData(t, resp)
	assert.Equal(t, float64(1), report["boosts_processed"])
	assert.Equal(t, float64(3), report["entries_created"])
	assert.Equal(t, float64(33200), report["amount_credited"])

	respBal := app.doJSON(t, http.MethodGet, "/api/v1/wallet", creatorToken, nil)
	bal := decodeData(t, respBal)
	assert.Equal(t, float64(33200), bal["available_balance"])
}

func TestIntegration_Reconcile_ViewBonusTiersAccrueSeparately(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	creatorID := uuid.New()
	boostID := uuid.New()
	submissionID := uuid.New()

	app.policies.addBoost(ports.BoostPolicy{
		ID:      boostID,
		BrandID: uuid.New(),
		Bonuses: []ports.ViewBonusPolicy{
			{Kind: domain.PaymentViewBonus, Threshold: 1000, CPMRate: 100, MinViews: 1000},
			{Kind: domain.PaymentViewBonus, Threshold: 10000, CPMRate: 200, MinViews: 10000},
		},
		WalletRouting: true,
	})
	app.metrics.set(boostID, []ports.SubmissionMetrics{
		{SubmissionID: submissionID, UserID: creatorID, Views: 12000},
	})

	adminToken := app.token(t, uuid.New(), "admin")
	creatorToken := app.token(t, creatorID, "creator")

	// Each tier keeps its own ledger row: 11000 eligible views at 100 plus
	// 2000 eligible views at 200.
	resp := app.doJSON(t, http.MethodPost, "/api/v1/admin/reconcile", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	report := decodeData(t, resp)
	assert.Equal(t, float64(2), report["entries_created"])
	assert.Equal(t, float64(0), report["entries_updated"])
	assert.Equal(t, float64(1500), report["amount_credited"])

	respBal := app.doJSON(t, http.MethodGet, "/api/v1/wallet", creatorToken, nil)
	bal := decodeData(t, respBal)
	assert.Equal(t, float64(1500), bal["available_balance"])

	respEarn := app.doJSON(t, http.MethodGet, "/api/v1/earnings", creatorToken, nil)
	require.Equal(t, http.StatusOK, respEarn.StatusCode)
	var earnEnvelope map[string]interface{}
	require.NoError(t, json.NewDecoder(respEarn.Body).Decode(&earnEnvelope))
	entries := earnEnvelope["data"].([]interface{})
	require.Len(t, entries, 2)
	amounts := map[float64]bool{}
	for _, e := range entries {
		row := e.(map[string]interface{})
		assert.Equal(t, "view_bonus", row["payment_type"])
		amounts[row["accrued_amount"].(float64)] = true
	}
	assert.True(t, amounts[1100])
	assert.True(t, amounts[400])
}

func TestIntegration_Reconcile_ScopedToOneSource(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	creatorID := uuid.New()
	campaignA := uuid.New()
	campaignB := uuid.New()

	app.policies.addCampaign(ports.CampaignPolicy{ID: campaignA, BrandID: uuid.New(), CPMRate: 500, WalletRouting: true})
	app.policies.addCampaign(ports.CampaignPolicy{ID: campaignB, BrandID: uuid.New(), CPMRate: 500, WalletRouting: true})
	app.metrics.set(campaignA, []ports.SubmissionMetrics{{SubmissionID: uuid.New(), UserID: creatorID, Views: 2000}})
	app.metrics.set(campaignB, []ports.SubmissionMetrics{{SubmissionID: uuid.New(), UserID: creatorID, Views: 2000}})

	adminToken := app.token(t, uuid.New(), "admin")

	body := map[string]string{"source_type": "campaign", "source_id": campaignA.String()}
	resp := app.doJSON(t, http.MethodPost, "/api/v1/admin/reconcile", adminToken, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	report := decodeData(t, resp)
	assert.Equal(t, float64(1), report["campaigns_processed"])
	assert.Equal(t, float64(0), report["boosts_processed"])
	assert.Equal(t, float64(1000), report["amount_credited"])
}

func TestIntegration_Reconcile_ForbiddenForCreator(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	creatorToken := app.token(t, uuid.New(), "creator")
	resp := app.doJSON(t, http.MethodPost, "/api/v1/admin/reconcile", creatorToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
