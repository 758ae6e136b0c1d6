package integration

import (
	"context"
	"fmt"
	"sync"

	"creator-settlement/internal/core/domain"
	"creator-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Derivation Counter Repo ---

type inMemoryCounterRepo struct {
	mu       sync.Mutex
	counters map[domain.ChainFamily]uint32
}

func newInMemoryCounterRepo() *inMemoryCounterRepo {
	return &inMemoryCounterRepo{counters: make(map[domain.ChainFamily]uint32)}
}

func (r *inMemoryCounterRepo) AllocateNext(ctx context.Context, tx pgx.Tx, family domain.ChainFamily) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	index := r.counters[family]
	r.counters[family] = index + 1
	return index, nil
}

// --- In-Memory Deposit Address Repo ---

type inMemoryDepositRepo struct {
	mu        sync.RWMutex
	addresses map[string]*domain.DepositAddress // owner key + network
}

func newInMemoryDepositRepo() *inMemoryDepositRepo {
	return &inMemoryDepositRepo{addresses: make(map[string]*domain.DepositAddress)}
}

func depositKey(owner domain.OwnerRef, network domain.Network) string {
	return owner.Key() + "|" + string(network)
}

func (r *inMemoryDepositRepo) GetActiveByOwnerAndNetwork(ctx context.Context, owner domain.OwnerRef, network domain.Network) (*domain.DepositAddress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	addr, ok := r.addresses[depositKey(owner, network)]
	if !ok || !addr.IsActive {
		return nil, nil
	}
	return addr, nil
}

// AcquireAllocationLock is a no-op here: the in-memory transactor already
// serialises whole transactions.
func (r *inMemoryDepositRepo) AcquireAllocationLock(ctx context.Context, tx pgx.Tx, owner domain.OwnerRef, family domain.ChainFamily) error {
	return nil
}

func (r *inMemoryDepositRepo) GetActiveByOwnerAndFamilyForUpdate(ctx context.Context, tx pgx.Tx, owner domain.OwnerRef, family domain.ChainFamily) (*domain.DepositAddress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, addr := range r.addresses {
		if addr.IsActive && addr.ChainFamily == family && addr.Owner().Key() == owner.Key() {
			return addr, nil
		}
	}
	return nil, nil
}

func (r *inMemoryDepositRepo) Create(ctx context.Context, tx pgx.Tx, addr *domain.DepositAddress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := depositKey(addr.Owner(), addr.Network)
	if existing, ok := r.addresses[key]; ok && existing.IsActive {
		return ports.ErrDuplicateKey
	}
	r.addresses[key] = addr
	return nil
}

// --- In-Memory Ledger Repo ---

type inMemoryLedgerRepo struct {
	mu      sync.RWMutex
	entries map[string]*domain.LedgerEntry // natural key
}

func newInMemoryLedgerRepo() *inMemoryLedgerRepo {
	return &inMemoryLedgerRepo{entries: make(map[string]*domain.LedgerEntry)}
}

func ledgerKey(submissionID uuid.UUID, pt domain.PaymentType, threshold int64) string {
	return fmt.Sprintf("%s|%s|%d", submissionID, pt, threshold)
}

func (r *inMemoryLedgerRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, submissionID uuid.UUID, pt domain.PaymentType, threshold int64) (*domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[ledgerKey(submissionID, pt, threshold)]
	if !ok {
		return nil, nil
	}
	clone := *entry
	return &clone, nil
}

func (r *inMemoryLedgerRepo) Upsert(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := ledgerKey(entry.SubmissionID, entry.PaymentType, entry.MilestoneThreshold)
	_, exists := r.entries[key]
	clone := *entry
	r.entries[key] = &clone
	return !exists, nil
}

func (r *inMemoryLedgerRepo) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.LedgerEntry
	for _, entry := range r.entries {
		if entry.UserID != userID {
			continue
		}
		result = append(result, *entry)
		if len(result) >= limit {
			break
		}
	}
	return result, nil
}

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	byUser  map[uuid.UUID]*domain.Wallet
	userFor map[uuid.UUID]uuid.UUID // wallet ID -> user ID
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{
		byUser:  make(map[uuid.UUID]*domain.Wallet),
		userFor: make(map[uuid.UUID]uuid.UUID),
	}
}

// seed creates a wallet with a starting balance for test setup.
func (r *inMemoryWalletRepo) seed(userID uuid.UUID, balance int64) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	w := &domain.Wallet{ID: uuid.New(), UserID: userID, AvailableBalance: balance}
	r.byUser[userID] = w
	r.userFor[w.ID] = userID
	return w.ID
}

func (r *inMemoryWalletRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.byUser[userID]
	if !ok {
		return nil, nil
	}
	clone := *w
	return &clone, nil
}

func (r *inMemoryWalletRepo) GetByUserIDForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.Wallet, error) {
	return r.GetByUserID(ctx, userID)
}

func (r *inMemoryWalletRepo) Credit(ctx context.Context, tx pgx.Tx, userID uuid.UUID, amount int64) (*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.byUser[userID]
	if !ok {
		w = &domain.Wallet{ID: uuid.New(), UserID: userID}
		r.byUser[userID] = w
		r.userFor[w.ID] = userID
	}
	w.AvailableBalance += amount
	clone := *w
	return &clone, nil
}

func (r *inMemoryWalletRepo) Debit(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	userID, ok := r.userFor[walletID]
	if !ok {
		return fmt.Errorf("wallet not found")
	}
	w := r.byUser[userID]
	if w.AvailableBalance < amount {
		return fmt.Errorf("insufficient balance")
	}
	w.AvailableBalance -= amount
	return nil
}

// --- In-Memory Wallet Transaction Repo ---

type inMemoryWalletTxRepo struct {
	mu           sync.Mutex
	transactions []*domain.WalletTransaction
}

func newInMemoryWalletTxRepo() *inMemoryWalletTxRepo {
	return &inMemoryWalletTxRepo{}
}

func (r *inMemoryWalletTxRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.WalletTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = append(r.transactions, t)
	return nil
}

// --- In-Memory Withdrawal Repo ---

type inMemoryWithdrawalRepo struct {
	mu       sync.RWMutex
	requests []*domain.WithdrawalRequest
}

func newInMemoryWithdrawalRepo() *inMemoryWithdrawalRepo {
	return &inMemoryWithdrawalRepo{}
}

func (r *inMemoryWithdrawalRepo) Create(ctx context.Context, tx pgx.Tx, req *domain.WithdrawalRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *req
	r.requests = append(r.requests, &clone)
	return nil
}

func (r *inMemoryWithdrawalRepo) GetActiveByUserID(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.WithdrawalRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, req := range r.requests {
		if req.UserID == userID && !req.Status.IsTerminal() {
			clone := *req
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWithdrawalRepo) SumPaidByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total int64
	for _, req := range r.requests {
		if req.UserID == userID && req.Status == domain.WithdrawalPaid {
			total += req.Amount
		}
	}
	return total, nil
}

func (r *inMemoryWithdrawalRepo) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WithdrawalRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.WithdrawalRequest
	for _, req := range r.requests {
		if req.UserID != userID {
			continue
		}
		result = append(result, *req)
		if len(result) >= limit {
			break
		}
	}
	return result, nil
}

// --- In-Memory Tax Form Repo ---

type inMemoryTaxFormRepo struct {
	mu    sync.RWMutex
	forms map[uuid.UUID]*domain.TaxForm // keyed by user ID, latest form only
}

func newInMemoryTaxFormRepo() *inMemoryTaxFormRepo {
	return &inMemoryTaxFormRepo{forms: make(map[uuid.UUID]*domain.TaxForm)}
}

func (r *inMemoryTaxFormRepo) put(form *domain.TaxForm) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forms[form.UserID] = form
}

func (r *inMemoryTaxFormRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TaxForm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, form := range r.forms {
		if form.ID == id {
			return form, nil
		}
	}
	return nil, nil
}

func (r *inMemoryTaxFormRepo) GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*domain.TaxForm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	form, ok := r.forms[userID]
	if !ok {
		return nil, nil
	}
	return form, nil
}

// --- In-Memory Profile Repo ---

type inMemoryProfileRepo struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]*domain.Profile
}

func newInMemoryProfileRepo() *inMemoryProfileRepo {
	return &inMemoryProfileRepo{profiles: make(map[uuid.UUID]*domain.Profile)}
}

func (r *inMemoryProfileRepo) put(p *domain.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.UserID] = p
}

func (r *inMemoryProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	return p, nil
}

// --- In-Memory Policy Source ---

type inMemoryPolicySource struct {
	mu        sync.RWMutex
	campaigns []ports.CampaignPolicy
	boosts    []ports.BoostPolicy
}

func newInMemoryPolicySource() *inMemoryPolicySource {
	return &inMemoryPolicySource{}
}

func (r *inMemoryPolicySource) addCampaign(c ports.CampaignPolicy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.campaigns = append(r.campaigns, c)
}

func (r *inMemoryPolicySource) addBoost(b ports.BoostPolicy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.boosts = append(r.boosts, b)
}

func (r *inMemoryPolicySource) ListActiveCampaigns(ctx context.Context, campaignID *uuid.UUID) ([]ports.CampaignPolicy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if campaignID == nil {
		return append([]ports.CampaignPolicy(nil), r.campaigns...), nil
	}
	for _, c := range r.campaigns {
		if c.ID == *campaignID {
			return []ports.CampaignPolicy{c}, nil
		}
	}
	return nil, nil
}

func (r *inMemoryPolicySource) ListActiveBoosts(ctx context.Context, boostID *uuid.UUID) ([]ports.BoostPolicy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if boostID == nil {
		return append([]ports.BoostPolicy(nil), r.boosts...), nil
	}
	for _, b := range r.boosts {
		if b.ID == *boostID {
			return []ports.BoostPolicy{b}, nil
		}
	}
	return nil, nil
}

// --- In-Memory Metrics Feed ---

type inMemoryMetricsFeed struct {
	mu          sync.RWMutex
	submissions map[uuid.UUID][]ports.SubmissionMetrics // keyed by source ID
}

func newInMemoryMetricsFeed() *inMemoryMetricsFeed {
	return &inMemoryMetricsFeed{submissions: make(map[uuid.UUID][]ports.SubmissionMetrics)}
}

func (r *inMemoryMetricsFeed) set(sourceID uuid.UUID, subs []ports.SubmissionMetrics) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions[sourceID] = subs
}

func (r *inMemoryMetricsFeed) ListApprovedSubmissions(ctx context.Context, sourceType domain.SourceType, sourceID uuid.UUID) ([]ports.SubmissionMetrics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]ports.SubmissionMetrics(nil), r.submissions[sourceID]...), nil
}

// --- In-Memory Legacy Ledger Source ---

type inMemoryLegacySource struct {
	mu      sync.RWMutex
	entries []domain.LedgerEntry
}

func newInMemoryLegacySource() *inMemoryLegacySource {
	return &inMemoryLegacySource{}
}

func (r *inMemoryLegacySource) add(e domain.LedgerEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

func (r *inMemoryLegacySource) ListLegacyEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.LedgerEntry(nil), r.entries...), nil
}

// --- In-Memory Transactor ---

// inMemoryTransactor serializes transactions behind a process-wide mutex,
// standing in for the row locks the real store takes. This keeps the
// concurrency tests exact: a begun transaction excludes all others until it
// commits or rolls back.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &serialTx{release: t.mu.Unlock}, nil
}

// serialTx is a pgx.Tx that releases the transactor mutex exactly once, on
// whichever of Commit/Rollback runs first.
type serialTx struct {
	mu      sync.Mutex
	release func()
	done    bool
}

func (t *serialTx) finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.done {
		t.done = true
		t.release()
	}
}

func (t *serialTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *serialTx) Commit(ctx context.Context) error          { t.finish(); return nil }
func (t *serialTx) Rollback(ctx context.Context) error        { t.finish(); return nil }
func (t *serialTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *serialTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *serialTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *serialTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *serialTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *serialTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *serialTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *serialTx) Conn() *pgx.Conn { return nil }
