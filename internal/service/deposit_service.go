package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"creator-settlement/internal/core/domain"
	"creator-settlement/internal/core/ports"
	"creator-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const addressCacheTTL = 24 * time.Hour

// DepositAddressServiceImpl implements ports.DepositAddressService.
type DepositAddressServiceImpl struct {
	addrRepo    ports.DepositAddressRepository
	counterRepo ports.DerivationCounterRepository
	deriver     ports.KeyDeriver
	cache       ports.AddressCache
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewDepositAddressService creates a new DepositAddressServiceImpl.
func NewDepositAddressService(
	addrRepo ports.DepositAddressRepository,
	counterRepo ports.DerivationCounterRepository,
	deriver ports.KeyDeriver,
	cache ports.AddressCache,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *DepositAddressServiceImpl {
	return &DepositAddressServiceImpl{
		addrRepo:    addrRepo,
		counterRepo: counterRepo,
		deriver:     deriver,
		cache:       cache,
		transactor:  transactor,
		log:         log,
	}
}

// GetOrCreate returns the owner's active address for a network, allocating
// one on first call. Retries and concurrent calls converge on the same
// address: the allocation is idempotent per (owner, network).
func (s *DepositAddressServiceImpl) GetOrCreate(ctx context.Context, req ports.DepositAddressRequest) (*ports.DepositAddressResult, error) {
	if err := req.Owner.Validate(); err != nil {
		return nil, apperror.ErrInvalidOwner(err.Error())
	}
	family, err := req.Network.Family()
	if err != nil {
		return nil, apperror.ErrUnsupportedNetwork(string(req.Network))
	}

	cacheKey := req.Owner.Key() + ":" + string(req.Network)

	// Layer 1: Redis fast path
	cached, err := s.cache.Get(ctx, cacheKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", cacheKey).Msg("redis address lookup failed, falling through to DB")
	}
	if cached != nil {
		return s.unmarshalCachedResult(cached)
	}

	// Layer 2: DB fast path
	existing, err := s.addrRepo.GetActiveByOwnerAndNetwork(ctx, req.Owner, req.Network)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup active address: %w", err))
	}
	if existing != nil {
		return s.finish(ctx, cacheKey, existing, true)
	}

	// Allocate inside a transaction
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Serialise allocation per (owner, family) before the sibling lookup.
	// Two first-time requests for sibling networks see no row to lock and
	// would each mint their own index without this.
	if err := s.addrRepo.AcquireAllocationLock(ctx, dbTx, req.Owner, family); err != nil {
		return nil, apperror.InternalError(err)
	}

	// Reuse the family index if the owner already has one: every EVM network
	// shares a single derivation index, so the same key backs all of them.
	var index uint32
	sibling, err := s.addrRepo.GetActiveByOwnerAndFamilyForUpdate(ctx, dbTx, req.Owner, family)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup family sibling: %w", err))
	}
	if sibling != nil {
		index = sibling.DerivationIndex
	} else {
		index, err = s.counterRepo.AllocateNext(ctx, dbTx, family)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("allocate index: %w", err))
		}
	}

	address, err := s.deriver.Address(family, index)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("derive address: %w", err))
	}

	addr := &domain.DepositAddress{
		ID:              uuid.New(),
		BrandID:         req.Owner.BrandID,
		UserID:          req.Owner.UserID,
		Network:         req.Network,
		ChainFamily:     family,
		Address:         address,
		DerivationIndex: index,
		Label:           req.Label,
		IsActive:        true,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.addrRepo.Create(ctx, dbTx, addr); err != nil {
		if errors.Is(err, ports.ErrDuplicateKey) {
			// A concurrent call won the race. Its row is the answer.
			return s.resolveRace(ctx, cacheKey, req)
		}
		return nil, apperror.InternalError(fmt.Errorf("create address: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("owner", req.Owner.Key()).
		Str("network", string(req.Network)).
		Uint32("derivation_index", index).
		Msg("deposit address allocated")

	return s.finish(ctx, cacheKey, addr, false)
}

// resolveRace re-reads the winner's row after a unique violation.
func (s *DepositAddressServiceImpl) resolveRace(ctx context.Context, cacheKey string, req ports.DepositAddressRequest) (*ports.DepositAddressResult, error) {
	existing, err := s.addrRepo.GetActiveByOwnerAndNetwork(ctx, req.Owner, req.Network)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("re-read after race: %w", err))
	}
	if existing == nil {
		return nil, apperror.InternalError(fmt.Errorf("duplicate address for %s on %s but no active row", req.Owner.Key(), req.Network))
	}
	return s.finish(ctx, cacheKey, existing, true)
}

// finish builds the result and caches it best-effort.
func (s *DepositAddressServiceImpl) finish(ctx context.Context, cacheKey string, addr *domain.DepositAddress, alreadyExists bool) (*ports.DepositAddressResult, error) {
	result := &ports.DepositAddressResult{
		Address:         addr.Address,
		Network:         addr.Network,
		DerivationIndex: addr.DerivationIndex,
		AlreadyExists:   alreadyExists,
	}

	if data, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, cacheKey, data, addressCacheTTL); err != nil {
			s.log.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache address in redis")
		}
	}

	return result, nil
}

func (s *DepositAddressServiceImpl) unmarshalCachedResult(data []byte) (*ports.DepositAddressResult, error) {
	result := &ports.DepositAddressResult{}
	if err := json.Unmarshal(data, result); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached address: %w", err))
	}
	result.AlreadyExists = true
	return result, nil
}
