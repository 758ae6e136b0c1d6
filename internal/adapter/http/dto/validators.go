package dto

import (
	"fmt"

	"creator-settlement/internal/core/domain"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"

	"filippo.io/edwards25519"
)

// ValidateCryptoAddress checks that a payout wallet address is structurally
// valid for its network. EVM addresses must be 20-byte hex; Solana addresses
// must decode to a 32-byte ed25519 point that lies on the curve, which
// catches most typos before funds can be sent nowhere.
func ValidateCryptoAddress(network domain.Network, address string) error {
	family, err := network.Family()
	if err != nil {
		return err
	}

	switch family {
	case domain.FamilyEVM:
		if !ethcommon.IsHexAddress(address) {
			return fmt.Errorf("invalid EVM address: %s", address)
		}
	case domain.FamilySolana:
		raw, err := base58.Decode(address)
		if err != nil {
			return fmt.Errorf("invalid solana address encoding: %w", err)
		}
		if len(raw) != 32 {
			return fmt.Errorf("solana address must decode to 32 bytes, got %d", len(raw))
		}
		if _, err := new(edwards25519.Point).SetBytes(raw); err != nil {
			return fmt.Errorf("solana address is not a valid ed25519 point")
		}
	default:
		return fmt.Errorf("unsupported chain family: %q", string(family))
	}
	return nil
}
