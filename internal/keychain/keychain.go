// Package keychain derives public deposit addresses from a single master
// seed. It is pure and deterministic: the same (seed, family, index) always
// yields the same address. Private key material never leaves this package.
package keychain

import (
	"errors"
	"fmt"

	"creator-settlement/internal/core/domain"

	"github.com/tyler-smith/go-bip39"
)

var errEmptyMnemonic = errors.New("keychain: mnemonic is empty")

// Keychain holds the BIP-39 master seed, loaded once at process start.
type Keychain struct {
	seed []byte
}

// New builds a Keychain from a BIP-39 mnemonic and optional passphrase.
func New(mnemonic, passphrase string) (*Keychain, error) {
	if mnemonic == "" {
		return nil, errEmptyMnemonic
	}
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.New("keychain: invalid mnemonic")
	}
	return &Keychain{seed: bip39.NewSeed(mnemonic, passphrase)}, nil
}

// Address derives the public deposit address at the given index for a chain
// family. Solana uses the hardened SLIP-0010 path m/44'/501'/0'/0'/{index}';
// the EVM family uses BIP-32 m/44'/60'/0'/0/{index}. Every EVM network shares
// the address derived for an index.
func (k *Keychain) Address(family domain.ChainFamily, index uint32) (string, error) {
	switch family {
	case domain.FamilySolana:
		return k.solanaAddress(index)
	case domain.FamilyEVM:
		return k.evmAddress(index)
	default:
		return "", fmt.Errorf("keychain: unknown chain family %q", string(family))
	}
}

// String redacts the seed from any accidental formatting.
func (k *Keychain) String() string { return "keychain(seed redacted)" }

// MarshalJSON redacts the seed from any accidental serialization.
func (k *Keychain) MarshalJSON() ([]byte, error) { return []byte(`"keychain(seed redacted)"`), nil }
