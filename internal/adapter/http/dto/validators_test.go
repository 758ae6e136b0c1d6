package dto

import (
	"crypto/ed25519"
	"testing"

	"creator-settlement/internal/core/domain"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solanaAddress(t *testing.T) string {
	t.Helper()
	seed := make([]byte, ed25519.SeedSize)
	copy(seed, "deterministic-test-seed")
	pub := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	return base58.Encode(pub)
}

func TestValidateCryptoAddress_EVM(t *testing.T) {
	for _, network := range []domain.Network{
		domain.NetworkEthereum, domain.NetworkBase, domain.NetworkPolygon,
		domain.NetworkArbitrum, domain.NetworkOptimism,
	} {
		err := ValidateCryptoAddress(network, "0x8ba1f109551bD432803012645Ac136ddd64DBA72")
		assert.NoError(t, err, "network %s", network)
	}
}

func TestValidateCryptoAddress_EVMRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"0x123",                                      // too short
		"8ba1f109551bD432803012645Ac136ddd64DBA72",   // missing 0x
		"0xZZa1f109551bD432803012645Ac136ddd64DBA72", // non-hex
	}
	for _, addr := range cases {
		assert.Error(t, ValidateCryptoAddress(domain.NetworkEthereum, addr), "address %q", addr)
	}
}

func TestValidateCryptoAddress_Solana(t *testing.T) {
	addr := solanaAddress(t)
	assert.NoError(t, ValidateCryptoAddress(domain.NetworkSolana, addr))
}

func TestValidateCryptoAddress_SolanaRejectsMalformed(t *testing.T) {
	// Not base58
	assert.Error(t, ValidateCryptoAddress(domain.NetworkSolana, "0OIl+/"))

	// Valid base58 but wrong length
	short := base58.Encode([]byte("too-short"))
	assert.Error(t, ValidateCryptoAddress(domain.NetworkSolana, short))
}

func TestValidateCryptoAddress_UnsupportedNetwork(t *testing.T) {
	err := ValidateCryptoAddress(domain.Network("dogecoin"), "whatever")
	require.Error(t, err)
}
