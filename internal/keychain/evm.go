package keychain

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcutil/hdkeychain"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// evmPathPrefix is m/44'/60'/0'/0; the address index is appended unhardened.
var evmPathPrefix = []uint32{
	hdkeychain.HardenedKeyStart + 44,
	hdkeychain.HardenedKeyStart + 60,
	hdkeychain.HardenedKeyStart + 0,
	0,
}

// evmAddress derives the EIP-55 checksum address at m/44'/60'/0'/0/{index}.
func (k *Keychain) evmAddress(index uint32) (string, error) {
	node, err := hdkeychain.NewMaster(k.seed, &chaincfg.MainNetParams)
	if err != nil {
		return "", fmt.Errorf("derive master key: %w", err)
	}
	for _, step := range evmPathPrefix {
		node, err = node.Child(step)
		if err != nil {
			return "", fmt.Errorf("derive path step %d: %w", step, err)
		}
	}
	node, err = node.Child(index)
	if err != nil {
		return "", fmt.Errorf("derive index %d: %w", index, err)
	}

	priv, err := node.ECPrivKey()
	if err != nil {
		return "", fmt.Errorf("extract private key: %w", err)
	}
	ecdsaKey := priv.ToECDSA()
	return ethcrypto.PubkeyToAddress(ecdsaKey.PublicKey).Hex(), nil
}
