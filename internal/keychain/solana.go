package keychain

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"

	"github.com/mr-tron/base58"
)

const hardenedOffset uint32 = 0x80000000

// solanaPath is the fully hardened m/44'/501'/0'/0'/{index}' path; the index
// is appended (hardened) at derivation time.
var solanaPath = []uint32{44, 501, 0, 0}

// solanaAddress derives the base58-encoded ed25519 public key at the SLIP-0010
// hardened path for the given index.
func (k *Keychain) solanaAddress(index uint32) (string, error) {
	key, chain := slip10Master(k.seed)
	for _, step := range solanaPath {
		key, chain = slip10Child(key, chain, step+hardenedOffset)
	}
	key, _ = slip10Child(key, chain, index+hardenedOffset)

	priv := ed25519.NewKeyFromSeed(key)
	pub := priv.Public().(ed25519.PublicKey)
	return base58.Encode(pub), nil
}

// slip10Master computes the ed25519 master key and chain code per SLIP-0010.
func slip10Master(seed []byte) (key, chain []byte) {
	mac := hmac.New(sha512.New, []byte("ed25519 seed"))
	mac.Write(seed)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

// slip10Child derives one hardened child. ed25519 per SLIP-0010 supports
// hardened derivation only.
func slip10Child(key, chain []byte, index uint32) (childKey, childChain []byte) {
	data := make([]byte, 0, 1+len(key)+4)
	data = append(data, 0x00)
	data = append(data, key...)
	data = binary.BigEndian.AppendUint32(data, index)

	mac := hmac.New(sha512.New, chain)
	mac.Write(data)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}
