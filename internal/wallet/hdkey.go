package wallet

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/bip39"
	"github.com/tyler-smith/go-bip32"
)

// BIP-44 derivation path constants.
// Full path: m/44'/CoinType'/account'/change/index
const (
	// PurposeBIP44 is the BIP-44 purpose field (hardened).
	PurposeBIP44 = bip32.FirstHardenedChild + 44

	// CoinTypeKlingnet is the Klingnet coin type.
	CoinTypeKlingnet uint32 = 8888
)

// HDKey represents a hierarchical deterministic key (BIP-32).
type HDKey struct {
	key *bip32.Key
}

// NewMasterKey creates a master HD key from a BIP-39 seed.
func NewMasterKey(seed bip39.Seed) (*HDKey, error) {
	master, err := bip32.NewMasterKey(seed[:])
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}
	return &HDKey{key: master}, nil
}

// DeriveChild derives a child key at the given index.
// For hardened derivation, add bip32.FirstHardenedChild to the index.
func (k *HDKey) DeriveChild(index uint32) (*HDKey, error) {
	child, err := k.key.NewChildKey(index)
	if err != nil {
		return nil, fmt.Errorf("derive child %d: %w", index, err)
	}
	return &HDKey{key: child}, nil
}

// DerivePath derives a key along a sequence of indices.
func (k *HDKey) DerivePath(indices ...uint32) (*HDKey, error) {
	current := k
	for _, idx := range indices {
		child, err := current.DeriveChild(idx)
		if err != nil {
			return nil, err
		}
		current = child
	}
	return current, nil
}

// AccountPath formats the BIP-44 account path for coinType and account.
func AccountPath(coinType, account uint32) string {
	return fmt.Sprintf("m/44'/%d'/%d'", coinType, account)
}

// DeriveAccount derives the account key at AccountPath(coinType, account).
// Both indices are hardened and must be below bip32.FirstHardenedChild.
func (k *HDKey) DeriveAccount(coinType, account uint32) (*HDKey, error) {
	if coinType >= bip32.FirstHardenedChild || account >= bip32.FirstHardenedChild {
		return nil, fmt.Errorf("account path %s: index out of range", AccountPath(coinType, account))
	}
	return k.DerivePath(
		PurposeBIP44,
		bip32.FirstHardenedChild+coinType,
		bip32.FirstHardenedChild+account,
	)
}

// PublicKeyBytes returns the compressed 33-byte public key.
func (k *HDKey) PublicKeyBytes() []byte {
	return k.key.PublicKey().Key
}

// IsPrivate returns true if this key contains a private key.
func (k *HDKey) IsPrivate() bool {
	return k.key.IsPrivate
}

// Depth returns the derivation depth (0 for master).
func (k *HDKey) Depth() uint8 {
	return k.key.Depth
}

// Neuter returns a public-key-only copy (for watch-only wallets).
func (k *HDKey) Neuter() *HDKey {
	return &HDKey{key: k.key.PublicKey()}
}

// String returns the base58 extended key (xprv or xpub).
func (k *HDKey) String() string {
	return k.key.B58Serialize()
}
