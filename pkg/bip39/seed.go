package bip39

import (
	"encoding/hex"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
	"golang.org/x/text/unicode/norm"
)

// Seed derivation parameters.
const (
	SeedSize     = 64
	SeedRounds   = 2048
	seedSaltBase = "mnemonic"
)

// Seed is the 512-bit key material derived from a mnemonic and passphrase.
type Seed [SeedSize]byte

// NewSeed derives a seed with PBKDF2-HMAC-SHA512 over the NFKD forms of
// mnemonic and passphrase. The mnemonic is not validated.
func NewSeed(mnemonic, passphrase string) Seed {
	password := []byte(norm.NFKD.String(mnemonic))
	salt := []byte(seedSaltBase + norm.NFKD.String(passphrase))

	var s Seed
	copy(s[:], crypto.PBKDF2SHA512(password, salt, SeedRounds, SeedSize))
	return s
}

// Hex returns the lowercase hex encoding of the seed.
func (s Seed) Hex() string {
	return hex.EncodeToString(s[:])
}

// Bytes returns a copy of the seed as a byte slice.
func (s Seed) Bytes() []byte {
	b := make([]byte, SeedSize)
	copy(b, s[:])
	return b
}

// Fingerprint returns a short hex identifier of the seed, safe to log.
func (s Seed) Fingerprint() string {
	fp := crypto.Fingerprint(s[:])
	return hex.EncodeToString(fp[:])
}
