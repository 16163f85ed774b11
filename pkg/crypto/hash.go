// Package crypto provides the hash and key-derivation primitives used by the
// mnemonic encoder, validator and seed deriver.
package crypto

import (
	"crypto/sha256"
	"crypto/sha512"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/pbkdf2"
)

// ChecksumSize is the length of a SHA-256 digest in bytes.
const ChecksumSize = sha256.Size

// FingerprintSize is the length of a fingerprint in bytes.
const FingerprintSize = 4

// Checksum computes the SHA-256 digest of data.
func Checksum(data []byte) [ChecksumSize]byte {
	return sha256.Sum256(data)
}

// PBKDF2SHA512 derives keyLen bytes from password and salt using
// PBKDF2 with HMAC-SHA512 as the pseudorandom function.
func PBKDF2SHA512(password, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, keyLen, sha512.New)
}

// Fingerprint returns the first 4 bytes of BLAKE3-256(data).
// Used to identify secret material in logs and output without revealing it.
func Fingerprint(data []byte) [FingerprintSize]byte {
	h := blake3.Sum256(data)
	var fp [FingerprintSize]byte
	copy(fp[:], h[:FingerprintSize])
	return fp
}
