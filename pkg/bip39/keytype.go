package bip39

import (
	"fmt"
	"strings"
)

// WordBits is the number of bits encoded by a single mnemonic word.
const WordBits = 11

// KeyType selects one of the five BIP-39 entropy strengths.
// All size constants are derived from the tag.
type KeyType uint8

// Supported strengths.
const (
	Key128 KeyType = iota
	Key160
	Key192
	Key224
	Key256
)

// KeyTypes returns every supported strength in ascending order.
func KeyTypes() []KeyType {
	return []KeyType{Key128, Key160, Key192, Key224, Key256}
}

// KeyTypeForKeysize returns the KeyType for an entropy size in bits.
func KeyTypeForKeysize(bits int) (KeyType, error) {
	for _, kt := range KeyTypes() {
		if kt.EntropyBits() == bits {
			return kt, nil
		}
	}
	return 0, fmt.Errorf("%w: %d bits", ErrInvalidKeysize, bits)
}

// KeyTypeForWordLength returns the KeyType for a mnemonic word count.
func KeyTypeForWordLength(n int) (KeyType, error) {
	for _, kt := range KeyTypes() {
		if kt.WordLength() == n {
			return kt, nil
		}
	}
	return 0, fmt.Errorf("%w: %d words", ErrInvalidWordLength, n)
}

// KeyTypeForMnemonic counts the whitespace-separated words of text and
// resolves the KeyType from that count.
func KeyTypeForMnemonic(text string) (KeyType, error) {
	return KeyTypeForWordLength(len(strings.Fields(text)))
}

// Valid reports whether k is one of the five supported strengths.
func (k KeyType) Valid() bool {
	return k <= Key256
}

// EntropyBits returns the entropy size: 128, 160, 192, 224 or 256.
func (k KeyType) EntropyBits() int {
	return 128 + 32*int(k)
}

// EntropyBytes returns the entropy size in bytes.
func (k KeyType) EntropyBytes() int {
	return k.EntropyBits() / 8
}

// ChecksumBits returns EntropyBits/32.
func (k KeyType) ChecksumBits() int {
	return k.EntropyBits() / 32
}

// TotalBits returns EntropyBits+ChecksumBits, always a multiple of WordBits.
func (k KeyType) TotalBits() int {
	return k.EntropyBits() + k.ChecksumBits()
}

// WordLength returns the number of words in a mnemonic of this strength.
func (k KeyType) WordLength() int {
	return k.TotalBits() / WordBits
}

func (k KeyType) String() string {
	if !k.Valid() {
		return fmt.Sprintf("KeyType(%d)", uint8(k))
	}
	return fmt.Sprintf("%d-bit", k.EntropyBits())
}
