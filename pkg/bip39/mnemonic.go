// Package bip39 implements BIP-39 mnemonic codes: encoding entropy as a
// phrase of words, validating a phrase through its embedded checksum, and
// deriving a binary seed from a phrase and passphrase.
//
// Only validated phrases are represented as *Mnemonic; caller-supplied text
// stays a plain string until FromPhrase accepts it.
package bip39

import (
	"crypto/rand"
	"io"
	"strings"
	"sync"
)

// Mnemonic is a validated mnemonic phrase bound to a passphrase.
// It is immutable and safe for concurrent use. Build one with New,
// NewWithReader, NewFromEntropy or FromPhrase; the zero value holds no
// phrase and its Seed is all zeros.
type Mnemonic struct {
	phrase  string
	lang    Language
	keyType KeyType
	seed    func() Seed
}

// New generates a mnemonic of strength kt from crypto/rand.
func New(kt KeyType, lang Language, passphrase string) (*Mnemonic, error) {
	return NewWithReader(rand.Reader, kt, lang, passphrase)
}

// NewWithReader generates a mnemonic of strength kt from the entropy source r.
func NewWithReader(r io.Reader, kt KeyType, lang Language, passphrase string) (*Mnemonic, error) {
	wl, err := LoadWordList(lang)
	if err != nil {
		return nil, err
	}
	entropy, err := NewEntropy(r, kt)
	if err != nil {
		return nil, err
	}
	defer clear(entropy)

	phrase, err := EntropyToMnemonic(entropy, wl)
	if err != nil {
		return nil, err
	}
	return newMnemonic(phrase, lang, kt, passphrase), nil
}

// NewFromEntropy encodes caller-supplied entropy. Identical entropy always
// yields the identical phrase.
func NewFromEntropy(entropy []byte, lang Language, passphrase string) (*Mnemonic, error) {
	wl, err := LoadWordList(lang)
	if err != nil {
		return nil, err
	}
	phrase, err := EntropyToMnemonic(entropy, wl)
	if err != nil {
		return nil, err
	}
	kt, err := KeyTypeForKeysize(len(entropy) * 8)
	if err != nil {
		return nil, err
	}
	return newMnemonic(phrase, lang, kt, passphrase), nil
}

// FromPhrase validates text and wraps it as a Mnemonic. The phrase is kept
// exactly as supplied, since the seed is derived from its bytes.
func FromPhrase(text string, lang Language, passphrase string) (*Mnemonic, error) {
	if err := Validate(text, lang); err != nil {
		return nil, err
	}
	kt, err := KeyTypeForMnemonic(text)
	if err != nil {
		return nil, err
	}
	return newMnemonic(text, lang, kt, passphrase), nil
}

func newMnemonic(phrase string, lang Language, kt KeyType, passphrase string) *Mnemonic {
	return &Mnemonic{
		phrase:  phrase,
		lang:    lang,
		keyType: kt,
		seed: sync.OnceValue(func() Seed {
			return NewSeed(phrase, passphrase)
		}),
	}
}

// String returns the phrase.
func (m *Mnemonic) String() string {
	return m.phrase
}

// Words returns the words of the phrase.
func (m *Mnemonic) Words() []string {
	return strings.Fields(m.phrase)
}

// KeyType returns the strength of the mnemonic.
func (m *Mnemonic) KeyType() KeyType {
	return m.keyType
}

// Language returns the word list language.
func (m *Mnemonic) Language() Language {
	return m.lang
}

// Seed returns the derived seed, computing it on first use.
func (m *Mnemonic) Seed() Seed {
	if m == nil || m.seed == nil {
		return Seed{}
	}
	return m.seed()
}

// SeedHex returns the lowercase hex encoding of the seed.
func (m *Mnemonic) SeedHex() string {
	return m.Seed().Hex()
}
