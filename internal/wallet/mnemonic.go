// Package wallet implements mnemonic generation, seed derivation and HD key
// derivation on top of pkg/bip39.
package wallet

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/bip39"
)

// DefaultWordCount is the mnemonic length used when none is configured.
const DefaultWordCount = 12

// GenerateMnemonic creates a new mnemonic with the given word count
// (12, 15, 18, 21 or 24).
func GenerateMnemonic(words int, lang bip39.Language, passphrase string) (*bip39.Mnemonic, error) {
	kt, err := bip39.KeyTypeForWordLength(words)
	if err != nil {
		return nil, err
	}
	m, err := bip39.New(kt, lang, passphrase)
	if err != nil {
		return nil, fmt.Errorf("generate mnemonic: %w", err)
	}
	log.Mnemonic.Debug().
		Int("words", words).
		Str("strength", kt.String()).
		Str("language", lang.String()).
		Msg("Mnemonic generated")
	return m, nil
}

// ValidateMnemonic checks word count, vocabulary and checksum.
func ValidateMnemonic(phrase string, lang bip39.Language) error {
	if err := bip39.Validate(phrase, lang); err != nil {
		log.Mnemonic.Debug().Str("kind", bip39.Kind(err)).Msg("Mnemonic rejected")
		return err
	}
	return nil
}
