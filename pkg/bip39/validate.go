package bip39

import (
	"fmt"
	"strings"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
)

// EntropyFromMnemonic decodes a mnemonic back into its entropy and verifies
// the embedded checksum.
func EntropyFromMnemonic(text string, wl *WordList) ([]byte, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: empty mnemonic", ErrEntropyUnavailable)
	}
	kt, err := KeyTypeForWordLength(len(words))
	if err != nil {
		return nil, err
	}

	w := newBitWriter(kt.TotalBits())
	for i, word := range words {
		idx, err := wl.IndexOf(word)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i+1, err)
		}
		w.WriteBits(uint32(idx), WordBits)
	}

	r := newBitReader(w.Bytes())
	entropy := make([]byte, kt.EntropyBytes())
	for i := range entropy {
		b, err := r.ReadBits(8)
		if err != nil {
			return nil, err
		}
		entropy[i] = byte(b)
	}
	got, err := r.ReadBits(kt.ChecksumBits())
	if err != nil {
		return nil, err
	}

	digest := crypto.Checksum(entropy)
	want, err := newBitReader(digest[:]).ReadBits(kt.ChecksumBits())
	if err != nil {
		return nil, err
	}
	if got != want {
		return nil, ErrInvalidChecksum
	}
	return entropy, nil
}

// Validate checks the word count, vocabulary and checksum of a mnemonic.
func Validate(text string, lang Language) error {
	wl, err := LoadWordList(lang)
	if err != nil {
		return err
	}
	_, err = EntropyFromMnemonic(text, wl)
	return err
}
