package bip39

import (
	"fmt"
	"io"
	"strings"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
)

// NewEntropy reads kt.EntropyBytes() bytes from the secure source r.
// A failing source is not retried.
func NewEntropy(r io.Reader, kt KeyType) ([]byte, error) {
	if !kt.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKeysize, kt)
	}
	entropy := make([]byte, kt.EntropyBytes())
	if _, err := io.ReadFull(r, entropy); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return entropy, nil
}

// EntropyToMnemonic encodes entropy as a mnemonic phrase. The entropy length
// selects the strength; the first ChecksumBits of SHA-256(entropy) are
// appended before the stream is cut into 11-bit word indices.
func EntropyToMnemonic(entropy []byte, wl *WordList) (string, error) {
	kt, err := KeyTypeForKeysize(len(entropy) * 8)
	if err != nil {
		return "", err
	}

	digest := crypto.Checksum(entropy)
	stream := make([]byte, 0, len(entropy)+len(digest))
	stream = append(stream, entropy...)
	stream = append(stream, digest[:]...)

	r := newBitReader(stream)
	words := make([]string, kt.WordLength())
	for i := range words {
		idx, err := r.ReadBits(WordBits)
		if err != nil {
			return "", fmt.Errorf("read word %d: %w", i, err)
		}
		if words[i], err = wl.Word(int(idx)); err != nil {
			return "", err
		}
	}
	return strings.Join(words, " "), nil
}
