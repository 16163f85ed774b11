package bip39

import "errors"

// Mnemonic errors. Callers classify failures with errors.Is.
var (
	ErrInvalidKeysize      = errors.New("invalid key size")
	ErrInvalidWordLength   = errors.New("invalid mnemonic word count")
	ErrInvalidChecksum     = errors.New("invalid mnemonic checksum")
	ErrEntropyUnavailable  = errors.New("entropy unavailable")
	ErrLanguageUnavailable = errors.New("language unavailable")
	ErrInvalidWord         = errors.New("word not in word list")
)

var errorKinds = []struct {
	err  error
	name string
}{
	{ErrInvalidKeysize, "InvalidKeysize"},
	{ErrInvalidWordLength, "InvalidWordLength"},
	{ErrInvalidChecksum, "InvalidChecksum"},
	{ErrEntropyUnavailable, "EntropyUnavailable"},
	{ErrLanguageUnavailable, "LanguageUnavailable"},
	{ErrInvalidWord, "InvalidWord"},
}

// Kind returns the failure class of err, or "" if err is nil or not one of
// the mnemonic errors.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}
