package wallet

import (
	"context"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/bip39"
)

// SeedFromMnemonic validates a phrase and derives its 512-bit seed using
// PBKDF2-SHA512 as specified in BIP-39.
func SeedFromMnemonic(phrase, passphrase string, lang bip39.Language) (bip39.Seed, error) {
	m, err := bip39.FromPhrase(phrase, lang, passphrase)
	if err != nil {
		return bip39.Seed{}, err
	}
	return DeriveSeed(context.Background(), m)
}

// DeriveSeed computes the seed of m. PBKDF2 cannot be interrupted, so it
// runs on its own goroutine; if ctx ends first the result is discarded and
// ctx.Err() is returned.
func DeriveSeed(ctx context.Context, m *bip39.Mnemonic) (bip39.Seed, error) {
	if err := ctx.Err(); err != nil {
		return bip39.Seed{}, err
	}

	done := make(chan bip39.Seed, 1)
	go func() {
		defer log.Benchmark("seed_derivation")()
		done <- m.Seed()
	}()

	select {
	case seed := <-done:
		log.Wallet.Debug().Str("fingerprint", seed.Fingerprint()).Msg("Seed derived")
		return seed, nil
	case <-ctx.Done():
		log.Wallet.Warn().Err(ctx.Err()).Msg("Seed derivation abandoned")
		return bip39.Seed{}, ctx.Err()
	}
}
