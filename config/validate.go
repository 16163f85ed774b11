package config

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/tyler-smith/go-bip32"
)

// Validate checks the configuration for operator mistakes. Mnemonic errors
// keep their bip39 error class so callers can still match them.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if _, err := cfg.KeyType(); err != nil {
		return fmt.Errorf("words: %w", err)
	}
	if _, err := cfg.ResolveLanguage(); err != nil {
		return fmt.Errorf("language: %w", err)
	}
	if cfg.HD.CoinType >= bip32.FirstHardenedChild {
		return fmt.Errorf("hd.cointype must be below %d", bip32.FirstHardenedChild)
	}
	if cfg.HD.Account >= bip32.FirstHardenedChild {
		return fmt.Errorf("hd.account must be below %d", bip32.FirstHardenedChild)
	}
	if cfg.Log.Level != "" && !log.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn, error or disabled")
	}
	return nil
}
