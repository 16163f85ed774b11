// Package config handles klingnet-mnemonic configuration.
//
// Settings are resolved with the following precedence:
//   - Built-in defaults
//   - Config file (key = value)
//   - Command-line flags
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/bip39"
)

// Config holds the settings of a single klingnet-mnemonic invocation.
type Config struct {
	// Mnemonic
	Words    int    `conf:"words"`
	Language string `conf:"language"`
	Locale   string `conf:"locale"` // Overrides Language when set.

	// PromptPassphrase reads the BIP-39 passphrase from the terminal.
	// The passphrase itself is never stored in configuration.
	PromptPassphrase bool `conf:"passphrase.prompt"`

	// HD derivation
	HD HDConfig

	// Output
	JSON bool `conf:"output.json"`

	// Logging
	Log LogConfig
}

// HDConfig controls the optional BIP-44 account key output.
type HDConfig struct {
	XPub     bool   `conf:"hd.xpub"`
	CoinType uint32 `conf:"hd.cointype"`
	Account  uint32 `conf:"hd.account"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// ResolveLanguage returns the word list language, preferring Locale.
func (c *Config) ResolveLanguage() (bip39.Language, error) {
	if c.Locale != "" {
		return bip39.LanguageForLocale(c.Locale)
	}
	return bip39.ParseLanguage(c.Language)
}

// KeyType returns the mnemonic strength for the configured word count.
func (c *Config) KeyType() (bip39.KeyType, error) {
	return bip39.KeyTypeForWordLength(c.Words)
}

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.klingnet
//	macOS:   ~/Library/Application Support/Klingnet
//	Windows: %APPDATA%\Klingnet
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".klingnet"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Klingnet")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "Klingnet")
		}
		return filepath.Join(home, "AppData", "Roaming", "Klingnet")
	default:
		return filepath.Join(home, ".klingnet")
	}
}

// DefaultConfigFile returns the config file read when none is given.
func DefaultConfigFile() string {
	return filepath.Join(DefaultDataDir(), "mnemonic.conf")
}
