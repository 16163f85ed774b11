package config

import "github.com/Klingon-tech/klingnet-mnemonic/internal/wallet"

// Default returns the default configuration: one 12-word English mnemonic,
// empty passphrase, plain text output.
func Default() *Config {
	return &Config{
		Words:    wallet.DefaultWordCount,
		Language: "english",
		HD: HDConfig{
			XPub:     false,
			CoinType: wallet.CoinTypeKlingnet,
			Account:  0,
		},
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}
