package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadFile loads configuration values from a .conf file.
// Format: key = value (one per line, # for comments)
// A missing file yields no values.
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: invalid format (expected key = value)", lineNum)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		values[key] = value
	}

	return values, scanner.Err()
}

// ApplyFileConfig applies file configuration to a Config struct.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	// Mnemonic
	case "words":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Words = n
	case "language", "lang":
		cfg.Language = value
	case "locale":
		cfg.Locale = value
	case "passphrase.prompt":
		cfg.PromptPassphrase = parseBool(value)

	// HD derivation
	case "hd.xpub", "xpub":
		cfg.HD.XPub = parseBool(value)
	case "hd.cointype":
		n, err := strconv.ParseUint(value, 10, 31)
		if err != nil {
			return err
		}
		cfg.HD.CoinType = uint32(n)
	case "hd.account":
		n, err := strconv.ParseUint(value, 10, 31)
		if err != nil {
			return err
		}
		cfg.HD.Account = uint32(n)

	// Output
	case "output.json", "json":
		cfg.JSON = parseBool(value)

	// Logging
	case "log.level":
		cfg.Log.Level = value
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		cfg.Log.JSON = parseBool(value)

	case "passphrase":
		return fmt.Errorf("passphrases are not read from config files; use passphrase.prompt")

	default:
		// Unknown keys are ignored
	}
	return nil
}

// parseBool parses a boolean value.
func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// WriteDefaultConfig writes a default configuration file.
func WriteDefaultConfig(path string) error {
	content := `# klingnet-mnemonic configuration

# ============================================================================
# Mnemonic
# ============================================================================

# Word count: 12, 15, 18, 21 or 24
words = 12

# Word list language (only english is available)
language = english

# Resolve the language from a locale instead, e.g. en_US.UTF-8
# locale =

# Prompt for a BIP-39 passphrase on the terminal
passphrase.prompt = false

# ============================================================================
# HD derivation (BIP-44 account xpub at m/44'/cointype'/account')
# ============================================================================

hd.xpub = false
hd.cointype = 8888
hd.account = 0

# ============================================================================
# Output & logging
# ============================================================================

output.json = false
log.level = warn
# log.file =
log.json = false
`
	return os.WriteFile(path, []byte(content), 0600)
}
