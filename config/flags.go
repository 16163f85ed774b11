package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Flags holds parsed command-line flags.
type Flags struct {
	// Commands
	Help        bool
	Version     bool
	Validate    string
	WriteConfig string

	Config string

	// Mnemonic
	Words      int
	Language   string
	Locale     string
	Passphrase bool

	// HD derivation
	XPub     bool
	CoinType uint
	Account  uint

	// Output
	JSON bool

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Remaining args
	Args []string

	// Explicitly-set flags (for true/false and zero-value overrides).
	SetValidate   bool
	SetPassphrase bool
	SetXPub       bool
	SetCoinType   bool
	SetAccount    bool
	SetJSON       bool
	SetLogJSON    bool
}

// ParseFlags parses command-line flags (without the program name).
func ParseFlags(args []string, output io.Writer) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("klingnet-mnemonic", flag.ContinueOnError)
	fs.SetOutput(output)

	// Commands
	fs.BoolVar(&f.Help, "help", false, "Show help message")
	fs.BoolVar(&f.Help, "h", false, "Show help message (shorthand)")
	fs.BoolVar(&f.Version, "version", false, "Show version information")
	fs.StringVar(&f.Validate, "validate", "", "Validate a mnemonic instead of generating one")
	fs.StringVar(&f.WriteConfig, "write-config", "", "Write a default config file to the given path and exit")

	fs.StringVar(&f.Config, "config", "", "Config file path")
	fs.StringVar(&f.Config, "c", "", "Config file path (shorthand)")

	// Mnemonic
	fs.IntVar(&f.Words, "words", 0, "Mnemonic word count (12, 15, 18, 21, 24)")
	fs.StringVar(&f.Language, "lang", "", "Word list language")
	fs.StringVar(&f.Locale, "locale", "", "Resolve the word list language from a locale (e.g. en_US.UTF-8)")
	fs.BoolVar(&f.Passphrase, "passphrase", false, "Prompt for a BIP-39 passphrase")

	// HD derivation
	fs.BoolVar(&f.XPub, "xpub", false, "Print the BIP-44 account xpub")
	fs.UintVar(&f.CoinType, "coin-type", 0, "BIP-44 coin type for --xpub")
	fs.UintVar(&f.Account, "account", 0, "BIP-44 account for --xpub")

	// Output
	fs.BoolVar(&f.JSON, "json", false, "Print output as JSON")

	// Logging
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	fs.Usage = func() {
		PrintUsage(output)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	f.SetValidate = isFlagSet(fs, "validate")
	f.SetPassphrase = isFlagSet(fs, "passphrase")
	f.SetXPub = isFlagSet(fs, "xpub")
	f.SetCoinType = isFlagSet(fs, "coin-type")
	f.SetAccount = isFlagSet(fs, "account")
	f.SetJSON = isFlagSet(fs, "json")
	f.SetLogJSON = isFlagSet(fs, "log-json")

	f.Args = fs.Args()

	// Positional arguments stop the parser; anything flag-like after one
	// would silently be ignored.
	for _, arg := range f.Args {
		if strings.HasPrefix(arg, "-") {
			return nil, fmt.Errorf("flag %q was not parsed (positional argument stopped parsing)", arg)
		}
	}
	if len(f.Args) > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s (quote the phrase passed to --validate)", strings.Join(f.Args, " "))
	}

	return f, nil
}

// ApplyFlags applies command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) {
	// Mnemonic
	if f.Words != 0 {
		cfg.Words = f.Words
	}
	if f.Language != "" {
		cfg.Language = f.Language
	}
	if f.Locale != "" {
		cfg.Locale = f.Locale
	}
	if f.SetPassphrase {
		cfg.PromptPassphrase = f.Passphrase
	}

	// HD derivation
	if f.SetXPub {
		cfg.HD.XPub = f.XPub
	}
	if f.SetCoinType {
		cfg.HD.CoinType = uint32(f.CoinType)
	}
	if f.SetAccount {
		cfg.HD.Account = uint32(f.Account)
	}

	// Output
	if f.SetJSON {
		cfg.JSON = f.JSON
	}

	// Logging
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// isFlagSet checks if a flag was explicitly set.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// PrintUsage writes the command-line help text to w.
func PrintUsage(w io.Writer) {
	usage := `klingnet-mnemonic - BIP-39 mnemonic generator and validator

Usage:
  klingnet-mnemonic [options]
  klingnet-mnemonic --validate "<phrase>"

With no options, one 12-word English mnemonic is generated with an empty
passphrase and printed together with its hex seed.

Commands:
  --help, -h        Show this help message
  --version         Show version information
  --validate        Validate a mnemonic and print its seed
  --write-config    Write a default config file and exit

Mnemonic Options:
  --words           Word count: 12 (default), 15, 18, 21 or 24
  --lang            Word list language (default: english)
  --locale          Resolve the language from a locale, e.g. en_US.UTF-8
  --passphrase      Prompt for a BIP-39 passphrase (input is not echoed)
  --config, -c      Config file path (default: <datadir>/mnemonic.conf)

HD Options:
  --xpub            Print the account xpub at m/44'/coin-type'/account'
  --coin-type       BIP-44 coin type (default: 8888)
  --account         BIP-44 account index (default: 0)

Output Options:
  --json            Print output as JSON
  --log-level       Log level: debug, info, warn (default), error
  --log-file        Also write logs to this file (JSON)
  --log-json        Output logs as JSON

Examples:
  klingnet-mnemonic
  klingnet-mnemonic --words=24 --passphrase --xpub
  klingnet-mnemonic --validate "abandon abandon ... about"
`
	fmt.Fprint(w, usage)
}

// Load resolves configuration from defaults, the config file and flags.
func Load(args []string, output io.Writer) (*Config, *Flags, error) {
	flags, err := ParseFlags(args, output)
	if err != nil {
		return nil, nil, err
	}

	cfg := Default()
	if flags.Help || flags.Version || flags.WriteConfig != "" {
		return cfg, flags, nil
	}

	configPath := flags.Config
	if configPath == "" {
		configPath = DefaultConfigFile()
	}

	fileValues, err := LoadFile(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config file: %w", err)
	}
	if err := ApplyFileConfig(cfg, fileValues); err != nil {
		return nil, nil, fmt.Errorf("applying config file: %w", err)
	}

	ApplyFlags(cfg, flags)
	if err := Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, flags, nil
}
