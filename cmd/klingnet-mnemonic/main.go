// klingnet-mnemonic generates and validates BIP-39 mnemonics.
//
// Usage:
//
//	klingnet-mnemonic                        Generate a 12-word mnemonic
//	klingnet-mnemonic --validate "<phrase>"  Validate a mnemonic
//	klingnet-mnemonic --help                 Show help
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Klingon-tech/klingnet-mnemonic/config"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/wallet"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/bip39"
	"golang.org/x/term"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// output is the result printed for a generated or validated mnemonic.
type output struct {
	Phrase      string `json:"phrase"`
	Words       int    `json:"words"`
	Strength    string `json:"strength"`
	Language    string `json:"language"`
	Seed        string `json:"seed"`
	Fingerprint string `json:"fingerprint"`
	Valid       bool   `json:"valid"`
	XPubPath    string `json:"xpub_path,omitempty"`
	XPub        string `json:"xpub,omitempty"`
}

type errorOutput struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, flags, err := config.Load(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	switch {
	case flags.Help:
		config.PrintUsage(stdout)
		return 0
	case flags.Version:
		fmt.Fprintf(stdout, "klingnet-mnemonic %s\n", version)
		return 0
	case flags.WriteConfig != "":
		if err := config.WriteDefaultConfig(flags.WriteConfig); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Config written to %s\n", flags.WriteConfig)
		return 0
	}

	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fmt.Fprintf(stderr, "Error: init logging: %v\n", err)
		return 1
	}

	out, err := execute(ctx, cfg, flags, stdin, stderr)
	if err != nil {
		log.CLI.Debug().Str("kind", bip39.Kind(err)).Err(err).Msg("Command failed")
		if cfg.JSON {
			writeJSON(stdout, errorOutput{Error: err.Error(), Kind: bip39.Kind(err)})
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}

	if cfg.JSON {
		writeJSON(stdout, out)
	} else {
		writeText(stdout, out)
	}
	return 0
}

func execute(ctx context.Context, cfg *config.Config, flags *config.Flags, stdin io.Reader, stderr io.Writer) (*output, error) {
	lang, err := cfg.ResolveLanguage()
	if err != nil {
		return nil, err
	}

	var passphrase string
	if cfg.PromptPassphrase {
		p, err := readPassphrase(stdin, stderr)
		if err != nil {
			return nil, fmt.Errorf("read passphrase: %w", err)
		}
		passphrase = p
	}

	var m *bip39.Mnemonic
	if flags.SetValidate {
		if err := wallet.ValidateMnemonic(flags.Validate, lang); err != nil {
			return nil, err
		}
		if m, err = bip39.FromPhrase(flags.Validate, lang, passphrase); err != nil {
			return nil, err
		}
	} else {
		if m, err = wallet.GenerateMnemonic(cfg.Words, lang, passphrase); err != nil {
			return nil, err
		}
	}

	seed, err := wallet.DeriveSeed(ctx, m)
	if err != nil {
		return nil, err
	}

	out := &output{
		Phrase:      m.String(),
		Words:       m.KeyType().WordLength(),
		Strength:    m.KeyType().String(),
		Language:    m.Language().String(),
		Seed:        seed.Hex(),
		Fingerprint: seed.Fingerprint(),
		Valid:       true,
	}

	if cfg.HD.XPub {
		master, err := wallet.NewMasterKey(seed)
		if err != nil {
			return nil, err
		}
		account, err := master.DeriveAccount(cfg.HD.CoinType, cfg.HD.Account)
		if err != nil {
			return nil, err
		}
		out.XPubPath = wallet.AccountPath(cfg.HD.CoinType, cfg.HD.Account)
		out.XPub = account.Neuter().String()
	}

	log.CLI.Info().
		Str("fingerprint", out.Fingerprint).
		Int("words", out.Words).
		Bool("validated", flags.SetValidate).
		Msg("Mnemonic ready")
	return out, nil
}

func writeText(w io.Writer, out *output) {
	fmt.Fprintf(w, "phrase: %s\n", out.Phrase)
	fmt.Fprintf(w, "seed: %s\n", out.Seed)
	if out.XPub != "" {
		fmt.Fprintf(w, "xpub (%s): %s\n", out.XPubPath, out.XPub)
	}
}

func writeJSON(w io.Writer, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "{\"error\": %q}\n", err.Error())
		return
	}
	fmt.Fprintln(w, string(data))
}

// readPassphrase reads the passphrase without echo when stdin is a terminal,
// otherwise it reads a single line.
func readPassphrase(stdin io.Reader, stderr io.Writer) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(stderr, "Passphrase: ")
		p, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(stderr) // newline after hidden input
		if err != nil {
			return "", err
		}
		return string(p), nil
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
