// derive_seed.go prints the mnemonic and seed for a hex-encoded entropy file.
// Usage: go run scripts/derive_seed.go <entropyfile> [passphrase]
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/bip39"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: derive_seed <entropyfile> [passphrase]")
		os.Exit(1)
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	entropy, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	var passphrase string
	if len(os.Args) > 2 {
		passphrase = os.Args[2]
	}
	m, err := bip39.NewFromEntropy(entropy, bip39.English, passphrase)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("strength=%s\n", m.KeyType())
	fmt.Printf("mnemonic=%s\n", m)
	fmt.Printf("seed=%s\n", m.SeedHex())
}
