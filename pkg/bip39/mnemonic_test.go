package bip39

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	refbip39 "github.com/tyler-smith/go-bip39"
)

// Known phrases that must validate.
const (
	phrase12 = "solve gain health skill normal produce rug rebel churn planet rough balance"
	phrase15 = "hurdle dad three engage right seat domain canyon perfect edge shift cycle west bundle bright"
)

// BIP-39 reference vectors (entropy -> phrase).
var entropyVectors = []struct {
	entropy string
	phrase  string
}{
	{
		"00000000000000000000000000000000",
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
	},
	{
		"7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f",
		"legal winner thank year wave sausage worth useful legal winner thank yellow",
	},
	{
		"80808080808080808080808080808080",
		"letter advice cage absurd amount doctor acoustic avoid letter advice cage above",
	},
	{
		"ffffffffffffffffffffffffffffffff",
		"zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong",
	},
	{
		"000000000000000000000000000000000000000000000000",
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon agent",
	},
	{
		"0000000000000000000000000000000000000000000000000000000000000000",
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art",
	},
	{
		"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		"zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo vote",
	},
}

func englishWords(t *testing.T) *WordList {
	t.Helper()
	wl, err := LoadWordList(English)
	if err != nil {
		t.Fatalf("LoadWordList() error: %v", err)
	}
	return wl
}

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex: %v", err)
	}
	return b
}

func TestEntropyToMnemonic_Vectors(t *testing.T) {
	wl := englishWords(t)
	for _, v := range entropyVectors {
		t.Run(v.entropy, func(t *testing.T) {
			got, err := EntropyToMnemonic(decodeHex(t, v.entropy), wl)
			if err != nil {
				t.Fatalf("EntropyToMnemonic() error: %v", err)
			}
			if got != v.phrase {
				t.Errorf("EntropyToMnemonic() = %q, want %q", got, v.phrase)
			}
		})
	}
}

func TestEntropyFromMnemonic_Vectors(t *testing.T) {
	wl := englishWords(t)
	for _, v := range entropyVectors {
		t.Run(v.entropy, func(t *testing.T) {
			got, err := EntropyFromMnemonic(v.phrase, wl)
			if err != nil {
				t.Fatalf("EntropyFromMnemonic() error: %v", err)
			}
			if hex.EncodeToString(got) != v.entropy {
				t.Errorf("EntropyFromMnemonic() = %x, want %s", got, v.entropy)
			}
		})
	}
}

func TestEntropyToMnemonic_InvalidLength(t *testing.T) {
	wl := englishWords(t)
	for _, n := range []int{0, 8, 15, 17, 33, 64} {
		if _, err := EntropyToMnemonic(make([]byte, n), wl); !errors.Is(err, ErrInvalidKeysize) {
			t.Errorf("EntropyToMnemonic(%d bytes) error = %v, want ErrInvalidKeysize", n, err)
		}
	}
}

func TestEntropyToMnemonic_MatchesReference(t *testing.T) {
	wl := englishWords(t)
	for _, kt := range KeyTypes() {
		t.Run(kt.String(), func(t *testing.T) {
			for i := 0; i < 16; i++ {
				entropy, err := NewEntropy(rand.Reader, kt)
				if err != nil {
					t.Fatalf("NewEntropy() error: %v", err)
				}
				got, err := EntropyToMnemonic(entropy, wl)
				if err != nil {
					t.Fatalf("EntropyToMnemonic() error: %v", err)
				}
				want, err := refbip39.NewMnemonic(entropy)
				if err != nil {
					t.Fatalf("reference NewMnemonic() error: %v", err)
				}
				if got != want {
					t.Fatalf("EntropyToMnemonic(%x) = %q, reference %q", entropy, got, want)
				}
			}
		})
	}
}

func TestNewEntropy(t *testing.T) {
	for _, kt := range KeyTypes() {
		entropy, err := NewEntropy(rand.Reader, kt)
		if err != nil {
			t.Fatalf("NewEntropy(%s) error: %v", kt, err)
		}
		if len(entropy) != kt.EntropyBytes() {
			t.Errorf("NewEntropy(%s) length = %d, want %d", kt, len(entropy), kt.EntropyBytes())
		}
	}
}

func TestNewEntropy_SourceFailure(t *testing.T) {
	tests := []struct {
		name string
		src  func() *bytes.Reader
		fail bool
	}{
		{"short source", func() *bytes.Reader { return bytes.NewReader(make([]byte, 3)) }, true},
		{"exact source", func() *bytes.Reader { return bytes.NewReader(make([]byte, 16)) }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEntropy(tt.src(), Key128)
			if tt.fail && !errors.Is(err, ErrEntropyUnavailable) {
				t.Errorf("NewEntropy() error = %v, want ErrEntropyUnavailable", err)
			}
			if !tt.fail && err != nil {
				t.Errorf("NewEntropy() error: %v", err)
			}
		})
	}

	_, err := NewEntropy(iotest.ErrReader(errors.New("device gone")), Key256)
	if !errors.Is(err, ErrEntropyUnavailable) {
		t.Errorf("NewEntropy(failing reader) error = %v, want ErrEntropyUnavailable", err)
	}

	if _, err := NewEntropy(rand.Reader, KeyType(8)); !errors.Is(err, ErrInvalidKeysize) {
		t.Errorf("NewEntropy(KeyType(8)) error = %v, want ErrInvalidKeysize", err)
	}
}

func TestValidate_KnownPhrases(t *testing.T) {
	for _, phrase := range []string{phrase12, phrase15} {
		if err := Validate(phrase, English); err != nil {
			t.Errorf("Validate(%q) error: %v", phrase, err)
		}
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		want   error
	}{
		{"empty", "", ErrEntropyUnavailable},
		{"blank", "  \t\n", ErrEntropyUnavailable},
		{"single word", "abandon", ErrInvalidWordLength},
		{"random words", "not a valid mnemonic phrase at all", ErrInvalidWordLength},
		{"13 words", strings.Repeat("abandon ", 12) + "about", ErrInvalidWordLength},
		{"unknown word", "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon notaword", ErrInvalidWord},
		{"uppercase word", "ABANDON abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about", ErrInvalidWord},
		{"wrong checksum 12", "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon", ErrInvalidChecksum},
		{"wrong checksum 24", strings.TrimSpace(strings.Repeat("abandon ", 24)), ErrInvalidChecksum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.phrase, English)
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidate_WordCountGate(t *testing.T) {
	valid := map[int]bool{12: true, 15: true, 18: true, 21: true, 24: true}
	for n := 1; n <= 30; n++ {
		phrase := strings.TrimSpace(strings.Repeat("abandon ", n))
		err := Validate(phrase, English)
		if valid[n] {
			if errors.Is(err, ErrInvalidWordLength) {
				t.Errorf("Validate(%d words) rejected a valid word count", n)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidWordLength) {
			t.Errorf("Validate(%d words) error = %v, want ErrInvalidWordLength", n, err)
		}
	}
}

func TestValidate_UnknownWordPosition(t *testing.T) {
	err := Validate("abandon abandon abandon zzzz abandon abandon abandon abandon abandon abandon abandon about", English)
	if !errors.Is(err, ErrInvalidWord) {
		t.Fatalf("Validate() error = %v, want ErrInvalidWord", err)
	}
	if !strings.Contains(err.Error(), "word 4") || !strings.Contains(err.Error(), "zzzz") {
		t.Errorf("error %q should name the word and its position", err)
	}
}

func TestValidate_UnsupportedLanguage(t *testing.T) {
	if err := Validate(phrase12, Language(3)); !errors.Is(err, ErrLanguageUnavailable) {
		t.Errorf("Validate() error = %v, want ErrLanguageUnavailable", err)
	}
}

func TestValidate_ChecksumSensitivity(t *testing.T) {
	wl := englishWords(t)
	for _, kt := range KeyTypes() {
		t.Run(kt.String(), func(t *testing.T) {
			for i := 0; i < 32; i++ {
				m, err := New(kt, English, "")
				if err != nil {
					t.Fatalf("New() error: %v", err)
				}
				words := m.Words()
				last, err := wl.IndexOf(words[len(words)-1])
				if err != nil {
					t.Fatalf("IndexOf() error: %v", err)
				}

				// Flip one checksum bit of the final word, leaving entropy intact.
				for bit := 0; bit < kt.ChecksumBits(); bit++ {
					swapped, err := wl.Word(last ^ (1 << bit))
					if err != nil {
						t.Fatalf("Word() error: %v", err)
					}
					words[len(words)-1] = swapped
					err = Validate(strings.Join(words, " "), English)
					if !errors.Is(err, ErrInvalidChecksum) {
						t.Fatalf("flipping checksum bit %d: error = %v, want ErrInvalidChecksum", bit, err)
					}
				}
			}
		})
	}
}

func TestValidate_MatchesReference(t *testing.T) {
	for _, kt := range KeyTypes() {
		entropy, err := refbip39.NewEntropy(kt.EntropyBits())
		if err != nil {
			t.Fatalf("reference NewEntropy() error: %v", err)
		}
		phrase, err := refbip39.NewMnemonic(entropy)
		if err != nil {
			t.Fatalf("reference NewMnemonic() error: %v", err)
		}
		got, err := EntropyFromMnemonic(phrase, englishWords(t))
		if err != nil {
			t.Fatalf("EntropyFromMnemonic(%q) error: %v", phrase, err)
		}
		if !bytes.Equal(got, entropy) {
			t.Errorf("EntropyFromMnemonic() = %x, want %x", got, entropy)
		}
	}
}

func TestNew_RoundTrip(t *testing.T) {
	for _, kt := range KeyTypes() {
		t.Run(kt.String(), func(t *testing.T) {
			m, err := New(kt, English, "")
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			if got := len(m.Words()); got != kt.WordLength() {
				t.Errorf("word count = %d, want %d", got, kt.WordLength())
			}
			if m.KeyType() != kt {
				t.Errorf("KeyType() = %s, want %s", m.KeyType(), kt)
			}
			if m.Language() != English {
				t.Errorf("Language() = %s, want english", m.Language())
			}
			if err := Validate(m.String(), English); err != nil {
				t.Errorf("Validate(generated) error: %v", err)
			}
			if _, err := FromPhrase(m.String(), English, ""); err != nil {
				t.Errorf("FromPhrase(generated) error: %v", err)
			}
		})
	}
}

func TestNew_Unique(t *testing.T) {
	m1, err := New(Key128, English, "")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	m2, err := New(Key128, English, "")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if m1.String() == m2.String() {
		t.Error("two generated mnemonics should not be identical")
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(Key128, Language(2), ""); !errors.Is(err, ErrLanguageUnavailable) {
		t.Errorf("New(unsupported language) error = %v, want ErrLanguageUnavailable", err)
	}
	if _, err := New(KeyType(6), English, ""); !errors.Is(err, ErrInvalidKeysize) {
		t.Errorf("New(KeyType(6)) error = %v, want ErrInvalidKeysize", err)
	}
	_, err := NewWithReader(iotest.ErrReader(errors.New("no entropy")), Key128, English, "")
	if !errors.Is(err, ErrEntropyUnavailable) {
		t.Errorf("NewWithReader(failing reader) error = %v, want ErrEntropyUnavailable", err)
	}
}

func TestNewFromEntropy_Deterministic(t *testing.T) {
	entropy := decodeHex(t, "7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f")

	m1, err := NewFromEntropy(entropy, English, "TREZOR")
	if err != nil {
		t.Fatalf("NewFromEntropy() error: %v", err)
	}
	m2, err := NewWithReader(bytes.NewReader(entropy), Key128, English, "TREZOR")
	if err != nil {
		t.Fatalf("NewWithReader() error: %v", err)
	}

	if m1.String() != m2.String() {
		t.Errorf("phrases differ: %q vs %q", m1.String(), m2.String())
	}
	if m1.Seed() != m2.Seed() {
		t.Error("same entropy and passphrase should produce the same seed")
	}

	want := "2e8905819b8723fe2c1d161860e5ee1830318dbf49a83bd451cfb8440c28bd6fa457fe1296106559a3c80937a1c1069be3a3a5bd381ee6260e8d9739fce1f607"
	if got := m1.SeedHex(); got != want {
		t.Errorf("SeedHex() = %s, want %s", got, want)
	}
}

func TestFromPhrase(t *testing.T) {
	m, err := FromPhrase(phrase15, English, "")
	if err != nil {
		t.Fatalf("FromPhrase() error: %v", err)
	}
	if m.String() != phrase15 {
		t.Errorf("String() = %q, want %q", m.String(), phrase15)
	}
	if m.KeyType() != Key160 {
		t.Errorf("KeyType() = %s, want %s", m.KeyType(), Key160)
	}

	if _, err := FromPhrase("abandon abandon", English, ""); !errors.Is(err, ErrInvalidWordLength) {
		t.Errorf("FromPhrase(short) error = %v, want ErrInvalidWordLength", err)
	}
	if _, err := FromPhrase(phrase12, Language(5), ""); !errors.Is(err, ErrLanguageUnavailable) {
		t.Errorf("FromPhrase(unsupported language) error = %v, want ErrLanguageUnavailable", err)
	}
}

func TestMnemonic_ConcurrentSeed(t *testing.T) {
	m, err := FromPhrase(phrase12, English, "")
	if err != nil {
		t.Fatalf("FromPhrase() error: %v", err)
	}

	var wg sync.WaitGroup
	seeds := make([]Seed, 8)
	for i := range seeds {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seeds[i] = m.Seed()
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(seeds); i++ {
		if seeds[i] != seeds[0] {
			t.Fatal("concurrent Seed() calls returned different seeds")
		}
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{errors.New("other"), ""},
		{ErrInvalidChecksum, "InvalidChecksum"},
		{Validate("", English), "EntropyUnavailable"},
		{Validate("abandon", English), "InvalidWordLength"},
		{Validate(strings.Repeat("nope ", 12), English), "InvalidWord"},
		{Validate(phrase12, Language(4)), "LanguageUnavailable"},
		{func() error { _, err := KeyTypeForKeysize(100); return err }(), "InvalidKeysize"},
	}
	for _, tt := range tests {
		if got := Kind(tt.err); got != tt.want {
			t.Errorf("Kind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestMnemonic_ZeroValue(t *testing.T) {
	var m Mnemonic
	if got := m.Seed(); got != (Seed{}) {
		t.Errorf("zero Mnemonic Seed() = %x, want zeros", got)
	}
	if got, want := m.SeedHex(), strings.Repeat("0", 2*SeedSize); got != want {
		t.Errorf("zero Mnemonic SeedHex() = %s, want %s", got, want)
	}
	if m.String() != "" || len(m.Words()) != 0 {
		t.Errorf("zero Mnemonic has phrase %q", m.String())
	}
}
