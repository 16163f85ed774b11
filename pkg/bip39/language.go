package bip39

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language identifies a word list.
type Language uint8

// English is the only language with a word list.
const English Language = iota

var englishBase, _ = language.English.Base()

func (l Language) String() string {
	switch l {
	case English:
		return "english"
	default:
		return fmt.Sprintf("Language(%d)", uint8(l))
	}
}

// ParseLanguage resolves a language name ("english") or tag ("en").
// Unknown names fail with ErrLanguageUnavailable; there is no fallback.
func ParseLanguage(name string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "english", "en":
		return English, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrLanguageUnavailable, name)
}

// LanguageForLocale resolves a POSIX locale ("en_US.UTF-8", "en_GB@euro")
// or BCP 47 tag ("en-GB") to the Language of its base language.
func LanguageForLocale(locale string) (Language, error) {
	s := locale
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")

	tag, err := language.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("%w: locale %q", ErrLanguageUnavailable, locale)
	}
	base, conf := tag.Base()
	if conf == language.No || base != englishBase {
		return 0, fmt.Errorf("%w: locale %q", ErrLanguageUnavailable, locale)
	}
	return English, nil
}
