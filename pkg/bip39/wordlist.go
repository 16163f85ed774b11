package bip39

import (
	"fmt"
	"sync"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// WordListSize is the number of words in every BIP-39 word list.
const WordListSize = 1 << WordBits

// WordList is an immutable, ordered 2048-word vocabulary with a reverse
// index. It is safe for concurrent use.
type WordList struct {
	lang  Language
	words []string
	index map[string]int
}

var englishWordList = sync.OnceValues(func() (*WordList, error) {
	return newWordList(English, wordlists.English)
})

// LoadWordList returns the shared word list for lang. The list is built once
// per process.
func LoadWordList(lang Language) (*WordList, error) {
	switch lang {
	case English:
		return englishWordList()
	default:
		return nil, fmt.Errorf("%w: %s", ErrLanguageUnavailable, lang)
	}
}

func newWordList(lang Language, words []string) (*WordList, error) {
	if len(words) != WordListSize {
		return nil, fmt.Errorf("%s word list has %d words, want %d", lang, len(words), WordListSize)
	}
	wl := &WordList{
		lang:  lang,
		words: make([]string, WordListSize),
		index: make(map[string]int, WordListSize),
	}
	for i, w := range words {
		if _, dup := wl.index[w]; dup {
			return nil, fmt.Errorf("%s word list has duplicate word %q", lang, w)
		}
		wl.words[i] = w
		wl.index[w] = i
	}
	return wl, nil
}

// Language returns the language of the list.
func (wl *WordList) Language() Language {
	return wl.lang
}

// Len returns the number of words (always WordListSize).
func (wl *WordList) Len() int {
	return len(wl.words)
}

// Word returns the word at index i.
func (wl *WordList) Word(i int) (string, error) {
	if i < 0 || i >= len(wl.words) {
		return "", fmt.Errorf("word index %d out of range [0, %d)", i, len(wl.words))
	}
	return wl.words[i], nil
}

// IndexOf returns the 11-bit index of word, or ErrInvalidWord.
func (wl *WordList) IndexOf(word string) (int, error) {
	i, ok := wl.index[word]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWord, word)
	}
	return i, nil
}
