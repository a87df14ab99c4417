// Package moderation scrubs disallowed words from message content
// before it reaches the store. Matching is resilient to casing, common
// leet substitutions, and separator padding.
package moderation

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	"soundbridge/errors"
)

//go:embed words/*.txt
var wordFiles embed.FS

type Moderator struct {
	matcher     *goahocorasick.Machine
	replacement rune
}

// NewModerator builds the Aho-Corasick automaton over the normalized
// word list.
func NewModerator(words []string, replacement rune) (*Moderator, error) {
	if len(words) == 0 {
		return nil, errors.ErrEmptyWords
	}
	patterns := make([][]rune, len(words))
	for i, word := range words {
		patterns[i] = normalize([]rune(word), nil)
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: machine, replacement: replacement}, nil
}

// NewDefaultModerator loads the embedded word lists.
func NewDefaultModerator(replacement rune) (*Moderator, error) {
	words, err := loadEmbeddedWords()
	if err != nil {
		return nil, err
	}
	return NewModerator(words, replacement)
}

// Censor replaces every character of a matched word with the
// replacement rune, in the original spelling, padding included.
func (m *Moderator) Censor(original string) string {
	origRunes := []rune(original)
	// origIdx maps each normalized position back to its source rune,
	// so matches found in the normalized text can be starred out of
	// the original.
	origIdx := make([]int, 0, len(origRunes))
	normalized := normalize(origRunes, func(i int) { origIdx = append(origIdx, i) })
	if len(normalized) == 0 {
		return original
	}

	spans := m.matcher.MultiPatternSearch(normalized, false)
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(origIdx) {
			continue
		}
		for i := origIdx[start]; i <= origIdx[end-1]; i++ {
			origRunes[i] = m.replacement
		}
	}
	return string(origRunes)
}

// normalize lowercases, undoes leet substitutions, and strips
// punctuation, symbols and spaces. The keep callback reports which
// source positions survived.
func normalize(input []rune, keep func(i int)) []rune {
	out := make([]rune, 0, len(input))
	for i, r := range input {
		switch r {
		case '4', '@':
			r = 'a'
		case '3':
			r = 'e'
		case '1', '!', '|':
			r = 'i'
		case '0':
			r = 'o'
		case '5', '$':
			r = 's'
		}
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
		if keep != nil {
			keep(i)
		}
	}
	return out
}

func loadEmbeddedWords() ([]string, error) {
	var words []string
	err := fs.WalkDir(wordFiles, "words", func(path string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return err
		}
		file, err := wordFiles.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			word := strings.TrimSpace(scanner.Text())
			if word != "" && !strings.HasPrefix(word, "#") {
				words = append(words, word)
			}
		}
		return scanner.Err()
	})
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, errors.ErrEmptyWords
	}
	return words, nil
}
