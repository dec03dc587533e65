// Package moderation censors forbidden words in message content before it
// reaches the domain. Matching is case-insensitive via an Aho-Corasick
// automaton built once at wiring time.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	matcher      *goahocorasick.Machine
	censoredChar rune
}

// NewModerator builds the automaton from the provided word list.
// Words are lowered so matching is case-insensitive.
func NewModerator(censoredWords []string, censoredChar rune) (*Moderator, error) {
	patterns := make([][]rune, len(censoredWords))
	for i, word := range censoredWords {
		patterns[i] = lowerRunes([]rune(word))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: m, censoredChar: censoredChar}, nil
}

// Censor replaces every forbidden span with the replacement character.
// Lowercasing preserves rune positions, so match indices apply directly
// to the original text.
func (m *Moderator) Censor(original string) string {
	origRunes := []rune(original)
	spans := m.matcher.MultiPatternSearch(lowerRunes(origRunes), false)
	if len(spans) == 0 {
		return original
	}

	for _, span := range spans {
		end := span.Pos + len(span.Word)
		if span.Pos < 0 || end > len(origRunes) {
			continue
		}
		for i := span.Pos; i < end; i++ {
			origRunes[i] = m.censoredChar
		}
	}
	return string(origRunes)
}

func lowerRunes(input []rune) []rune {
	out := make([]rune, len(input))
	for i, r := range input {
		out[i] = unicode.ToLower(r)
	}
	return out
}
