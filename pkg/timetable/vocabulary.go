package timetable

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Vocabulary holds the closed word lists the page uses to encode days,
// lesson types and week parity. The position of a word is its index.
type Vocabulary struct {
	Days    []string // Monday first; index+1 is the day number
	Formats []string // ordered as Format
	Weeks   []string // ordered as Week; matched against the last container id token
}

// DefaultVocabulary returns the vocabulary of the lp.edu.ua schedule pages.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Days:    []string{"Пн", "Вт", "Ср", "Чт", "Пт"},
		Formats: []string{"Лекція", "Семінар", "Практична", "Лабораторна"},
		Weeks:   []string{"full", "chys", "znam"},
	}
}

// Parser turns schedule pages into lesson records. It is safe for concurrent use.
type Parser struct {
	vocab Vocabulary
	lang  language.Tag
}

// NewParser returns a parser bound to a copy of vocab.
func NewParser(vocab Vocabulary) *Parser {
	return &Parser{vocab: vocab.clone(), lang: language.Ukrainian}
}

// Vocabulary returns a copy of the parser's vocabulary.
func (p *Parser) Vocabulary() Vocabulary {
	return p.vocab.clone()
}

func (v Vocabulary) clone() Vocabulary {
	return Vocabulary{
		Days:    append([]string(nil), v.Days...),
		Formats: append([]string(nil), v.Formats...),
		Weeks:   append([]string(nil), v.Weeks...),
	}
}

// lookup returns the position of word in list, comparing case-insensitively.
func (p *Parser) lookup(list []string, word string) int {
	// Casers are stateful; one per call keeps the parser shareable.
	fold := cases.Lower(p.lang)
	word = fold.String(strings.TrimSpace(word))
	for i, w := range list {
		if fold.String(w) == word {
			return i
		}
	}
	return -1
}
