package lakenames

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Scoring weights.
const (
	// NoNameScore is assigned to points without a textual name. It is below
	// any score a named point can reach, so such points never win.
	NoNameScore = -1000.0

	PositiveWeight = 10.0
	NegativeWeight = -50.0
	WikidataWeight = 5.0
	LengthPenalty  = 0.01
)

// Lexicon is a closed set of words matched against whole words of a name,
// ignoring case.
type Lexicon struct {
	words map[string]struct{}
}

// NewLexicon creates a lexicon from words. Each entry must be a single word.
func NewLexicon(words ...string) Lexicon {
	lx := Lexicon{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = fold(w)
		if w == "" {
			continue
		}
		lx.words[w] = struct{}{}
	}
	return lx
}

// Len returns the number of distinct words.
func (lx Lexicon) Len() int {
	return len(lx.words)
}

// Contains reports whether a single word is in the lexicon.
func (lx Lexicon) Contains(word string) bool {
	_, ok := lx.words[fold(word)]
	return ok
}

// Match reports whether any word of name is in the lexicon.
//
// Words are maximal runs of letters, digits and underscores, so "vik" matches
// "Stora vik" and "Vik-sjön" but not "Vikarsjön".
func (lx Lexicon) Match(name string) bool {
	if len(lx.words) == 0 {
		return false
	}
	for _, w := range words(name) {
		if _, ok := lx.words[w]; ok {
			return true
		}
	}
	return false
}

// words splits name into case-folded words.
func words(name string) []string {
	return strings.FieldsFunc(fold(name), func(r rune) bool {
		return !isWordRune(r)
	})
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Mn, r)
}

// fold normalizes to NFC and applies Unicode case folding.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// Scorer ranks candidate points for fallback name selection.
type Scorer struct {
	positive Lexicon
	negative Lexicon
}

// NewScorer creates a scorer from a positive and a negative lexicon.
func NewScorer(positive, negative Lexicon) *Scorer {
	return &Scorer{positive: positive, negative: negative}
}

// Score returns the ranking score of p. Higher is better.
//
//	no string name       -1000
//	"lake" word           +10
//	sub-feature word      -50
//	wikidata present       +5
//	per character        -0.01
func (s *Scorer) Score(p Point) float64 {
	name, ok := p.Name()
	if !ok {
		return NoNameScore
	}

	score := 0.0
	if s.positive.Match(name) {
		score += PositiveWeight
	}
	if s.negative.Match(name) {
		score += NegativeWeight
	}
	if p.HasWikidata() {
		score += WikidataWeight
	}
	score -= LengthPenalty * float64(utf8.RuneCountInString(name))
	return score
}
