package lakenames

import (
	"math"
	"testing"
)

func defaultScorer() *Scorer {
	return NewResolver(DefaultConfig()).Scorer()
}

func TestLexiconMatch(t *testing.T) {
	lx := NewLexicon("vik", "viken", "å", "sjön")

	tests := []struct {
		name string
		want bool
	}{
		{"Stora vik", true},
		{"Viken", true},
		{"VIKEN", true},
		{"Vik-sjön", true},
		{"Vikarsjön", false},
		{"Lillsjön", false},
		{"Svartå", false},
		{"Lilla å", true},
		{"Å", true},
		{"sjön", true},
		{"Sjön", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lx.Match(tt.name); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestLexiconNormalization(t *testing.T) {
	// "sjön" with a combining diaeresis instead of a precomposed ö.
	decomposed := "sjo\u0308n"
	lx := NewLexicon("sjön")
	if !lx.Match(decomposed) {
		t.Errorf("Match(%q) = false, want true", decomposed)
	}
	if !NewLexicon(decomposed).Contains("SJÖN") {
		t.Error("Contains should fold case and normalization")
	}
	if NewLexicon("", "a").Len() != 1 {
		t.Error("empty words should be ignored")
	}
}

func TestScore(t *testing.T) {
	s := defaultScorer()

	tests := []struct {
		name  string
		point Point
		want  float64
	}{
		{"no name", Point{}, NoNameScore},
		{"numeric name", Point{"name": 42.0}, NoNameScore},
		{"plain", Point{"name": "Amungen"}, -0.07},
		{"positive", Point{"name": "Sjön"}, 10 - 0.04},
		{"negative", Point{"name": "Viken"}, -50 - 0.05},
		{"both", Point{"name": "Stora sjön"}, 10 - 50 - 0.10},
		{"wikidata", Point{"name": "Vänern", "wikidata": "Q173596"}, 5 - 0.06},
		{"empty wikidata", Point{"name": "Vänern", "wikidata": ""}, -0.06},
		{"null wikidata", Point{"name": "Vänern", "wikidata": nil}, -0.06},
		{"runes not bytes", Point{"name": "Åsjö"}, 0 - 0.04},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Score(tt.point)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestScoreOrdering(t *testing.T) {
	s := defaultScorer()

	if a, b := s.Score(Point{"name": "Stora Lillsjön"}), s.Score(Point{"name": "Lillsjön"}); a >= b {
		t.Errorf("Score(Stora Lillsjön)=%v should be below Score(Lillsjön)=%v", a, b)
	}
	if a, b := s.Score(Point{"name": "Sjön"}), s.Score(Point{"name": "Viken"}); a <= b {
		t.Errorf("Score(Sjön)=%v should be above Score(Viken)=%v", a, b)
	}
	if a, b := s.Score(Point{"name": "Lillsjön"}), s.Score(Point{"name": "Stora bukten"}); a <= b {
		t.Errorf("Score(Lillsjön)=%v should be above Score(Stora bukten)=%v", a, b)
	}
	if s.Score(Point{"name": "Storviken bukten fjorden"}) <= NoNameScore {
		t.Error("any named point should outrank a nameless one")
	}
}
