package lakenames

import (
	"io"
	"log/slog"
)

// Config holds the word lists that drive name selection.
type Config struct {
	// PriorityNames always win when the point also has a wikidata
	// identifier. Matching is exact and case-sensitive.
	PriorityNames []string

	// PositiveWords mean "lake" in the region's languages.
	PositiveWords []string

	// NegativeWords name bays, channels, dams and directional or size
	// qualifiers. A match outweighs a positive match.
	NegativeWords []string
}

// DefaultConfig returns the built-in Scandinavian word lists.
func DefaultConfig() Config {
	return Config{
		PriorityNames: []string{"Mälaren", "Hjälmaren", "Vänern", "Vättern"},
		PositiveWords: []string{
			"sjö", "sjön", "lake", "vatn", "vatnet", "sjø", "sjøen",
			"järvi", "järv", "järve", "sø",
		},
		NegativeWords: []string{
			"vik", "viken", "fjord", "fjorden", "bukt", "bukten", "bight", "cove",
			"damm", "dammen", "bassäng", "bassängen", "sund", "sundet",
			"kanal", "kanalen", "ström", "strömmen", "å", "älv", "djup", "djupet",
			"vatten", "depth", "bay", "lagoon",
			"inre", "indre", "ytre", "övre", "nedre", "lilla", "stora",
			"södra", "norra", "östra", "västra",
		},
	}
}

// Options configures pipeline behavior that does not affect the result.
type Options struct {
	// Logger receives stage timings and the run summary. Nil discards.
	Logger *slog.Logger

	// Progress is called while points are associated.
	// Optional. Called with done == total when association finishes.
	Progress func(done, total int)

	// ProgressEvery sets how many points pass between Progress calls.
	// Defaults to 1000.
	ProgressEvery int

	// DebugNames lists candidate names whose polygons get a detailed
	// candidate dump at debug level.
	DebugNames []string
}

// DefaultOptions returns options with a discarding logger.
func DefaultOptions() Options {
	return Options{
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		ProgressEvery: 1000,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Logger == nil {
		o.Logger = d.Logger
	}
	if o.ProgressEvery <= 0 {
		o.ProgressEvery = d.ProgressEvery
	}
	return o
}
