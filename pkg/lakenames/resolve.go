package lakenames

// Resolution describes how a winner was chosen.
type Resolution int

const (
	// ResolutionNone means no candidate had a textual name.
	ResolutionNone Resolution = iota
	// ResolutionPriority means a priority name with wikidata won.
	ResolutionPriority
	// ResolutionScore means the highest scoring candidate won.
	ResolutionScore
)

func (r Resolution) String() string {
	switch r {
	case ResolutionPriority:
		return "priority"
	case ResolutionScore:
		return "score"
	default:
		return "none"
	}
}

// Resolver picks one point per polygon from its candidates.
type Resolver struct {
	priority map[string]struct{}
	scorer   *Scorer
}

// NewResolver creates a resolver from cfg.
func NewResolver(cfg Config) *Resolver {
	priority := make(map[string]struct{}, len(cfg.PriorityNames))
	for _, name := range cfg.PriorityNames {
		priority[name] = struct{}{}
	}
	return &Resolver{
		priority: priority,
		scorer:   NewScorer(NewLexicon(cfg.PositiveWords...), NewLexicon(cfg.NegativeWords...)),
	}
}

// Scorer returns the scorer used for fallback selection.
func (r *Resolver) Scorer() *Scorer {
	return r.scorer
}

// IsPriority reports whether p is a priority point: its name is in the
// priority set and it has a wikidata identifier.
func (r *Resolver) IsPriority(p Point) bool {
	name, ok := p.Name()
	if !ok {
		return false
	}
	if _, listed := r.priority[name]; !listed {
		return false
	}
	return p.HasWikidata()
}

// Resolve returns the winning candidate.
//
// The first priority point in candidate order wins outright. Otherwise the
// highest scoring point wins, ties going to the earliest. When no candidate
// has a textual name there is no winner.
func (r *Resolver) Resolve(candidates []Point) (Point, Resolution) {
	for _, p := range candidates {
		if r.IsPriority(p) {
			return p, ResolutionPriority
		}
	}

	var (
		best      Point
		bestScore = NoNameScore
		found     bool
	)
	for _, p := range candidates {
		if _, ok := p.Name(); !ok {
			continue
		}
		score := r.scorer.Score(p)
		// Strictly greater keeps the earliest of equal scores.
		if !found || score > bestScore {
			best, bestScore, found = p, score, true
		}
	}

	if !found {
		return nil, ResolutionNone
	}
	return best, ResolutionScore
}
