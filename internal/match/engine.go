package match

import fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

// Scorer is the fuzzy similarity capability. Scores are on a 0-100 scale
// measuring the best-aligned substring overlap between query and target.
type Scorer interface {
	// Score compares query against target. Both arguments are expected
	// to be lowercased by the caller.
	Score(query, target string) int

	// Available reports whether real fuzzy scoring is possible.
	Available() bool
}

// PartialRatioScorer scores with a fuzzywuzzy-style partial ratio.
type PartialRatioScorer struct{}

func (PartialRatioScorer) Score(query, target string) int {
	if query == "" || target == "" {
		return 0
	}
	return fuzzy.PartialRatio(query, target)
}

func (PartialRatioScorer) Available() bool { return true }

// NullScorer is the fallback when no fuzzy engine is usable; matching
// degrades to exact mode instead of failing.
type NullScorer struct{}

func (NullScorer) Score(query, target string) int { return 0 }

func (NullScorer) Available() bool { return false }
