// Package match filters and ranks the scanned entry list against the
// current query. Results are recomputed wholesale on every query or
// mode change; ordering is the final display order.
package match

import (
	"log"
	"sort"
	"strings"

	"findt/internal/content"
	"findt/internal/domain"
)

// Config holds the fuzzy ranking tunables. The defaults mirror the
// behavior users already rely on; they are constants of the product,
// not knobs exposed in the UI.
type Config struct {
	// ExactHeadBytes is how much of a text file exact mode searches.
	ExactHeadBytes int
	// FuzzyHeadBytes is how much of a text file fuzzy mode scores.
	FuzzyHeadBytes int
	// ContentWeight discounts content scores against filename scores.
	ContentWeight float64
	// ScoreThreshold is the minimum (exclusive) score for inclusion.
	ScoreThreshold float64
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		ExactHeadBytes: 1024,
		FuzzyHeadBytes: 2048,
		ContentWeight:  0.8,
		ScoreThreshold: 50,
	}
}

// Matcher scores entries against queries using an injected fuzzy engine.
type Matcher struct {
	scorer Scorer
	cfg    Config
}

// New creates a matcher. A nil scorer is replaced with NullScorer,
// which makes fuzzy mode behave exactly like exact mode.
func New(scorer Scorer, cfg Config) *Matcher {
	if scorer == nil {
		scorer = NullScorer{}
	}
	return &Matcher{scorer: scorer, cfg: cfg}
}

// FuzzyAvailable reports whether fuzzy mode has a real engine behind it.
func (m *Matcher) FuzzyAvailable() bool {
	return m.scorer.Available()
}

// Match runs the query against all entries and returns the ranked result
// list. An empty query returns every entry in scan order.
func (m *Matcher) Match(query string, mode domain.SearchMode, entries []domain.FileEntry) []domain.MatchResult {
	if query == "" {
		results := make([]domain.MatchResult, 0, len(entries))
		for i := range entries {
			results = append(results, domain.MatchResult{Entry: &entries[i], Origin: domain.OriginAll})
		}
		return results
	}

	if mode == domain.ModeFuzzy && m.scorer.Available() {
		return m.fuzzy(query, entries)
	}
	return m.exact(query, entries)
}

// exact is a case-insensitive substring test: filename first, then the
// head of the file for recognized text extensions. Inclusion is binary
// and the original entry order is preserved.
func (m *Matcher) exact(query string, entries []domain.FileEntry) []domain.MatchResult {
	q := strings.ToLower(query)
	var results []domain.MatchResult

	for i := range entries {
		entry := &entries[i]
		if strings.Contains(strings.ToLower(entry.Name), q) {
			results = append(results, domain.MatchResult{Entry: entry, Origin: domain.OriginFilename})
			continue
		}
		if entry.IsDir || !content.IsText(entry.Path) {
			continue
		}
		head, err := content.ReadHead(entry.Path, m.cfg.ExactHeadBytes)
		if err != nil {
			log.Printf("content search: %v", err)
			continue
		}
		if strings.Contains(strings.ToLower(head), q) {
			results = append(results, domain.MatchResult{Entry: entry, Origin: domain.OriginContent})
		}
	}
	return results
}

// fuzzy scores each entry against filename, full path and (for text
// files) content, keeps the best origin per entry, and ranks by score,
// origin priority and filename.
func (m *Matcher) fuzzy(query string, entries []domain.FileEntry) []domain.MatchResult {
	q := strings.ToLower(query)
	var results []domain.MatchResult

	for i := range entries {
		entry := &entries[i]

		best := float64(m.scorer.Score(q, strings.ToLower(entry.Name)))
		origin := domain.OriginFilename

		if s := float64(m.scorer.Score(q, strings.ToLower(entry.Path))); s > best {
			best = s
			origin = domain.OriginPath
		}

		if !entry.IsDir && content.IsText(entry.Path) {
			head, err := content.ReadHead(entry.Path, m.cfg.FuzzyHeadBytes)
			if err != nil {
				log.Printf("content search: %v", err)
			} else {
				s := float64(m.scorer.Score(q, strings.ToLower(head))) * m.cfg.ContentWeight
				if s > best {
					best = s
					origin = domain.OriginContent
				}
			}
		}

		if best > m.cfg.ScoreThreshold {
			results = append(results, domain.MatchResult{Entry: entry, Origin: origin, Score: best})
		}
	}

	sort.SliceStable(results, func(a, b int) bool {
		ra, rb := results[a], results[b]
		if ra.Score != rb.Score {
			return ra.Score > rb.Score
		}
		if ra.Origin.Priority() != rb.Origin.Priority() {
			return ra.Origin.Priority() > rb.Origin.Priority()
		}
		return strings.ToLower(ra.Entry.Name) < strings.ToLower(rb.Entry.Name)
	})
	return results
}
