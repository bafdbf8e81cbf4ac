// Package match resolves free-text procedure descriptions to benchmark
// entries. Indian hospital bills almost never carry standardized codes, so
// fuzzy text matching over human-readable descriptions is the only viable
// identification strategy there; US codes use exact table lookups instead.
package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xrash/smetrics"

	"github.com/gyeh/billaudit/internal/benchmark"
	"github.com/gyeh/billaudit/internal/normalize"
)

// DefaultThreshold is the minimum similarity score (0-100) a candidate must
// reach to count as a match.
const DefaultThreshold = 60

// TokenSortRatio computes a token-order-insensitive similarity ratio between
// two strings on a 0-100 scale: tokens are lowercased and sorted before an
// edit-distance ratio is taken, so "cholecystectomy laparoscopic" scores 100
// against "Laparoscopic Cholecystectomy".
func TokenSortRatio(a, b string) int {
	as := sortTokens(a)
	bs := sortTokens(b)
	if as == "" && bs == "" {
		return 100
	}
	total := len(as) + len(bs)
	if total == 0 {
		return 0
	}
	// Substitution cost 2 makes WagnerFischer an indel distance, which turns
	// (total-dist)/total into the classic Levenshtein similarity ratio.
	dist := smetrics.WagnerFischer(as, bs, 1, 1, 2)
	return (total - dist) * 100 / total
}

func sortTokens(s string) string {
	tokens := strings.Fields(normalize.Description(s))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// Match is one fuzzy-match result against the Indian procedure index.
type Match struct {
	Procedure  *benchmark.Procedure
	Score      int     // 0-100 similarity
	Confidence float64 // Score/100
}

// Matcher finds the benchmark entry best matching a procedure description.
type Matcher struct {
	store     *benchmark.Store
	threshold int
}

// New builds a Matcher over the given store. threshold is the minimum
// accepted similarity score; values outside [0,100] fall back to
// DefaultThreshold.
func New(store *benchmark.Store, threshold int) *Matcher {
	if threshold < 0 || threshold > 100 {
		threshold = DefaultThreshold
	}
	return &Matcher{store: store, threshold: threshold}
}

// Best returns the single highest-scoring procedure for the query, or nil
// when no candidate reaches the threshold. Exact score ties keep the
// first-seen entry, relying on the index's stable order. An empty query is
// a caller bug and returns an error.
func (m *Matcher) Best(query string) (*Match, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("match: empty query")
	}

	var best *Match
	for _, p := range m.store.Procedures() {
		score := TokenSortRatio(query, p.Description)
		if best == nil || score > best.Score {
			best = &Match{Procedure: p, Score: score, Confidence: float64(score) / 100}
		}
	}

	if best == nil || best.Score < m.threshold {
		return nil, nil
	}
	return best, nil
}

// Search returns up to limit procedures ranked by similarity to the query,
// highest first. Unlike Best it does not apply the threshold; callers see
// the scores and decide. Ranking is stable so equal scores keep index order.
func (m *Matcher) Search(query string, limit int) ([]Match, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("match: empty query")
	}

	procs := m.store.Procedures()
	matches := make([]Match, 0, len(procs))
	for _, p := range procs {
		score := TokenSortRatio(query, p.Description)
		matches = append(matches, Match{Procedure: p, Score: score, Confidence: float64(score) / 100})
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}
