package match

import (
	"math"

	"github.com/cognicore/traitlex/pkg/traitlex/lexicon"
)

// Match records one lexicon term found in the input. Count is the number of
// times the term occurred in the token multiset and is never zero: absent
// terms are simply not emitted.
type Match struct {
	Term   string
	Count  int
	Weight float64
}

// MatchSet is the ordered match list for one trait category. Order is the
// frozen lexicon iteration order, which keeps results reproducible and gives
// the formatter a stable tie-break.
type MatchSet []Match

// Bounds is an inclusive weight filter. Terms with weights outside
// [Min, Max] are skipped during matching.
type Bounds struct {
	Min float64
	Max float64
}

// Unbounded accepts every weight.
func Unbounded() Bounds {
	return Bounds{Min: math.Inf(-1), Max: math.Inf(1)}
}

func (b Bounds) contains(w float64) bool {
	return w >= b.Min && w <= b.Max
}

// Find scans every category of the lexicon against the token multiset and
// emits a Match for each term that is present and within bounds. Matching is
// exact string equality on normalized terms; no partial or fuzzy matching.
func Find(counts map[string]int, lex *lexicon.Lexicon, bounds Bounds) map[lexicon.Category]MatchSet {
	found := make(map[lexicon.Category]MatchSet, len(lexicon.Categories))
	for _, cat := range lexicon.Categories {
		var set MatchSet
		for _, e := range lex.Entries(cat) {
			if !bounds.contains(e.Weight) {
				continue
			}
			count, ok := counts[e.Term]
			if !ok {
				continue
			}
			set = append(set, Match{Term: e.Term, Count: count, Weight: e.Weight})
		}
		found[cat] = set
	}
	return found
}
