package match

import "sort"

// SortKey selects the ordering of formatted match output.
type SortKey string

const (
	SortByFreq   SortKey = "freq"
	SortByWeight SortKey = "weight"
	SortByLex    SortKey = "lex"
)

// ParseSortKey maps a config string to a SortKey.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortByFreq, SortByWeight, SortByLex:
		return SortKey(s), true
	}
	return "", false
}

// FormattedMatch is one row of inspection output: the raw match triple plus
// Lex, the term's contribution under the active encoding.
type FormattedMatch struct {
	Term   string  `json:"term"`
	Count  int     `json:"count"`
	Weight float64 `json:"weight"`
	Lex    float64 `json:"lex"`
}

// Format reshapes a MatchSet for inspection output. The per-term lexical
// value is computed by valueFn so the formatter stays agnostic of the
// encoding formulas (the scorer owns those). The input set is copied, never
// mutated, and ties under the freq key keep the original lexicon order.
func Format(set MatchSet, key SortKey, valueFn func(count int, weight float64) float64) []FormattedMatch {
	out := make([]FormattedMatch, len(set))
	for i, m := range set {
		out[i] = FormattedMatch{
			Term:   m.Term,
			Count:  m.Count,
			Weight: m.Weight,
			Lex:    valueFn(m.Count, m.Weight),
		}
	}

	switch key {
	case SortByWeight:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Weight > out[j].Weight
		})
	case SortByLex:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Lex > out[j].Lex
		})
	default: // freq
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Count > out[j].Count
		})
	}

	return out
}
