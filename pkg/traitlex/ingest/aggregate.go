package ingest

import "fmt"

// Aggregate is the token multiset derived from one input string: every
// distinct unigram or n-gram mapped to its occurrence count. It is
// call-scoped state, created fresh per analysis and discarded after scoring.
type Aggregate struct {
	// Counts maps each distinct term to its occurrence count (always >= 1).
	Counts map[string]int

	// Wordcount is the unigram token count, captured before n-grams are
	// appended unless n-gram counting was requested.
	Wordcount int

	// Distinct is the number of distinct terms in the multiset.
	Distinct int

	// Warnings records skipped n-gram windows. Never fatal.
	Warnings []string
}

// BuildAggregate tokenizes normalized text, appends n-grams for the
// requested window sizes, and counts occurrences in a single pass.
//
// A window size larger than the baseline wordcount is skipped with a
// warning rather than failing the call. When countGrams is true the
// generated n-grams count toward Wordcount as well.
//
// Returns ok=false when the text yields no tokens at all.
func BuildAggregate(text string, windows []int, countGrams bool) (Aggregate, bool) {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return Aggregate{}, false
	}

	agg := Aggregate{Wordcount: len(tokens)}
	baseline := len(tokens)

	for _, n := range windows {
		if baseline < n {
			agg.Warnings = append(agg.Warnings,
				fmt.Sprintf("wordcount %d is less than n-gram window %d, skipping window", baseline, n))
			continue
		}
		grams := NGrams(text, n)
		tokens = append(tokens, grams...)
		if countGrams {
			agg.Wordcount += len(grams)
		}
	}

	agg.Counts = make(map[string]int, len(tokens))
	for _, term := range tokens {
		agg.Counts[term]++
	}
	agg.Distinct = len(agg.Counts)

	return agg, true
}
