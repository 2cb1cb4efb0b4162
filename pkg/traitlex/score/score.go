package score

import (
	"math"

	"github.com/cognicore/traitlex/pkg/traitlex/match"
)

// Encoding selects the scoring formula applied to a category's matches.
type Encoding string

const (
	// EncodingBinary sums the weight of each distinct matched term once,
	// regardless of occurrence count.
	EncodingBinary Encoding = "binary"

	// EncodingFrequency weights each term by its occurrence rate:
	// (count / wordcount) * weight.
	EncodingFrequency Encoding = "frequency"

	// EncodingPercent reports lexicon coverage: distinct matched terms
	// divided by distinct terms in the input, as a fraction in [0,1].
	EncodingPercent Encoding = "percent"
)

// ParseEncoding maps a config string to an Encoding.
func ParseEncoding(s string) (Encoding, bool) {
	switch Encoding(s) {
	case EncodingBinary, EncodingFrequency, EncodingPercent:
		return Encoding(s), true
	}
	return "", false
}

// Scorer reduces a category's match list to a single value. The same
// scorer instance is applied to all five categories so rounding and
// encoding are identical across traits.
type Scorer struct {
	Encoding Encoding
	Places   int
}

// Input carries the per-category reduction inputs.
type Input struct {
	Matches   match.MatchSet
	Intercept float64
	Wordcount int // unigram count (plus n-grams when configured)
	Distinct  int // distinct terms in the token multiset
}

// Category reduces one category's matches to a rounded score.
//
// Division guards: under frequency encoding a zero wordcount collapses the
// score to the intercept, and under percent encoding a zero distinct count
// does the same. Neither case is an error.
func (s Scorer) Category(in Input) float64 {
	var raw float64
	switch s.Encoding {
	case EncodingFrequency:
		if in.Wordcount == 0 {
			raw = in.Intercept
			break
		}
		raw = in.Intercept
		for _, m := range in.Matches {
			raw += float64(m.Count) / float64(in.Wordcount) * m.Weight
		}
	case EncodingPercent:
		if in.Distinct == 0 {
			raw = in.Intercept
			break
		}
		raw = float64(len(in.Matches)) / float64(in.Distinct)
	default: // binary
		raw = in.Intercept
		for _, m := range in.Matches {
			raw += m.Weight
		}
	}
	return Round(raw, s.Places)
}

// TermValue returns one term's contribution under the scorer's encoding,
// for match inspection output. Percent encoding reports the term's share of
// the wordcount since it has no per-term weight component.
func (s Scorer) TermValue(count int, weight float64, wordcount int) float64 {
	switch s.Encoding {
	case EncodingFrequency, EncodingPercent:
		if wordcount == 0 {
			return 0
		}
		rate := float64(count) / float64(wordcount)
		if s.Encoding == EncodingPercent {
			return Round(rate, s.Places)
		}
		return Round(rate*weight, s.Places)
	default:
		return Round(weight, s.Places)
	}
}

// Round rounds half away from zero to the given number of decimal places.
func Round(x float64, places int) float64 {
	if places < 0 {
		places = 0
	}
	shift := math.Pow(10, float64(places))
	return math.Round(x*shift) / shift
}
