package traitlex

import (
	"fmt"
	"math"
	"sort"

	"github.com/cognicore/traitlex/pkg/traitlex/lexicon"
	"github.com/cognicore/traitlex/pkg/traitlex/match"
	"github.com/cognicore/traitlex/pkg/traitlex/score"
)

// OutputShape selects what an analysis call returns.
type OutputShape string

const (
	// OutputLex returns only the per-trait scores.
	OutputLex OutputShape = "lex"
	// OutputMatches returns only the formatted match lists.
	OutputMatches OutputShape = "matches"
	// OutputFull returns both, computed once.
	OutputFull OutputShape = "full"
)

// Locale selects the spelling variant of the input text.
type Locale string

const (
	LocaleUS Locale = "US"
	LocaleGB Locale = "GB"
)

// Options configures one analysis call. The zero value selects all
// defaults; set only the fields you need. Options values are read, never
// mutated: defaults are resolved into an internal value in one place, and
// unrecognized enum strings fall back to their defaults with a warning on
// the Result instead of failing the call.
type Options struct {
	// Encoding is the scoring formula: "binary" (default), "frequency",
	// or "percent".
	Encoding string

	// Min and Max bound the lexicon weights considered during matching
	// (inclusive). Nil means unbounded.
	Min *float64
	Max *float64

	// NGrams lists the n-gram window sizes to generate. Nil selects the
	// default {2, 3}; an empty non-nil slice disables n-grams.
	NGrams []int

	// WCGrams counts generated n-grams toward the wordcount used by
	// frequency scoring. Default false: wordcount is the unigram count.
	WCGrams bool

	// Output is the result shape: "lex" (default), "matches", or "full".
	Output string

	// Places is the decimal rounding precision. Nil selects 9.
	Places *int

	// SortBy orders match output: "freq" (default), "weight", or "lex".
	SortBy string

	// Locale is "US" (default) or "GB". GB input is translated to
	// American spellings before tokenization.
	Locale string

	// Intercepts adds a constant offset to each category's score,
	// supporting calibrated regression-style scoring. Missing categories
	// default to 0.
	Intercepts map[lexicon.Category]float64
}

var defaultWindows = []int{2, 3}

// resolved is the immutable, validated form of Options used by the
// pipeline.
type resolved struct {
	encoding   score.Encoding
	bounds     match.Bounds
	windows    []int
	wcGrams    bool
	output     OutputShape
	places     int
	sortBy     match.SortKey
	locale     Locale
	intercepts map[lexicon.Category]float64
	warnings   []string
}

// resolve applies defaults and validation in one place. Every anomaly is a
// deterministic fallback recorded as a warning; nothing here can fail.
func (o Options) resolve() resolved {
	r := resolved{
		encoding:   score.EncodingBinary,
		bounds:     match.Unbounded(),
		wcGrams:    o.WCGrams,
		output:     OutputLex,
		places:     9,
		sortBy:     match.SortByFreq,
		locale:     LocaleUS,
		intercepts: o.Intercepts,
	}

	if o.Encoding != "" {
		if enc, ok := score.ParseEncoding(o.Encoding); ok {
			r.encoding = enc
		} else {
			r.warnings = append(r.warnings,
				fmt.Sprintf("unknown encoding %q, using %q", o.Encoding, score.EncodingBinary))
		}
	}

	if o.Min != nil {
		r.bounds.Min = *o.Min
	}
	if o.Max != nil {
		r.bounds.Max = *o.Max
	}
	if r.bounds.Min > r.bounds.Max {
		r.warnings = append(r.warnings,
			fmt.Sprintf("min weight %g exceeds max weight %g, no terms can match", r.bounds.Min, r.bounds.Max))
	}

	switch {
	case o.NGrams == nil:
		r.windows = defaultWindows
	default:
		seen := make(map[int]struct{}, len(o.NGrams))
		for _, n := range o.NGrams {
			if n < 2 {
				r.warnings = append(r.warnings,
					fmt.Sprintf("n-gram window %d is below 2, dropping it", n))
				continue
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			r.windows = append(r.windows, n)
		}
		sort.Ints(r.windows)
	}

	if o.Output != "" {
		switch OutputShape(o.Output) {
		case OutputLex, OutputMatches, OutputFull:
			r.output = OutputShape(o.Output)
		default:
			r.warnings = append(r.warnings,
				fmt.Sprintf("unknown output shape %q, using %q", o.Output, OutputLex))
		}
	}

	if o.Places != nil {
		if *o.Places < 0 {
			r.warnings = append(r.warnings,
				fmt.Sprintf("negative rounding precision %d, using 0", *o.Places))
			r.places = 0
		} else {
			r.places = *o.Places
		}
	}

	if o.SortBy != "" {
		if key, ok := match.ParseSortKey(o.SortBy); ok {
			r.sortBy = key
		} else {
			r.warnings = append(r.warnings,
				fmt.Sprintf("unknown sort key %q, using %q", o.SortBy, match.SortByFreq))
		}
	}

	if o.Locale != "" {
		switch Locale(o.Locale) {
		case LocaleUS, LocaleGB:
			r.locale = Locale(o.Locale)
		default:
			r.warnings = append(r.warnings,
				fmt.Sprintf("unknown locale %q, using %q", o.Locale, LocaleUS))
		}
	}

	for cat := range o.Intercepts {
		if !cat.Valid() {
			r.warnings = append(r.warnings,
				fmt.Sprintf("intercept for unknown category %q ignored", cat))
		}
	}

	if math.IsNaN(r.bounds.Min) || math.IsNaN(r.bounds.Max) {
		r.warnings = append(r.warnings, "NaN weight bound, treating as unbounded")
		r.bounds = match.Unbounded()
	}

	return r
}

// Float is a convenience for setting Options.Min / Options.Max.
func Float(v float64) *float64 { return &v }

// Int is a convenience for setting Options.Places.
func Int(v int) *int { return &v }
