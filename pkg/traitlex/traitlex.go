// Package traitlex scores natural-language text against five weighted word
// lexicons, one per Big Five personality trait (Openness,
// Conscientiousness, Extraversion, Agreeableness, Neuroticism).
//
// The engine is a content-analysis primitive for downstream
// personality-inference pipelines: tokens and multi-word n-grams from the
// input are matched exactly against the lexicon, and each trait's matches
// are reduced to one numeric value under a configurable encoding. There is
// no machine learning and no persistence of results; the lexicon is frozen
// before use and an Analyzer is safe for concurrent calls.
package traitlex

import (
	"github.com/cognicore/traitlex/pkg/traitlex/ingest"
	"github.com/cognicore/traitlex/pkg/traitlex/lexicon"
	"github.com/cognicore/traitlex/pkg/traitlex/match"
	"github.com/cognicore/traitlex/pkg/traitlex/score"
)

// Analyzer binds a frozen lexicon to the analysis pipeline. The lexicon is
// shared read-only state; everything else is call-scoped.
type Analyzer struct {
	lex *lexicon.Lexicon
}

// New creates an Analyzer over a frozen lexicon. The caller constructs and
// owns the lexicon, so test fixtures can be substituted freely.
func New(lex *lexicon.Lexicon) *Analyzer {
	return &Analyzer{lex: lex}
}

// TraitScores holds the final per-trait values. Immutable after
// construction.
type TraitScores struct {
	O float64 `json:"O"`
	C float64 `json:"C"`
	E float64 `json:"E"`
	A float64 `json:"A"`
	N float64 `json:"N"`
}

// Get returns the score for a trait category.
func (s TraitScores) Get(cat lexicon.Category) float64 {
	switch cat {
	case lexicon.Openness:
		return s.O
	case lexicon.Conscientiousness:
		return s.C
	case lexicon.Extraversion:
		return s.E
	case lexicon.Agreeableness:
		return s.A
	case lexicon.Neuroticism:
		return s.N
	}
	return 0
}

func (s *TraitScores) set(cat lexicon.Category, v float64) {
	switch cat {
	case lexicon.Openness:
		s.O = v
	case lexicon.Conscientiousness:
		s.C = v
	case lexicon.Extraversion:
		s.E = v
	case lexicon.Agreeableness:
		s.A = v
	case lexicon.Neuroticism:
		s.N = v
	}
}

// Result is the output of one analysis call. Scores is set for the "lex"
// and "full" output shapes, Matches for "matches" and "full".
type Result struct {
	Scores    *TraitScores                                `json:"scores,omitempty"`
	Matches   map[lexicon.Category][]match.FormattedMatch `json:"matches,omitempty"`
	Wordcount int                                         `json:"wordcount"`
	Empty     bool                                        `json:"empty,omitempty"`
	Warnings  []string                                    `json:"warnings,omitempty"`
}

// Analyze scores text against the analyzer's lexicon.
//
// Empty-input policy: input that is empty, whitespace-only, or otherwise
// yields no tokens produces a neutral Result — all-zero scores and empty
// match lists, with Empty set — rather than an error. Unrecognized option
// values fall back to their defaults and are reported in Result.Warnings.
// Analyze never fails: the computation is pure and every anomaly is a
// deterministic fallback.
func (a *Analyzer) Analyze(text string, opts Options) Result {
	cfg := opts.resolve()

	// Case folding must precede translation: the GB mapping is keyed on
	// lowercase words.
	text = ingest.Normalize(text)
	if cfg.locale == LocaleGB {
		text = ingest.TranslateGB(text)
	}

	agg, ok := ingest.BuildAggregate(text, cfg.windows, cfg.wcGrams)
	if !ok {
		return neutralResult(cfg)
	}

	found := match.Find(agg.Counts, a.lex, cfg.bounds)
	scorer := score.Scorer{Encoding: cfg.encoding, Places: cfg.places}

	result := Result{
		Wordcount: agg.Wordcount,
		Warnings:  append(cfg.warnings, agg.Warnings...),
	}

	if cfg.output == OutputLex || cfg.output == OutputFull {
		scores := &TraitScores{}
		for _, cat := range lexicon.Categories {
			scores.set(cat, scorer.Category(score.Input{
				Matches:   found[cat],
				Intercept: cfg.intercepts[cat],
				Wordcount: agg.Wordcount,
				Distinct:  agg.Distinct,
			}))
		}
		result.Scores = scores
	}

	if cfg.output == OutputMatches || cfg.output == OutputFull {
		valueFn := func(count int, weight float64) float64 {
			return scorer.TermValue(count, weight, agg.Wordcount)
		}
		formatted := make(map[lexicon.Category][]match.FormattedMatch, len(lexicon.Categories))
		for _, cat := range lexicon.Categories {
			formatted[cat] = match.Format(found[cat], cfg.sortBy, valueFn)
		}
		result.Matches = formatted
	}

	return result
}

// neutralResult is the documented null result for empty input: zero scores
// under the intercepts, empty match lists, Empty set.
func neutralResult(cfg resolved) Result {
	result := Result{Empty: true, Warnings: cfg.warnings}

	if cfg.output == OutputLex || cfg.output == OutputFull {
		scores := &TraitScores{}
		for _, cat := range lexicon.Categories {
			scores.set(cat, score.Round(cfg.intercepts[cat], cfg.places))
		}
		result.Scores = scores
	}
	if cfg.output == OutputMatches || cfg.output == OutputFull {
		formatted := make(map[lexicon.Category][]match.FormattedMatch, len(lexicon.Categories))
		for _, cat := range lexicon.Categories {
			formatted[cat] = []match.FormattedMatch{}
		}
		result.Matches = formatted
	}

	return result
}
