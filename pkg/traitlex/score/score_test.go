package score

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cognicore/traitlex/pkg/traitlex/match"
)

func TestBinaryScore(t *testing.T) {
	// lexicon O = {capital: -1.0, note: -0.5}, text has capital x2, note x3.
	// Binary counts each distinct matched term once.
	s := Scorer{Encoding: EncodingBinary, Places: 9}
	got := s.Category(Input{
		Matches: match.MatchSet{
			{Term: "capital", Count: 2, Weight: -1.0},
			{Term: "note", Count: 3, Weight: -0.5},
		},
		Wordcount: 9,
	})
	if got != -1.5 {
		t.Errorf("binary score = %v, want -1.5", got)
	}
}

func TestFrequencyScore(t *testing.T) {
	// (2/9)*-1.0 + (3/9)*-0.5 = -0.38888..., rounded to 4 places
	s := Scorer{Encoding: EncodingFrequency, Places: 4}
	got := s.Category(Input{
		Matches: match.MatchSet{
			{Term: "capital", Count: 2, Weight: -1.0},
			{Term: "note", Count: 3, Weight: -0.5},
		},
		Wordcount: 9,
	})
	if got != -0.3889 {
		t.Errorf("frequency score = %v, want -0.3889", got)
	}
}

func TestFrequencyZeroWordcount(t *testing.T) {
	s := Scorer{Encoding: EncodingFrequency, Places: 9}
	got := s.Category(Input{
		Matches:   match.MatchSet{{Term: "x", Count: 1, Weight: 2.0}},
		Intercept: 0.25,
		Wordcount: 0,
	})
	if got != 0.25 {
		t.Errorf("zero wordcount should collapse to the intercept, got %v", got)
	}
}

func TestPercentScore(t *testing.T) {
	s := Scorer{Encoding: EncodingPercent, Places: 9}
	got := s.Category(Input{
		Matches: match.MatchSet{
			{Term: "a", Count: 1, Weight: 1.0},
			{Term: "b", Count: 4, Weight: -1.0},
		},
		Wordcount: 10,
		Distinct:  8,
	})
	if got != 0.25 {
		t.Errorf("percent score = %v, want 0.25", got)
	}
}

func TestPercentZeroDistinct(t *testing.T) {
	s := Scorer{Encoding: EncodingPercent, Places: 9}
	got := s.Category(Input{Intercept: 0.1, Distinct: 0})
	if got != 0.1 {
		t.Errorf("zero distinct count should collapse to the intercept, got %v", got)
	}
}

func TestEmptyMatchesScoreIsIntercept(t *testing.T) {
	for _, enc := range []Encoding{EncodingBinary, EncodingFrequency} {
		s := Scorer{Encoding: enc, Places: 9}
		got := s.Category(Input{Intercept: -0.5, Wordcount: 12, Distinct: 12})
		if got != -0.5 {
			t.Errorf("%s: empty match list should score the intercept, got %v", enc, got)
		}
	}
}

func TestBinaryOrderIndependence(t *testing.T) {
	matches := match.MatchSet{
		{Term: "a", Count: 1, Weight: 0.3},
		{Term: "b", Count: 2, Weight: -0.7},
		{Term: "c", Count: 5, Weight: 1.1},
		{Term: "d", Count: 1, Weight: 0.01},
	}
	s := Scorer{Encoding: EncodingBinary, Places: 9}
	want := s.Category(Input{Matches: matches, Wordcount: 20})

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make(match.MatchSet, len(matches))
		copy(shuffled, matches)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got := s.Category(Input{Matches: shuffled, Wordcount: 20})
		if got != want {
			t.Fatalf("binary score depends on match order: %v vs %v", got, want)
		}
	}
}

func TestFrequencyScaleConsistency(t *testing.T) {
	s := Scorer{Encoding: EncodingFrequency, Places: 9}
	base := s.Category(Input{
		Matches:   match.MatchSet{{Term: "x", Count: 2, Weight: 0.8}},
		Wordcount: 10,
	})
	doubled := s.Category(Input{
		Matches:   match.MatchSet{{Term: "x", Count: 4, Weight: 0.8}},
		Wordcount: 20,
	})
	if base != doubled {
		t.Errorf("doubling count and wordcount should not change the score: %v vs %v", base, doubled)
	}
}

func TestTermValue(t *testing.T) {
	binary := Scorer{Encoding: EncodingBinary, Places: 9}
	if v := binary.TermValue(3, 0.5, 10); v != 0.5 {
		t.Errorf("binary term value = %v, want the raw weight", v)
	}

	freq := Scorer{Encoding: EncodingFrequency, Places: 9}
	if v := freq.TermValue(3, 0.5, 10); v != 0.15 {
		t.Errorf("frequency term value = %v, want 0.15", v)
	}
	if v := freq.TermValue(3, 0.5, 0); v != 0 {
		t.Errorf("frequency term value with zero wordcount = %v, want 0", v)
	}

	pct := Scorer{Encoding: EncodingPercent, Places: 9}
	if v := pct.TermValue(3, 0.5, 10); v != 0.3 {
		t.Errorf("percent term value = %v, want the occurrence rate 0.3", v)
	}
}

// Rounding tests

func TestRoundHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		in     float64
		places int
		want   float64
	}{
		{0.125, 2, 0.13},
		{-0.125, 2, -0.13},
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{1.234567891, 9, 1.234567891},
		{0.123456789123, 9, 0.123456789},
	}
	for _, c := range cases {
		if got := Round(c.in, c.places); got != c.want {
			t.Errorf("Round(%v, %d) = %v, want %v", c.in, c.places, got, c.want)
		}
	}
}

func TestRoundNegativePlacesClamped(t *testing.T) {
	if got := Round(2.7, -3); got != 3 {
		t.Errorf("Round with negative places = %v, want 3", got)
	}
}

func TestRoundingLaw(t *testing.T) {
	// the rounded accumulated sum never drifts more than one ulp-at-places
	// from a direct rounding of the exact sum
	s := Scorer{Encoding: EncodingFrequency, Places: 6}
	matches := match.MatchSet{
		{Term: "a", Count: 1, Weight: 0.333333},
		{Term: "b", Count: 2, Weight: 0.111111},
		{Term: "c", Count: 3, Weight: -0.777777},
	}
	got := s.Category(Input{Matches: matches, Wordcount: 7})

	exact := (1.0/7.0)*0.333333 + (2.0/7.0)*0.111111 + (3.0/7.0)*-0.777777
	direct := Round(exact, 6)
	if math.Abs(got-direct) > 1e-6 {
		t.Errorf("rounded sum %v differs from direct rounding %v by more than one unit in the last place", got, direct)
	}
}

func TestParseEncoding(t *testing.T) {
	for _, valid := range []string{"binary", "frequency", "percent"} {
		if _, ok := ParseEncoding(valid); !ok {
			t.Errorf("ParseEncoding(%q) should succeed", valid)
		}
	}
	if _, ok := ParseEncoding("logistic"); ok {
		t.Error("unknown encoding should not parse")
	}
}
