package traitlex

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/cognicore/traitlex/pkg/traitlex/lexicon"
	"github.com/cognicore/traitlex/pkg/traitlex/match"
	"github.com/cognicore/traitlex/pkg/traitlex/score"
)

func TestResolveDefaults(t *testing.T) {
	r := Options{}.resolve()

	if r.encoding != score.EncodingBinary {
		t.Errorf("default encoding = %q", r.encoding)
	}
	if !math.IsInf(r.bounds.Min, -1) || !math.IsInf(r.bounds.Max, 1) {
		t.Errorf("default bounds = %+v, want unbounded", r.bounds)
	}
	if !reflect.DeepEqual(r.windows, []int{2, 3}) {
		t.Errorf("default windows = %v, want [2 3]", r.windows)
	}
	if r.wcGrams {
		t.Error("wcGrams should default to false")
	}
	if r.output != OutputLex {
		t.Errorf("default output = %q", r.output)
	}
	if r.places != 9 {
		t.Errorf("default places = %d", r.places)
	}
	if r.sortBy != match.SortByFreq {
		t.Errorf("default sortBy = %q", r.sortBy)
	}
	if r.locale != LocaleUS {
		t.Errorf("default locale = %q", r.locale)
	}
	if len(r.warnings) != 0 {
		t.Errorf("defaults should resolve without warnings: %v", r.warnings)
	}
}

func TestResolveInvalidEnumsFallBack(t *testing.T) {
	r := Options{
		Encoding: "logistic",
		Output:   "csv",
		SortBy:   "alphabetical",
		Locale:   "AU",
	}.resolve()

	if r.encoding != score.EncodingBinary {
		t.Errorf("invalid encoding should fall back to binary, got %q", r.encoding)
	}
	if r.output != OutputLex {
		t.Errorf("invalid output should fall back to lex, got %q", r.output)
	}
	if r.sortBy != match.SortByFreq {
		t.Errorf("invalid sort key should fall back to freq, got %q", r.sortBy)
	}
	if r.locale != LocaleUS {
		t.Errorf("invalid locale should fall back to US, got %q", r.locale)
	}
	if len(r.warnings) != 4 {
		t.Errorf("want 4 fallback warnings, got %v", r.warnings)
	}
}

func TestResolveNGrams(t *testing.T) {
	// empty non-nil slice disables n-grams
	r := Options{NGrams: []int{}}.resolve()
	if len(r.windows) != 0 {
		t.Errorf("empty NGrams should disable windows, got %v", r.windows)
	}

	// windows are deduplicated and sorted, sub-2 windows dropped with a warning
	r = Options{NGrams: []int{3, 2, 3, 1}}.resolve()
	if !reflect.DeepEqual(r.windows, []int{2, 3}) {
		t.Errorf("windows = %v, want [2 3]", r.windows)
	}
	if len(r.warnings) != 1 || !strings.Contains(r.warnings[0], "below 2") {
		t.Errorf("want one dropped-window warning, got %v", r.warnings)
	}
}

func TestResolveBounds(t *testing.T) {
	r := Options{Min: Float(0), Max: Float(2.5)}.resolve()
	if r.bounds.Min != 0 || r.bounds.Max != 2.5 {
		t.Errorf("bounds = %+v", r.bounds)
	}

	r = Options{Min: Float(1), Max: Float(-1)}.resolve()
	if len(r.warnings) != 1 {
		t.Errorf("inverted bounds should warn, got %v", r.warnings)
	}

	r = Options{Min: Float(math.NaN())}.resolve()
	if !math.IsInf(r.bounds.Min, -1) {
		t.Errorf("NaN bound should reset to unbounded, got %+v", r.bounds)
	}
}

func TestResolvePlaces(t *testing.T) {
	r := Options{Places: Int(0)}.resolve()
	if r.places != 0 {
		t.Errorf("places = %d, want 0 (zero is a valid precision)", r.places)
	}

	r = Options{Places: Int(-2)}.resolve()
	if r.places != 0 || len(r.warnings) != 1 {
		t.Errorf("negative places should clamp to 0 with a warning: %d %v", r.places, r.warnings)
	}
}

func TestResolveIntercepts(t *testing.T) {
	r := Options{Intercepts: map[lexicon.Category]float64{
		"O": 0.5,
		"Z": 1.0,
	}}.resolve()

	if r.intercepts["O"] != 0.5 {
		t.Errorf("intercepts = %v", r.intercepts)
	}
	if len(r.warnings) != 1 || !strings.Contains(r.warnings[0], `"Z"`) {
		t.Errorf("unknown intercept category should warn, got %v", r.warnings)
	}
}
