package lexicon

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/traitlex/pkg/traitlex/internalerr"
)

// Category identifies one of the five personality dimensions.
type Category string

const (
	Openness          Category = "O"
	Conscientiousness Category = "C"
	Extraversion      Category = "E"
	Agreeableness     Category = "A"
	Neuroticism       Category = "N"
)

// Categories lists all trait categories in canonical order.
var Categories = [5]Category{Openness, Conscientiousness, Extraversion, Agreeableness, Neuroticism}

// Valid reports whether c names a known trait category.
func (c Category) Valid() bool {
	switch c {
	case Openness, Conscientiousness, Extraversion, Agreeableness, Neuroticism:
		return true
	}
	return false
}

// Entry is one weighted term in a category table.
// Term may be a single word or a space-joined n-gram.
type Entry struct {
	Term   string
	Weight float64
}

// Lexicon is an immutable mapping of trait category to weighted terms.
//
// Entries within a category are held in a frozen order (sorted by term),
// so iteration is stable from run to run for the same data. Once built,
// a Lexicon is read-only and safe for concurrent use.
type Lexicon struct {
	entries map[Category][]Entry
	index   map[Category]map[string]float64
}

// Builder accumulates terms before freezing them into a Lexicon.
type Builder struct {
	weights map[Category]map[string]float64
}

// NewBuilder creates an empty lexicon builder.
func NewBuilder() *Builder {
	weights := make(map[Category]map[string]float64, len(Categories))
	for _, cat := range Categories {
		weights[cat] = make(map[string]float64)
	}
	return &Builder{weights: weights}
}

// Add records a weighted term under a category. Terms are lowercased and
// trimmed; re-adding a term overwrites its previous weight.
func (b *Builder) Add(cat Category, term string, weight float64) error {
	if !cat.Valid() {
		return fmt.Errorf("%w: %q", internalerr.ErrUnknownCategory, cat)
	}
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return fmt.Errorf("%w: empty term", internalerr.ErrInvalidInput)
	}
	b.weights[cat][term] = weight
	return nil
}

// Build freezes the accumulated terms into an immutable Lexicon.
// Entries are sorted by term within each category.
func (b *Builder) Build() *Lexicon {
	lex := &Lexicon{
		entries: make(map[Category][]Entry, len(Categories)),
		index:   make(map[Category]map[string]float64, len(Categories)),
	}
	for _, cat := range Categories {
		terms := b.weights[cat]
		entries := make([]Entry, 0, len(terms))
		for term, weight := range terms {
			entries = append(entries, Entry{Term: term, Weight: weight})
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Term < entries[j].Term
		})
		idx := make(map[string]float64, len(entries))
		for _, e := range entries {
			idx[e.Term] = e.Weight
		}
		lex.entries[cat] = entries
		lex.index[cat] = idx
	}
	return lex
}

// Entries returns the frozen entry list for a category.
// The returned slice must not be modified.
func (l *Lexicon) Entries(cat Category) []Entry {
	return l.entries[cat]
}

// Weight looks up the weight of a term within a category.
func (l *Lexicon) Weight(cat Category, term string) (float64, bool) {
	w, ok := l.index[cat][term]
	return w, ok
}

// Size returns the number of terms in a category.
func (l *Lexicon) Size(cat Category) int {
	return len(l.entries[cat])
}

// TotalTerms returns the number of terms across all categories.
func (l *Lexicon) TotalTerms() int {
	total := 0
	for _, cat := range Categories {
		total += len(l.entries[cat])
	}
	return total
}

// yamlFile mirrors the on-disk YAML lexicon format:
//
//	categories:
//	  O:
//	    curious: 1.22
//	    work of art: 0.84
//	  N:
//	    anxious: 1.05
type yamlFile struct {
	Categories map[string]map[string]float64 `yaml:"categories"`
}

// ParseYAML builds a Lexicon from YAML lexicon data.
func ParseYAML(data []byte) (*Lexicon, error) {
	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse lexicon yaml: %w", err)
	}
	if len(file.Categories) == 0 {
		return nil, internalerr.ErrEmptyLexicon
	}

	builder := NewBuilder()
	for name, terms := range file.Categories {
		cat := Category(strings.ToUpper(strings.TrimSpace(name)))
		for term, weight := range terms {
			if err := builder.Add(cat, term, weight); err != nil {
				return nil, err
			}
		}
	}
	return builder.Build(), nil
}

// LoadFromYAML loads a lexicon from a YAML file.
func LoadFromYAML(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseYAML(data)
}
