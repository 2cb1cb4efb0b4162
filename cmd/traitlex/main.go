// Command traitlex scores a text file (or stdin) against a Big Five
// lexicon and prints a JSON report.
//
// The lexicon can come from a YAML file, a SQLite pack (see cmd/lexpack),
// or the embedded seed lexicon when no path is given. HTML input is
// supported via -html, which extracts the visible text before analysis.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/traitlex/data"
	"github.com/cognicore/traitlex/pkg/traitlex"
	"github.com/cognicore/traitlex/pkg/traitlex/lexicon"
)

type report struct {
	ID          string          `json:"id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Input       string          `json:"input"`
	Result      traitlex.Result `json:"result"`
}

// optionsFile is the YAML form of traitlex.Options used by -options.
// Pointer fields distinguish "absent" from zero values.
type optionsFile struct {
	Encoding   *string            `yaml:"encoding"`
	Min        *float64           `yaml:"min"`
	Max        *float64           `yaml:"max"`
	NGrams     *[]int             `yaml:"ngrams"`
	WCGrams    *bool              `yaml:"wc_grams"`
	Output     *string            `yaml:"output"`
	Places     *int               `yaml:"places"`
	SortBy     *string            `yaml:"sort_by"`
	Locale     *string            `yaml:"locale"`
	Intercepts map[string]float64 `yaml:"intercepts"`
}

func main() {
	var (
		input       = flag.String("input", "-", "Input text file, or - for stdin")
		htmlInput   = flag.Bool("html", false, "Treat input as HTML and extract visible text")
		lexiconPath = flag.String("lexicon", "", "Lexicon file (.yaml or .db/.sqlite); embedded seed lexicon when empty")
		optionsPath = flag.String("options", "", "Optional YAML options file")
		encoding    = flag.String("encoding", "", "Scoring encoding: binary, frequency, or percent")
		minWeight   = flag.String("min", "", "Minimum lexicon weight to match")
		maxWeight   = flag.String("max", "", "Maximum lexicon weight to match")
		ngrams      = flag.String("ngrams", "", "N-gram windows, e.g. 2,3 (or 'off')")
		wcGrams     = flag.Bool("wc-grams", false, "Count n-grams toward the wordcount")
		output      = flag.String("output", "", "Result shape: lex, matches, or full")
		places      = flag.Int("places", -1, "Decimal rounding precision")
		sortBy      = flag.String("sort", "", "Match ordering: freq, weight, or lex")
		locale      = flag.String("locale", "", "Input locale: US or GB")
	)
	flag.Parse()

	opts := traitlex.Options{}
	if *optionsPath != "" {
		loaded, err := loadOptionsFile(*optionsPath)
		if err != nil {
			log.Fatalf("load options: %v", err)
		}
		opts = loaded
	}
	applyFlagOverrides(&opts, *encoding, *minWeight, *maxWeight, *ngrams, *wcGrams, *output, *places, *sortBy, *locale)

	lex, err := loadLexicon(*lexiconPath)
	if err != nil {
		log.Fatalf("load lexicon: %v", err)
	}

	text, err := readInput(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	if *htmlInput {
		text = extractText(text)
	}

	analyzer := traitlex.New(lex)
	result := analyzer.Analyze(text, opts)

	for _, warning := range result.Warnings {
		log.Printf("warning: %s", warning)
	}

	rep := report{
		ID:          ulid.Make().String(),
		GeneratedAt: time.Now().UTC(),
		Input:       *input,
		Result:      result,
	}

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}
	fmt.Println(string(out))
}

func loadLexicon(path string) (*lexicon.Lexicon, error) {
	if path == "" {
		return lexicon.ParseYAML(data.SeedLexicon)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return lexicon.OpenSQLite(context.Background(), path)
	default:
		return lexicon.LoadFromYAML(path)
	}
}

func readInput(path string) (string, error) {
	if path == "-" {
		buf, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(buf), nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// extractText returns the visible text of an HTML document, skipping
// script and style subtrees.
func extractText(src string) string {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		// Fall back to the raw input; the tokenizer drops markup noise
		return src
	}

	var out strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			out.WriteString(n.Data)
			out.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out.String()
}

func loadOptionsFile(path string) (traitlex.Options, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return traitlex.Options{}, err
	}

	var file optionsFile
	if err := yaml.Unmarshal(buf, &file); err != nil {
		return traitlex.Options{}, fmt.Errorf("parse options yaml: %w", err)
	}

	opts := traitlex.Options{
		Min: file.Min,
		Max: file.Max,
	}
	if file.Encoding != nil {
		opts.Encoding = *file.Encoding
	}
	if file.NGrams != nil {
		opts.NGrams = *file.NGrams
		if opts.NGrams == nil {
			opts.NGrams = []int{}
		}
	}
	if file.WCGrams != nil {
		opts.WCGrams = *file.WCGrams
	}
	if file.Output != nil {
		opts.Output = *file.Output
	}
	opts.Places = file.Places
	if file.SortBy != nil {
		opts.SortBy = *file.SortBy
	}
	if file.Locale != nil {
		opts.Locale = *file.Locale
	}
	if len(file.Intercepts) > 0 {
		opts.Intercepts = make(map[lexicon.Category]float64, len(file.Intercepts))
		for name, v := range file.Intercepts {
			opts.Intercepts[lexicon.Category(strings.ToUpper(name))] = v
		}
	}
	return opts, nil
}

func applyFlagOverrides(opts *traitlex.Options, encoding, minWeight, maxWeight, ngrams string, wcGrams bool, output string, places int, sortBy, locale string) {
	if encoding != "" {
		opts.Encoding = encoding
	}
	if minWeight != "" {
		v, err := strconv.ParseFloat(minWeight, 64)
		if err != nil {
			log.Fatalf("parse -min: %v", err)
		}
		opts.Min = &v
	}
	if maxWeight != "" {
		v, err := strconv.ParseFloat(maxWeight, 64)
		if err != nil {
			log.Fatalf("parse -max: %v", err)
		}
		opts.Max = &v
	}
	if ngrams != "" {
		opts.NGrams = parseWindows(ngrams)
	}
	if wcGrams {
		opts.WCGrams = true
	}
	if output != "" {
		opts.Output = output
	}
	if places >= 0 {
		opts.Places = &places
	}
	if sortBy != "" {
		opts.SortBy = sortBy
	}
	if locale != "" {
		opts.Locale = locale
	}
}

func parseWindows(spec string) []int {
	if strings.EqualFold(spec, "off") {
		return []int{}
	}
	var windows []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			log.Fatalf("parse -ngrams: %v", err)
		}
		windows = append(windows, n)
	}
	return windows
}
