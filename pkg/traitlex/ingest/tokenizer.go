package ingest

import (
	"strings"
	"unicode"
)

// Normalize lowercases and trims text ahead of tokenization. All matching
// downstream is exact string equality on normalized terms, so this is the
// single place case folding happens.
func Normalize(text string) string {
	return strings.TrimSpace(strings.ToLower(text))
}

// Tokenize splits normalized text into word tokens. A token is a run of
// letters, digits, apostrophes, or interior hyphens; everything else is a
// separator. Unlike stopword-filtering tokenizers, every word counts here:
// the baseline wordcount feeds frequency scoring and must include function
// words.
func Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := strings.Trim(current.String(), "-'")
		if word != "" {
			tokens = append(tokens, word)
		}
		current.Reset()
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '\'' {
			current.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()

	return tokens
}
