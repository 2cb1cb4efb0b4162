package ingest

import "strings"

// NGrams generates space-joined n-grams of window size n from the original
// normalized string. The string is re-scanned rather than reusing a caller's
// token list, so n-gram boundaries always reflect the source text.
// Returns nil when n < 2 or the text has fewer than n words.
func NGrams(text string, n int) []string {
	if n < 2 {
		return nil
	}
	words := Tokenize(text)
	if len(words) < n {
		return nil
	}

	grams := make([]string, 0, len(words)-n+1)
	for i := 0; i+n <= len(words); i++ {
		grams = append(grams, strings.Join(words[i:i+n], " "))
	}
	return grams
}
