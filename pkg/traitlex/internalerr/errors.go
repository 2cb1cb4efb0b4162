package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyLexicon    = errors.New("empty lexicon")
	ErrUnknownCategory = errors.New("unknown trait category")
)
