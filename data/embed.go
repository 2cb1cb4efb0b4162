// Package data embeds the seed lexicon shipped with the module.
package data

import _ "embed"

//go:embed lexicon.yaml
var SeedLexicon []byte
