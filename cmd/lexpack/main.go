// Command lexpack converts a YAML lexicon into a SQLite pack for
// distribution. Packs are read back with lexicon.OpenSQLite.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/cognicore/traitlex/pkg/traitlex/lexicon"
)

func main() {
	var (
		in  = flag.String("in", "", "Input lexicon YAML file (required)")
		out = flag.String("out", "", "Output SQLite pack path (required)")
	)
	flag.Parse()

	if *in == "" {
		log.Fatal("--in required")
	}
	if *out == "" {
		log.Fatal("--out required")
	}

	lex, err := lexicon.LoadFromYAML(*in)
	if err != nil {
		log.Fatalf("load lexicon: %v", err)
	}

	ctx := context.Background()
	if err := lexicon.WritePack(ctx, *out, lex); err != nil {
		log.Fatalf("write pack: %v", err)
	}

	log.Printf("wrote %d terms to %s", lex.TotalTerms(), *out)
}
