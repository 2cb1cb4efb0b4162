package ingest

import (
	"strings"
	"unicode"
)

// gbToUS maps British spelling variants to the American forms used by the
// lexicon data. Only whole words are translated; substrings are never
// touched ("colour" maps, "colourful" stays).
var gbToUS = map[string]string{
	"analyse":      "analyze",
	"analysed":     "analyzed",
	"analysing":    "analyzing",
	"apologise":    "apologize",
	"behaviour":    "behavior",
	"behaviours":   "behaviors",
	"catalogue":    "catalog",
	"centre":       "center",
	"centres":      "centers",
	"cheque":       "check",
	"colour":       "color",
	"coloured":     "colored",
	"colours":      "colors",
	"criticise":    "criticize",
	"criticised":   "criticized",
	"defence":      "defense",
	"dialogue":     "dialog",
	"favour":       "favor",
	"favourite":    "favorite",
	"favourites":   "favorites",
	"fibre":        "fiber",
	"flavour":      "flavor",
	"flavours":     "flavors",
	"grey":         "gray",
	"honour":       "honor",
	"humour":       "humor",
	"jewellery":    "jewelry",
	"labelled":     "labeled",
	"labour":       "labor",
	"licence":      "license",
	"litre":        "liter",
	"metre":        "meter",
	"modelling":    "modeling",
	"neighbour":    "neighbor",
	"neighbours":   "neighbors",
	"offence":      "offense",
	"organisation": "organization",
	"organise":     "organize",
	"organised":    "organized",
	"practise":     "practice",
	"programme":    "program",
	"realise":      "realize",
	"realised":     "realized",
	"recognise":    "recognize",
	"recognised":   "recognized",
	"rumour":       "rumor",
	"theatre":      "theater",
	"travelled":    "traveled",
	"travelling":   "traveling",
	"tyre":         "tire",
	"valour":       "valor",
	"vigour":       "vigor",
}

// TranslateGB rewrites British spelling variants in normalized text to their
// American forms, preserving all separators. Words without a mapping pass
// through unchanged.
func TranslateGB(text string) string {
	var out strings.Builder
	out.Grow(len(text))
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := current.String()
		if us, ok := gbToUS[word]; ok {
			out.WriteString(us)
		} else {
			out.WriteString(word)
		}
		current.Reset()
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '\'' {
			current.WriteRune(r)
		} else {
			flush()
			out.WriteRune(r)
		}
	}
	flush()

	return out.String()
}
