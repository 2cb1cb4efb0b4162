package ingest

import "testing"

func TestTranslateGB(t *testing.T) {
	got := TranslateGB("my favourite colour is grey")
	want := "my favorite color is gray"
	if got != want {
		t.Errorf("TranslateGB = %q, want %q", got, want)
	}
}

func TestTranslateGBPreservesSeparators(t *testing.T) {
	got := TranslateGB("colour, behaviour; and humour!")
	want := "color, behavior; and humor!"
	if got != want {
		t.Errorf("TranslateGB = %q, want %q", got, want)
	}
}

func TestTranslateGBWholeWordsOnly(t *testing.T) {
	// "colourful" has no mapping and must pass through untouched
	got := TranslateGB("a colourful scene")
	if got != "a colourful scene" {
		t.Errorf("TranslateGB = %q, unmapped words must pass through", got)
	}
}

func TestTranslateGBNoVariants(t *testing.T) {
	in := "plain american text"
	if got := TranslateGB(in); got != in {
		t.Errorf("TranslateGB = %q, want unchanged input", got)
	}
}
