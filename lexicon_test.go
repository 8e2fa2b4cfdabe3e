package main

import (
	"strings"
	"testing"
)

func TestNormalizeWord(t *testing.T) {
	cases := map[string]string{
		"cat":    "CAT",
		"C-A*T!": "CAT",
		"a":      "",
		"":       "",
	}
	for in, want := range cases {
		if got := normalizeWord(in); got != want {
			t.Errorf("normalizeWord(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseWordBank(t *testing.T) {
	r := strings.NewReader("CAT\tFeline pet\n# comment\n\nDOG\tLoyal friend\n")
	bank, err := ParseWordBank(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bank["CAT"] != "Feline pet" || bank["DOG"] != "Loyal friend" {
		t.Fatalf("unexpected bank: %v", bank)
	}
}

// TestDuplicateWordScoreCollapse checks that a word appearing in both the
// bank and the dictionary keeps only the higher-scored entry.
func TestDuplicateWordScoreCollapse(t *testing.T) {
	bank := map[string]string{"ABC": "some clue"}
	dictionary := []string{"abc", "abc"}

	lx, err := BuildLexicon(bank, dictionary, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := lx.Query(3, []byte{0, 0, 0})
	count := 0
	for _, e := range entries {
		if e.Word == "ABC" {
			count++
			if e.Score != 1.0 {
				t.Fatalf("expected score 1.0, got %v", e.Score)
			}
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one ABC entry, got %d", count)
	}
}

func TestQueryFiltersByPattern(t *testing.T) {
	bank := map[string]string{"CAT": "feline", "CAR": "vehicle", "BAT": "flyer"}
	lx, err := BuildLexicon(bank, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	matches := lx.Query(3, []byte{'C', 0, 'T'})
	if len(matches) != 1 || matches[0].Word != "CAT" {
		t.Fatalf("expected only CAT, got %v", matches)
	}
}

func TestBuildLexiconDropsUnclueableDictionaryWords(t *testing.T) {
	bank := map[string]string{"CAT": "feline"}
	dictionary := []string{"ZZZQX"}

	lx, err := BuildLexicon(bank, dictionary, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lx.Query(5, make([]byte, 5))) != 0 {
		t.Fatal("unclueable dictionary word must be dropped")
	}
}

func TestBuildLexiconFailsWithNoClueableEntries(t *testing.T) {
	_, err := BuildLexicon(map[string]string{}, []string{"ZZZQX"}, nil)
	if _, ok := err.(*LexiconError); !ok {
		t.Fatalf("expected LexiconError, got %v", err)
	}
}

func TestCountMatchesMatchesQueryLength(t *testing.T) {
	bank := map[string]string{"CAT": "feline"}
	lx, _ := BuildLexicon(bank, nil, nil)
	if got := lx.CountMatches(3, []byte{0, 0, 0}, nil); got != 1 {
		t.Fatalf("expected 1 match, got %d", got)
	}
}

func TestCountMatchesExcludesUsedWords(t *testing.T) {
	bank := map[string]string{"CAT": "feline", "COD": "fish"}
	lx, _ := BuildLexicon(bank, nil, nil)
	used := map[string]bool{"CAT": true}
	if got := lx.CountMatches(3, []byte{0, 0, 0}, used); got != 1 {
		t.Fatalf("expected 1 match with CAT excluded, got %d", got)
	}
}
