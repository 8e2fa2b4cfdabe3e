package main

import "testing"

type fakeSemantic struct {
	defs map[string]string
}

func (f fakeSemantic) Define(word string) (string, bool) {
	d, ok := f.defs[word]
	return d, ok
}

func TestIsClueableDirectBank(t *testing.T) {
	bank := map[string]string{"CAT": "feline pet"}
	if !isClueable("CAT", bank, nil) {
		t.Fatal("direct bank entry must be clueable")
	}
}

func TestIsClueableInflection(t *testing.T) {
	bank := map[string]string{"CAT": "feline pet"}
	if !isClueable("CATS", bank, nil) {
		t.Fatal("plural of a bank word must be clueable via inflection")
	}
}

func TestIsClueableSemanticFallback(t *testing.T) {
	bank := map[string]string{}
	sem := fakeSemantic{defs: map[string]string{"ZEBRA": "striped equine"}}
	if !isClueable("ZEBRA", bank, sem) {
		t.Fatal("semantic dictionary hit must count as clueable")
	}
}

func TestIsClueableFalseWithoutAnySource(t *testing.T) {
	if isClueable("QWERTY", map[string]string{}, nil) {
		t.Fatal("word with no bank, inflection, or semantic hit must not be clueable")
	}
}

func TestInflectionBaseIng(t *testing.T) {
	bank := map[string]string{"BAKE": "make bread"}
	if c, ok := inflectionBase("BAKING", bank); !ok || c != "make bread" {
		t.Fatalf("got (%q, %v)", c, ok)
	}
}

func TestAutoCluePlural(t *testing.T) {
	bank := map[string]string{"DOG": "Loyal friend"}
	got := autoClue("DOGS", bank, nil)
	want := "Loyal friend, pl."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAutoClueFallsBackToSemantic(t *testing.T) {
	sem := fakeSemantic{defs: map[string]string{"ORBIT": "planetary path"}}
	got := autoClue("ORBIT", map[string]string{}, sem)
	if got != "planetary path" {
		t.Fatalf("got %q", got)
	}
}

func TestAutoClueBareFallback(t *testing.T) {
	got := autoClue("XYZZY", map[string]string{}, nil)
	if got != "Clue for XYZZY" {
		t.Fatalf("got %q", got)
	}
}
