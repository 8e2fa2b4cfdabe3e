package main

import (
	"math/rand"
	"testing"
)

func TestRemovableEntriesExcludesSeed(t *testing.T) {
	placed := []PlacedEntry{
		{ClueEntry: ClueEntry{Answer: "SEED"}},
		{ClueEntry: ClueEntry{Answer: "ONE"}},
		{ClueEntry: ClueEntry{Answer: "TWO"}},
	}
	removable := removableEntries(placed)
	if len(removable) != 2 {
		t.Fatalf("expected 2 removable entries, got %d", len(removable))
	}
	for _, p := range removable {
		if p.Answer == "SEED" {
			t.Fatal("the seed entry (index 0) must never be removable")
		}
	}
}

func TestRemoveWordKeepsSharedCells(t *testing.T) {
	working := newWorkingGrid(10)
	placeOnGrid("CAT", 3, 3, Across, working)
	placeOnGrid("COD", 3, 3, Down, working)

	all := []PlacedEntry{
		{ClueEntry: ClueEntry{Answer: "CAT"}, Row: 3, Col: 3, Direction: Across},
		{ClueEntry: ClueEntry{Answer: "COD"}, Row: 3, Col: 3, Direction: Down},
	}
	removeWord(all[0], all, working)

	if working[3][3] == 0 {
		t.Fatal("the shared crossing cell must survive since COD still occupies it")
	}
	if working[3][4] != 0 {
		t.Fatal("CAT's non-shared cell must be cleared")
	}
}

func TestCloneWorkingIsIndependent(t *testing.T) {
	working := newWorkingGrid(3)
	working[0][0] = 'A'

	clone := cloneWorking(working)
	clone[0][0] = 'B'

	if working[0][0] != 'A' {
		t.Fatal("mutating the clone affected the original working grid")
	}
}

func TestWeightedSampleRespectsCount(t *testing.T) {
	items := []PlacedEntry{
		{ClueEntry: ClueEntry{Answer: "AAA"}},
		{ClueEntry: ClueEntry{Answer: "BBB"}},
		{ClueEntry: ClueEntry{Answer: "CCC"}},
	}
	weights := []float64{1, 1, 1}
	rng := rand.New(rand.NewSource(1))

	sample := weightedSample(items, weights, 2, rng)
	if len(sample) != 2 {
		t.Fatalf("expected a sample of 2, got %d", len(sample))
	}
	seen := make(map[string]bool)
	for _, p := range sample {
		if seen[p.Answer] {
			t.Fatal("weightedSample must not return duplicates")
		}
		seen[p.Answer] = true
	}
}
