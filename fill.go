package main

import (
	"math/rand"
	"time"
)

// FillOptions bounds a single fill attempt: how hard the search may work
// and how it should be cancelled once that budget runs out.
type FillOptions struct {
	NodeBudget int           // hard cap on nodes expanded; 0 = default 200000
	TimeBudget time.Duration // hard cap on wall-clock time; 0 = default 10s
	Jitter     float64       // candidate-order jitter magnitude, [0,1); 0 = none
	Rng        *rand.Rand    // attempt-private RNG; nil = deterministic order
}

func (o FillOptions) withDefaults() FillOptions {
	if o.NodeBudget == 0 {
		o.NodeBudget = 200000
	}
	if o.TimeBudget == 0 {
		o.TimeBudget = 10 * time.Second
	}
	return o
}

// fillState tracks the DFS outcome: assigning while the search is in
// progress, success once every slot is assigned, failed when the root is
// exhausted or a budget is exceeded.
type fillState int

const (
	assigning fillState = iota
	success
	failed
)

// FillEngine assigns a word to every slot of a SlotGraph such that every
// crossing agrees and no word repeats, via depth-first search with
// chronological backtracking, most-constrained-slot selection, and
// forward-checking cross-slot pruning.
type FillEngine struct {
	lexicon *Lexicon
	opts    FillOptions
}

func NewFillEngine(lexicon *Lexicon, opts FillOptions) *FillEngine {
	return &FillEngine{lexicon: lexicon, opts: opts.withDefaults()}
}

// Fill attempts a complete legal assignment on grid (which it mutates in
// place on success) using the slot graph sg. Returns a FillError on
// failure; the grid is left unchanged on failure, since letters are written
// only once the search has succeeded.
func (fe *FillEngine) Fill(grid *Grid, sg *SlotGraph) error {
	assignment := make(map[*Slot]string, len(sg.Slots))
	used := make(map[string]bool, len(sg.Slots))
	deadline := time.Now().Add(fe.opts.TimeBudget)
	nodes := 0

	state := fe.search(grid, sg, assignment, used, &nodes, deadline)
	if state != success {
		return &FillError{Msg: "DFS search exhausted", Attempts: 1}
	}

	for s, word := range assignment {
		for i, rc := range s.Cells {
			grid.Cells[rc[0]][rc[1]].Letter = letterPtr(word[i])
		}
	}
	return nil
}

// search is the recursive DFS core. It never mutates grid; candidate
// patterns are derived from the assignment map so backtracking is free.
func (fe *FillEngine) search(grid *Grid, sg *SlotGraph, assignment map[*Slot]string, used map[string]bool, nodes *int, deadline time.Time) fillState {
	*nodes++
	if *nodes > fe.opts.NodeBudget || time.Now().After(deadline) {
		return failed
	}

	slot := fe.selectSlot(sg, assignment, used)
	if slot == nil {
		return success // every slot assigned
	}

	pattern := fe.currentPattern(sg, slot, assignment)
	candidates := fe.lexicon.Query(slot.Length, pattern)
	candidates = orderCandidates(candidates, fe.opts.Rng, fe.opts.Jitter)

	for _, cand := range candidates {
		if used[cand.Word] {
			continue
		}

		assignment[slot] = cand.Word
		used[cand.Word] = true

		if fe.forwardCheckOK(sg, slot, assignment, used) {
			if st := fe.search(grid, sg, assignment, used, nodes, deadline); st == success {
				return success
			}
		}

		delete(assignment, slot)
		delete(used, cand.Word)

		if time.Now().After(deadline) {
			return failed
		}
	}

	return failed
}

// selectSlot implements the most-constrained-first heuristic: among
// unassigned slots, pick the one with the fewest consistent lexicon
// candidates; ties broken by higher crossing count, then by a stable
// identity order (slot index in sg.Slots) for determinism.
func (fe *FillEngine) selectSlot(sg *SlotGraph, assignment map[*Slot]string, used map[string]bool) *Slot {
	var best *Slot
	bestCount := -1
	bestCrossings := -1

	for _, s := range sg.Slots {
		if _, ok := assignment[s]; ok {
			continue
		}
		pattern := fe.currentPattern(sg, s, assignment)
		count := fe.lexicon.CountMatches(s.Length, pattern, used)
		crossings := len(sg.CrossingsFor(s))

		if best == nil ||
			count < bestCount ||
			(count == bestCount && crossings > bestCrossings) {
			best = s
			bestCount = count
			bestCrossings = crossings
		}
	}
	return best
}

// currentPattern builds a slot's letter pattern from the in-progress
// assignment (not from the grid, which the search never mutates), using
// sg's adjacency list to find which crossing slots constrain it.
func (fe *FillEngine) currentPattern(sg *SlotGraph, s *Slot, assignment map[*Slot]string) []byte {
	pattern := make([]byte, s.Length)
	for _, cr := range sg.CrossingsFor(s) {
		other, myOff, otherOff := cr.OtherSlot(s)
		if word, ok := assignment[other]; ok {
			pattern[myOff] = word[otherOff]
		}
	}
	return pattern
}

// forwardCheckOK re-queries the lexicon for every crossing slot's updated
// pattern after slot's tentative assignment; if any crossing slot's
// candidate count drops to zero, the assignment is rejected without
// recursing.
func (fe *FillEngine) forwardCheckOK(sg *SlotGraph, slot *Slot, assignment map[*Slot]string, used map[string]bool) bool {
	for _, cr := range sg.CrossingsFor(slot) {
		other, _, _ := cr.OtherSlot(slot)
		if _, ok := assignment[other]; ok {
			continue // already assigned, nothing to check
		}
		pattern := fe.currentPattern(sg, other, assignment)
		if fe.lexicon.CountMatches(other.Length, pattern, used) == 0 {
			return false
		}
	}
	return true
}

// orderCandidates applies optional randomized jitter to score order for
// retry diversity while remaining deterministic under a fixed seed.
func orderCandidates(candidates []LexiconEntry, rng *rand.Rand, jitter float64) []LexiconEntry {
	if rng == nil || jitter <= 0 || len(candidates) < 2 {
		return candidates
	}
	type scored struct {
		entry LexiconEntry
		key   float64
	}
	tmp := make([]scored, len(candidates))
	for i, e := range candidates {
		tmp[i] = scored{entry: e, key: e.Score + rng.Float64()*jitter}
	}
	for i := 1; i < len(tmp); i++ {
		for j := i; j > 0 && tmp[j].key > tmp[j-1].key; j-- {
			tmp[j], tmp[j-1] = tmp[j-1], tmp[j]
		}
	}
	out := make([]LexiconEntry, len(tmp))
	for i, s := range tmp {
		out[i] = s.entry
	}
	return out
}
