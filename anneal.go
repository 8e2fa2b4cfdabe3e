package main

import (
	"math"
	"math/rand"
)

// anneal is the simulated-annealing refinement pass of SPEC_FULL.md §5.7,
// ported from grid_placer.py's SA loop inside _single_attempt: alternately
// remove a spatial cluster or a length-weighted random sample of placed
// words, re-run the greedy fill, and accept the result via a Metropolis
// criterion on the change in placed-word count. The best snapshot seen is
// always kept, so this can only improve on the greedy baseline.
func anneal(sorted []ClueEntry, placed []PlacedEntry, working workingGrid, placedAnswers map[string]bool, reserved map[[2]int]bool, size int, opts PlacerOptions, rng *rand.Rand) ([]PlacedEntry, workingGrid, map[string]bool) {
	const iterations = 200
	const tempStart = 6.0
	const tempEnd = 0.05

	bestPlaced := clonePlaced(placed)
	bestWorking := cloneWorking(working)
	bestAnswers := cloneAnswers(placedAnswers)
	bestCount := len(placed)

	for iter := 0; iter < iterations; iter++ {
		temp := tempStart * math.Pow(tempEnd/tempStart, float64(iter)/float64(maxI(iterations-1, 1)))

		removable := removableEntries(placed)
		if len(removable) < 3 {
			break
		}

		var toRemove []PlacedEntry
		if iter%3 == 0 {
			toRemove = clusterRemove(removable, rng, size)
		} else {
			k := rng.Intn(5) + 3
			if k > len(removable) {
				k = len(removable)
			}
			weights := make([]float64, len(removable))
			for i, p := range removable {
				weights[i] = math.Pow(float64(len(p.Answer)), 2.0)
			}
			toRemove = weightedSample(removable, weights, k, rng)
		}

		savedWorking := cloneWorking(working)
		savedPlaced := clonePlaced(placed)
		savedAnswers := cloneAnswers(placedAnswers)

		for _, p := range toRemove {
			removeWord(p, placed, working)
			placed = removeFromPlaced(placed, p)
			delete(placedAnswers, p.Answer)
		}

		greedyFill(sorted, working, size, &placed, placedAnswers, opts.Symmetry, reserved, rng, 2, 3)

		delta := len(placed) - len(savedPlaced)
		accept := delta > 0 || (delta >= -1 && rng.Float64() < math.Exp(float64(delta)/math.Max(temp, 0.01)))

		if accept {
			if len(placed) > bestCount {
				bestPlaced = clonePlaced(placed)
				bestWorking = cloneWorking(working)
				bestAnswers = cloneAnswers(placedAnswers)
				bestCount = len(placed)
			}
		} else {
			working = savedWorking
			placed = savedPlaced
			placedAnswers = savedAnswers
		}
	}

	return bestPlaced, bestWorking, bestAnswers
}

// removableEntries excludes the seed word (index 0) from removal, mirroring
// grid_placer.py's `p is not placed[0]` rule.
func removableEntries(placed []PlacedEntry) []PlacedEntry {
	if len(placed) == 0 {
		return nil
	}
	return placed[1:]
}

func clusterRemove(removable []PlacedEntry, rng *rand.Rand, size int) []PlacedEntry {
	pivot := removable[rng.Intn(len(removable))]
	pdr, pdc := stepFor(pivot.Direction)
	pr := pivot.Row + pdr*len(pivot.Answer)/2
	pc := pivot.Col + pdc*len(pivot.Answer)/2
	radius := rng.Intn(3) + 3

	var nearby []PlacedEntry
	for _, p := range removable {
		dr, dc := stepFor(p.Direction)
		mr := p.Row + dr*len(p.Answer)/2
		mc := p.Col + dc*len(p.Answer)/2
		if absInt(mr-pr)+absInt(mc-pc) <= radius {
			nearby = append(nearby, p)
		}
	}

	k := rng.Intn(6) + 3
	if k > len(nearby) {
		k = len(nearby)
	}
	return nearby[:k]
}

func weightedSample(items []PlacedEntry, weights []float64, k int, rng *rand.Rand) []PlacedEntry {
	pool := make([]PlacedEntry, len(items))
	copy(pool, items)
	poolW := make([]float64, len(weights))
	copy(poolW, weights)

	var selected []PlacedEntry
	for i := 0; i < k && len(pool) > 0; i++ {
		total := 0.0
		for _, w := range poolW {
			total += w
		}
		if total <= 0 {
			break
		}
		r := rng.Float64() * total
		cum := 0.0
		for idx, w := range poolW {
			cum += w
			if cum >= r {
				selected = append(selected, pool[idx])
				pool = append(pool[:idx], pool[idx+1:]...)
				poolW = append(poolW[:idx], poolW[idx+1:]...)
				break
			}
		}
	}
	return selected
}

// removeWord clears entry's cells from working, except cells shared with
// another still-placed word.
func removeWord(entry PlacedEntry, allPlaced []PlacedEntry, working workingGrid) {
	shared := make(map[[2]int]bool)
	for _, other := range allPlaced {
		if sameEntry(other, entry) {
			continue
		}
		odr, odc := stepFor(other.Direction)
		for i := 0; i < len(other.Answer); i++ {
			shared[[2]int{other.Row + odr*i, other.Col + odc*i}] = true
		}
	}

	dr, dc := stepFor(entry.Direction)
	for i := 0; i < len(entry.Answer); i++ {
		r, c := entry.Row+dr*i, entry.Col+dc*i
		if !shared[[2]int{r, c}] {
			working[r][c] = 0
		}
	}
}

func sameEntry(a, b PlacedEntry) bool {
	return a.Answer == b.Answer && a.Row == b.Row && a.Col == b.Col && a.Direction == b.Direction
}

func removeFromPlaced(placed []PlacedEntry, target PlacedEntry) []PlacedEntry {
	out := placed[:0:0]
	for _, p := range placed {
		if sameEntry(p, target) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func clonePlaced(placed []PlacedEntry) []PlacedEntry {
	out := make([]PlacedEntry, len(placed))
	copy(out, placed)
	return out
}

func cloneWorking(working workingGrid) workingGrid {
	out := make(workingGrid, len(working))
	for i, row := range working {
		out[i] = make([]byte, len(row))
		copy(out[i], row)
	}
	return out
}

func cloneAnswers(answers map[string]bool) map[string]bool {
	out := make(map[string]bool, len(answers))
	for k, v := range answers {
		out[k] = v
	}
	return out
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func maxI(a, b int) int {
	if a > b {
		return a
	}
	return b
}
