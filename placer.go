package main

import (
	"math"
	"math/rand"
	"sort"
)

// PlacerOptions configures the XLSX-mode greedy placement path.
type PlacerOptions struct {
	GridSize         int
	Seed             int64
	Retries          int  // default 20, raised to 40 when Symmetry is set
	Symmetry         bool
	MinWords         int // default 30; below this the best attempt is a PlacementError
	DisableAnnealing bool
}

func (o PlacerOptions) withDefaults() PlacerOptions {
	if o.Retries == 0 {
		o.Retries = 20
	}
	if o.Symmetry && o.Retries < 40 {
		o.Retries = 40
	}
	if o.MinWords == 0 {
		o.MinWords = 30
	}
	return o
}

// ComputeGridSize estimates a grid size from clueCount using the same
// empirical formula as grid_placer.py's compute_grid_size (words_placed ~=
// 0.175 * size^2, rounded to the nearest odd number, minimum 15), but feeds
// the actual clue count into it rather than grid_placer.py's fixed
// target_words=65 constant, so the size scales with the input list instead
// of always landing on 19. A deliberate deviation, not a straight port.
func ComputeGridSize(clueCount int) int {
	if clueCount == 0 {
		return 15
	}
	raw := math.Sqrt(float64(clueCount) / 0.175)
	size := int(math.Round(raw))
	if size < 15 {
		size = 15
	}
	if size%2 == 0 {
		size++
	}
	return size
}

type workingGrid [][]byte // 0 = empty, else the placed letter

func newWorkingGrid(size int) workingGrid {
	g := make(workingGrid, size)
	for r := range g {
		g[r] = make([]byte, size)
	}
	return g
}

type placerStats struct {
	wordCount     int
	intersections int
	compactness   float64
}

// PlaceWords runs Retries placement attempts and returns the best one.
// Raises a PlacementError if the best attempt places fewer than MinWords
// entries.
func PlaceWords(clues []ClueEntry, opts PlacerOptions) ([]PlacedEntry, error) {
	opts = opts.withDefaults()
	if opts.GridSize == 0 {
		opts.GridSize = ComputeGridSize(len(clues))
	}

	rootRng := rand.New(rand.NewSource(opts.Seed))

	var best []PlacedEntry
	var bestStats placerStats
	haveBest := false

	for i := 0; i < opts.Retries; i++ {
		attemptSeed := rootRng.Int63()
		attemptRng := rand.New(rand.NewSource(attemptSeed))
		placed, stats := singleAttempt(clues, opts, attemptRng)
		if !haveBest || compareAttempts(stats, bestStats) > 0 {
			best, bestStats, haveBest = placed, stats, true
		}
	}

	if len(best) < opts.MinWords {
		return nil, &PlacementError{Placed: len(best), Minimum: opts.MinWords}
	}
	return best, nil
}

// singleAttempt runs the greedy forward placement pass, optionally followed
// by a simulated-annealing refinement (grounded on grid_placer.py's
// _single_attempt).
func singleAttempt(clues []ClueEntry, opts PlacerOptions, rng *rand.Rand) ([]PlacedEntry, placerStats) {
	size := opts.GridSize
	working := newWorkingGrid(size)
	reserved := make(map[[2]int]bool)
	var placed []PlacedEntry
	placedAnswers := make(map[string]bool)

	sorted := make([]ClueEntry, len(clues))
	copy(sorted, clues)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i].Answer) < len(sorted[j].Answer) })

	seed := pickSeedWord(clues, sorted, rng)
	center := size / 2
	firstCol := (size - len(seed.Answer)) / 2
	if firstCol < 0 {
		firstCol = 0
	}
	placeWord(seed, center, firstCol, Across, working, &placed, placedAnswers, opts.Symmetry, size, reserved)

	greedyFill(sorted, working, size, &placed, placedAnswers, opts.Symmetry, reserved, rng, 3, 5)

	if !opts.DisableAnnealing {
		placed, working, placedAnswers = anneal(sorted, placed, working, placedAnswers, reserved, size, opts, rng)
	}

	stats := placerStats{
		wordCount:     len(placed),
		intersections: totalIntersections(placed),
		compactness:   compactness(working, size),
	}
	return placed, stats
}

func pickSeedWord(clues, sorted []ClueEntry, rng *rand.Rand) ClueEntry {
	var mid []ClueEntry
	for _, c := range clues {
		if len(c.Answer) >= 5 && len(c.Answer) <= 7 {
			mid = append(mid, c)
		}
	}
	if len(mid) == 0 {
		mid = sorted[len(sorted)/2:]
	}
	return mid[rng.Intn(len(mid))]
}

// candidate is a scored placement option for one answer.
type candidate struct {
	row, col      int
	direction     Direction
	intersections int
}

func greedyFill(sorted []ClueEntry, working workingGrid, size int, placed *[]PlacedEntry, placedAnswers map[string]bool, symmetry bool, reserved map[[2]int]bool, rng *rand.Rand, maxStale, topK int) {
	stale := 0
	for stale < maxStale {
		var remaining []ClueEntry
		for _, c := range sorted {
			if !placedAnswers[c.Answer] {
				remaining = append(remaining, c)
			}
		}
		if len(remaining) == 0 {
			return
		}

		type scoredCandidate struct {
			clue  ClueEntry
			cand  candidate
			score float64
		}
		var scored []scoredCandidate
		for _, clue := range remaining {
			for _, cand := range findCandidates(clue.Answer, working, size, symmetry, reserved) {
				s := scoreCandidate(cand, clue, size, rng)
				scored = append(scored, scoredCandidate{clue, cand, s})
			}
		}

		if len(scored) == 0 {
			stale++
			continue
		}
		stale = 0

		sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
		top := scored
		if len(top) > topK {
			top = top[:topK]
		}

		pick := top[0]
		if len(top) > 1 {
			minScore := top[len(top)-1].score
			weights := make([]float64, len(top))
			total := 0.0
			for i, sc := range top {
				weights[i] = sc.score - minScore + 0.1
				total += weights[i]
			}
			r := rng.Float64() * total
			cum := 0.0
			for i, w := range weights {
				cum += w
				if cum >= r {
					pick = top[i]
					break
				}
			}
		}

		placeWord(pick.clue, pick.cand.row, pick.cand.col, pick.cand.direction, working, placed, placedAnswers, symmetry, size, reserved)
	}
}

// placeWord commits a word to the working grid and records it as placed.
func placeWord(clue ClueEntry, row, col int, direction Direction, working workingGrid, placed *[]PlacedEntry, placedAnswers map[string]bool, symmetry bool, size int, reserved map[[2]int]bool) {
	placeOnGrid(clue.Answer, row, col, direction, working)
	if symmetry {
		markSymmetricReserved(row, col, len(clue.Answer), direction, size, reserved)
	}
	*placed = append(*placed, PlacedEntry{ClueEntry: clue, Row: row, Col: col, Direction: direction})
	placedAnswers[clue.Answer] = true
}

func placeOnGrid(answer string, row, col int, direction Direction, working workingGrid) {
	dr, dc := stepFor(direction)
	for i := 0; i < len(answer); i++ {
		working[row+dr*i][col+dc*i] = answer[i]
	}
}

func stepFor(direction Direction) (int, int) {
	if direction == Down {
		return 1, 0
	}
	return 0, 1
}

// findCandidates enumerates positions intersecting an existing letter that
// satisfy placement validity.
func findCandidates(answer string, working workingGrid, size int, symmetry bool, reserved map[[2]int]bool) []candidate {
	var out []candidate
	length := len(answer)
	answerChars := make(map[byte]bool)
	for i := 0; i < length; i++ {
		answerChars[answer[i]] = true
	}

	for _, direction := range [2]Direction{Across, Down} {
		dr, dc := stepFor(direction)
		checked := make(map[[3]int]bool)

		for r := 0; r < size; r++ {
			for c := 0; c < size; c++ {
				existing := working[r][c]
				if existing == 0 || !answerChars[existing] {
					continue
				}
				for i := 0; i < length; i++ {
					if answer[i] != existing {
						continue
					}
					sr, sc := r-dr*i, c-dc*i
					if sr < 0 || sc < 0 {
						continue
					}
					if sr+dr*(length-1) >= size || sc+dc*(length-1) >= size {
						continue
					}
					key := [3]int{sr, sc, dr}
					if checked[key] {
						continue
					}
					checked[key] = true

					if !isValidPlacement(answer, sr, sc, direction, working, size, symmetry, reserved) {
						continue
					}
					inter := countIntersections(answer, sr, sc, direction, working)
					if inter > 0 {
						out = append(out, candidate{row: sr, col: sc, direction: direction, intersections: inter})
					}
				}
			}
		}
	}
	return out
}

// scoreCandidate scores a candidate placement as:
// 2*intersections + centrality - expansion + jitter(0..0.1).
func scoreCandidate(cand candidate, clue ClueEntry, size int, rng *rand.Rand) float64 {
	length := len(clue.Answer)
	dr, dc := stepFor(cand.direction)

	score := 2.0 * float64(cand.intersections)

	center := float64(size-1) / 2.0
	midR := float64(cand.row) + float64(dr)*float64(length-1)/2.0
	midC := float64(cand.col) + float64(dc)*float64(length-1)/2.0
	dist := (math.Abs(midR-center) + math.Abs(midC-center)) / float64(size)
	centrality := -dist
	score += centrality

	score -= expansionPenalty(cand, length, size)
	score += rng.Float64() * 0.1

	return score
}

// expansionPenalty estimates how close a placement's bounding box sits to
// the grid edge, penalizing placements that push words outward.
func expansionPenalty(cand candidate, length, size int) float64 {
	dr, dc := stepFor(cand.direction)
	endR := cand.row + dr*(length-1)
	endC := cand.col + dc*(length-1)

	minR, maxR := cand.row, endR
	if minR > maxR {
		minR, maxR = maxR, minR
	}
	minC, maxC := cand.col, endC
	if minC > maxC {
		minC, maxC = maxC, minC
	}

	edgeDist := minR
	for _, d := range []int{size - 1 - maxR, minC, size - 1 - maxC} {
		if d < edgeDist {
			edgeDist = d
		}
	}
	if edgeDist < 0 {
		edgeDist = 0
	}
	return 1.0 / (1.0 + float64(edgeDist))
}

// isValidPlacement checks letter matching, no accidental extension, and no
// accidental 2-letter perpendicular stubs.
func isValidPlacement(answer string, row, col int, direction Direction, working workingGrid, size int, symmetry bool, reserved map[[2]int]bool) bool {
	length := len(answer)
	dr, dc := stepFor(direction)

	br, bc := row-dr, col-dc
	if br >= 0 && br < size && bc >= 0 && bc < size && working[br][bc] != 0 {
		return false
	}
	ar, ac := row+dr*length, col+dc*length
	if ar >= 0 && ar < size && ac >= 0 && ac < size && working[ar][ac] != 0 {
		return false
	}

	pr, pc := 0, 0
	if direction == Across {
		pr = 1
	} else {
		pc = 1
	}

	for i := 0; i < length; i++ {
		r, c := row+dr*i, col+dc*i

		if symmetry && reserved[[2]int{r, c}] {
			return false
		}

		existing := working[r][c]
		if existing != 0 {
			if existing != answer[i] {
				return false
			}
			continue
		}

		hasPP := r+pr >= 0 && r+pr < size && c+pc >= 0 && c+pc < size && working[r+pr][c+pc] != 0
		hasPM := r-pr >= 0 && r-pr < size && c-pc >= 0 && c-pc < size && working[r-pr][c-pc] != 0
		if !hasPP && !hasPM {
			continue
		}

		run := 1
		nr, nc := r+pr, c+pc
		for nr >= 0 && nr < size && nc >= 0 && nc < size && working[nr][nc] != 0 {
			run++
			nr += pr
			nc += pc
		}
		nr, nc = r-pr, c-pc
		for nr >= 0 && nr < size && nc >= 0 && nc < size && working[nr][nc] != 0 {
			run++
			nr -= pr
			nc -= pc
		}
		if run == 2 {
			return false
		}
	}

	return true
}

func countIntersections(answer string, row, col int, direction Direction, working workingGrid) int {
	dr, dc := stepFor(direction)
	n := 0
	for i := 0; i < len(answer); i++ {
		if working[row+dr*i][col+dc*i] != 0 {
			n++
		}
	}
	return n
}

func markSymmetricReserved(row, col, length int, direction Direction, size int, reserved map[[2]int]bool) {
	dr, dc := stepFor(direction)
	for i := 0; i < length; i++ {
		r, c := row+dr*i, col+dc*i
		reserved[[2]int{size - 1 - r, size - 1 - c}] = true
	}
}

func totalIntersections(placed []PlacedEntry) int {
	total := 0
	for _, p := range placed {
		total += countIntersectionsSnapshot(p, placed)
	}
	return total
}

func countIntersectionsSnapshot(entry PlacedEntry, all []PlacedEntry) int {
	myCells := make(map[[2]int]bool)
	dr, dc := stepFor(entry.Direction)
	for i := 0; i < len(entry.Answer); i++ {
		myCells[[2]int{entry.Row + dr*i, entry.Col + dc*i}] = true
	}
	count := 0
	for _, other := range all {
		if other.Answer == entry.Answer && other.Row == entry.Row && other.Col == entry.Col && other.Direction == entry.Direction {
			continue
		}
		odr, odc := stepFor(other.Direction)
		for i := 0; i < len(other.Answer); i++ {
			if myCells[[2]int{other.Row + odr*i, other.Col + odc*i}] {
				count++
			}
		}
	}
	return count
}

func compactness(working workingGrid, size int) float64 {
	minR, minC, maxR, maxC := size, size, -1, -1
	white := 0
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if working[r][c] != 0 {
				white++
				if r < minR {
					minR = r
				}
				if r > maxR {
					maxR = r
				}
				if c < minC {
					minC = c
				}
				if c > maxC {
					maxC = c
				}
			}
		}
	}
	if maxR == -1 {
		return 0
	}
	return float64(white) / float64((maxR-minR+1)*(maxC-minC+1))
}

func compareAttempts(a, b placerStats) int {
	if a.wordCount != b.wordCount {
		return a.wordCount - b.wordCount
	}
	if a.intersections != b.intersections {
		return a.intersections - b.intersections
	}
	if a.compactness > b.compactness {
		return 1
	}
	if a.compactness < b.compactness {
		return -1
	}
	return 0
}
