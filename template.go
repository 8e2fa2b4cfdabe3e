package main

import "math/rand"

// TemplateOptions tunes the template generator.
type TemplateOptions struct {
	Size          int
	TargetBlack   int // if 0, computed as ~22% of cells
	MaxWordLen    int // if 0, defaults to 8
	AttemptBudget int // per-call construction attempts, defaults to 50
}

func (o TemplateOptions) withDefaults() TemplateOptions {
	if o.TargetBlack == 0 {
		o.TargetBlack = int(float64(o.Size*o.Size) * 0.22)
	}
	if o.MaxWordLen == 0 {
		o.MaxWordLen = 8
	}
	if o.AttemptBudget == 0 {
		o.AttemptBudget = 50
	}
	return o
}

// TemplateSource produces candidate templates; the retry controller depends
// on this interface (not a concrete generator) so a failing test double can
// be substituted.
type TemplateSource interface {
	Generate(rng *rand.Rand) (*Grid, error)
}

// RandomTemplateGenerator is the default TemplateSource: a randomized
// construction-with-repair generator satisfying four invariants (symmetry,
// connectivity, no-short-slot, black-cell budget).
type RandomTemplateGenerator struct {
	Opts TemplateOptions
}

func NewRandomTemplateGenerator(opts TemplateOptions) *RandomTemplateGenerator {
	return &RandomTemplateGenerator{Opts: opts.withDefaults()}
}

// Generate produces one valid symmetric template, or a TemplateError if the
// attempt budget is exhausted.
func (g *RandomTemplateGenerator) Generate(rng *rand.Rand) (*Grid, error) {
	for i := 0; i < g.Opts.AttemptBudget; i++ {
		black := tryTemplate(g.Opts.Size, rng, g.Opts.TargetBlack, g.Opts.MaxWordLen)
		if black == nil {
			continue
		}
		return blackMapToGrid(black, g.Opts.Size), nil
	}
	return nil, &TemplateError{Msg: "construction attempt budget exhausted"}
}

func blackMapToGrid(black [][]bool, size int) *Grid {
	grid := NewGrid(size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if black[r][c] {
				grid.Cells[r][c] = Cell{Type: Black}
			} else {
				grid.Cells[r][c] = Cell{Type: White}
			}
		}
	}
	return grid
}

// tryTemplate is a single construction attempt: phase 1 breaks any white
// run longer than maxWordLen with targeted black-cell insertion, phase 2
// fills randomly to the black-cell budget. Ported from
// template_filler.py's _try_template.
func tryTemplate(size int, rng *rand.Rand, targetBlack, maxWordLen int) [][]bool {
	black := make([][]bool, size)
	for r := range black {
		black[r] = make([]bool, size)
	}
	placed := 0

	for pass := 0; pass < 200; pass++ {
		candidates := findLongRunBreaks(black, size, maxWordLen)
		if len(candidates) == 0 {
			break
		}
		rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

		top := candidates
		if len(top) > 30 {
			top = top[:30]
		}

		placedOne := false
		for _, rc := range top {
			br, bc := rc[0], rc[1]
			if black[br][bc] {
				continue
			}
			sr, sc := size-1-br, size-1-bc
			if (sr != br || sc != bc) && black[sr][sc] {
				continue
			}

			black[br][bc] = true
			if sr != br || sc != bc {
				black[sr][sc] = true
			}

			if noShortRunsAffected(black, size, br, bc, sr, sc) {
				if sr != br || sc != bc {
					placed += 2
				} else {
					placed++
				}
				placedOne = true
				break
			}

			black[br][bc] = false
			if sr != br || sc != bc {
				black[sr][sc] = false
			}
		}

		if !placedOne {
			return nil
		}
	}

	if hasLongRuns(black, size, maxWordLen) {
		return nil
	}

	cells := make([][2]int, 0, size*size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			cells = append(cells, [2]int{r, c})
		}
	}
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })

	for _, rc := range cells {
		if placed >= targetBlack {
			break
		}
		r, c := rc[0], rc[1]
		if black[r][c] {
			continue
		}
		sr, sc := size-1-r, size-1-c
		if (sr != r || sc != c) && black[sr][sc] {
			continue
		}

		black[r][c] = true
		if sr != r || sc != c {
			black[sr][sc] = true
		}

		if noShortRunsAffected(black, size, r, c, sr, sc) {
			if sr != r || sc != c {
				placed += 2
			} else {
				placed++
			}
		} else {
			black[r][c] = false
			if sr != r || sc != c {
				black[sr][sc] = false
			}
		}
	}

	if !isValidTemplate(black, size, maxWordLen) {
		return nil
	}
	return black
}

func findLongRunBreaks(black [][]bool, size, maxWordLen int) [][2]int {
	var candidates [][2]int

	for r := 0; r < size; r++ {
		c := 0
		for c < size {
			if black[r][c] {
				c++
				continue
			}
			start := c
			for c < size && !black[r][c] {
				c++
			}
			if c-start > maxWordLen {
				for pos := start + 3; pos < c-3; pos++ {
					candidates = append(candidates, [2]int{r, pos})
				}
			}
		}
	}

	for c := 0; c < size; c++ {
		r := 0
		for r < size {
			if black[r][c] {
				r++
				continue
			}
			start := r
			for r < size && !black[r][c] {
				r++
			}
			if r-start > maxWordLen {
				for pos := start + 3; pos < r-3; pos++ {
					candidates = append(candidates, [2]int{pos, c})
				}
			}
		}
	}
	return candidates
}

func hasLongRuns(black [][]bool, size, maxWordLen int) bool {
	for r := 0; r < size; r++ {
		c := 0
		for c < size {
			if black[r][c] {
				c++
				continue
			}
			start := c
			for c < size && !black[r][c] {
				c++
			}
			if c-start > maxWordLen {
				return true
			}
		}
	}
	for c := 0; c < size; c++ {
		r := 0
		for r < size {
			if black[r][c] {
				r++
				continue
			}
			start := r
			for r < size && !black[r][c] {
				r++
			}
			if r-start > maxWordLen {
				return true
			}
		}
	}
	return false
}

// noShortRunsAffected checks that no 1-2 cell white run exists in the rows
// and columns touched by a tentative placement (the two symmetric cells).
func noShortRunsAffected(black [][]bool, size, r1, c1, r2, c2 int) bool {
	rows := map[int]bool{r1: true, r2: true}
	for r := range rows {
		c := 0
		for c < size {
			if black[r][c] {
				c++
				continue
			}
			start := c
			for c < size && !black[r][c] {
				c++
			}
			if run := c - start; run >= 1 && run <= 2 {
				return false
			}
		}
	}

	cols := map[int]bool{c1: true, c2: true}
	for c := range cols {
		r := 0
		for r < size {
			if black[r][c] {
				r++
				continue
			}
			start := r
			for r < size && !black[r][c] {
				r++
			}
			if run := r - start; run >= 1 && run <= 2 {
				return false
			}
		}
	}
	return true
}

// isValidTemplate checks min run length 3, max run length, and
// single-component connectivity over white cells. Ported from
// template_filler.py's _is_valid_template.
func isValidTemplate(black [][]bool, size, maxWordLen int) bool {
	for r := 0; r < size; r++ {
		c := 0
		for c < size {
			if black[r][c] {
				c++
				continue
			}
			start := c
			for c < size && !black[r][c] {
				c++
			}
			run := c - start
			if run >= 1 && run <= 2 {
				return false
			}
			if run > maxWordLen {
				return false
			}
		}
	}
	for c := 0; c < size; c++ {
		r := 0
		for r < size {
			if black[r][c] {
				r++
				continue
			}
			start := r
			for r < size && !black[r][c] {
				r++
			}
			run := r - start
			if run >= 1 && run <= 2 {
				return false
			}
			if run > maxWordLen {
				return false
			}
		}
	}
	return isFullyConnected(black, size)
}

// isFullyConnected BFS-floods from the first white cell and checks that
// every white cell was reached. Grounded on the same row-major BFS-over-
// land-cells design as katalvlaran/lvlath's gridgraph.ConnectedComponents
// (see DESIGN.md for why that package isn't imported directly) and on
// template_filler.py's _is_valid_template BFS.
func isFullyConnected(black [][]bool, size int) bool {
	startR, startC := -1, -1
	white := 0
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if !black[r][c] {
				white++
				if startR == -1 {
					startR, startC = r, c
				}
			}
		}
	}
	if white == 0 {
		return false
	}

	visited := make([][]bool, size)
	for r := range visited {
		visited[r] = make([]bool, size)
	}
	queue := [][2]int{{startR, startC}}
	visited[startR][startC] = true
	seen := 1

	dirs := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			nr, nc := cur[0]+d[0], cur[1]+d[1]
			if nr < 0 || nr >= size || nc < 0 || nc >= size {
				continue
			}
			if black[nr][nc] || visited[nr][nc] {
				continue
			}
			visited[nr][nc] = true
			seen++
			queue = append(queue, [2]int{nr, nc})
		}
	}
	return seen == white
}
