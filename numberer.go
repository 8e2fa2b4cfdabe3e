package main

// NumberResult is the numberer's output: the across/down clue lists ordered
// by number ascending. Number sets Cell.Number on every slot-starting cell
// of the grid in place.
type NumberResult struct {
	Across []NumberedClue
	Down   []NumberedClue
}

// Number scans the filled grid row-major: a white cell
// starts across iff its left neighbor is black/edge and its right neighbor
// is white; starts down iff its top neighbor is black/edge and its bottom
// neighbor is white. Any cell that starts either gets the next sequential
// number. clueFor resolves the clue text for the word occupying a slot
// (typically a lexicon/bank lookup or an XLSX-supplied clue).
func Number(g *Grid, clueFor func(direction Direction, row, col int) string) NumberResult {
	var result NumberResult
	number := 0

	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if !g.IsWhite(r, c) {
				continue
			}

			startsAcross := !g.IsWhite(r, c-1) && g.IsWhite(r, c+1)
			startsDown := !g.IsWhite(r-1, c) && g.IsWhite(r+1, c)

			if !startsAcross && !startsDown {
				continue
			}

			number++
			g.Cells[r][c].Number = numberPtr(number)

			if startsAcross {
				result.Across = append(result.Across, NumberedClue{
					Number:    number,
					ClueText:  clueFor(Across, r, c),
					Direction: Across,
				})
			}
			if startsDown {
				result.Down = append(result.Down, NumberedClue{
					Number:    number,
					ClueText:  clueFor(Down, r, c),
					Direction: Down,
				})
			}
		}
	}

	return result
}
