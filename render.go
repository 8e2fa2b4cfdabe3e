package main

import (
	"fmt"
	"io"
	"strings"
)

// XLSXSource is the external collaborator interface for XLSX input: the
// first row is a header, subsequent rows hold at minimum word and clue
// columns (case-insensitive headers). Real .xlsx byte parsing is out of
// scope, so this repo defines the contract and ships one minimal,
// standard-library-only implementation that operates on rows already split
// into cells (e.g. by a caller-side XLSX library the CLI wires in
// separately).
type XLSXSource interface {
	ReadClues() ([]ClueEntry, error)
}

// InMemoryXLSXSource implements XLSXSource over a header row plus data rows
// already split into cells, matching two accepted shapes: the minimal
// (word, clue) shape and the richer
// (Number, Direction, Row, Col, Clue, Answer) shape, whose Number column is
// an ordering hint discarded after placement.
type InMemoryXLSXSource struct {
	Header []string
	Rows   [][]string
}

func (s *InMemoryXLSXSource) ReadClues() ([]ClueEntry, error) {
	col := make(map[string]int, len(s.Header))
	for i, h := range s.Header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}

	wordCol, hasWord := col["word"]
	if !hasWord {
		wordCol, hasWord = col["answer"]
	}
	clueCol, hasClue := col["clue"]
	if !hasWord || !hasClue {
		return nil, &InputError{Msg: "header must contain word/answer and clue columns"}
	}
	numCol, hasNum := col["number"]

	seen := make(map[string]bool)
	var entries []ClueEntry
	for rowIdx, row := range s.Rows {
		if wordCol >= len(row) || clueCol >= len(row) {
			continue
		}
		answer := normalizeWord(row[wordCol])
		if answer == "" {
			return nil, &InputError{Msg: fmt.Sprintf("row %d: answer has no A-Z letters", rowIdx+2)}
		}
		if seen[answer] {
			return nil, &InputError{Msg: fmt.Sprintf("duplicate answer %q", answer)}
		}
		seen[answer] = true

		number := rowIdx + 1
		if hasNum && numCol < len(row) {
			fmt.Sscanf(row[numCol], "%d", &number)
		}

		entries = append(entries, ClueEntry{
			Number:   number,
			ClueText: strings.TrimSpace(row[clueCol]),
			Answer:   answer,
		})
	}
	return entries, nil
}

// PDFRenderer is the external collaborator interface for output: a filled
// Grid, an across list, a down list, and a title, ordered by number
// ascending. Real PDF byte generation is out of scope, so PlainTextRenderer
// exercises the contract with a plain-text rendering instead of claiming to
// be a PDF engine.
type PDFRenderer interface {
	Render(w io.Writer, grid *Grid, across, down []NumberedClue, title string) error
}

// PlainTextRenderer writes a simple print-style layout: the grid, then the
// across and down clue lists.
type PlainTextRenderer struct{}

func (PlainTextRenderer) Render(w io.Writer, grid *Grid, across, down []NumberedClue, title string) error {
	fmt.Fprintf(w, "%s\n\n", title)

	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			cell := grid.Cells[r][c]
			switch {
			case cell.Type == Black:
				fmt.Fprint(w, "## ")
			case cell.Number != nil:
				fmt.Fprintf(w, "%-2d ", *cell.Number)
			default:
				fmt.Fprint(w, ".  ")
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "\nACROSS")
	for _, clue := range across {
		fmt.Fprintf(w, "%d. %s\n", clue.Number, clue.ClueText)
	}

	fmt.Fprintln(w, "\nDOWN")
	for _, clue := range down {
		fmt.Fprintf(w, "%d. %s\n", clue.Number, clue.ClueText)
	}

	return nil
}
