package main

import (
	"math/rand"
	"testing"
)

// TestGenerateProducesConnectedSymmetricTemplate checks the core template
// invariants: white cells 4-connected, every maximal run >= 3, and 180
// degree rotational symmetry.
func TestGenerateProducesConnectedSymmetricTemplate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	gen := NewRandomTemplateGenerator(TemplateOptions{Size: 15})

	grid, err := gen.Generate(rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	size := grid.Size
	black := make([][]bool, size)
	for r := 0; r < size; r++ {
		black[r] = make([]bool, size)
		for c := 0; c < size; c++ {
			black[r][c] = grid.Cells[r][c].Type == Black
		}
	}

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if black[r][c] != black[size-1-r][size-1-c] {
				t.Fatalf("symmetry violated at (%d,%d)", r, c)
			}
		}
	}

	if !isFullyConnected(black, size) {
		t.Fatal("white cells must be 4-connected")
	}

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
			if run := c - start; run == 1 || run == 2 {
				t.Fatalf("row %d has a too-short run of length %d", r, run)
			}
		}
	}
}

func TestGenerateIsDeterministicForFixedSeed(t *testing.T) {
	gen := NewRandomTemplateGenerator(TemplateOptions{Size: 15})

	g1, err := gen.Generate(rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g2, err := gen.Generate(rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for r := 0; r < g1.Size; r++ {
		for c := 0; c < g1.Size; c++ {
			if g1.Cells[r][c].Type != g2.Cells[r][c].Type {
				t.Fatalf("same seed produced different templates at (%d,%d)", r, c)
			}
		}
	}
}

func TestIsValidTemplateRejectsShortRun(t *testing.T) {
	size := 5
	black := make([][]bool, size)
	for r := range black {
		black[r] = make([]bool, size)
	}
	// isolate a 2-cell run in row 0
	black[0][2] = true

	if isValidTemplate(black, size, 8) {
		t.Fatal("a template with a length-2 run must be rejected")
	}
}

func TestIsFullyConnectedDetectsDisconnection(t *testing.T) {
	size := 5
	black := make([][]bool, size)
	for r := range black {
		black[r] = make([]bool, size)
	}
	for c := 0; c < size; c++ {
		black[2][c] = true // split the grid into two halves
	}

	if isFullyConnected(black, size) {
		t.Fatal("a grid split by a full black row must not be fully connected")
	}
}
