package main

import "testing"

func TestGridFromPlacementMarksLettersAndBlack(t *testing.T) {
	placed := []PlacedEntry{
		{ClueEntry: ClueEntry{Answer: "CAT"}, Row: 0, Col: 0, Direction: Across},
	}
	g := gridFromPlacement(placed, 5)

	if g.Cells[0][0].Type != White || *g.Cells[0][0].Letter != 'C' {
		t.Fatal("expected (0,0) to be a white C")
	}
	if g.Cells[0][3].Type != Black {
		t.Fatal("expected untouched cells to stay black")
	}
}

func TestSlotAnswerReadsGridLetters(t *testing.T) {
	g := allWhiteGrid(3)
	sg := ExtractSlots(g)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			g.Cells[r][c].Letter = letterPtr(byte('A' + r*3 + c))
		}
	}

	got := slotAnswer(g, sg, Across, 0, 0)
	want := string([]byte{'A', 'B', 'C'})
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDiagnosticForNamesErrorClass(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&InputError{Msg: "x"}, "input error"},
		{&TemplateError{Msg: "x"}, "template error"},
		{&FillError{Msg: "x"}, "fill error"},
		{&PlacementError{Placed: 1, Minimum: 2}, "placement error"},
		{&LexiconError{Msg: "x"}, "lexicon error"},
	}
	for _, c := range cases {
		got := diagnosticFor(c.err)
		if len(got) < len(c.want) || got[:len(c.want)] != c.want {
			t.Fatalf("diagnosticFor(%T) = %q, expected prefix %q", c.err, got, c.want)
		}
	}
}
