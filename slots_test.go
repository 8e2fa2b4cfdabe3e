package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func allWhiteGrid(size int) *Grid {
	g := NewGrid(size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			g.Cells[r][c] = Cell{Type: White}
		}
	}
	return g
}

func TestExtractSlotsOnAllWhiteGrid(t *testing.T) {
	g := allWhiteGrid(5)
	sg := ExtractSlots(g)

	// 5 across + 5 down slots, each length 5.
	require.Len(t, sg.Slots, 10)
	for _, s := range sg.Slots {
		require.Equal(t, 5, s.Length)
	}
	// every cell is a crossing: 25 crossings total.
	require.Len(t, sg.Crossings, 25)
}

func TestExtractSlotsDropsShortRuns(t *testing.T) {
	g := NewGrid(5)
	// single row of 2 white cells, rest black: too short, must not emit a slot.
	g.Cells[0][0] = Cell{Type: White}
	g.Cells[0][1] = Cell{Type: White}

	sg := ExtractSlots(g)
	if len(sg.Slots) != 0 {
		t.Fatalf("expected no slots from a length-2 run, got %d", len(sg.Slots))
	}
}

func TestExtractSlotsLenientKeepsShortRuns(t *testing.T) {
	g := NewGrid(5)
	g.Cells[0][0] = Cell{Type: White}
	g.Cells[0][1] = Cell{Type: White}

	sg := ExtractSlotsLenient(g)
	if len(sg.Slots) != 1 {
		t.Fatalf("expected the length-2 run to be kept, got %d slots", len(sg.Slots))
	}
	if sg.Slots[0].Length != 2 {
		t.Fatalf("expected length 2, got %d", sg.Slots[0].Length)
	}
}

func TestCrossingOtherSlot(t *testing.T) {
	g := allWhiteGrid(5)
	sg := ExtractSlots(g)

	var across, down *Slot
	for _, s := range sg.Slots {
		if s.Direction == Across && s.Row == 0 {
			across = s
		}
		if s.Direction == Down && s.Col == 0 {
			down = s
		}
	}
	if across == nil || down == nil {
		t.Fatal("expected to find the top-row across slot and the left-column down slot")
	}

	var found *Crossing
	for _, cr := range sg.Crossings {
		if cr.AcrossSlot == across && cr.DownSlot == down {
			found = cr
		}
	}
	if found == nil {
		t.Fatal("expected a crossing between the top-row across slot and left-column down slot")
	}

	other, myOff, otherOff := found.OtherSlot(across)
	if other != down || myOff != 0 || otherOff != 0 {
		t.Fatalf("unexpected OtherSlot result: other=%v myOff=%d otherOff=%d", other, myOff, otherOff)
	}
}

// TestRoundTripSlotGraphIsomorphism checks that, given a filled grid, the
// extractor regenerates the original slot graph.
func TestRoundTripSlotGraphIsomorphism(t *testing.T) {
	g := allWhiteGrid(5)
	sg1 := ExtractSlots(g)

	for _, s := range sg1.Slots {
		for i, rc := range s.Cells {
			g.Cells[rc[0]][rc[1]].Letter = letterPtr(byte('A' + i))
		}
	}

	sg2 := ExtractSlots(g)
	require.Equal(t, len(sg1.Slots), len(sg2.Slots), "slot count changed after filling")
	require.Equal(t, len(sg1.Crossings), len(sg2.Crossings), "crossing count changed after filling")

	lengths1 := make(map[[2]int]int)
	for _, s := range sg1.Slots {
		lengths1[[2]int{int(s.Direction), s.Row*100 + s.Col}] = s.Length
	}
	for _, s := range sg2.Slots {
		require.Equal(t, lengths1[[2]int{int(s.Direction), s.Row*100 + s.Col}], s.Length, "slot at (%d,%d) dir=%v changed length", s.Row, s.Col, s.Direction)
	}
}
