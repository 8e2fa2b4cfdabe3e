package main

import "log"

// SlotGraph is the extractor's output: every slot in the grid plus, for
// each slot, the ordered list of crossings it participates in.
type SlotGraph struct {
	Slots     []*Slot
	Crossings []*Crossing
	adjacency map[*Slot][]*Crossing // slot -> crossings ordered by its own offset
}

// ExtractSlots scans a grid row-major then column-major. Slots shorter than
// 3 cells are not emitted; this is a hard invariant for generator-produced
// templates (see DESIGN.md).
func ExtractSlots(g *Grid) *SlotGraph {
	return extractSlots(g, 3, false)
}

// ExtractSlotsLenient behaves like ExtractSlots but accepts slots as short
// as 2 cells, logging a warning for each one instead of dropping it. XLSX
// mode places words at caller-chosen coordinates, so a too-short crossing
// stub is a quality warning, not a constructor failure (see DESIGN.md).
func ExtractSlotsLenient(g *Grid) *SlotGraph {
	return extractSlots(g, 2, true)
}

func extractSlots(g *Grid, minLength int, warn bool) *SlotGraph {
	sg := &SlotGraph{adjacency: make(map[*Slot][]*Crossing)}

	// acrossOwner/acrossOffset and downOwner/downOffset let us find, for any white
	// cell, which slot (and offset within it) owns that cell in each
	// direction, the basis for crossing detection below.
	acrossOwner := make([][]*Slot, g.Size)
	acrossOffset := make([][]int, g.Size)
	downOwner := make([][]*Slot, g.Size)
	downOffset := make([][]int, g.Size)
	for r := 0; r < g.Size; r++ {
		acrossOwner[r] = make([]*Slot, g.Size)
		acrossOffset[r] = make([]int, g.Size)
		downOwner[r] = make([]*Slot, g.Size)
		downOffset[r] = make([]int, g.Size)
	}

	// Row-major across slots.
	for r := 0; r < g.Size; r++ {
		c := 0
		for c < g.Size {
			if !g.IsWhite(r, c) {
				c++
				continue
			}
			start := c
			for c < g.Size && g.IsWhite(r, c) {
				c++
			}
			length := c - start
			if length < minLength {
				continue
			}
			if warn && length < 3 {
				log.Printf("slot warning: across run at (%d,%d) has length %d", r, start, length)
			}
			s := &Slot{Direction: Across, Row: r, Col: start, Length: length}
			for i := 0; i < length; i++ {
				s.Cells = append(s.Cells, [2]int{r, start + i})
				acrossOwner[r][start+i] = s
				acrossOffset[r][start+i] = i
			}
			sg.Slots = append(sg.Slots, s)
		}
	}

	// Column-major down slots.
	for c := 0; c < g.Size; c++ {
		r := 0
		for r < g.Size {
			if !g.IsWhite(r, c) {
				r++
				continue
			}
			start := r
			for r < g.Size && g.IsWhite(r, c) {
				r++
			}
			length := r - start
			if length < minLength {
				continue
			}
			if warn && length < 3 {
				log.Printf("slot warning: down run at (%d,%d) has length %d", start, c, length)
			}
			s := &Slot{Direction: Down, Row: start, Col: c, Length: length}
			for i := 0; i < length; i++ {
				s.Cells = append(s.Cells, [2]int{start + i, c})
				downOwner[start+i][c] = s
				downOffset[start+i][c] = i
			}
			sg.Slots = append(sg.Slots, s)
		}
	}

	// Crossings: for every cell owned by both an across and a down slot.
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			as, ds := acrossOwner[r][c], downOwner[r][c]
			if as == nil || ds == nil {
				continue
			}
			cr := &Crossing{
				AcrossSlot: as,
				DownSlot:   ds,
				IAcross:    acrossOffset[r][c],
				IDown:      downOffset[r][c],
			}
			sg.Crossings = append(sg.Crossings, cr)
			sg.adjacency[as] = append(sg.adjacency[as], cr)
			sg.adjacency[ds] = append(sg.adjacency[ds], cr)
		}
	}

	return sg
}

// CrossingsFor returns the crossings slot participates in, ordered by its own
// offset.
func (sg *SlotGraph) CrossingsFor(s *Slot) []*Crossing {
	return sg.adjacency[s]
}

// OtherSlot returns the slot on the other side of a crossing from s, then
// s's offset of the shared cell, then the other slot's offset of it.
func (c *Crossing) OtherSlot(s *Slot) (*Slot, int, int) {
	if c.AcrossSlot == s {
		return c.DownSlot, c.IAcross, c.IDown
	}
	return c.AcrossSlot, c.IDown, c.IAcross
}
