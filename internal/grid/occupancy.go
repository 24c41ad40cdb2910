package grid

// Occupancy tracks interior cell states in a flat row-major slice plus a
// sparse map for the four virtual boundary rows/columns. It is rebuilt at
// the start of every generation pass.
type Occupancy struct {
	Width  int
	Height int

	cells    []CellState
	boundary map[Cell]BoundaryContent
}

func NewOccupancy(width, height int) *Occupancy {
	return &Occupancy{
		Width:    width,
		Height:   height,
		cells:    make([]CellState, width*height),
		boundary: make(map[Cell]BoundaryContent),
	}
}

func (o *Occupancy) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < o.Width && c.Y >= 0 && c.Y < o.Height
}

func (o *Occupancy) index(c Cell) int {
	return c.Y*o.Width + c.X
}

// At returns the state of an interior cell. Out-of-bounds cells read as
// CellEmpty so footprint scans can bounds-check separately.
func (o *Occupancy) At(c Cell) CellState {
	if !o.InBounds(c) {
		return CellEmpty
	}
	return o.cells[o.index(c)]
}

func (o *Occupancy) Set(c Cell, s CellState) {
	if o.InBounds(c) {
		o.cells[o.index(c)] = s
	}
}

// BoundaryAt reports what occupies a virtual boundary cell, if anything.
func (o *Occupancy) BoundaryAt(c Cell) (BoundaryContent, bool) {
	content, ok := o.boundary[c]
	return content, ok
}

// SetBoundary claims a boundary cell. The first writer wins; later writes
// to the same cell are ignored and reported via the return value.
func (o *Occupancy) SetBoundary(c Cell, content BoundaryContent) bool {
	if _, taken := o.boundary[c]; taken {
		return false
	}
	o.boundary[c] = content
	return true
}

// CountState returns how many interior cells hold the given state.
func (o *Occupancy) CountState(s CellState) int {
	n := 0
	for _, st := range o.cells {
		if st == s {
			n++
		}
	}
	return n
}

// StateBytes returns a row-major copy of the interior states, one byte per
// cell, for snapshots.
func (o *Occupancy) StateBytes() []byte {
	out := make([]byte, len(o.cells))
	for i, st := range o.cells {
		out[i] = byte(st)
	}
	return out
}
