package terrain

import (
	"fmt"
	"sort"
)

// Window owns the mapping from row coordinate to row, plus the two scalar
// bounds of the retained strip of world. Every coordinate between Trailing()
// and Frontier() inclusive has exactly one row present; generation always
// advances the frontier one coordinate at a time.
//
// The window is exclusively owned by a Director and read by the renderer
// between director calls; it requires no locking.
type Window struct {
	rows     map[int]*Row
	frontier int
	trailing int

	// release is invoked for each row removed by RemoveBefore or Clear, so
	// the rendering collaborator can dispose of per-row resources. The pure
	// window mutation stays testable without a rendering stub.
	release func(*Row)
}

// NewWindow creates an empty window. The release callback may be nil.
func NewWindow(release func(*Row)) *Window {
	return &Window{
		rows:    make(map[int]*Row),
		release: release,
	}
}

// Get returns the row at the given coordinate, if present.
func (w *Window) Get(coord int) (*Row, bool) {
	row, ok := w.rows[coord]
	return row, ok
}

// Len returns the number of retained rows.
func (w *Window) Len() int {
	return len(w.rows)
}

// Put inserts a row. Coordinates are append-only from the generation side:
// inserting at an occupied coordinate is a programming-invariant violation
// and is rejected with an error, leaving the existing row untouched.
func (w *Window) Put(row *Row) error {
	if _, exists := w.rows[row.Coordinate]; exists {
		return fmt.Errorf("terrain: row %d already present", row.Coordinate)
	}
	w.rows[row.Coordinate] = row
	return nil
}

// RemoveBefore deletes every row behind the given bound (coordinate < bound),
// invoking the release callback for each, and advances the trailing bound.
// Removing nothing is a cheap no-op. Returns the removed rows.
func (w *Window) RemoveBefore(bound int) []*Row {
	var removed []*Row
	for coord, row := range w.rows {
		if coord < bound {
			removed = append(removed, row)
			delete(w.rows, coord)
		}
	}

	if bound > w.trailing {
		w.trailing = bound
	}

	if w.release != nil {
		for _, row := range removed {
			w.release(row)
		}
	}
	return removed
}

// Clear removes every row, releasing each, and leaves the bounds untouched
// for the caller to re-establish.
func (w *Window) Clear() {
	for coord, row := range w.rows {
		delete(w.rows, coord)
		if w.release != nil {
			w.release(row)
		}
	}
}

// Frontier returns the furthest generated coordinate.
func (w *Window) Frontier() int {
	return w.frontier
}

// SetFrontier updates the frontier bound.
func (w *Window) SetFrontier(coord int) {
	w.frontier = coord
}

// Trailing returns the nearest retained coordinate.
func (w *Window) Trailing() int {
	return w.trailing
}

// SetTrailing updates the trailing bound.
func (w *Window) SetTrailing(coord int) {
	w.trailing = coord
}

// Rows returns the retained rows ordered by coordinate, for read-only
// iteration by the renderer.
func (w *Window) Rows() []*Row {
	result := make([]*Row, 0, len(w.rows))
	for _, row := range w.rows {
		result = append(result, row)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Coordinate < result[j].Coordinate
	})
	return result
}
