// Package grid provides a fixed-size, row-major 2D container.
package grid

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is the panic value (wrapped) for accesses outside the grid.
var ErrOutOfRange = errors.New("grid: index out of range")

// Grid is a dense width x height array of cells. Cell (x, y) lives at index y*Width + x.
type Grid[T any] struct {
	width  int
	height int
	cells  []T
}

// New creates a grid with every cell set to the zero value of T.
// It panics if width or height is less than 1.
func New[T any](width, height int) *Grid[T] {
	if width < 1 || height < 1 {
		panic(fmt.Errorf("%w: invalid size %dx%d", ErrOutOfRange, width, height))
	}
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
}

// NewFilled creates a grid with every cell set to v.
func NewFilled[T any](width, height int, v T) *Grid[T] {
	g := New[T](width, height)
	g.Fill(v)
	return g
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index returns the linear index of (x, y).
func (g *Grid[T]) Index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, x, y, g.width, g.height))
	}
	return y*g.width + x
}

// Get returns the cell at (x, y). It panics outside the grid.
func (g *Grid[T]) Get(x, y int) T {
	return g.cells[g.Index(x, y)]
}

// Set stores v at (x, y). It panics outside the grid.
func (g *Grid[T]) Set(x, y int, v T) {
	g.cells[g.Index(x, y)] = v
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Cells returns a copy of the backing slice in row-major order.
func (g *Grid[T]) Cells() []T {
	out := make([]T, len(g.cells))
	copy(out, g.cells)
	return out
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{
		width:  g.width,
		height: g.height,
		cells:  g.Cells(),
	}
}

// Equal reports whether two grids have the same size and cells.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.width != b.width || a.height != b.height {
		return false
	}
	for i := range a.cells {
		if a.cells[i] != b.cells[i] {
			return false
		}
	}
	return true
}
