package model

import (
	"iter"

	"github.com/pkg/errors"
)

// Coord is an immutable position within a grid, with non-negative components
type Coord struct {
	x int
	y int
}

// neighborOffsets lists the eight compass directions in emission order:
// top-left, top, top-right, right, bottom-right, bottom, bottom-left, left.
// Neighbors depends on this exact order, don't reorder.
var neighborOffsets = [8]struct{ dx, dy int }{
	{-1, -1},
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
}

// NewCoord constructs a coordinate, panicking on negative components
func NewCoord(x, y int) Coord {
	if x < 0 || y < 0 {
		panic(errors.Errorf("[NewCoord] negative components: (%d,%d)", x, y))
	}
	return Coord{x: x, y: y}
}

// X returns the horizontal component
func (c Coord) X() int {
	return c.x
}

// Y returns the vertical component
func (c Coord) Y() int {
	return c.y
}

// Up returns the coordinate one row above; callers must ensure c.Y() > 0
func (c Coord) Up() Coord {
	if c.y == 0 {
		panic(errors.Errorf("[Up] coordinate (%d,%d) is on the top row", c.x, c.y))
	}
	return Coord{x: c.x, y: c.y - 1}
}

// Down returns the coordinate one row below
func (c Coord) Down() Coord {
	return Coord{x: c.x, y: c.y + 1}
}

// Left returns the coordinate one column to the left; callers must ensure c.X() > 0
func (c Coord) Left() Coord {
	if c.x == 0 {
		panic(errors.Errorf("[Left] coordinate (%d,%d) is on the left column", c.x, c.y))
	}
	return Coord{x: c.x - 1, y: c.y}
}

// Right returns the coordinate one column to the right
func (c Coord) Right() Coord {
	return Coord{x: c.x + 1, y: c.y}
}

// Add returns the component-wise sum of two coordinates
func (c Coord) Add(other Coord) Coord {
	return Coord{x: c.x + other.x, y: c.y + other.y}
}

// Sub returns the component-wise difference; panics if either component would underflow
func (c Coord) Sub(other Coord) Coord {
	if other.x > c.x || other.y > c.y {
		panic(errors.Errorf("[Sub] (%d,%d) - (%d,%d) underflows", c.x, c.y, other.x, other.y))
	}
	return Coord{x: c.x - other.x, y: c.y - other.y}
}

/*
Neighbors returns the compass neighbors of c that lie within
[0, extents.X()) x [0, extents.Y()), in fixed order: top-left, top,
top-right, right, bottom-right, bottom, bottom-left, left. Out-of-bounds
directions are skipped, so corners yield 3 neighbors and non-corner edges 5.

The sequence is restartable: ranging over it again replays the same positions.
*/
func (c Coord) Neighbors(extents Coord) iter.Seq[Coord] {
	if extents.x == 0 || extents.y == 0 {
		panic(errors.Errorf("[Neighbors] zero-valued extents: (%d,%d)", extents.x, extents.y))
	}
	return func(yield func(Coord) bool) {
		for _, off := range neighborOffsets {
			nx, ny := c.x+off.dx, c.y+off.dy
			if nx < 0 || nx >= extents.x || ny < 0 || ny >= extents.y {
				continue
			}
			if !yield(Coord{x: nx, y: ny}) {
				return
			}
		}
	}
}
