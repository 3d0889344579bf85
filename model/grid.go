package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/lifeless/rules"
)

// Grid represents the game board: a fixed-size table of cells plus a
// generation counter. Dimensions never change for the lifetime of a Grid.
type Grid struct {
	width      int
	height     int
	cells      [][]Cell
	generation uint64
}

// NewGrid creates a new grid with the specified dimensions, all cells Dead
// and generation 0. Non-positive dimensions panic.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(errors.Errorf("[NewGrid] non-positive dimensions: %dx%d", width, height))
	}
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Extents returns the grid dimensions as a coordinate pair
func (g *Grid) Extents() Coord {
	return NewCoord(g.width, g.height)
}

// Generation returns the number of steps applied since the grid was created
func (g *Grid) Generation() uint64 {
	return g.generation
}

// Cells exposes the cell rows for read access by renderers.
// Callers must not modify the returned slices.
func (g *Grid) Cells() [][]Cell {
	return g.cells
}

// checkBounds panics on any access outside the grid. Out-of-range indexing
// is a programming error, never clamped or wrapped.
func (g *Grid) checkBounds(pos Coord) {
	if pos.x >= g.width || pos.y >= g.height {
		panic(errors.Errorf("[checkBounds] coordinate (%d,%d) outside %dx%d grid",
			pos.x, pos.y, g.width, g.height))
	}
}

// CellAt returns the state of the cell at pos
func (g *Grid) CellAt(pos Coord) Cell {
	g.checkBounds(pos)
	return g.cells[pos.y][pos.x]
}

// Set overwrites the cell at pos
func (g *Grid) Set(pos Coord, state Cell) {
	g.checkBounds(pos)
	g.cells[pos.y][pos.x] = state
}

// Toggle flips the cell at pos between Alive and Dead
func (g *Grid) Toggle(pos Coord) {
	g.Set(pos, g.CellAt(pos).Negate())
}

// Clear kills all cells and resets the generation counter
func (g *Grid) Clear() {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = Dead
		}
	}
	g.generation = 0
}

/*
StateNext calculates the state of the cell at pos in the next generation,
reading only the current grid:

  - 0 or 1 live neighbors -> Dead (underpopulation)
  - exactly 2 live neighbors -> unchanged
  - exactly 3 live neighbors -> Alive (reproduction)
  - 4 or more live neighbors -> Dead (overpopulation)

Cells beyond the grid edge are never counted as alive.
*/
func (g *Grid) StateNext(pos Coord) Cell {
	g.checkBounds(pos)

	neighbors := 0
	for n := range pos.Neighbors(g.Extents()) {
		if g.CellAt(n).IsAlive() {
			neighbors++
		}
	}

	if rules.ApplyConwayRules(neighbors, g.CellAt(pos).IsAlive()) {
		return Alive
	}
	return Dead
}

// Step calculates the next generation, returning a new grid with the
// generation counter incremented by one. The receiver is left unmodified,
// and every cell is evaluated against the pre-step state.
func (g *Grid) Step() *Grid {
	return g.stepInto(NewGrid(g.width, g.height))
}

// StepPooled behaves exactly like Step but draws the next grid from pool,
// letting callers recycle retired generations
func (g *Grid) StepPooled(pool *GridPool) *Grid {
	if pool == nil {
		return g.Step()
	}
	return g.stepInto(pool.Get())
}

// stepInto fills next with the coming generation, sharding rows across workers.
// Workers only read g and only write disjoint rows of next, so no locking is needed.
func (g *Grid) stepInto(next *Grid) *Grid {
	if next.width != g.width || next.height != g.height {
		panic(errors.Errorf("[stepInto] target grid is %dx%d, want %dx%d",
			next.width, next.height, g.width, g.height))
	}

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < g.width; x++ {
					next.cells[y][x] = g.StateNext(Coord{x: x, y: y})
				}
			}
			return nil
		})
	}

	// Workers never return errors; Wait only fences the row shards.
	_ = eg.Wait()

	next.generation = g.generation + 1
	return next
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x].IsAlive() {
				count++
			}
		}
	}
	return
}

// Fingerprint returns an MD5 hash of the current cell states, used by the
// runner for cycle detection
func (g *Grid) Fingerprint() string {
	h := md5.New()
	for y := range g.height {
		for x := range g.width {
			h.Write([]byte{byte(g.cells[y][x])})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// InjectRandomLife revives some random cells to break stagnation
func (g *Grid) InjectRandomLife(count int) {
	for i := 0; i < count; i++ {
		g.Set(NewCoord(rand.Intn(g.width), rand.Intn(g.height)), Alive)
	}
}

// Randomize fills the grid with random living cells at the given density
func (g *Grid) Randomize(density float64) {
	for y := range g.height {
		for x := range g.width {
			state := Dead
			if rand.Float64() < density {
				state = Alive
			}
			g.cells[y][x] = state
		}
	}
}

// seed places a pattern with its top-left corner at origin, skipping any
// cells that fall outside the grid
func (g *Grid) seed(origin Coord, pattern [][]Cell) {
	for y, row := range pattern {
		for x, cell := range row {
			if origin.x+x >= g.width || origin.y+y >= g.height {
				continue
			}
			g.cells[origin.y+y][origin.x+x] = cell
		}
	}
}

// AddGlider adds a glider pattern with its top-left corner at origin
func (g *Grid) AddGlider(origin Coord) {
	g.seed(origin, [][]Cell{
		{Dead, Alive, Dead},
		{Dead, Dead, Alive},
		{Alive, Alive, Alive},
	})
}

// AddOscillator adds a blinker oscillator pattern starting at origin
func (g *Grid) AddOscillator(origin Coord) {
	g.seed(origin, [][]Cell{
		{Alive, Alive, Alive},
	})
}

// ResetWithInterestingPatterns clears the grid and adds various interesting patterns
func (g *Grid) ResetWithInterestingPatterns(density float64) {
	g.Clear()

	// Add some simple patterns
	if g.width >= 10 && g.height >= 10 {
		// Add some gliders
		g.AddGlider(NewCoord(5, 5))
		if g.width >= 20 && g.height >= 15 {
			g.AddGlider(NewCoord(g.width-8, 5))
		}

		// Add oscillators
		g.AddOscillator(NewCoord(g.width/4, g.height/4))
		if g.width >= 30 {
			g.AddOscillator(NewCoord(3*g.width/4, 3*g.height/4))
		}
	}

	// Add random life using configurable density
	g.Randomize(density)
}
