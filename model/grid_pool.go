package model

import (
	"sync"

	"github.com/pkg/errors"
)

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles grids of a single fixed dimension pair, so pooled reuse
// never hands out a grid of the wrong size
type GridPool struct {
	width  int
	height int
	pool   sync.Pool
}

func NewGridPool(width, height int) *GridPool {
	return &GridPool{
		width:  width,
		height: height,
		pool: sync.Pool{
			New: func() interface{} {
				return NewGrid(width, height)
			},
		},
	}
}

// Get retrieves a cleared grid from the pool
func (p *GridPool) Get() *Grid {
	g := p.pool.Get().(*Grid)
	g.Clear()
	return g
}

// Put returns a grid to the pool, clearing its state. Grids of a different
// size than the pool's are rejected.
func (p *GridPool) Put(g *Grid) {
	if g.width != p.width || g.height != p.height {
		panic(errors.Errorf("[Put] grid is %dx%d, pool holds %dx%d",
			g.width, g.height, p.width, p.height))
	}

	// Clear the grid before returning to pool
	g.Clear()
	p.pool.Put(g)
}
