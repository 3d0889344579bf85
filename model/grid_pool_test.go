package model

import "testing"

func TestGridPoolGetReturnsClearedGrid(t *testing.T) {
	pool := NewGridPool(4, 4)

	g := pool.Get()
	g.Randomize(1.0)
	g = g.Step()
	pool.Put(g)

	recycled := pool.Get()
	if recycled.CountLivingCells() != 0 {
		t.Fatalf("recycled grid has %d living cells", recycled.CountLivingCells())
	}
	if recycled.Generation() != 0 {
		t.Fatalf("recycled grid at generation %d", recycled.Generation())
	}
	if recycled.GetWidth() != 4 || recycled.GetHeight() != 4 {
		t.Fatalf("recycled grid is %dx%d", recycled.GetWidth(), recycled.GetHeight())
	}
}

func TestGridPoolRejectsWrongDimensions(t *testing.T) {
	pool := NewGridPool(4, 4)
	mustPanic(t, "Put of mismatched grid", func() { pool.Put(NewGrid(3, 3)) })
}

func TestGridToPoolHandlesNilPool(t *testing.T) {
	// Should be a no-op rather than a nil dereference
	GridToPool(NewGrid(2, 2), nil)
}
