package model

// Cell is the state of a single grid position
type Cell uint8

const (
	// Dead is the zero value, so a freshly allocated grid is all Dead
	Dead Cell = iota
	Alive
)

// IsAlive reports whether the cell is Alive
func (c Cell) IsAlive() bool {
	return c == Alive
}

// IsDead reports whether the cell is Dead
func (c Cell) IsDead() bool {
	return !c.IsAlive()
}

// Negate returns the opposite state, leaving the receiver untouched
func (c Cell) Negate() Cell {
	if c.IsAlive() {
		return Dead
	}
	return Alive
}

// String returns a human-readable name for the cell state
func (c Cell) String() string {
	if c.IsAlive() {
		return "Alive"
	}
	return "Dead"
}
