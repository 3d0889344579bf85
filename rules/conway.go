package rules

/*
ApplyConwayRules applies Conway's Game of Life rules (B3/S23) to determine
whether a cell is alive in the next generation:

  - 0 or 1 live neighbors: dead (underpopulation)
  - exactly 2 live neighbors: unchanged
  - exactly 3 live neighbors: alive (reproduction)
  - 4 or more live neighbors: dead (overpopulation)

Which collapses to: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
