// pkg/gridmap/cell.go
package gridmap

import (
	"fmt"

	"go-astar-grid/pkg/utils"
)

// Cell is a grid coordinate. Ordering is lexicographic on (Row, Col).
type Cell struct {
	Row, Col int
}

// NeighborDirections lists the 4 orthogonal steps in expansion order:
// east, west, south, north. The order decides which predecessor wins
// among equal-cost parents, so it must stay fixed.
var NeighborDirections = [4]Cell{
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
}

// Add returns the sum of two cells.
func (c Cell) Add(other Cell) Cell {
	return Cell{Row: c.Row + other.Row, Col: c.Col + other.Col}
}

// Neighbors returns all 4 orthogonal neighbours, bounds not checked.
func (c Cell) Neighbors() [4]Cell {
	var out [4]Cell
	for i, d := range NeighborDirections {
		out[i] = c.Add(d)
	}
	return out
}

// Manhattan is the 4-directional unit-cost distance between two cells.
func (c Cell) Manhattan(to Cell) int {
	return utils.Abs(c.Row-to.Row) + utils.Abs(c.Col-to.Col)
}

// Less orders cells by row, then column.
func (c Cell) Less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// IsAdjacent reports whether two cells differ by one step on exactly one axis.
func (c Cell) IsAdjacent(other Cell) bool {
	return c.Manhattan(other) == 1
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
