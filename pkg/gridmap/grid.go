// pkg/gridmap/grid.go
package gridmap

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidCell is returned when a cell lies outside the grid.
	ErrInvalidCell = errors.New("cell out of bounds")
	// ErrInvalidDensity is returned when an obstacle density is not in [0,1].
	ErrInvalidDensity = errors.New("density must be within [0,1]")
	// ErrInvalidSize is returned for a grid with a non-positive dimension.
	ErrInvalidSize = errors.New("grid dimensions must be positive")
)

// RandomSource is the randomness GridMap.Reset draws from.
// *utils.PRNGService and *rand.Rand both satisfy it.
type RandomSource interface {
	Float64() float64
}

// GridMap is a fixed R×C occupancy grid.
// It must not be mutated while a Search over it is running.
type GridMap struct {
	rows, cols int
	blocked    []bool
}

// New creates an obstacle-free grid.
func New(rows, cols int) (*GridMap, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}
	return &GridMap{
		rows:    rows,
		cols:    cols,
		blocked: make([]bool, rows*cols),
	}, nil
}

func (g *GridMap) Rows() int { return g.rows }
func (g *GridMap) Cols() int { return g.cols }

func (g *GridMap) index(cell Cell) int {
	return cell.Row*g.cols + cell.Col
}

// InBounds reports whether cell lies inside the grid.
func (g *GridMap) InBounds(cell Cell) bool {
	return cell.Row >= 0 && cell.Row < g.rows && cell.Col >= 0 && cell.Col < g.cols
}

// IsBlocked reports the occupancy of an in-bounds cell.
func (g *GridMap) IsBlocked(cell Cell) (bool, error) {
	if !g.InBounds(cell) {
		return false, fmt.Errorf("%w: %v", ErrInvalidCell, cell)
	}
	return g.blocked[g.index(cell)], nil
}

// IsPassable is true for in-bounds free cells and false otherwise.
func (g *GridMap) IsPassable(cell Cell) bool {
	return g.InBounds(cell) && !g.blocked[g.index(cell)]
}

// SetObstacle marks cell as blocked or free.
func (g *GridMap) SetObstacle(cell Cell, blocked bool) error {
	if !g.InBounds(cell) {
		return fmt.Errorf("%w: %v", ErrInvalidCell, cell)
	}
	g.blocked[g.index(cell)] = blocked
	return nil
}

// Clear removes every obstacle.
func (g *GridMap) Clear() {
	for i := range g.blocked {
		g.blocked[i] = false
	}
}

// Reset clears the grid, then blocks each cell except protected
// independently with probability density.
func (g *GridMap) Reset(density float64, protected Cell, rng RandomSource) error {
	if density < 0 || density > 1 || math.IsNaN(density) {
		return fmt.Errorf("%w: got %v", ErrInvalidDensity, density)
	}
	g.Clear()
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cell := Cell{Row: row, Col: col}
			// Один бросок на клетку, даже для защищённой: последовательность
			// зависит только от сида и размеров.
			roll := rng.Float64()
			if cell == protected {
				continue
			}
			if roll < density {
				g.blocked[g.index(cell)] = true
			}
		}
	}
	return nil
}

// BlockedCount returns the number of blocked cells.
func (g *GridMap) BlockedCount() int {
	n := 0
	for _, b := range g.blocked {
		if b {
			n++
		}
	}
	return n
}

// BlockedCells lists blocked cells in row-major order.
func (g *GridMap) BlockedCells() []Cell {
	var cells []Cell
	g.Each(func(cell Cell, blocked bool) {
		if blocked {
			cells = append(cells, cell)
		}
	})
	return cells
}

// Each visits every cell in row-major order.
func (g *GridMap) Each(fn func(cell Cell, blocked bool)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(Cell{Row: row, Col: col}, g.blocked[row*g.cols+col])
		}
	}
}

// Clone returns an independent copy of the grid.
func (g *GridMap) Clone() *GridMap {
	blocked := make([]bool, len(g.blocked))
	copy(blocked, g.blocked)
	return &GridMap{rows: g.rows, cols: g.cols, blocked: blocked}
}
