// internal/utils/coords.go
package utils

import "go-astar-grid/pkg/gridmap"

// ScreenToCell converts a cursor position to the cell under it.
// The second result is false when the position is left of or above the canvas.
func ScreenToCell(x, y, cellSize int) (gridmap.Cell, bool) {
	if x < 0 || y < 0 || cellSize <= 0 {
		return gridmap.Cell{}, false
	}
	return gridmap.Cell{Row: y / cellSize, Col: x / cellSize}, true
}

// CellToScreen returns the top-left pixel of a cell.
func CellToScreen(cell gridmap.Cell, cellSize int) (x, y float32) {
	return float32(cell.Col * cellSize), float32(cell.Row * cellSize)
}
