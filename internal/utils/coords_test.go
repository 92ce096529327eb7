package utils

import (
	"testing"

	"go-astar-grid/pkg/gridmap"
)

func TestScreenToCell(t *testing.T) {
	tests := []struct {
		x, y int
		want gridmap.Cell
		ok   bool
	}{
		{0, 0, gridmap.Cell{Row: 0, Col: 0}, true},
		{19, 19, gridmap.Cell{Row: 0, Col: 0}, true},
		{20, 45, gridmap.Cell{Row: 2, Col: 1}, true},
		{-1, 10, gridmap.Cell{}, false},
		{10, -5, gridmap.Cell{}, false},
	}
	for _, tt := range tests {
		got, ok := ScreenToCell(tt.x, tt.y, 20)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("ScreenToCell(%d, %d) = %v, %v; expected %v, %v", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCellToScreenRoundTrip(t *testing.T) {
	cell := gridmap.Cell{Row: 3, Col: 7}
	x, y := CellToScreen(cell, 20)
	back, ok := ScreenToCell(int(x)+5, int(y)+5, 20)
	if !ok || back != cell {
		t.Fatalf("expected %v, got %v", cell, back)
	}
}
