package spline

import "go-astar-grid/pkg/gridmap"

// CellPoints maps cells to points in cell space: X is the row, Y the column.
func CellPoints(cells []gridmap.Cell) []Point {
	points := make([]Point, len(cells))
	for i, c := range cells {
		points[i] = Point{X: c.Row, Y: c.Col}
	}
	return points
}

// PixelCenters maps cells to the pixel centres of a cellSize grid,
// X along columns and Y along rows.
func PixelCenters(cells []gridmap.Cell, cellSize int) []Point {
	half := cellSize / 2
	points := make([]Point, len(cells))
	for i, c := range cells {
		points[i] = Point{X: c.Col*cellSize + half, Y: c.Row*cellSize + half}
	}
	return points
}

// Sequence walks a smoothed path one point at a time. It is finite and
// can be rewound, so a renderer can replay it at its own pace.
type Sequence struct {
	points []Point
	pos    int
}

// NewSequence wraps points without copying them.
func NewSequence(points []Point) *Sequence {
	return &Sequence{points: points}
}

// Next returns the next point, or false once the sequence is exhausted.
func (s *Sequence) Next() (Point, bool) {
	if s.pos >= len(s.points) {
		return Point{}, false
	}
	p := s.points[s.pos]
	s.pos++
	return p, true
}

// Visible returns the points emitted so far.
func (s *Sequence) Visible() []Point {
	return s.points[:s.pos]
}

// Done reports whether every point has been emitted.
func (s *Sequence) Done() bool { return s.pos >= len(s.points) }

// Rewind restarts the sequence from its first point.
func (s *Sequence) Rewind() { s.pos = 0 }

// Finish jumps to the end.
func (s *Sequence) Finish() { s.pos = len(s.points) }

func (s *Sequence) Len() int { return len(s.points) }
