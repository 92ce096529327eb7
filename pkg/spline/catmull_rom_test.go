package spline

import (
	"math"
	"reflect"
	"testing"

	"github.com/ungerik/go3d/float64/vec2"

	"go-astar-grid/pkg/gridmap"
)

func TestSmoothPassesShortPathsThrough(t *testing.T) {
	tests := [][]Point{
		nil,
		{},
		{{1, 1}},
		{{0, 0}, {0, 1}},
		{{0, 0}, {0, 1}, {1, 1}},
	}
	for _, path := range tests {
		got := Smooth(path)
		if !reflect.DeepEqual(got, path) {
			t.Fatalf("Smooth(%v) = %v, expected it unchanged", path, got)
		}
	}
}

func TestSmoothSCurve(t *testing.T) {
	path := []Point{{0, 0}, {10, 0}, {10, 10}, {20, 10}}
	want := []Point{
		{10, 0}, {10, 0}, {10, 1}, {10, 2}, {10, 4},
		{9, 5}, {9, 7}, {9, 8}, {9, 9}, {10, 10},
		{20, 10},
	}
	if got := Smooth(path); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSmoothLengthAndEndpoint(t *testing.T) {
	for n := 4; n <= 12; n++ {
		path := make([]Point, n)
		for i := range path {
			// staircase
			path[i] = Point{X: (i + 1) / 2 * 20, Y: i / 2 * 20}
		}
		got := Smooth(path)
		wantLen := (n-3)*SamplesPerSegment + 1
		if len(got) != wantLen {
			t.Fatalf("n=%d: expected %d points, got %d", n, wantLen, len(got))
		}
		if got[len(got)-1] != path[n-1] {
			t.Fatalf("n=%d: curve ends at %v, path ends at %v", n, got[len(got)-1], path[n-1])
		}
		if got[0] != path[1] {
			t.Fatalf("n=%d: curve starts at %v, expected second path point %v", n, got[0], path[1])
		}
		if len(got) < n {
			t.Fatalf("n=%d: smoothed path shorter than input", n)
		}
	}
}

func TestCatmullRomInterpolatesInnerControlPoints(t *testing.T) {
	p0, p1, p2, p3 := vec2.T{-3, 4}, vec2.T{1, 2}, vec2.T{5, 7}, vec2.T{6, -1}
	if got := CatmullRom(p0, p1, p2, p3, 0); got != p1 {
		t.Fatalf("t=0: expected %v, got %v", p1, got)
	}
	if got := CatmullRom(p0, p1, p2, p3, 1); got != p2 {
		t.Fatalf("t=1: expected %v, got %v", p2, got)
	}
	mid := CatmullRom(p0, p1, p2, p3, 0.5)
	// 0.5*(2p1 + (p2-p0)/2 + (2p0-5p1+4p2-p3)/4 + (-p0+3p1-3p2+p3)/8)
	wantX := 0.5 * (2*1 + (5+3)*0.5 + (-6-5+20-6)*0.25 + (3+3-15+6)*0.125)
	if math.Abs(mid[0]-wantX) > 1e-12 {
		t.Fatalf("t=0.5: expected x=%v, got %v", wantX, mid[0])
	}
}

func TestFromVecTruncatesTowardZero(t *testing.T) {
	got := FromVec(vec2.T{-0.7, 2.9})
	if got != (Point{0, 2}) {
		t.Fatalf("expected (0,2), got %v", got)
	}
}

func TestSegmentSampleCount(t *testing.T) {
	pts := Segment(Point{0, 0}, Point{0, 0}, Point{9, 0}, Point{9, 0}, 4)
	if len(pts) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(pts))
	}
	if pts[0] != (Point{0, 0}) || pts[3] != (Point{9, 0}) {
		t.Fatalf("segment must span p1..p2, got %v", pts)
	}
}

func TestPixelCentersAndCellPoints(t *testing.T) {
	cells := []gridmap.Cell{{Row: 0, Col: 0}, {Row: 2, Col: 3}}
	if got, want := PixelCenters(cells, 20), []Point{{10, 10}, {70, 50}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("PixelCenters: expected %v, got %v", want, got)
	}
	if got, want := CellPoints(cells), []Point{{0, 0}, {2, 3}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("CellPoints: expected %v, got %v", want, got)
	}
}

func TestSequenceIsRestartable(t *testing.T) {
	seq := NewSequence([]Point{{1, 1}, {2, 2}, {3, 3}})
	var first []Point
	for {
		p, ok := seq.Next()
		if !ok {
			break
		}
		first = append(first, p)
	}
	if !seq.Done() || len(first) != 3 {
		t.Fatalf("expected 3 points and a finished sequence, got %v", first)
	}
	seq.Rewind()
	if seq.Done() || len(seq.Visible()) != 0 {
		t.Fatal("rewind must restart from the first point")
	}
	p, _ := seq.Next()
	if p != (Point{1, 1}) {
		t.Fatalf("expected first point after rewind, got %v", p)
	}
	seq.Finish()
	if len(seq.Visible()) != seq.Len() {
		t.Fatal("Finish must reveal every point")
	}
}
