// Package spline turns stair-stepped grid paths into Catmull-Rom curves.
package spline

import (
	"github.com/ungerik/go3d/float64/vec2"
)

// SamplesPerSegment is how many points each 4-point window emits.
const SamplesPerSegment = 10

// Point is an integer draw coordinate.
type Point struct {
	X, Y int
}

// Vec converts the point to a real-valued vector.
func (p Point) Vec() vec2.T {
	return vec2.T{float64(p.X), float64(p.Y)}
}

// FromVec truncates each coordinate toward zero.
func FromVec(v vec2.T) Point {
	return Point{X: int(v[0]), Y: int(v[1])}
}

// interpolate evaluates the cubic Catmull-Rom basis on one axis.
func interpolate(t, p0, p1, p2, p3 float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * ((2 * p1) +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}

// CatmullRom evaluates the segment between p1 and p2 at t in [0,1].
// p0 and p3 only shape the tangents.
func CatmullRom(p0, p1, p2, p3 vec2.T, t float64) vec2.T {
	var out vec2.T
	for axis := range out {
		out[axis] = interpolate(t, p0[axis], p1[axis], p2[axis], p3[axis])
	}
	return out
}

// Segment samples the p1→p2 segment at t = k/(samples-1), k = 0..samples-1.
func Segment(p0, p1, p2, p3 Point, samples int) []Point {
	if samples < 2 {
		samples = 2
	}
	v0, v1, v2, v3 := p0.Vec(), p1.Vec(), p2.Vec(), p3.Vec()
	points := make([]Point, 0, samples)
	for k := 0; k < samples; k++ {
		t := float64(k) / float64(samples-1)
		points = append(points, FromVec(CatmullRom(v0, v1, v2, v3, t)))
	}
	return points
}

// Smooth interpolates a path with a sliding 4-point Catmull-Rom window.
// Paths shorter than 4 points are returned unchanged. The last input point
// is always appended, so the curve ends exactly where the path does.
// Neighbouring windows can repeat points at their joins.
func Smooth(path []Point) []Point {
	if len(path) < 4 {
		return path
	}
	windows := len(path) - 3
	smoothed := make([]Point, 0, windows*SamplesPerSegment+1)
	for i := 1; i < len(path)-2; i++ {
		smoothed = append(smoothed, Segment(path[i-1], path[i], path[i+1], path[i+2], SamplesPerSegment)...)
	}
	return append(smoothed, path[len(path)-1])
}
