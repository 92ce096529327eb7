// pkg/render/color.go
package render

import "image/color"

// GridColors holds all the color definitions needed to render the board.
type GridColors struct {
	BackgroundColor color.RGBA
	FreeColor       color.RGBA
	BlockedColor    color.RGBA
	GridLineColor   color.RGBA
	StartColor      color.RGBA
	GoalColor       color.RGBA
	PathColor       color.RGBA
	CurveColor      color.RGBA
	ExploredColor   color.RGBA
	StrokeWidth     float32
	CurveWidth      float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
