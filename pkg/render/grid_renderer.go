// pkg/render/grid_renderer.go
package render

import (
	"image/color"

	"go-astar-grid/pkg/gridmap"
	"go-astar-grid/pkg/spline"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Frame is what a single Draw call needs besides the grid itself.
type Frame struct {
	Start     gridmap.Cell
	Goal      *gridmap.Cell
	Path      []gridmap.Cell
	Explored  []gridmap.Cell
	Curve     []spline.Point // уже видимая часть кривой
	GoalAlpha float32        // множитель прозрачности цели, 0..1
}

// GridRenderer draws an occupancy grid, the last query and its curve.
type GridRenderer struct {
	grid     *gridmap.GridMap
	cellSize int
	colors   GridColors
	gridImg  *ebiten.Image // предрендеренная сетка
	dirty    bool
}

func NewGridRenderer(grid *gridmap.GridMap, cellSize int, colors GridColors) *GridRenderer {
	r := &GridRenderer{
		grid:     grid,
		cellSize: cellSize,
		colors:   colors,
		gridImg:  ebiten.NewImage(grid.Cols()*cellSize, grid.Rows()*cellSize),
	}
	r.RenderGridImage()
	return r
}

// Invalidate schedules a redraw of the cached grid image.
func (r *GridRenderer) Invalidate() { r.dirty = true }

// RenderGridImage redraws free and blocked cells into the cached image.
func (r *GridRenderer) RenderGridImage() {
	r.gridImg.Clear()
	r.gridImg.Fill(r.colors.BackgroundColor)
	r.grid.Each(func(cell gridmap.Cell, blocked bool) {
		fill := r.colors.FreeColor
		if blocked {
			fill = r.colors.BlockedColor
		}
		r.fillCell(r.gridImg, cell, fill)
		r.outlineCell(r.gridImg, cell, r.colors.GridLineColor)
	})
	r.dirty = false
}

func (r *GridRenderer) Draw(screen *ebiten.Image, frame Frame) {
	if r.dirty {
		r.RenderGridImage()
	}
	screen.DrawImage(r.gridImg, nil)

	for _, cell := range frame.Explored {
		if cell == frame.Start {
			continue
		}
		r.fillCell(screen, cell, r.colors.ExploredColor)
		r.outlineCell(screen, cell, r.colors.GridLineColor)
	}

	for _, cell := range frame.Path {
		if frame.Goal != nil && cell == *frame.Goal {
			continue
		}
		r.fillCell(screen, cell, r.colors.PathColor)
		r.outlineCell(screen, cell, r.colors.GridLineColor)
	}

	r.fillCell(screen, frame.Start, r.colors.StartColor)
	r.outlineCell(screen, frame.Start, r.colors.GridLineColor)

	if frame.Goal != nil {
		goal := WithAlpha(r.colors.GoalColor, uint8(float32(r.colors.GoalColor.A)*frame.GoalAlpha))
		r.fillCell(screen, *frame.Goal, goal)
		r.outlineCell(screen, *frame.Goal, r.colors.GridLineColor)
	}

	r.drawCurve(screen, frame.Curve)
}

func (r *GridRenderer) drawCurve(screen *ebiten.Image, curve []spline.Point) {
	if len(curve) == 0 {
		return
	}
	if len(curve) == 1 {
		p := curve[0]
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r.colors.CurveWidth, r.colors.CurveColor, true)
		return
	}
	shadow := DarkenColor(r.colors.CurveColor)
	for pass, c := range []color.RGBA{shadow, r.colors.CurveColor} {
		width := r.colors.CurveWidth
		if pass == 0 {
			width += 2
		}
		for i := 1; i < len(curve); i++ {
			a, b := curve[i-1], curve[i]
			if a == b {
				continue
			}
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, c, true)
		}
	}
}

func (r *GridRenderer) fillCell(target *ebiten.Image, cell gridmap.Cell, c color.RGBA) {
	x := float32(cell.Col * r.cellSize)
	y := float32(cell.Row * r.cellSize)
	size := float32(r.cellSize)
	vector.DrawFilledRect(target, x, y, size, size, c, false)
}

func (r *GridRenderer) outlineCell(target *ebiten.Image, cell gridmap.Cell, c color.RGBA) {
	x := float32(cell.Col * r.cellSize)
	y := float32(cell.Row * r.cellSize)
	size := float32(r.cellSize)
	vector.StrokeRect(target, x, y, size, size, r.colors.StrokeWidth, c, false)
}
