// internal/ui/metrics_panel.go
package ui

import (
	"image/color"

	"go-astar-grid/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MetricsPanel — полоса под сеткой с телеметрией последнего запроса.
type MetricsPanel struct {
	X, Y  int
	Face  font.Face
	Color color.Color
}

func NewMetricsPanel(x, y int, face font.Face, c color.Color) *MetricsPanel {
	return &MetricsPanel{X: x, Y: y, Face: face, Color: c}
}

func (p *MetricsPanel) Draw(screen *ebiten.Image, m app.Metrics, hasGoal bool) {
	line := m.Summary(hasGoal)
	bounds := text.BoundString(p.Face, line)
	// базовая линия: верх текста на p.Y
	text.Draw(screen, line, p.Face, p.X, p.Y-bounds.Min.Y, p.Color)
}
