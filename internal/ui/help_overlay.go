// internal/ui/help_overlay.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HelpLines lists the key bindings shown by the overlay.
var HelpLines = []string{
	"Left click   select goal",
	"Right click  toggle obstacle",
	"R            new random obstacles",
	"Space        replay path animation",
	"P / Esc      pause",
	"F1           toggle this help",
}

// HelpOverlay — полупрозрачная панель с подсказками.
type HelpOverlay struct {
	Visible bool
	Face    font.Face
	Shade   color.Color
	Color   color.Color
}

func NewHelpOverlay(face font.Face, shade, c color.Color) *HelpOverlay {
	return &HelpOverlay{Face: face, Shade: shade, Color: c}
}

func (h *HelpOverlay) Toggle() { h.Visible = !h.Visible }

func (h *HelpOverlay) Draw(screen *ebiten.Image) {
	if !h.Visible {
		return
	}
	lineHeight := h.Face.Metrics().Height.Ceil()
	width := 0
	for _, line := range HelpLines {
		if w := text.BoundString(h.Face, line).Dx(); w > width {
			width = w
		}
	}
	const pad = 12
	boxW := float32(width + 2*pad)
	boxH := float32(lineHeight*len(HelpLines) + 3*pad)
	vector.DrawFilledRect(screen, pad, pad, boxW, boxH, h.Shade, false)
	for i, line := range HelpLines {
		text.Draw(screen, line, h.Face, 2*pad, 2*pad+lineHeight*(i+1)-lineHeight/4, h.Color)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f  FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		2*pad, 2*pad+lineHeight*len(HelpLines))
}
