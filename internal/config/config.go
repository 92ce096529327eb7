// internal/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"time"
)

const (
	CellSize          = 20
	FontSize          = 30
	PanelPadding      = 20
	MaxDeltaTime      = 0.06
	ClickDebounceTime = 100 // ms
	GridStrokeWidth   = 1.0
	CurveStrokeWidth  = 3.0
	GoalPulseHz       = 1.5

	DefaultRows             = 40
	DefaultCols             = 50
	DefaultDensity          = 0.25
	DefaultAnimationDelayMs = 10
	DefaultListenAddr       = "localhost:8080"
	MaxGridCells            = 1 << 20 // предел для сетевых запросов
)

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	FreeColor       = color.RGBA{255, 255, 255, 255}
	BlockedColor    = color.RGBA{0, 0, 0, 255}
	GridLineColor   = color.RGBA{0, 0, 0, 255}
	StartColor      = color.RGBA{255, 0, 0, 255}
	GoalColor       = color.RGBA{0, 255, 0, 255}
	PathColor       = color.RGBA{0, 0, 255, 255}
	CurveColor      = color.RGBA{255, 255, 0, 255}
	ExploredColor   = color.RGBA{200, 220, 255, 255}
	MetricsColor    = color.RGBA{0, 0, 255, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
)

// ErrInvalidSettings is wrapped by every Validate failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings — параметры, которые можно переопределить JSON-файлом.
type Settings struct {
	Rows    int     `json:"rows"`
	Cols    int     `json:"cols"`
	Density float64 `json:"density"`
	// Start по умолчанию — центр сетки.
	Start *[2]int `json:"start,omitempty"`
	// Seed 0 означает "взять текущее время".
	Seed             int64  `json:"seed"`
	AnimationDelayMs int    `json:"animationDelayMs"`
	ShowExplored     bool   `json:"showExplored"`
	ListenAddr       string `json:"listenAddr"`
	DebugAddr        string `json:"debugAddr,omitempty"`
}

// Default returns the settings of the classic 40x50 board.
func Default() Settings {
	return Settings{
		Rows:             DefaultRows,
		Cols:             DefaultCols,
		Density:          DefaultDensity,
		AnimationDelayMs: DefaultAnimationDelayMs,
		ShowExplored:     true,
		ListenAddr:       DefaultListenAddr,
	}
}

// Load reads a JSON settings file on top of Default.
func Load(path string) (Settings, error) {
	settings := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

// Validate checks dimensions, density and the start cell.
func (s Settings) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidSettings, s.Rows, s.Cols)
	}
	if s.Density < 0 || s.Density > 1 || math.IsNaN(s.Density) {
		return fmt.Errorf("%w: density %v outside [0,1]", ErrInvalidSettings, s.Density)
	}
	if s.Start != nil {
		r, c := s.Start[0], s.Start[1]
		if r < 0 || r >= s.Rows || c < 0 || c >= s.Cols {
			return fmt.Errorf("%w: start (%d,%d) outside %dx%d grid", ErrInvalidSettings, r, c, s.Rows, s.Cols)
		}
	}
	if s.AnimationDelayMs < 0 {
		return fmt.Errorf("%w: negative animation delay", ErrInvalidSettings)
	}
	return nil
}

// StartCell returns the configured start, or the grid centre.
func (s Settings) StartCell() (row, col int) {
	if s.Start != nil {
		return s.Start[0], s.Start[1]
	}
	return s.Rows / 2, s.Cols / 2
}

// AnimationDelay is the pause between two revealed path points.
func (s Settings) AnimationDelay() time.Duration {
	return time.Duration(s.AnimationDelayMs) * time.Millisecond
}

// CanvasSize is the pixel size of the grid area.
func (s Settings) CanvasSize() (width, height int) {
	return s.Cols * CellSize, s.Rows * CellSize
}

// ScreenSize adds the metrics strip below the canvas.
func (s Settings) ScreenSize() (width, height int) {
	w, h := s.CanvasSize()
	return w, h + FontSize + PanelPadding
}
