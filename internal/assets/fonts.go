// internal/assets/fonts.go
package assets

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontManager парсит встроенный шрифт один раз и кэширует начертания по размеру.
type FontManager struct {
	once     sync.Once
	parsed   *opentype.Font
	parseErr error
	faces    map[float64]font.Face
}

// NewFontManager создает новый экземпляр FontManager.
func NewFontManager() *FontManager {
	return &FontManager{faces: make(map[float64]font.Face)}
}

// Face returns a face of the given size in points at 72 DPI.
func (m *FontManager) Face(size float64) (font.Face, error) {
	m.once.Do(func() {
		m.parsed, m.parseErr = opentype.Parse(goregular.TTF)
	})
	if m.parseErr != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", m.parseErr)
	}
	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face (size %v): %w", size, err)
	}
	m.faces[size] = face
	return face, nil
}

// Close releases every cached face.
func (m *FontManager) Close() {
	for size, face := range m.faces {
		face.Close()
		delete(m.faces, size)
	}
}
