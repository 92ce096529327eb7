// internal/state/pause_state.go
package state

import (
	"go-astar-grid/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает предыдущее состояние и рисует его под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	face          font.Face
}

func NewPauseState(sm *StateMachine, prevState State, face font.Face) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		face:          face,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.OverlayColor, false)

	pauseText := "PAUSED"
	textBounds := text.BoundString(s.face, pauseText)
	x := (w - textBounds.Dx()) / 2
	y := (h-textBounds.Dy())/2 - textBounds.Min.Y
	text.Draw(screen, pauseText, s.face, x, y, config.TextLightColor)
}

func (s *PauseState) Exit() {}
