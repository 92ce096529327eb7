// internal/state/pathfinding_state.go
package state

import (
	"errors"
	"image/color"
	"log"
	"time"

	"go-astar-grid/internal/app"
	"go-astar-grid/internal/config"
	"go-astar-grid/internal/event"
	"go-astar-grid/internal/ui"
	"go-astar-grid/internal/utils"
	"go-astar-grid/pkg/gridmap"
	"go-astar-grid/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// Убеждаемся, что PathfindingState соответствует интерфейсу State
var _ State = (*PathfindingState)(nil)

// PathfindingState — основное состояние: сетка, выбор цели, анимация пути.
type PathfindingState struct {
	stateMachine *StateMachine
	controller   *app.Controller
	renderer     *render.GridRenderer
	animator     *app.Animator
	metrics      *ui.MetricsPanel
	indicator    *ui.StateIndicator
	help         *ui.HelpOverlay
	face         font.Face
	lastClick    time.Time
	clock        float64 // секунды с момента входа, для пульсации цели
}

// NewPathfindingState wires the controller events to the renderer and the animator.
func NewPathfindingState(sm *StateMachine, controller *app.Controller, face font.Face) *PathfindingState {
	settings := controller.Settings()
	st := controller.State()
	_, canvasH := settings.CanvasSize()
	screenW, _ := settings.ScreenSize()

	s := &PathfindingState{
		stateMachine: sm,
		controller:   controller,
		renderer:     render.NewGridRenderer(st.Grid, config.CellSize, gridColors()),
		animator:     app.NewAnimator(settings.AnimationDelay()),
		metrics:      ui.NewMetricsPanel(config.PanelPadding/2, canvasH+config.PanelPadding/2, face, config.MetricsColor),
		indicator:    ui.NewStateIndicator(float32(screenW-config.PanelPadding), float32(canvasH+config.PanelPadding/2+config.FontSize/2), config.FontSize/3),
		help:         ui.NewHelpOverlay(face, config.OverlayColor, config.TextLightColor),
		face:         face,
	}

	d := controller.Dispatcher()
	d.Subscribe(event.GridReset, event.ListenerFunc(func(event.Event) {
		s.renderer.Invalidate()
		s.animator.Stop()
	}), event.ObstacleToggled)
	d.Subscribe(event.PathFound, event.ListenerFunc(func(event.Event) {
		s.animator.Start(s.controller.State().Smooth)
		s.indicator.Flash()
	}))
	d.Subscribe(event.PathNotFound, event.ListenerFunc(func(event.Event) {
		s.animator.Stop()
		s.indicator.Flash()
	}))
	return s
}

func gridColors() render.GridColors {
	return render.GridColors{
		BackgroundColor: config.BackgroundColor,
		FreeColor:       config.FreeColor,
		BlockedColor:    config.BlockedColor,
		GridLineColor:   config.GridLineColor,
		StartColor:      config.StartColor,
		GoalColor:       config.GoalColor,
		PathColor:       config.PathColor,
		CurveColor:      config.CurveColor,
		ExploredColor:   config.ExploredColor,
		StrokeWidth:     config.GridStrokeWidth,
		CurveWidth:      config.CurveStrokeWidth,
	}
}

func (s *PathfindingState) Enter() {}

func (s *PathfindingState) Exit() {}

func (s *PathfindingState) Update(deltaTime float64) {
	s.clock += deltaTime
	s.animator.Update(deltaTime)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.stateMachine.SetState(NewPauseState(s.stateMachine, s, s.face))
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		s.help.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if err := s.controller.ResetGrid(); err != nil {
			log.Printf("reset failed: %v", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.animator.Replay()
	}

	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	if time.Since(s.lastClick) < config.ClickDebounceTime*time.Millisecond {
		return
	}
	s.lastClick = time.Now()

	x, y := ebiten.CursorPosition()
	cell, ok := utils.ScreenToCell(x, y, config.CellSize)
	if !ok || !s.controller.State().Grid.InBounds(cell) {
		return // клик по панели метрик или мимо окна
	}
	if left {
		s.selectGoal(cell)
	} else {
		s.toggleObstacle(cell)
	}
}

func (s *PathfindingState) selectGoal(cell gridmap.Cell) {
	err := s.controller.SelectGoal(cell)
	if errors.Is(err, gridmap.ErrInvalidInput) {
		return // клик по стене игнорируется
	}
	if err != nil {
		log.Printf("search failed: %v", err)
	}
}

func (s *PathfindingState) toggleObstacle(cell gridmap.Cell) {
	err := s.controller.ToggleObstacle(cell)
	if errors.Is(err, gridmap.ErrInvalidInput) {
		return // старт нельзя закрыть
	}
	if err != nil {
		log.Printf("toggle failed: %v", err)
	}
}

func (s *PathfindingState) Draw(screen *ebiten.Image) {
	st := s.controller.State()
	screen.Fill(config.BackgroundColor)
	s.renderer.Draw(screen, render.Frame{
		Start:     st.Start,
		Goal:      st.Goal,
		Path:      st.Path,
		Explored:  st.Explored,
		Curve:     s.animator.Visible(),
		GoalAlpha: utils.Lerp(0.6, 1, utils.Pulse(s.clock, config.GoalPulseHz)),
	})
	s.metrics.Draw(screen, st.Metrics, st.Goal != nil)
	s.indicator.Draw(screen, s.indicatorColor())
	s.help.Draw(screen)
}

func (s *PathfindingState) indicatorColor() color.Color {
	st := s.controller.State()
	switch {
	case st.Goal == nil:
		return config.GridLineColor
	case st.Metrics.Found:
		return config.GoalColor
	default:
		return config.StartColor
	}
}
