// internal/app/controller.go
package app

import (
	"fmt"
	"time"

	"go-astar-grid/internal/config"
	"go-astar-grid/internal/event"
	"go-astar-grid/internal/utils"
	"go-astar-grid/pkg/gridmap"
	"go-astar-grid/pkg/spline"
)

// Metrics are the diagnostics of the last query.
type Metrics struct {
	NodesExpanded int
	PathLength    int // шаги дискретного пути
	CurvePoints   int // точки сглаженной кривой
	Found         bool
	Elapsed       time.Duration
}

// Summary is the metrics line shown under the grid. hasGoal distinguishes
// "nothing asked yet" from "asked and unreachable".
func (m Metrics) Summary(hasGoal bool) string {
	line := fmt.Sprintf("Nodes Processed: %d | Path Length: %d", m.NodesExpanded, m.PathLength)
	if m.CurvePoints > 0 {
		line += fmt.Sprintf(" | Curve: %d pts", m.CurvePoints)
	}
	if hasGoal && !m.Found {
		line += " | No path"
	}
	return line
}

// State is everything the front-end draws. Only the Controller mutates it.
type State struct {
	Grid     *gridmap.GridMap
	Start    gridmap.Cell
	Goal     *gridmap.Cell
	Path     []gridmap.Cell // от цели к старту, без старта
	Smooth   []spline.Point // в пикселях
	Explored []gridmap.Cell
	Metrics  Metrics
}

// HasPath reports whether the last query produced a drawable path.
func (s *State) HasPath() bool {
	return s.Goal != nil && s.Metrics.Found
}

// SearchReport is the payload of PathFound and PathNotFound events.
type SearchReport struct {
	Goal    gridmap.Cell
	Metrics Metrics
}

// Controller holds the interactive session: grid, start, last query.
type Controller struct {
	state      State
	settings   config.Settings
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
}

// NewController builds the grid from settings and scatters obstacles.
func NewController(settings config.Settings, dispatcher *event.Dispatcher) (*Controller, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	grid, err := gridmap.New(settings.Rows, settings.Cols)
	if err != nil {
		return nil, err
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	row, col := settings.StartCell()
	c := &Controller{
		state: State{
			Grid:  grid,
			Start: gridmap.Cell{Row: row, Col: col},
		},
		settings:   settings,
		rng:        utils.NewPRNGService(settings.Seed),
		dispatcher: dispatcher,
	}
	if err := grid.Reset(settings.Density, c.state.Start, c.rng); err != nil {
		return nil, err
	}
	return c, nil
}

// State exposes the session for drawing. Callers must not modify it.
func (c *Controller) State() *State { return &c.state }

// Snapshot returns a deep copy of the session, safe to keep across edits.
func (c *Controller) Snapshot() State {
	snap := c.state
	snap.Grid = c.state.Grid.Clone()
	if c.state.Goal != nil {
		goal := *c.state.Goal
		snap.Goal = &goal
	}
	snap.Path = append([]gridmap.Cell(nil), c.state.Path...)
	snap.Smooth = append([]spline.Point(nil), c.state.Smooth...)
	snap.Explored = append([]gridmap.Cell(nil), c.state.Explored...)
	return snap
}

func (c *Controller) Settings() config.Settings { return c.settings }

func (c *Controller) Seed() int64 { return c.rng.Seed() }

func (c *Controller) Dispatcher() *event.Dispatcher { return c.dispatcher }

// SelectGoal runs a query from the start to cell and stores the result.
// Blocked or out-of-bounds goals are rejected and leave the state untouched.
func (c *Controller) SelectGoal(cell gridmap.Cell) error {
	if !c.state.Grid.IsPassable(cell) {
		return fmt.Errorf("%w: goal %v is blocked or outside the grid", gridmap.ErrInvalidInput, cell)
	}
	c.dispatcher.Dispatch(event.Event{Type: event.GoalSelected, Data: cell})

	var explored []gridmap.Cell
	var observe func(gridmap.Expansion)
	if c.settings.ShowExplored {
		observe = func(e gridmap.Expansion) { explored = append(explored, e.Cell) }
	}

	began := time.Now()
	res, err := gridmap.Trace(c.state.Grid, c.state.Start, cell, observe)
	if err != nil {
		return err
	}
	elapsed := time.Since(began)

	goal := cell
	c.state.Goal = &goal
	c.state.Explored = explored
	c.state.Path = res.Path
	c.state.Smooth = nil
	if res.Found {
		c.state.Smooth = spline.Smooth(spline.PixelCenters(res.Path, config.CellSize))
	}
	c.state.Metrics = Metrics{
		NodesExpanded: res.NodesExpanded,
		PathLength:    res.Len(),
		CurvePoints:   len(c.state.Smooth),
		Found:         res.Found,
		Elapsed:       elapsed,
	}

	report := SearchReport{Goal: goal, Metrics: c.state.Metrics}
	if res.Found {
		c.dispatcher.Dispatch(event.Event{Type: event.PathFound, Data: report})
	} else {
		c.dispatcher.Dispatch(event.Event{Type: event.PathNotFound, Data: report})
	}
	return nil
}

// ResetGrid re-rolls the obstacles and forgets the last query.
func (c *Controller) ResetGrid() error {
	if err := c.state.Grid.Reset(c.settings.Density, c.state.Start, c.rng); err != nil {
		return err
	}
	c.ClearPath()
	c.dispatcher.Dispatch(event.Event{Type: event.GridReset, Data: c.state.Grid.BlockedCount()})
	return nil
}

// ToggleObstacle flips one cell. The start cannot be blocked.
// If a goal is selected the query is re-run on the edited grid.
func (c *Controller) ToggleObstacle(cell gridmap.Cell) error {
	if cell == c.state.Start {
		return fmt.Errorf("%w: start %v cannot be blocked", gridmap.ErrInvalidInput, cell)
	}
	blocked, err := c.state.Grid.IsBlocked(cell)
	if err != nil {
		return err
	}
	if err := c.state.Grid.SetObstacle(cell, !blocked); err != nil {
		return err
	}
	c.dispatcher.Dispatch(event.Event{Type: event.ObstacleToggled, Data: cell})

	if c.state.Goal == nil {
		return nil
	}
	goal := *c.state.Goal
	if !c.state.Grid.IsPassable(goal) {
		c.ClearPath()
		return nil
	}
	return c.SelectGoal(goal)
}

// ClearPath drops the goal and every result of the last query.
func (c *Controller) ClearPath() {
	c.state.Goal = nil
	c.state.Path = nil
	c.state.Smooth = nil
	c.state.Explored = nil
	c.state.Metrics = Metrics{}
}
