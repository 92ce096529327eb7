// pkg/gridmap/pathfinding.go
package gridmap

import (
	"container/heap"
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when start or goal is out of bounds or blocked.
var ErrInvalidInput = errors.New("invalid search input")

// Result is the outcome of one search.
type Result struct {
	// Path runs from the goal back to the cell right after start.
	// Start itself is never included.
	Path          []Cell
	Found         bool
	NodesExpanded int
}

// Len is the number of steps in the path.
func (r Result) Len() int { return len(r.Path) }

// Forward returns the path in start-to-goal order.
func (r Result) Forward() []Cell {
	out := make([]Cell, len(r.Path))
	for i, cell := range r.Path {
		out[len(r.Path)-1-i] = cell
	}
	return out
}

// Expansion describes a single node expansion, reported to a Trace observer.
type Expansion struct {
	Cell         Cell
	G, F         int
	FrontierSize int
	Index        int
}

// Search finds a shortest 4-directional path from start to goal.
// An unreachable goal is not an error: the result has Found == false.
func Search(grid *GridMap, start, goal Cell) (Result, error) {
	return Trace(grid, start, goal, nil)
}

// Trace runs Search and calls observe after every expansion.
// observe may be nil.
func Trace(grid *GridMap, start, goal Cell, observe func(Expansion)) (Result, error) {
	if err := validateEndpoint(grid, "start", start); err != nil {
		return Result{}, err
	}
	if err := validateEndpoint(grid, "goal", goal); err != nil {
		return Result{}, err
	}
	if start == goal {
		return Result{Path: []Cell{}, Found: true}, nil
	}

	pq := &frontier{}
	heap.Init(pq)
	heap.Push(pq, frontierItem{F: start.Manhattan(goal), G: 0, Cell: start})

	// Отсутствие ключа означает "ещё не посещена" (бесконечная стоимость).
	gScore := map[Cell]int{start: 0}
	cameFrom := make(map[Cell]Cell)
	closed := make(map[Cell]struct{})
	expanded := 0

	for pq.Len() > 0 {
		item := heap.Pop(pq).(frontierItem)
		current := item.Cell
		if _, done := closed[current]; done {
			// stale duplicate of a cell that was already expanded
			continue
		}
		expanded++

		if observe != nil {
			observe(Expansion{
				Cell:         current,
				G:            item.G,
				F:            item.F,
				FrontierSize: pq.Len(),
				Index:        expanded,
			})
		}

		if current == goal {
			return Result{
				Path:          reconstructPath(cameFrom, current, start),
				Found:         true,
				NodesExpanded: expanded,
			}, nil
		}

		closed[current] = struct{}{}
		tentativeG := gScore[current] + 1
		for _, neighbor := range current.Neighbors() {
			if !grid.IsPassable(neighbor) {
				continue
			}
			if known, seen := gScore[neighbor]; seen && tentativeG >= known {
				continue
			}
			delete(closed, neighbor)
			cameFrom[neighbor] = current
			gScore[neighbor] = tentativeG
			heap.Push(pq, frontierItem{
				F:    tentativeG + neighbor.Manhattan(goal),
				G:    tentativeG,
				Cell: neighbor,
			})
		}
	}

	return Result{Found: false, NodesExpanded: expanded}, nil
}

func validateEndpoint(grid *GridMap, name string, cell Cell) error {
	if grid == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidInput)
	}
	if !grid.InBounds(cell) {
		return fmt.Errorf("%w: %s %v outside %dx%d grid", ErrInvalidInput, name, cell, grid.Rows(), grid.Cols())
	}
	if !grid.IsPassable(cell) {
		return fmt.Errorf("%w: %s %v is blocked", ErrInvalidInput, name, cell)
	}
	return nil
}

// reconstructPath walks parents from current back to, but excluding, start.
// The result is goal-first.
func reconstructPath(cameFrom map[Cell]Cell, current, start Cell) []Cell {
	path := []Cell{}
	for current != start {
		path = append(path, current)
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		current = prev
	}
	return path
}
