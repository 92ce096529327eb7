package ws

import (
	"errors"
	"fmt"

	"go-astar-grid/internal/net/proto"
	"go-astar-grid/internal/utils"
	"go-astar-grid/pkg/gridmap"
	"go-astar-grid/pkg/spline"
)

// ErrGridTooLarge rejects requests above the configured cell budget.
var ErrGridTooLarge = errors.New("grid too large")

// Solve builds the grid a request describes and runs one query on it.
// Invalid input is reported in the response, never corrected.
func Solve(req proto.SearchRequest, maxCells int) proto.SearchResponse {
	grid, err := buildGrid(req, maxCells)
	if err != nil {
		return proto.NewErrorResponse(err)
	}

	start := cellFromPair(req.Start)
	goal := cellFromPair(req.Goal)
	res, err := gridmap.Search(grid, start, goal)
	if err != nil {
		return proto.NewErrorResponse(err)
	}

	resp := proto.SearchResponse{
		Ver:           proto.Version,
		Type:          proto.TypeResult,
		Found:         res.Found,
		Path:          make([][2]int, 0, len(res.Path)),
		NodesExpanded: res.NodesExpanded,
	}
	for _, cell := range res.Path {
		resp.Path = append(resp.Path, [2]int{cell.Row, cell.Col})
	}
	if req.Smooth && res.Found {
		for _, p := range spline.Smooth(spline.CellPoints(res.Path)) {
			resp.Smooth = append(resp.Smooth, [2]int{p.X, p.Y})
		}
	}
	return resp
}

func buildGrid(req proto.SearchRequest, maxCells int) (*gridmap.GridMap, error) {
	if req.Rows > 0 && req.Cols > 0 && maxCells > 0 && req.Rows > maxCells/req.Cols {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrGridTooLarge, req.Rows, req.Cols, maxCells)
	}
	grid, err := gridmap.New(req.Rows, req.Cols)
	if err != nil {
		return nil, err
	}
	if req.Density != nil {
		rng := utils.NewPRNGService(req.Seed)
		if err := grid.Reset(*req.Density, cellFromPair(req.Start), rng); err != nil {
			return nil, err
		}
	}
	for _, pair := range req.Blocked {
		if err := grid.SetObstacle(cellFromPair(pair), true); err != nil {
			return nil, err
		}
	}
	return grid, nil
}

func cellFromPair(pair [2]int) gridmap.Cell {
	return gridmap.Cell{Row: pair[0], Col: pair[1]}
}
