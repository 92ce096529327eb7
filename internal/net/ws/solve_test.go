package ws

import (
	"reflect"
	"strings"
	"testing"

	"go-astar-grid/internal/net/proto"
	"go-astar-grid/pkg/spline"
)

func TestSolveOpenGrid(t *testing.T) {
	resp := Solve(proto.SearchRequest{Rows: 3, Cols: 3, Goal: [2]int{2, 2}, Smooth: true}, 0)
	if resp.Error != "" {
		t.Fatalf("unexpected error %q", resp.Error)
	}
	want := [][2]int{{2, 2}, {1, 2}, {0, 2}, {0, 1}}
	if resp.Type != proto.TypeResult || !resp.Found || !reflect.DeepEqual(resp.Path, want) {
		t.Fatalf("expected path %v, got %+v", want, resp)
	}
	if resp.NodesExpanded != 9 {
		t.Fatalf("expected 9 nodes processed, got %d", resp.NodesExpanded)
	}
	if len(resp.Smooth) != spline.SamplesPerSegment+1 {
		t.Fatalf("expected %d curve points, got %d", spline.SamplesPerSegment+1, len(resp.Smooth))
	}
	if resp.Smooth[0] != [2]int{1, 2} || resp.Smooth[len(resp.Smooth)-1] != [2]int{0, 1} {
		t.Fatalf("curve must run from the second to the last path cell, got %v", resp.Smooth)
	}
}

func TestSolveBlockedCellsAndUnreachableGoal(t *testing.T) {
	req := proto.SearchRequest{
		Rows:    3,
		Cols:    3,
		Blocked: [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}},
		Goal:    [2]int{1, 1},
		Smooth:  true,
	}
	resp := Solve(req, 0)
	if resp.Error != "" || resp.Found {
		t.Fatalf("expected no path, got %+v", resp)
	}
	if len(resp.Path) != 0 || resp.Smooth != nil || resp.NodesExpanded != 1 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestSolveWithoutSmoothing(t *testing.T) {
	resp := Solve(proto.SearchRequest{Rows: 5, Cols: 5, Goal: [2]int{4, 4}}, 0)
	if !resp.Found || len(resp.Path) != 8 || resp.Smooth != nil {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestSolveReportsInvalidInput(t *testing.T) {
	one := 1.0
	tests := []struct {
		name string
		req  proto.SearchRequest
		want string
	}{
		{"empty grid", proto.SearchRequest{}, "grid dimensions must be positive"},
		{"too large", proto.SearchRequest{Rows: 2000, Cols: 2000}, "grid too large"},
		{"start outside", proto.SearchRequest{Rows: 3, Cols: 3, Start: [2]int{5, 5}}, "start (5,5) outside"},
		{"blocked outside", proto.SearchRequest{Rows: 3, Cols: 3, Blocked: [][2]int{{3, 0}}}, "cell out of bounds"},
		{"goal blocked", proto.SearchRequest{Rows: 3, Cols: 3, Goal: [2]int{2, 2}, Density: &one, Seed: 7}, "goal (2,2) is blocked"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Solve(tt.req, 1<<20)
			if resp.Type != proto.TypeError || !strings.Contains(resp.Error, tt.want) {
				t.Fatalf("expected error containing %q, got %+v", tt.want, resp)
			}
			if resp.Found || len(resp.Path) != 0 {
				t.Fatalf("error responses carry no path, got %+v", resp)
			}
		})
	}
}

func TestSolveDensityIsReproducible(t *testing.T) {
	density := 0.3
	req := proto.SearchRequest{Rows: 20, Cols: 20, Goal: [2]int{19, 19}, Density: &density, Seed: 42}
	first := Solve(req, 0)
	second := Solve(req, 0)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed must give the same answer:\n%+v\n%+v", first, second)
	}
}
