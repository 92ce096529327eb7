package proto

import (
	"encoding/json"
	"fmt"
)

const (
	// Version tracks the wire-protocol revision expected by clients.
	Version = 1

	// TypeSearch identifies an inbound query.
	TypeSearch = "search"

	// Outbound message type identifiers.
	TypeResult = "result"
	TypeError  = "error"
)

// SearchRequest is one query: a grid description, two endpoints and options.
// Cells are [row, col] pairs.
type SearchRequest struct {
	Ver     int      `json:"ver,omitempty"`
	Type    string   `json:"type,omitempty"`
	Rows    int      `json:"rows" jsonschema:"minimum=1"`
	Cols    int      `json:"cols" jsonschema:"minimum=1"`
	Blocked [][2]int `json:"blocked,omitempty"`
	Start   [2]int   `json:"start"`
	Goal    [2]int   `json:"goal"`
	Smooth  bool     `json:"smooth,omitempty"`
	// Density, when set, scatters random obstacles before Blocked is applied.
	Density *float64 `json:"density,omitempty" jsonschema:"minimum=0,maximum=1"`
	Seed    int64    `json:"seed,omitempty"`
}

// SearchResponse answers exactly one SearchRequest.
type SearchResponse struct {
	Ver           int      `json:"ver"`
	Type          string   `json:"type"`
	Found         bool     `json:"found"`
	Path          [][2]int `json:"path"` // от цели к старту, старт не входит
	Smooth        [][2]int `json:"smooth,omitempty"`
	NodesExpanded int      `json:"nodesExpanded"`
	Error         string   `json:"error,omitempty"`
}

// DecodeSearchRequest parses an inbound payload. An empty type is accepted
// as a search so that minimal clients can omit it.
func DecodeSearchRequest(data []byte) (SearchRequest, error) {
	var req SearchRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return SearchRequest{}, fmt.Errorf("decode search request: %w", err)
	}
	if req.Type != "" && req.Type != TypeSearch {
		return SearchRequest{}, fmt.Errorf("unsupported message type %q", req.Type)
	}
	return req, nil
}

// NewErrorResponse renders a failure as a response.
func NewErrorResponse(err error) SearchResponse {
	return SearchResponse{Ver: Version, Type: TypeError, Path: [][2]int{}, Error: err.Error()}
}

// EncodeSearchResponse renders a response payload.
func EncodeSearchResponse(resp SearchResponse) ([]byte, error) {
	if resp.Ver == 0 {
		resp.Ver = Version
	}
	if resp.Path == nil {
		resp.Path = [][2]int{}
	}
	return json.Marshal(resp)
}
