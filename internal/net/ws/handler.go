package ws

import (
	"log"
	nethttp "net/http"

	"github.com/gorilla/websocket"

	"go-astar-grid/internal/config"
	"go-astar-grid/internal/net/proto"
)

const maxMessageBytes = 8 << 20

type HandlerConfig struct {
	Logger *log.Logger
	// MaxCells caps rows*cols per request; zero means config.MaxGridCells.
	MaxCells int
}

// Handler answers every search message on a socket with one response.
type Handler struct {
	logger   *log.Logger
	maxCells int
	upgrader websocket.Upgrader
}

func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	maxCells := cfg.MaxCells
	if maxCells <= 0 {
		maxCells = config.MaxGridCells
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *nethttp.Request) bool {
			return true
		},
	}

	return &Handler{
		logger:   logger,
		maxCells: maxCells,
		upgrader: upgrader,
	}
}

func (h *Handler) Handle(w nethttp.ResponseWriter, r *nethttp.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageBytes)

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Printf("read failed for %s: %v", r.RemoteAddr, err)
			}
			return
		}

		var resp proto.SearchResponse
		req, err := proto.DecodeSearchRequest(payload)
		if err != nil {
			h.logger.Printf("discarding malformed message from %s: %v", r.RemoteAddr, err)
			resp = proto.NewErrorResponse(err)
		} else {
			resp = Solve(req, h.maxCells)
			if resp.Error != "" {
				h.logger.Printf("search %dx%d rejected: %s", req.Rows, req.Cols, resp.Error)
			} else {
				h.logger.Printf("search %dx%d %v->%v: found=%t, %d steps, %d nodes processed",
					req.Rows, req.Cols, req.Start, req.Goal, resp.Found, len(resp.Path), resp.NodesExpanded)
			}
		}

		data, err := proto.EncodeSearchResponse(resp)
		if err != nil {
			h.logger.Printf("failed to marshal response for %s: %v", r.RemoteAddr, err)
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}
