package net

import (
	"encoding/json"
	"log"
	nethttp "net/http"
	"time"

	"go-astar-grid/internal/net/ws"
)

type HTTPHandlerConfig struct {
	Logger   *log.Logger
	MaxCells int
}

// NewHTTPHandler routes the websocket endpoint and the health probe.
func NewHTTPHandler(cfg HTTPHandlerConfig) nethttp.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	started := time.Now()

	mux := nethttp.NewServeMux()

	mux.HandleFunc("/healthz", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.Method != nethttp.MethodGet {
			nethttp.Error(w, "method not allowed", nethttp.StatusMethodNotAllowed)
			return
		}
		payload := struct {
			Status string `json:"status"`
			Uptime string `json:"uptime"`
		}{
			Status: "ok",
			Uptime: time.Since(started).Round(time.Second).String(),
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Printf("failed to write health payload: %v", err)
		}
	})

	handler := ws.NewHandler(ws.HandlerConfig{Logger: logger, MaxCells: cfg.MaxCells})
	mux.HandleFunc("/ws", handler.Handle)

	return mux
}
