// cmd/pathserver/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-astar-grid/internal/config"
	gridnet "go-astar-grid/internal/net"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON settings file")
	addr := flag.String("addr", "", "listen address, overrides the settings file")
	flag.Parse()

	settings := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load settings: %v", err)
		}
		settings = loaded
	}
	if *addr != "" {
		settings.ListenAddr = *addr
	}

	logger := log.New(os.Stderr, "pathserver: ", log.LstdFlags)
	srv := &http.Server{
		Addr:              settings.ListenAddr,
		Handler:           gridnet.NewHTTPHandler(gridnet.HTTPHandlerConfig{Logger: logger}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Printf("shutdown: %v", err)
		}
	}()

	logger.Printf("listening on %s", settings.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(err)
	}
}
