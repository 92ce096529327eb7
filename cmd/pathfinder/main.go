// cmd/pathfinder/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-astar-grid/internal/app"
	"go-astar-grid/internal/assets"
	"go-astar-grid/internal/config"
	"go-astar-grid/internal/event"
	"go-astar-grid/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", "", "path to a JSON settings file")
	seed := flag.Int64("seed", 0, "obstacle seed, overrides the settings file (0 = keep)")
	flag.Parse()

	settings := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load settings: %v", err)
		}
		settings = loaded
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	if settings.DebugAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.DebugAddr, nil))
		}()
	}

	dispatcher := event.NewDispatcher()
	app.NewMetricsLogger(dispatcher, log.Default())
	controller, err := app.NewController(settings, dispatcher)
	if err != nil {
		log.Fatalf("failed to create grid: %v", err)
	}
	log.Printf("grid %dx%d, seed %d, %d cells blocked",
		settings.Rows, settings.Cols, controller.Seed(), controller.State().Grid.BlockedCount())

	fonts := assets.NewFontManager()
	defer fonts.Close()
	face, err := fonts.Face(config.FontSize * 0.6)
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewPathfindingState(sm, controller, face))

	width, height := settings.ScreenSize()
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          width,
		height:         height,
	}
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("A* Grid Pathfinder")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
