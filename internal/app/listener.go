// internal/app/listener.go
package app

import (
	"log"

	"go-astar-grid/internal/event"
	"go-astar-grid/pkg/gridmap"
)

// MetricsLogger пишет телеметрию запросов в лог.
type MetricsLogger struct {
	Logger *log.Logger
}

// NewMetricsLogger subscribes a logger to every controller event.
func NewMetricsLogger(d *event.Dispatcher, logger *log.Logger) *MetricsLogger {
	if logger == nil {
		logger = log.Default()
	}
	l := &MetricsLogger{Logger: logger}
	d.Subscribe(event.PathFound, l, event.PathNotFound, event.GridReset, event.ObstacleToggled)
	return l
}

func (l *MetricsLogger) OnEvent(e event.Event) {
	switch e.Type {
	case event.PathFound:
		r := e.Data.(SearchReport)
		l.Logger.Printf("path to %v: %d steps, %d curve points, %d nodes processed in %v",
			r.Goal, r.Metrics.PathLength, r.Metrics.CurvePoints, r.Metrics.NodesExpanded, r.Metrics.Elapsed)
	case event.PathNotFound:
		r := e.Data.(SearchReport)
		l.Logger.Printf("no path to %v after %d nodes processed", r.Goal, r.Metrics.NodesExpanded)
	case event.GridReset:
		l.Logger.Printf("grid reset: %v cells blocked", e.Data)
	case event.ObstacleToggled:
		l.Logger.Printf("obstacle toggled at %v", e.Data.(gridmap.Cell))
	}
}
