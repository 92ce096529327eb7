// internal/event/types.go
package event

const (
	GoalSelected    EventType = "GoalSelected"    // Выбрана цель
	PathFound       EventType = "PathFound"       // Путь найден
	PathNotFound    EventType = "PathNotFound"    // Цель недостижима
	GridReset       EventType = "GridReset"       // Препятствия сгенерированы заново
	ObstacleToggled EventType = "ObstacleToggled" // Клетка переключена вручную
)
