// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Pulse возвращает значение в [0, 1], плавно колеблющееся с частотой hz.
func Pulse(seconds, hz float64) float32 {
	return float32(0.5 + 0.5*math.Sin(seconds*hz*2*math.Pi))
}
