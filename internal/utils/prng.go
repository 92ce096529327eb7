// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — обёртка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом для генерации препятствий.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService создаёт новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed возвращает сид, с которым был создан генератор.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}
