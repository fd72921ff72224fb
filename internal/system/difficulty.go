package system

import (
	"log"
	"math"
	"time"

	"merge-towers/internal/clock"
)

// DifficultyPolicy переводит игровое время в множитель здоровья врагов.
type DifficultyPolicy interface {
	Multiplier(elapsedSeconds float64) float64
}

// ContinuousPolicy — 1 + прошедшие минуты.
type ContinuousPolicy struct{}

func (ContinuousPolicy) Multiplier(elapsedSeconds float64) float64 {
	return 1 + elapsedSeconds/60
}

// StepPolicy — ступенька Step каждые Interval.
type StepPolicy struct {
	Interval time.Duration
	Step     float64
}

func (p StepPolicy) Multiplier(elapsedSeconds float64) float64 {
	if p.Interval <= 0 {
		return 1
	}
	steps := math.Floor(elapsedSeconds / p.Interval.Seconds())
	return 1 + steps*p.Step
}

// DifficultySystem держит множитель сложности, который не убывает за матч.
// Значение вычисляется один раз в начале тика и до конца тика не меняется.
type DifficultySystem struct {
	clock   *clock.GameClock
	policy  DifficultyPolicy
	current float64
	ignored float64 // последнее отброшенное значение сервера, уже в логе
}

func NewDifficultySystem(c *clock.GameClock, policy DifficultyPolicy) *DifficultySystem {
	if policy == nil {
		policy = ContinuousPolicy{}
	}
	return &DifficultySystem{clock: c, policy: policy, current: 1}
}

// Update берёт множитель сервера, если он свежий, иначе считает по политике.
func (s *DifficultySystem) Update() {
	next := s.policy.Multiplier(s.clock.Elapsed())
	if external, ok := s.clock.ExternalMultiplier(); ok {
		next = external
	}
	if math.IsNaN(next) {
		return
	}
	if next < s.current {
		if _, ok := s.clock.ExternalMultiplier(); ok && next != s.ignored {
			log.Printf("DifficultySystem: ignoring decrease %.3f -> %.3f", s.current, next)
			s.ignored = next
		}
		return
	}
	s.current = next
	s.ignored = 0
}

// Snapshot — множитель текущего тика.
func (s *DifficultySystem) Snapshot() float64 {
	return s.current
}
