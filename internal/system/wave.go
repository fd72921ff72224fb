// internal/system/wave.go
package system

import (
	"fmt"
	"log"
	"math"

	"merge-towers/internal/component"
	"merge-towers/internal/defs"
	"merge-towers/internal/entity"
	"merge-towers/internal/event"
	"merge-towers/internal/types"
	"merge-towers/internal/utils"
	"merge-towers/pkg/lanemap"
)

// WaveSystem — таймер появления врагов. Каждые interval секунд создаёт врага
// на случайной дорожке с текущим множителем сложности.
type WaveSystem struct {
	ecs             *entity.ECS
	field           *lanemap.Field
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	enemy           defs.EnemyDefinition
	baseHealth      int
	interval        float64
	spawnTimer      float64
	enabled         bool
}

func NewWaveSystem(ecs *entity.ECS, field *lanemap.Field, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, enemy defs.EnemyDefinition) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		field:           field,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		enemy:           enemy,
		baseHealth:      enemy.BaseHealth,
		interval:        2.0,
		enabled:         true,
	}
}

// Configure задаёт интервал появления (секунды), базовое здоровье и включает таймер.
func (s *WaveSystem) Configure(intervalSeconds float64, baseHealth int, enabled bool) {
	if intervalSeconds > 0 {
		s.interval = intervalSeconds
	}
	if baseHealth > 0 {
		s.baseHealth = baseHealth
	}
	s.enabled = enabled
}

// Update двигает таймер; multiplier — снимок сложности на этот тик.
func (s *WaveSystem) Update(deltaTime float64, multiplier float64) {
	if !s.enabled {
		return
	}
	s.spawnTimer += deltaTime
	for s.spawnTimer >= s.interval {
		s.spawnTimer -= s.interval
		lane := s.rng.Between(0, s.field.Lanes-1)
		if _, err := s.Spawn(lane, s.baseHealth, multiplier); err != nil {
			log.Printf("WaveSystem: %v", err)
		}
	}
}

// Spawn создаёт врага в начале дорожки. Максимальное здоровье
// floor(baseHealth * multiplier) и скорость speed * multiplier фиксируются здесь
// и больше не пересчитываются.
func (s *WaveSystem) Spawn(lane, baseHealth int, multiplier float64) (types.EntityID, error) {
	if !s.field.ValidLane(lane) {
		return 0, fmt.Errorf("lane %d out of range [0,%d)", lane, s.field.Lanes)
	}
	if baseHealth <= 0 {
		return 0, fmt.Errorf("base health must be positive, got %d", baseHealth)
	}
	if multiplier < 1 || math.IsNaN(multiplier) || math.IsInf(multiplier, 0) {
		multiplier = 1
	}
	maxHealth := int(math.Floor(float64(baseHealth) * multiplier))
	if maxHealth < 1 {
		maxHealth = 1
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: s.field.LaneCenterX(lane), Y: 0}
	s.ecs.Velocities[id] = &component.Velocity{Speed: s.enemy.Speed * multiplier}
	s.ecs.Healths[id] = &component.Health{Value: maxHealth, Max: maxHealth}
	s.ecs.Enemies[id] = &component.Enemy{
		Lane:       lane,
		BaseHealth: baseHealth,
		Multiplier: multiplier,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  s.enemy.Color,
		Radius: float32(s.enemy.Radius),
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{
		ID:        id,
		Lane:      lane,
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}})
	return id, nil
}
