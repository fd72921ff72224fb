// internal/system/movement.go
package system

import (
	"merge-towers/internal/entity"
	"merge-towers/pkg/lanemap"
)

// MovementSystem двигает врагов вниз по дорожкам и отмечает тех, кто дошёл до барьера
type MovementSystem struct {
	ecs         *entity.ECS
	field       *lanemap.Field
	enemyRadius float64
}

func NewMovementSystem(ecs *entity.ECS, field *lanemap.Field, enemyRadius float64) *MovementSystem {
	return &MovementSystem{ecs: ecs, field: field, enemyRadius: enemyRadius}
}

// Update возвращает число врагов, отмеченных как прорвавшиеся в этом тике.
func (s *MovementSystem) Update(deltaTime float64) int {
	breached := 0
	barrierY := s.field.BarrierY()
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		if enemy.Breached {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}
		pos.Y += vel.Speed * deltaTime
		if pos.Y+s.enemyRadius >= barrierY {
			enemy.Breached = true
			breached++
		}
	}
	return breached
}
