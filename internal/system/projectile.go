// internal/system/projectile.go
package system

import (
	"math"

	"merge-towers/internal/config"
	"merge-towers/internal/entity"
	"merge-towers/internal/event"
	"merge-towers/internal/types"
	"merge-towers/pkg/lanemap"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	field           *lanemap.Field
	eventDispatcher *event.Dispatcher
	hitRadius       float64
}

func NewProjectileSystem(ecs *entity.ECS, field *lanemap.Field, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		field:           field,
		eventDispatcher: eventDispatcher,
		hitRadius:       config.HitRadius,
	}
}

// Update ведёт каждый снаряд к текущей позиции цели. Направление пересчитывается
// каждый тик, снаряд не перелетает цель. Отработавшие снаряды удаляются в этом же тике.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveEntity(id)
			continue
		}

		// Цель пропала или уже мертва: снаряд исчезает без урона
		if !s.ecs.IsAlive(proj.TargetID) {
			s.ecs.RemoveEntity(id)
			continue
		}
		targetPos := s.ecs.Positions[proj.TargetID]

		dx := targetPos.X - pos.X
		dy := targetPos.Y - pos.Y
		dist := math.Hypot(dx, dy)
		step := proj.Speed * deltaTime
		if step >= dist {
			pos.X, pos.Y = targetPos.X, targetPos.Y
		} else if dist > 0 {
			pos.X += dx / dist * step
			pos.Y += dy / dist * step
		}

		if math.Hypot(targetPos.X-pos.X, targetPos.Y-pos.Y) < s.hitRadius {
			s.hitTarget(id, proj.TargetID, proj.Damage)
			continue
		}

		if !s.field.Contains(pos.X, pos.Y) {
			s.ecs.RemoveEntity(id)
		}
	}
}

func (s *ProjectileSystem) hitTarget(projectileID, targetID types.EntityID, damage int) {
	ApplyDamage(s.ecs, s.eventDispatcher, targetID, damage)
	s.ecs.RemoveEntity(projectileID)
}
