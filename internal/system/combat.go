package system

import (
	"log"

	"merge-towers/internal/component"
	"merge-towers/internal/config"
	"merge-towers/internal/defs"
	"merge-towers/internal/entity"
	"merge-towers/internal/event"
	"merge-towers/internal/types"
)

// FireState — состояние управления огнём башни.
type FireState int

const (
	Idle      FireState = iota // Перезарядка не закончилась или нет цели
	Ready                      // Перезарядка закончилась и цель есть
	Suspended                  // Башню перетаскивают
)

func (s FireState) String() string {
	switch s {
	case Ready:
		return "ready"
	case Suspended:
		return "suspended"
	default:
		return "idle"
	}
}

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update копит перезарядку каждой башни независимо от наличия цели и стреляет,
// когда перезарядка закончилась и цель нашлась. Перетаскиваемые башни пропускаются.
func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[id]
		combat, ok := s.ecs.Combats[id]
		if !ok || tower.Dragging {
			continue
		}

		combat.Cooldown += deltaTime
		if combat.Cooldown < combat.FireInterval {
			continue
		}

		targetID, found := FindTarget(s.ecs, id)
		if !found {
			continue
		}
		s.createProjectile(id, tower, combat, targetID)
		combat.Cooldown = 0
	}
}

// State возвращает текущее состояние башни без побочных эффектов.
func (s *CombatSystem) State(towerID types.EntityID) FireState {
	tower, ok := s.ecs.Towers[towerID]
	if !ok {
		return Idle
	}
	if tower.Dragging {
		return Suspended
	}
	combat, ok := s.ecs.Combats[towerID]
	if !ok || combat.Cooldown < combat.FireInterval {
		return Idle
	}
	if _, found := FindTarget(s.ecs, towerID); found {
		return Ready
	}
	return Idle
}

func (s *CombatSystem) createProjectile(towerID types.EntityID, tower *component.Tower, combat *component.Combat, targetID types.EntityID) {
	def, ok := defs.Tower(tower.Kind)
	if !ok {
		log.Printf("CombatSystem: no definition for tower kind %v", tower.Kind)
		return
	}
	towerPos := s.ecs.Positions[towerID]

	projID := s.ecs.NewEntity()
	s.ecs.Positions[projID] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	s.ecs.Projectiles[projID] = &component.Projectile{
		OwnerID:  towerID,
		TargetID: targetID,
		Speed:    def.ProjectileSpeed,
		Damage:   combat.Damage,
		Size:     def.ProjectileSize,
	}
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:  def.Color,
		Radius: float32(config.ProjectileRadius * def.ProjectileSize),
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.ShotData{
		TowerID:      towerID,
		ProjectileID: projID,
		TargetID:     targetID,
		Kind:         tower.Kind,
	}})
}
