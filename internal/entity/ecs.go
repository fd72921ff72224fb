// internal/entity/ecs.go
package entity

import (
	"math"
	"sort"

	"merge-towers/internal/component"
	"merge-towers/internal/types"
	"merge-towers/pkg/lanemap"
)

// ECS — хранилище сущностей. Записи появляются и исчезают только через него,
// остальные части держат лишь идентификаторы.
type ECS struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Healths     map[types.EntityID]*component.Health
	Renderables map[types.EntityID]*component.Renderable
	Towers      map[types.EntityID]*component.Tower
	Combats     map[types.EntityID]*component.Combat
	Projectiles map[types.EntityID]*component.Projectile
	Enemies     map[types.EntityID]*component.Enemy
	Player      *component.PlayerState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Healths:     make(map[types.EntityID]*component.Health),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Towers:      make(map[types.EntityID]*component.Tower),
		Combats:     make(map[types.EntityID]*component.Combat),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Player:      &component.PlayerState{},
	}
}

// NewEntity выдаёт новый идентификатор. Идентификаторы не переиспользуются.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Enemies, id)
}

// EnemyIDs — враги в порядке появления. Все системы обходят сущности в этом порядке,
// поэтому результат тика детерминирован.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return sortedKeys(ecs.Enemies)
}

// TowerIDs — башни в порядке создания.
func (ecs *ECS) TowerIDs() []types.EntityID {
	return sortedKeys(ecs.Towers)
}

// ProjectileIDs — снаряды в порядке создания.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return sortedKeys(ecs.Projectiles)
}

// IsAlive — враг существует, у него осталось здоровье и он не прорвался к барьеру.
// Устаревший идентификатор просто даёт false.
func (ecs *ECS) IsAlive(id types.EntityID) bool {
	enemy, ok := ecs.Enemies[id]
	if !ok || enemy.Breached {
		return false
	}
	health, ok := ecs.Healths[id]
	return ok && health.Value > 0
}

// TowerAtSlot ищет живую башню, стоящую ровно на якоре слота. Занятость слота
// не хранится отдельно, а выводится из башен. exclude позволяет пропустить
// перетаскиваемую башню.
func (ecs *ECS) TowerAtSlot(slot lanemap.Slot, exclude types.EntityID) (types.EntityID, bool) {
	for _, id := range ecs.TowerIDs() {
		if id == exclude {
			continue
		}
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		tower := ecs.Towers[id]
		x, y := pos.X, pos.Y
		if tower.Dragging {
			x, y = tower.OriginX, tower.OriginY
		}
		if x == slot.X && y == slot.Y {
			return id, true
		}
	}
	return 0, false
}

// Distance — евклидово расстояние между двумя сущностями.
func (ecs *ECS) Distance(a, b types.EntityID) (float64, bool) {
	pa, okA := ecs.Positions[a]
	pb, okB := ecs.Positions[b]
	if !okA || !okB {
		return 0, false
	}
	return math.Hypot(pa.X-pb.X, pa.Y-pb.Y), true
}

func sortedKeys[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
