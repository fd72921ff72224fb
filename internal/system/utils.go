// internal/system/utils.go
package system

import (
	"merge-towers/internal/entity"
	"merge-towers/internal/event"
	"merge-towers/internal/types"
)

// ApplyDamage наносит урон врагу. Здоровье не опускается ниже нуля; смерть
// обрабатывается позже, при чистке в конце тика. Возвращает фактически снятое здоровье.
func ApplyDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, enemyID types.EntityID, damage int) int {
	if damage <= 0 || !ecs.IsAlive(enemyID) {
		return 0
	}
	health := ecs.Healths[enemyID]

	dealt := damage
	if dealt > health.Value {
		dealt = health.Value
	}
	health.Value -= dealt

	if dispatcher != nil {
		dispatcher.Dispatch(event.Event{Type: event.EnemyDamaged, Data: event.EnemyData{
			ID:        enemyID,
			Lane:      ecs.Enemies[enemyID].Lane,
			Health:    health.Value,
			MaxHealth: health.Max,
			Damage:    dealt,
		}})
	}
	return dealt
}
