// internal/system/state.go
package system

import (
	"merge-towers/internal/config"
	"merge-towers/internal/entity"
	"merge-towers/internal/event"
	"merge-towers/internal/types"
)

// CleanupSystem удаляет мёртвых врагов. Каждый враг удаляется ровно один раз,
// и только тогда рассылается EnemyKilled.
type CleanupSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCleanupSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CleanupSystem {
	return &CleanupSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *CleanupSystem) Update() {
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		health, ok := s.ecs.Healths[id]
		if !ok || health.Value > 0 || enemy.Breached {
			continue
		}
		data := event.EnemyData{ID: id, Lane: enemy.Lane, Health: 0, MaxHealth: health.Max}
		s.ecs.RemoveEntity(id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: data})
	}
}

// BarrierSystem снимает здоровье барьера за каждого прорвавшегося врага и
// объявляет конец игры, когда оно дошло до нуля.
type BarrierSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	damage          int
}

func NewBarrierSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *BarrierSystem {
	return &BarrierSystem{ecs: ecs, eventDispatcher: eventDispatcher, damage: config.BarrierBreachDamage}
}

// Update возвращает true, если в этом тике игра закончилась.
func (s *BarrierSystem) Update(elapsed float64) bool {
	player := s.ecs.Player
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		if !enemy.Breached {
			continue
		}
		s.ecs.RemoveEntity(id)
		s.Breach(id, enemy.Lane)
	}
	if player.BarrierHealth == 0 && !player.GameOver {
		player.GameOver = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{
			FinalScore: player.Score,
			Elapsed:    elapsed,
		}})
		return true
	}
	return false
}

// Breach снимает с барьера фиксированное количество здоровья, не ниже нуля.
func (s *BarrierSystem) Breach(enemyID types.EntityID, lane int) {
	player := s.ecs.Player
	player.BarrierHealth -= s.damage
	if player.BarrierHealth < 0 {
		player.BarrierHealth = 0
	}
	player.Breaches++
	s.eventDispatcher.Dispatch(event.Event{Type: event.BarrierBreached, Data: event.BreachData{
		EnemyID:       enemyID,
		Lane:          lane,
		BarrierHealth: player.BarrierHealth,
	}})
}
