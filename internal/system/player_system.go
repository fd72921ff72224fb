// internal/system/player_system.go
package system

import (
	"merge-towers/internal/defs"
	"merge-towers/internal/entity"
	"merge-towers/internal/event"
)

// PlayerSystem начисляет очки и деньги за убитых врагов.
type PlayerSystem struct {
	ecs   *entity.ECS
	enemy defs.EnemyDefinition
}

func NewPlayerSystem(ecs *entity.ECS, enemy defs.EnemyDefinition) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, enemy: enemy}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	player := s.ecs.Player
	player.Score += s.enemy.RewardScore
	player.Money += s.enemy.RewardMoney
	player.Kills++
}

// Spend списывает деньги, если их хватает.
func (s *PlayerSystem) Spend(amount int) bool {
	if amount < 0 || s.ecs.Player.Money < amount {
		return false
	}
	s.ecs.Player.Money -= amount
	return true
}
