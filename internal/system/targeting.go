// internal/system/targeting.go
package system

import (
	"math"

	"merge-towers/internal/entity"
	"merge-towers/internal/types"
)

// FindTarget выбирает цель для башни: живой враг на той же дорожке, не дальше радиуса,
// с минимальным евклидовым расстоянием. При точном равенстве остаётся первый по порядку
// обхода (меньший идентификатор). Функция ничего не меняет.
func FindTarget(ecs *entity.ECS, towerID types.EntityID) (types.EntityID, bool) {
	tower, ok := ecs.Towers[towerID]
	if !ok {
		return 0, false
	}
	combat, ok := ecs.Combats[towerID]
	if !ok {
		return 0, false
	}
	if _, ok := ecs.Positions[towerID]; !ok {
		return 0, false
	}

	var nearest types.EntityID
	minDistance := math.Inf(1)
	for _, enemyID := range ecs.EnemyIDs() {
		enemy := ecs.Enemies[enemyID]
		if enemy.Lane != tower.Lane || !ecs.IsAlive(enemyID) {
			continue
		}
		distance, ok := ecs.Distance(towerID, enemyID)
		if !ok {
			continue
		}
		if distance <= combat.Range && distance < minDistance {
			minDistance = distance
			nearest = enemyID
		}
	}
	return nearest, nearest != 0
}
