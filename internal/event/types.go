// internal/event/types.go
package event

import (
	"merge-towers/internal/defs"
	"merge-towers/internal/types"
)

const (
	EnemySpawned       EventType = "EnemySpawned"
	EnemyDamaged       EventType = "EnemyDamaged"
	EnemyKilled        EventType = "EnemyKilled"     // Враг уничтожен, награда начисляется
	BarrierBreached    EventType = "BarrierBreached" // Враг дошёл до барьера
	GameOver           EventType = "GameOver"        // Барьер разрушен, ровно один раз за матч
	ProjectileFired    EventType = "ProjectileFired"
	TowerPlaced        EventType = "TowerPlaced" // Башня построена
	TowerMoved         EventType = "TowerMoved"
	TowerMerged        EventType = "TowerMerged"
	RelocationRejected EventType = "RelocationRejected"
)

// EnemyData — данные для EnemySpawned, EnemyDamaged и EnemyKilled.
type EnemyData struct {
	ID        types.EntityID
	Lane      int
	Health    int
	MaxHealth int
	Damage    int // Для EnemyDamaged
}

// BreachData — данные для BarrierBreached.
type BreachData struct {
	EnemyID       types.EntityID
	Lane          int
	BarrierHealth int
}

// GameOverData — данные для GameOver.
type GameOverData struct {
	FinalScore int
	Elapsed    float64
}

// ShotData — данные для ProjectileFired.
type ShotData struct {
	TowerID      types.EntityID
	ProjectileID types.EntityID
	TargetID     types.EntityID
	Kind         defs.TowerKind
}

// TowerData — данные для TowerPlaced, TowerMoved и RelocationRejected.
type TowerData struct {
	ID    types.EntityID
	Kind  defs.TowerKind
	Level int
	Lane  int
	Slot  int
}

// MergeData — данные для TowerMerged: два исходных идентификатора уничтожены.
type MergeData struct {
	MovedID      types.EntityID
	StationaryID types.EntityID
	ResultID     types.EntityID
	Kind         defs.TowerKind
	Level        int
}
