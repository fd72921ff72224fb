// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds the static data for the lane walker.
type EnemyDefinition struct {
	ID          string     `json:"id"`
	BaseHealth  int        `json:"base_health"`
	Speed       float64    `json:"speed"`
	Radius      float64    `json:"radius"`
	RewardScore int        `json:"reward_score"`
	RewardMoney int        `json:"reward_money"`
	Color       color.RGBA `json:"color"`
}

// DefaultEnemy is the single enemy type of a match.
var DefaultEnemy = EnemyDefinition{
	ID:          "WALKER",
	BaseHealth:  30,
	Speed:       50,
	Radius:      20,
	RewardScore: 10,
	RewardMoney: 15,
	Color:       color.RGBA{255, 0, 0, 255},
}
