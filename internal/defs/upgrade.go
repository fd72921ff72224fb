// internal/defs/upgrade.go
package defs

import (
	"math"
	"time"

	"merge-towers/internal/config"
)

// LevelStats returns damage and fire interval of a tower of the given level (level >= 1).
// Damage grows by UpgradeDamageScale per level, the interval shrinks by UpgradeRateScale
// but never below MinFireInterval.
func LevelStats(def TowerDefinition, level int) (int, time.Duration) {
	if level < 1 {
		level = 1
	}
	steps := float64(level - 1)

	damage := int(math.Round(float64(def.Damage) * math.Pow(config.UpgradeDamageScale, steps)))

	base := def.FireInterval()
	floor := config.MinFireInterval
	if base < floor {
		floor = base
	}
	interval := time.Duration(math.Round(float64(base) * math.Pow(config.UpgradeRateScale, steps)))
	if interval < floor {
		interval = floor
	}
	return damage, interval
}
