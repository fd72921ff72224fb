// internal/defs/towers.go
package defs

import (
	"fmt"
	"image/color"
	"strings"
	"time"
)

// TowerKind identifies an entry of the tower table.
type TowerKind int

const (
	TowerBasic TowerKind = iota
	TowerRapid
	TowerSniper
)

// AllTowerKinds lists the kinds in table order.
var AllTowerKinds = []TowerKind{TowerBasic, TowerRapid, TowerSniper}

func (k TowerKind) String() string {
	switch k {
	case TowerBasic:
		return "BASIC"
	case TowerRapid:
		return "RAPID"
	case TowerSniper:
		return "SNIPER"
	default:
		return fmt.Sprintf("TowerKind(%d)", int(k))
	}
}

// ParseTowerKind resolves a table tag such as "SNIPER" (case-insensitive).
func ParseTowerKind(s string) (TowerKind, error) {
	for _, k := range AllTowerKinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown tower kind %q", s)
}

// TowerDefinition holds the static data for one tower kind.
type TowerDefinition struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Damage          int        `json:"damage"`
	Range           float64    `json:"range"`
	FireRateMs      int        `json:"fire_rate_ms"` // Interval between shots
	Cost            int        `json:"cost"`
	Color           color.RGBA `json:"color"`
	ProjectileSpeed float64    `json:"projectile_speed"`
	ProjectileSize  float64    `json:"projectile_size"`
}

// FireInterval returns the level-1 interval between shots.
func (d TowerDefinition) FireInterval() time.Duration {
	return time.Duration(d.FireRateMs) * time.Millisecond
}

// TowerLibrary maps every kind to its definition. LoadTowerDefinitions may replace entries.
var TowerLibrary = map[TowerKind]TowerDefinition{
	TowerBasic: {
		ID:              "BASIC",
		Name:            "Basic",
		Damage:          10,
		Range:           300,
		FireRateMs:      800,
		Cost:            50,
		Color:           color.RGBA{255, 255, 255, 255},
		ProjectileSpeed: 400,
		ProjectileSize:  1,
	},
	TowerRapid: {
		ID:              "RAPID",
		Name:            "Rapid",
		Damage:          5,
		Range:           250,
		FireRateMs:      300,
		Cost:            75,
		Color:           color.RGBA{0, 255, 0, 255},
		ProjectileSpeed: 600,
		ProjectileSize:  0.8,
	},
	TowerSniper: {
		ID:              "SNIPER",
		Name:            "Sniper",
		Damage:          30,
		Range:           500,
		FireRateMs:      1500,
		Cost:            100,
		Color:           color.RGBA{255, 0, 0, 255},
		ProjectileSpeed: 800,
		ProjectileSize:  1.2,
	},
}

// Tower looks a kind up in the library.
func Tower(kind TowerKind) (TowerDefinition, bool) {
	def, ok := TowerLibrary[kind]
	return def, ok
}
