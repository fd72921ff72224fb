// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadTowerDefinitions reads a JSON array of tower definitions and replaces the matching
// TowerLibrary entries. Entries are matched by their "id" tag (BASIC, RAPID, SNIPER).
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}
	return ParseTowerDefinitions(file)
}

// ParseTowerDefinitions is LoadTowerDefinitions without the file access.
func ParseTowerDefinitions(data []byte) error {
	var towerDefs []TowerDefinition
	if err := json.Unmarshal(data, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	parsed := make(map[TowerKind]TowerDefinition, len(towerDefs))
	for _, def := range towerDefs {
		kind, err := ParseTowerKind(def.ID)
		if err != nil {
			return err
		}
		if err := validateTower(def); err != nil {
			return fmt.Errorf("tower %s: %w", def.ID, err)
		}
		parsed[kind] = def
	}

	for kind, def := range parsed {
		TowerLibrary[kind] = def
	}
	log.Printf("Loaded %d tower definitions", len(parsed))
	return nil
}

func validateTower(def TowerDefinition) error {
	switch {
	case def.Damage <= 0:
		return fmt.Errorf("damage must be positive, got %d", def.Damage)
	case def.Range <= 0:
		return fmt.Errorf("range must be positive, got %v", def.Range)
	case def.FireRateMs <= 0:
		return fmt.Errorf("fire_rate_ms must be positive, got %d", def.FireRateMs)
	case def.Cost < 0:
		return fmt.Errorf("cost must not be negative, got %d", def.Cost)
	case def.ProjectileSpeed <= 0:
		return fmt.Errorf("projectile_speed must be positive, got %v", def.ProjectileSpeed)
	}
	return nil
}
