package config

import (
	"flag"
	"fmt"
)

// RegisterFlags привязывает параметры матча к флагам командной строки.
func RegisterFlags(fs *flag.FlagSet, cfg *Sim) {
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed (0 = time based)")
	fs.IntVar(&cfg.Lanes, "lanes", cfg.Lanes, "number of lanes")
	fs.IntVar(&cfg.StartingMoney, "money", cfg.StartingMoney, "starting money")
	fs.DurationVar(&cfg.SpawnInterval, "spawn-interval", cfg.SpawnInterval, "enemy spawn interval")
	fs.BoolVar(&cfg.AutoSpawn, "autospawn", cfg.AutoSpawn, "spawn enemies on a timer")
	fs.IntVar(&cfg.EnemyBaseHealth, "enemy-health", cfg.EnemyBaseHealth, "enemy base health before difficulty")
	fs.DurationVar(&cfg.ClockTimeout, "clock-timeout", cfg.ClockTimeout, "fall back to the local clock after this much silence from the server")
	fs.Func("difficulty", "difficulty curve: continuous or step", func(s string) error {
		mode, err := ParseDifficulty(s)
		if err != nil {
			return err
		}
		cfg.Difficulty = mode
		return nil
	})
}

// ParseDifficulty разбирает название кривой сложности.
func ParseDifficulty(s string) (DifficultyMode, error) {
	switch DifficultyMode(s) {
	case DifficultyContinuous, DifficultyStepped:
		return DifficultyMode(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want %s or %s)", s, DifficultyContinuous, DifficultyStepped)
}

// Validate проверяет параметры после разбора флагов.
func (s Sim) Validate() error {
	if s.Lanes < 1 {
		return fmt.Errorf("lanes must be >= 1, got %d", s.Lanes)
	}
	if s.StartingMoney < 0 {
		return fmt.Errorf("money must be >= 0, got %d", s.StartingMoney)
	}
	if s.SpawnInterval <= 0 {
		return fmt.Errorf("spawn interval must be positive, got %v", s.SpawnInterval)
	}
	if s.EnemyBaseHealth <= 0 {
		return fmt.Errorf("enemy health must be positive, got %d", s.EnemyBaseHealth)
	}
	if s.ClockTimeout <= 0 {
		return fmt.Errorf("clock timeout must be positive, got %v", s.ClockTimeout)
	}
	return nil
}
