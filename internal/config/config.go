// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 390
	ScreenHeight = 844
	MaxDeltaTime = 0.06

	// Поле и дорожки
	Lanes          = 6
	BarrierOffset  = 50.0  // Барьер на 50px выше нижнего края
	TowerRowOffset = 100.0 // Первый ряд слотов на 100px выше барьера
	TowerRows      = 2
	TowerRowStep   = 100.0
	SnapDistance   = 50.0
	HUDStripHeight = 100.0 // Клики в нижней полосе не ставят башни

	// Барьер и игрок
	BarrierMaxHealth    = 100
	BarrierBreachDamage = 10
	StartingMoney       = 100
	KillScore           = 10
	KillMoney           = 15

	// Враги
	SpawnInterval   = 2000 * time.Millisecond
	EnemyBaseHealth = 30
	EnemySpeed      = 50.0 // pixels per second
	EnemyRadius     = 20.0

	// Снаряды и башни
	HitRadius          = 20.0 // Дистанция засчитывания попадания, не зависит от размера снаряда
	ProjectileRadius   = 4.0
	TowerRadius        = 16.0
	UpgradeDamageScale = 1.5
	UpgradeRateScale   = 0.8
	MinFireInterval    = 300 * time.Millisecond

	// Сложность
	DifficultyStepInterval = 60 * time.Second
	DifficultyStep         = 1.0
	ExternalClockTimeout   = 5 * time.Second

	// Интерфейс
	UIButtonSize  = 12.0
	DragThreshold = 6.0 // Сдвиг курсора, после которого нажатие на башню считается перетаскиванием
	PickerHeight  = 30

	// Сеть
	OutboundQueueSize   = 256
	DamageReportsPerSec = 20
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	LaneLineColor     = color.RGBA{255, 255, 255, 200}
	SlotColor         = color.RGBA{255, 255, 255, 50}
	BarrierColor      = color.RGBA{120, 120, 140, 255}
	EnemyColor        = color.RGBA{255, 0, 0, 255}
	TowerStrokeColor  = color.RGBA{255, 255, 255, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	GameOverColor     = color.RGBA{0, 0, 0, 180}
	HealthHighColor   = color.RGBA{0, 255, 0, 255}
	HealthMidColor    = color.RGBA{255, 255, 0, 255}
	HealthLowColor    = color.RGBA{255, 0, 0, 255}
	PauseButtonColor  = color.RGBA{70, 130, 180, 220}
	PlayButtonColor   = color.RGBA{60, 180, 90, 220}
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
)

// DifficultyMode выбирает кривую множителя сложности.
type DifficultyMode string

const (
	DifficultyContinuous DifficultyMode = "continuous"
	DifficultyStepped    DifficultyMode = "step"
)

// Sim — параметры одного матча, которые можно переопределить флагами.
type Sim struct {
	Seed            int64
	Lanes           int
	Width, Height   float64
	StartingMoney   int
	SpawnInterval   time.Duration
	AutoSpawn       bool
	EnemyBaseHealth int
	Difficulty      DifficultyMode
	ClockTimeout    time.Duration
}

// Default возвращает параметры оригинальной игры.
func Default() Sim {
	return Sim{
		Lanes:           Lanes,
		Width:           ScreenWidth,
		Height:          ScreenHeight,
		StartingMoney:   StartingMoney,
		SpawnInterval:   SpawnInterval,
		AutoSpawn:       true,
		EnemyBaseHealth: EnemyBaseHealth,
		Difficulty:      DifficultyContinuous,
		ClockTimeout:    ExternalClockTimeout,
	}
}
