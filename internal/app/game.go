// internal/app/game.go
package app

import (
	"fmt"
	"log"
	"math"

	"merge-towers/internal/clock"
	"merge-towers/internal/component"
	"merge-towers/internal/config"
	"merge-towers/internal/defs"
	"merge-towers/internal/entity"
	"merge-towers/internal/event"
	"merge-towers/internal/interfaces"
	"merge-towers/internal/system"
	"merge-towers/internal/types"
	"merge-towers/internal/utils"
	"merge-towers/pkg/lanemap"

	"github.com/google/uuid"
)

// PlacementOutcome — результат попытки поставить башню.
type PlacementOutcome int

const (
	Placed PlacementOutcome = iota
	RejectedFunds
	RejectedNoSlot
	RejectedOutOfBounds
	RejectedGameOver
	RejectedUnknownKind
)

func (o PlacementOutcome) String() string {
	switch o {
	case Placed:
		return "placed"
	case RejectedFunds:
		return "rejected: insufficient funds"
	case RejectedNoSlot:
		return "rejected: no free slot"
	case RejectedOutOfBounds:
		return "rejected: out of bounds"
	case RejectedGameOver:
		return "rejected: game over"
	case RejectedUnknownKind:
		return "rejected: unknown tower kind"
	}
	return fmt.Sprintf("PlacementOutcome(%d)", int(o))
}

// Game holds one match: the entity store, the systems and the match clock.
// Все методы, кроме SetGameTime и SetDifficultyMultiplier, вызываются из потока тика.
type Game struct {
	ECS             *entity.ECS
	Field           *lanemap.Field
	EventDispatcher *event.Dispatcher
	Clock           *clock.GameClock
	Rng             *utils.PRNGService

	DifficultySystem *system.DifficultySystem
	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	CleanupSystem    *system.CleanupSystem
	BarrierSystem    *system.BarrierSystem
	PlayerSystem     *system.PlayerSystem

	cfg     config.Sim
	matchID uuid.UUID
	over    bool
}

var _ interfaces.GameContext = (*Game)(nil)

// NewGame initializes a new match.
func NewGame(cfg config.Sim) *Game {
	if cfg.Lanes < 1 {
		cfg.Lanes = config.Lanes
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = config.ScreenWidth, config.ScreenHeight
	}

	ecs := entity.NewECS()
	ecs.Player.Money = cfg.StartingMoney
	ecs.Player.BarrierHealth = config.BarrierMaxHealth

	field := lanemap.NewField(lanemap.Options{
		Width:          cfg.Width,
		Height:         cfg.Height,
		Lanes:          cfg.Lanes,
		BarrierOffset:  config.BarrierOffset,
		TowerRowOffset: config.TowerRowOffset,
		TowerRowStep:   config.TowerRowStep,
		TowerRows:      config.TowerRows,
	})

	eventDispatcher := event.NewDispatcher()
	gameClock := clock.New(cfg.ClockTimeout)
	rng := utils.NewPRNGService(cfg.Seed)

	var policy system.DifficultyPolicy = system.ContinuousPolicy{}
	if cfg.Difficulty == config.DifficultyStepped {
		policy = system.StepPolicy{Interval: config.DifficultyStepInterval, Step: config.DifficultyStep}
	}

	g := &Game{
		ECS:              ecs,
		Field:            field,
		EventDispatcher:  eventDispatcher,
		Clock:            gameClock,
		Rng:              rng,
		DifficultySystem: system.NewDifficultySystem(gameClock, policy),
		WaveSystem:       system.NewWaveSystem(ecs, field, eventDispatcher, rng, defs.DefaultEnemy),
		MovementSystem:   system.NewMovementSystem(ecs, field, defs.DefaultEnemy.Radius),
		CombatSystem:     system.NewCombatSystem(ecs, eventDispatcher),
		ProjectileSystem: system.NewProjectileSystem(ecs, field, eventDispatcher),
		CleanupSystem:    system.NewCleanupSystem(ecs, eventDispatcher),
		BarrierSystem:    system.NewBarrierSystem(ecs, eventDispatcher),
		PlayerSystem:     system.NewPlayerSystem(ecs, defs.DefaultEnemy),
		cfg:              cfg,
		matchID:          uuid.New(),
	}
	g.WaveSystem.Configure(cfg.SpawnInterval.Seconds(), cfg.EnemyBaseHealth, cfg.AutoSpawn)

	eventDispatcher.Subscribe(event.EnemyKilled, g.PlayerSystem)
	eventDispatcher.Subscribe(event.GameOver, &GameEventListener{game: g})

	log.Printf("match %s: %d lanes, seed %d, difficulty %s", g.matchID, cfg.Lanes, rng.Seed(), cfg.Difficulty)
	return g
}

// Tick продвигает симуляцию на dt секунд. Порядок фиксирован: часы, сложность,
// появление врагов, движение, башни, снаряды, чистка убитых, барьер.
// После конца игры Tick ничего не делает.
func (g *Game) Tick(dt float64) {
	if g.over || dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return
	}

	g.Clock.Apply()
	g.Clock.Advance(dt)
	g.DifficultySystem.Update()
	multiplier := g.DifficultySystem.Snapshot()

	g.WaveSystem.Update(dt, multiplier)
	g.MovementSystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.CleanupSystem.Update()

	if g.BarrierSystem.Update(g.Clock.Elapsed()) {
		g.over = true
		g.ClearProjectiles()
	}
}

// SpawnEnemy ставит врага в начало дорожки. multiplier <= 0 означает текущий
// множитель сложности.
func (g *Game) SpawnEnemy(lane, baseHealth int, multiplier float64) (types.EntityID, bool) {
	if g.over {
		return 0, false
	}
	if multiplier <= 0 {
		multiplier = g.DifficultySystem.Snapshot()
	}
	id, err := g.WaveSystem.Spawn(lane, baseHealth, multiplier)
	if err != nil {
		log.Printf("match %s: spawn rejected: %v", g.matchID, err)
		return 0, false
	}
	return id, true
}

// PlaceTower ставит башню на ближайший свободный слот в пределах SnapDistance.
// Отказ ничего не меняет.
func (g *Game) PlaceTower(x, y float64, kind defs.TowerKind) (types.EntityID, PlacementOutcome) {
	if g.over {
		return 0, RejectedGameOver
	}
	def, ok := defs.Tower(kind)
	if !ok {
		return 0, RejectedUnknownKind
	}
	if !g.Field.Contains(x, y) || y > g.Field.Height-config.HUDStripHeight {
		return 0, RejectedOutOfBounds
	}
	if g.ECS.Player.Money < def.Cost {
		return 0, RejectedFunds
	}
	slot, ok := g.Field.NearestSlot(x, y, config.SnapDistance, g.slotFree(0))
	if !ok {
		return 0, RejectedNoSlot
	}
	if !g.PlayerSystem.Spend(def.Cost) {
		return 0, RejectedFunds
	}

	id := g.createTowerEntity(kind, 1, slot)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{
		ID:    id,
		Kind:  kind,
		Level: 1,
		Lane:  slot.Lane,
		Slot:  slot.Index,
	}})
	return id, Placed
}

// SetGameTime — авторитетное время сервера. Можно вызывать из любой горутины,
// значение применяется в начале следующего тика.
func (g *Game) SetGameTime(seconds float64) {
	g.Clock.PushGameTime(seconds)
}

// SetDifficultyMultiplier — авторитетный множитель сервера. Потокобезопасно.
func (g *Game) SetDifficultyMultiplier(multiplier float64) {
	g.Clock.PushDifficulty(multiplier)
}

// --- Public Accessors ---

func (g *Game) Player() component.PlayerState {
	return *g.ECS.Player
}

func (g *Game) Multiplier() float64 {
	return g.DifficultySystem.Snapshot()
}

func (g *Game) ElapsedSeconds() float64 {
	return g.Clock.Elapsed()
}

func (g *Game) IsOver() bool {
	return g.over
}

func (g *Game) MatchID() string {
	return g.matchID.String()
}

// ClearProjectiles убирает все снаряды в полёте.
func (g *Game) ClearProjectiles() {
	for _, id := range g.ECS.ProjectileIDs() {
		g.ECS.RemoveEntity(id)
	}
}

// GameEventListener обрабатывает события, важные для самого матча.
type GameEventListener struct {
	game interfaces.GameContext
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	if e.Type != event.GameOver {
		return
	}
	if data, ok := e.Data.(event.GameOverData); ok {
		log.Printf("match %s: game over at %.1fs, score %d", l.game.MatchID(), data.Elapsed, data.FinalScore)
	}
}

// --- Private Helper Functions ---

func (g *Game) slotFree(exclude types.EntityID) func(lanemap.Slot) bool {
	return func(s lanemap.Slot) bool {
		_, occupied := g.ECS.TowerAtSlot(s, exclude)
		return !occupied
	}
}

func (g *Game) createTowerEntity(kind defs.TowerKind, level int, slot lanemap.Slot) types.EntityID {
	def := defs.TowerLibrary[kind]
	damage, interval := defs.LevelStats(def, level)

	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: slot.X, Y: slot.Y}
	g.ECS.Towers[id] = &component.Tower{Kind: kind, Level: level, Lane: slot.Lane}
	g.ECS.Combats[id] = &component.Combat{
		Damage:       damage,
		FireInterval: interval.Seconds(),
		Range:        def.Range,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     def.Color,
		Radius:    config.TowerRadius,
		HasStroke: true,
		Label:     fmt.Sprintf("Lvl %d", level),
	}
	return id
}
