package system

import (
	"testing"
	"time"

	"merge-towers/internal/component"
	"merge-towers/internal/defs"
	"merge-towers/internal/entity"
	"merge-towers/internal/event"
	"merge-towers/internal/types"
	"merge-towers/pkg/lanemap"
)

type world struct {
	ecs        *entity.ECS
	field      *lanemap.Field
	dispatcher *event.Dispatcher
	events     *recorder
}

type recorder struct {
	got []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.got = append(r.got, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.got {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		ecs: entity.NewECS(),
		field: lanemap.NewField(lanemap.Options{
			Width:          390,
			Height:         844,
			Lanes:          6,
			BarrierOffset:  50,
			TowerRowOffset: 100,
			TowerRowStep:   100,
			TowerRows:      2,
		}),
		dispatcher: event.NewDispatcher(),
		events:     &recorder{},
	}
	w.ecs.Player.BarrierHealth = 100
	w.dispatcher.SubscribeAll(w.events,
		event.EnemySpawned, event.EnemyDamaged, event.EnemyKilled,
		event.BarrierBreached, event.GameOver, event.ProjectileFired)
	return w
}

func (w *world) addTower(kind defs.TowerKind, lane int, x, y float64) types.EntityID {
	def := defs.TowerLibrary[kind]
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Towers[id] = &component.Tower{Kind: kind, Level: 1, Lane: lane}
	w.ecs.Combats[id] = &component.Combat{
		Damage:       def.Damage,
		FireInterval: def.FireInterval().Seconds(),
		Range:        def.Range,
	}
	return id
}

func (w *world) addEnemy(lane int, x, y float64, health int, speed float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Velocities[id] = &component.Velocity{Speed: speed}
	w.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	w.ecs.Enemies[id] = &component.Enemy{Lane: lane, BaseHealth: health, Multiplier: 1}
	return id
}

func (w *world) addProjectile(target types.EntityID, x, y, speed float64, damage int) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Projectiles[id] = &component.Projectile{TargetID: target, Speed: speed, Damage: damage, Size: 1}
	return id
}

func seconds(d time.Duration) float64 {
	return d.Seconds()
}
