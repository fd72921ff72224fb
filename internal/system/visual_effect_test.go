package system

import (
	"testing"

	"merge-towers/internal/event"
)

func TestVisualEffectsFollowKills(t *testing.T) {
	w := newWorld(t)
	fx := NewVisualEffectSystem(w.ecs, w.field)
	fx.Subscribe(w.dispatcher)
	enemy := w.addEnemy(2, 162.5, 300, 10, 0)

	ApplyDamage(w.ecs, w.dispatcher, enemy, 4)
	if !fx.Flashing(enemy) {
		t.Fatal("damaged enemy must flash")
	}
	fx.Update(0.2)
	if fx.Flashing(enemy) {
		t.Fatal("flash must fade")
	}

	ApplyDamage(w.ecs, w.dispatcher, enemy, 6)
	NewCleanupSystem(w.ecs, w.dispatcher).Update()
	rings := fx.Rings()
	if len(rings) != 1 || rings[0].X != 162.5 || rings[0].Y != 300 {
		t.Fatalf("rings = %+v", rings)
	}

	fx.Update(0.2)
	if p := fx.Rings()[0].Progress(); p != 0.5 {
		t.Fatalf("progress = %v, want 0.5", p)
	}
	fx.Update(0.3)
	if len(fx.Rings()) != 0 {
		t.Fatal("finished ring not removed")
	}
}

func TestVisualEffectsBreachRing(t *testing.T) {
	w := newWorld(t)
	fx := NewVisualEffectSystem(w.ecs, w.field)
	fx.Subscribe(w.dispatcher)
	w.dispatcher.Dispatch(event.Event{Type: event.BarrierBreached, Data: event.BreachData{EnemyID: 5, Lane: 1, BarrierHealth: 90}})
	w.dispatcher.Dispatch(event.Event{Type: event.BarrierBreached, Data: event.BreachData{EnemyID: 6, Lane: 9, BarrierHealth: 80}})
	rings := fx.Rings()
	if len(rings) != 1 || rings[0].X != 97.5 || rings[0].Y != 794 {
		t.Fatalf("rings = %+v", rings)
	}
}
