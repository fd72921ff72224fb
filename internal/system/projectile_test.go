package system

import (
	"math"
	"testing"

	"merge-towers/internal/event"
)

func TestProjectileHomesOnMovingTarget(t *testing.T) {
	w := newWorld(t)
	ps := NewProjectileSystem(w.ecs, w.field, w.dispatcher)
	enemy := w.addEnemy(0, 32.5, 100, 100, 0)
	proj := w.addProjectile(enemy, 32.5, 700, 400, 10)

	ps.Update(0.1)
	pos := w.ecs.Positions[proj]
	if math.Abs(pos.Y-660) > 1e-9 || pos.X != 32.5 {
		t.Fatalf("after 0.1s at 400px/s projectile at (%v,%v), want (32.5,660)", pos.X, pos.Y)
	}

	// Цель сдвинулась вбок: направление пересчитывается.
	w.ecs.Positions[enemy].X = 200
	ps.Update(0.1)
	if pos.X <= 32.5 {
		t.Fatalf("projectile did not turn toward the moved target, x=%v", pos.X)
	}
}

func TestProjectileHitAppliesDamageOnce(t *testing.T) {
	w := newWorld(t)
	ps := NewProjectileSystem(w.ecs, w.field, w.dispatcher)
	enemy := w.addEnemy(0, 32.5, 500, 30, 0)
	proj := w.addProjectile(enemy, 32.5, 700, 400, 10)

	for i := 0; i < 120; i++ {
		ps.Update(frame)
	}
	if got := w.ecs.Healths[enemy].Value; got != 20 {
		t.Fatalf("health = %d, want 20", got)
	}
	if _, ok := w.ecs.Projectiles[proj]; ok {
		t.Fatal("projectile must retire on hit")
	}
	if got := w.events.count(event.EnemyDamaged); got != 1 {
		t.Fatalf("EnemyDamaged dispatched %d times", got)
	}
}

func TestProjectileRetiresWhenTargetDiesElsewhere(t *testing.T) {
	w := newWorld(t)
	ps := NewProjectileSystem(w.ecs, w.field, w.dispatcher)
	enemy := w.addEnemy(0, 32.5, 300, 30, 0)
	proj := w.addProjectile(enemy, 32.5, 700, 400, 10)

	ps.Update(frame)
	w.ecs.Healths[enemy].Value = 0 // Убит другим источником

	ps.Update(frame)
	if _, ok := w.ecs.Projectiles[proj]; ok {
		t.Fatal("projectile with dead target must retire")
	}
	if got := w.ecs.Healths[enemy].Value; got != 0 {
		t.Fatalf("health changed to %d", got)
	}
	if w.events.count(event.EnemyDamaged) != 0 {
		t.Fatal("no damage may be applied to a dead target")
	}
}

func TestProjectileRetiresWhenTargetRemoved(t *testing.T) {
	w := newWorld(t)
	ps := NewProjectileSystem(w.ecs, w.field, w.dispatcher)
	enemy := w.addEnemy(0, 32.5, 300, 30, 0)
	proj := w.addProjectile(enemy, 32.5, 700, 400, 10)
	w.ecs.RemoveEntity(enemy)

	ps.Update(frame)
	if _, ok := w.ecs.Projectiles[proj]; ok {
		t.Fatal("projectile with stale target must retire")
	}
	if _, ok := w.ecs.Positions[proj]; ok {
		t.Fatal("retired projectile left a position behind")
	}
}

func TestSecondProjectileDoesNotOverkill(t *testing.T) {
	w := newWorld(t)
	ps := NewProjectileSystem(w.ecs, w.field, w.dispatcher)
	enemy := w.addEnemy(0, 32.5, 500, 10, 0)
	w.addProjectile(enemy, 32.5, 510, 400, 10)
	w.addProjectile(enemy, 32.5, 512, 400, 10)

	ps.Update(frame)
	if got := w.ecs.Healths[enemy].Value; got != 0 {
		t.Fatalf("health = %d, want 0", got)
	}
	if got := w.events.count(event.EnemyDamaged); got != 1 {
		t.Fatalf("damage applied %d times, want 1", got)
	}
	if len(w.ecs.Projectiles) != 0 {
		t.Fatalf("%d projectiles left", len(w.ecs.Projectiles))
	}
}

func TestProjectileLeavingFieldRetires(t *testing.T) {
	w := newWorld(t)
	ps := NewProjectileSystem(w.ecs, w.field, w.dispatcher)
	enemy := w.addEnemy(0, 32.5, 300, 30, 0)
	proj := w.addProjectile(enemy, 32.5, 860, 400, 10) // Уже ниже поля

	ps.Update(frame)
	if _, ok := w.ecs.Projectiles[proj]; ok {
		t.Fatal("projectile outside the field must retire")
	}
	if w.ecs.Healths[enemy].Value != 30 {
		t.Fatal("out-of-bounds retirement applies no damage")
	}
}
