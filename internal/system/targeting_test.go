package system

import (
	"testing"

	"merge-towers/internal/defs"
)

func TestFindTargetNearestInLane(t *testing.T) {
	w := newWorld(t)
	tower := w.addTower(defs.TowerBasic, 1, 97.5, 694)

	w.addEnemy(0, 32.5, 650, 30, 0) // Соседняя дорожка, ближе всех
	far := w.addEnemy(1, 97.5, 420, 30, 0)
	near := w.addEnemy(1, 97.5, 500, 30, 0)
	w.addEnemy(1, 97.5, 300, 30, 0) // Вне радиуса 300

	got, ok := FindTarget(w.ecs, tower)
	if !ok || got != near {
		t.Fatalf("FindTarget = %d, %v; want %d", got, ok, near)
	}

	w.ecs.Healths[near].Value = 0
	got, ok = FindTarget(w.ecs, tower)
	if !ok || got != far {
		t.Fatalf("dead enemy must be skipped: got %d, want %d", got, far)
	}
}

func TestFindTargetRangeBoundary(t *testing.T) {
	w := newWorld(t)
	tower := w.addTower(defs.TowerBasic, 2, 162.5, 694)

	edge := w.addEnemy(2, 162.5, 394, 30, 0) // ровно 300
	if got, ok := FindTarget(w.ecs, tower); !ok || got != edge {
		t.Fatalf("enemy exactly at range must qualify, got %d, %v", got, ok)
	}
	w.ecs.Positions[edge].Y = 393.9
	if _, ok := FindTarget(w.ecs, tower); ok {
		t.Fatal("enemy beyond range must not qualify")
	}
}

func TestFindTargetTieKeepsFirstEnumerated(t *testing.T) {
	w := newWorld(t)
	tower := w.addTower(defs.TowerBasic, 3, 227.5, 694)
	first := w.addEnemy(3, 227.5-30, 594, 30, 0)
	w.addEnemy(3, 227.5+30, 594, 30, 0)

	for i := 0; i < 20; i++ {
		got, ok := FindTarget(w.ecs, tower)
		if !ok || got != first {
			t.Fatalf("tie must resolve to lowest id %d, got %d", first, got)
		}
	}
}

func TestFindTargetIgnoresBreachedAndUnknownTower(t *testing.T) {
	w := newWorld(t)
	tower := w.addTower(defs.TowerBasic, 0, 32.5, 694)
	e := w.addEnemy(0, 32.5, 600, 30, 0)
	w.ecs.Enemies[e].Breached = true
	if _, ok := FindTarget(w.ecs, tower); ok {
		t.Fatal("breached enemy is not a target")
	}
	if _, ok := FindTarget(w.ecs, 12345); ok {
		t.Fatal("unknown tower has no target")
	}
}
