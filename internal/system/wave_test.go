package system

import (
	"testing"
	"time"

	"merge-towers/internal/clock"
	"merge-towers/internal/defs"
	"merge-towers/internal/event"
	"merge-towers/internal/types"
	"merge-towers/internal/utils"
)

func TestSpawnBakesMultiplierIntoMaxHealth(t *testing.T) {
	w := newWorld(t)
	ws := NewWaveSystem(w.ecs, w.field, w.dispatcher, utils.NewPRNGService(1), defs.DefaultEnemy)

	tests := []struct {
		base       int
		multiplier float64
		want       int
	}{
		{30, 1, 30},
		{30, 1.5, 45},
		{30, 1.33, 39}, // floor(39.9)
		{30, 0.2, 30},  // множитель не бывает меньше 1
	}
	for _, tt := range tests {
		id, err := ws.Spawn(2, tt.base, tt.multiplier)
		if err != nil {
			t.Fatalf("Spawn: %v", err)
		}
		h := w.ecs.Healths[id]
		if h.Max != tt.want || h.Value != tt.want {
			t.Errorf("base %d x %.2f: health %d/%d, want %d", tt.base, tt.multiplier, h.Value, h.Max, tt.want)
		}
		if w.ecs.Positions[id].X != w.field.LaneCenterX(2) || w.ecs.Positions[id].Y != 0 {
			t.Errorf("enemy spawned at %+v", *w.ecs.Positions[id])
		}
	}
}

func TestSpawnScalesSpeedWithMultiplier(t *testing.T) {
	w := newWorld(t)
	ws := NewWaveSystem(w.ecs, w.field, w.dispatcher, utils.NewPRNGService(1), defs.DefaultEnemy)

	tests := map[float64]float64{
		1:   defs.DefaultEnemy.Speed,
		1.5: defs.DefaultEnemy.Speed * 1.5,
		3:   defs.DefaultEnemy.Speed * 3,
		0.2: defs.DefaultEnemy.Speed,
	}
	for multiplier, want := range tests {
		id, err := ws.Spawn(1, 30, multiplier)
		if err != nil {
			t.Fatalf("Spawn: %v", err)
		}
		if got := w.ecs.Velocities[id].Speed; got != want {
			t.Errorf("multiplier %v: speed %v, want %v", multiplier, got, want)
		}
	}
}

func TestSpawnRejectsBadInput(t *testing.T) {
	w := newWorld(t)
	ws := NewWaveSystem(w.ecs, w.field, w.dispatcher, utils.NewPRNGService(1), defs.DefaultEnemy)
	if _, err := ws.Spawn(6, 30, 1); err == nil {
		t.Error("lane 6 of 6 must be rejected")
	}
	if _, err := ws.Spawn(-1, 30, 1); err == nil {
		t.Error("negative lane must be rejected")
	}
	if _, err := ws.Spawn(0, 0, 1); err == nil {
		t.Error("zero base health must be rejected")
	}
	if len(w.ecs.Enemies) != 0 {
		t.Fatal("rejected spawns must not create entities")
	}
}

func TestWaveTimerSpawnsEveryInterval(t *testing.T) {
	w := newWorld(t)
	ws := NewWaveSystem(w.ecs, w.field, w.dispatcher, utils.NewPRNGService(3), defs.DefaultEnemy)
	ws.Configure(2, 30, true)

	for i := 0; i < 10*60; i++ {
		ws.Update(frame, 1)
	}
	got := w.events.count(event.EnemySpawned)
	if got < 4 || got > 5 {
		t.Fatalf("spawned %d enemies in 10s at 2s interval", got)
	}

	ws.Configure(0, 0, false)
	ws.Update(100, 1)
	if w.events.count(event.EnemySpawned) != got {
		t.Fatal("disabled timer must not spawn")
	}
}

func TestWaveTimerUsesEveryLane(t *testing.T) {
	w := newWorld(t)
	ws := NewWaveSystem(w.ecs, w.field, w.dispatcher, utils.NewPRNGService(5), defs.DefaultEnemy)
	ws.Configure(1, 30, true)

	// Один большой шаг: 300 появлений за вызов
	ws.Update(300, 1)
	seen := make(map[int]bool)
	for _, id := range w.ecs.EnemyIDs() {
		lane := w.ecs.Enemies[id].Lane
		if !w.field.ValidLane(lane) {
			t.Fatalf("enemy %d on lane %d", id, lane)
		}
		seen[lane] = true
	}
	if len(seen) != w.field.Lanes {
		t.Fatalf("lanes used: %v", seen)
	}
}

func TestSpawnHealthMonotonicOverTime(t *testing.T) {
	w := newWorld(t)
	c := clock.New(time.Second)
	ds := NewDifficultySystem(c, ContinuousPolicy{})
	ws := NewWaveSystem(w.ecs, w.field, w.dispatcher, utils.NewPRNGService(3), defs.DefaultEnemy)

	prev := 0
	var first types.EntityID
	for minute := 0; minute < 10; minute++ {
		ds.Update()
		id, err := ws.Spawn(0, 30, ds.Snapshot())
		if err != nil {
			t.Fatal(err)
		}
		if minute == 0 {
			first = id
		}
		h := w.ecs.Healths[id].Max
		if h < prev {
			t.Fatalf("minute %d: max health %d below earlier %d", minute, h, prev)
		}
		prev = h
		c.Advance(60)
	}
	// Уже появившиеся враги не меняются задним числом.
	if got := w.ecs.Healths[first].Max; got != 30 {
		t.Fatalf("first enemy max health changed to %d", got)
	}
}
