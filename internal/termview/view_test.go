package termview

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"merge-towers/internal/app"
	"merge-towers/internal/config"
	"merge-towers/internal/defs"
)

func newView(t *testing.T) (*View, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(78, 42)

	cfg := config.Default()
	cfg.Seed = 3
	cfg.AutoSpawn = false
	cfg.StartingMoney = 1000
	return New(screen, app.NewGame(cfg)), screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestCellMapping(t *testing.T) {
	v, _ := newView(t)
	if col, row := v.cell(0, 0); col != 0 || row != 0 {
		t.Fatalf("origin -> (%d, %d)", col, row)
	}
	// 78 колонок на 6 дорожек: 13 колонок на дорожку
	if col, _ := v.cell(v.game.Field.LaneCenterX(2), 0); col != 32 {
		t.Fatalf("lane 2 center -> col %d, want 32", col)
	}
	col, row := v.cell(10000, 10000)
	if col != 77 || row != 39 {
		t.Fatalf("clamped -> (%d, %d)", col, row)
	}
}

func TestPlaceWithKeys(t *testing.T) {
	v, screen := newView(t)
	v.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	v.HandleEvent(key('3'))
	v.HandleEvent(key(' '))

	ids := v.game.ECS.TowerIDs()
	if len(ids) != 1 {
		t.Fatalf("towers = %d", len(ids))
	}
	tower := v.game.ECS.Towers[ids[0]]
	if tower.Kind != defs.TowerSniper || tower.Lane != 1 {
		t.Fatalf("tower = %+v", *tower)
	}

	v.Draw()
	pos := v.game.ECS.Positions[ids[0]]
	col, row := v.cell(pos.X, pos.Y)
	r, _, _, _ := screen.GetContent(col, row)
	if r != 'S' {
		t.Fatalf("cell (%d, %d) = %q, want 'S'", col, row, r)
	}
	if lvl, _, _, _ := screen.GetContent(col+1, row); lvl != '1' {
		t.Fatalf("level cell = %q", lvl)
	}
}

func TestCarryMergesTowers(t *testing.T) {
	v, _ := newView(t)
	v.HandleEvent(key(' '))
	v.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	v.HandleEvent(key(' '))
	if len(v.game.ECS.Towers) != 2 {
		t.Fatalf("towers = %d", len(v.game.ECS.Towers))
	}

	v.HandleEvent(key('m'))
	if v.carried == 0 {
		t.Fatalf("nothing picked up: %s", v.status)
	}
	v.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	v.HandleEvent(key('m'))

	if v.status != app.RelocationMerged.String() {
		t.Fatalf("status = %q", v.status)
	}
	for _, id := range v.game.ECS.TowerIDs() {
		if v.game.ECS.Towers[id].Level != 2 {
			t.Fatal("merged tower must be level 2")
		}
	}
}

func TestQuitKeys(t *testing.T) {
	v, _ := newView(t)
	if v.HandleEvent(key('q')) {
		t.Fatal("q must quit")
	}
	if v.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("Esc must quit")
	}
	if !v.HandleEvent(key('p')) || !v.paused {
		t.Fatal("p must pause")
	}
}

func TestHUDShowsGameOver(t *testing.T) {
	v, screen := newView(t)
	v.game.ECS.Player.BarrierHealth = 10
	id, _ := v.game.SpawnEnemy(0, 30, 1)
	v.game.ECS.Positions[id].Y = v.game.Field.BarrierY()
	v.game.Tick(1.0 / 60)
	if !v.game.IsOver() {
		t.Fatal("game must be over")
	}
	v.Draw()

	w, h := screen.Size()
	var b strings.Builder
	for col := 0; col < w; col++ {
		r, _, _, _ := screen.GetContent(col, h-1)
		b.WriteRune(r)
	}
	if !strings.Contains(b.String(), "GAME OVER") {
		t.Fatalf("status line = %q", b.String())
	}
}
