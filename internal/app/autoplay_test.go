package app

import (
	"testing"

	"merge-towers/internal/config"
	"merge-towers/internal/defs"
)

func TestRunMatchIsDeterministicForSeed(t *testing.T) {
	play := func() Report {
		cfg := config.Default()
		cfg.Seed = 42
		return RunMatch(NewGame(cfg), defs.TowerBasic, 1.0/30, 90)
	}
	first, second := play(), play()

	if first.Placed == 0 {
		t.Fatal("bot placed no towers")
	}
	if !first.Over && first.Elapsed < 90 {
		t.Fatalf("match stopped early at %.1fs", first.Elapsed)
	}
	if first.MatchID == second.MatchID {
		t.Fatal("match ids must differ between matches")
	}
	first.MatchID, second.MatchID = "", ""
	if first != second {
		t.Fatalf("same seed, different results:\n%+v\n%+v", first, second)
	}
}

func TestBotMergesPairs(t *testing.T) {
	g, _ := newTestGame(t, func(c *config.Sim) { c.StartingMoney = 100 })
	bot := NewBot(g, defs.TowerBasic)

	bot.Step()
	bot.Step()
	if bot.Placed != 2 || len(g.ECS.Towers) != 2 {
		t.Fatalf("placed %d, towers %d", bot.Placed, len(g.ECS.Towers))
	}
	bot.Step()
	if bot.Merged != 1 || len(g.ECS.Towers) != 1 {
		t.Fatalf("merged %d, towers %d", bot.Merged, len(g.ECS.Towers))
	}
	for _, id := range g.ECS.TowerIDs() {
		if g.ECS.Towers[id].Level != 2 {
			t.Fatalf("tower level = %d", g.ECS.Towers[id].Level)
		}
	}
}

func TestBotPrefersBusyLane(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.SpawnEnemy(4, 30, 1)
	g.SpawnEnemy(4, 30, 1)
	g.SpawnEnemy(1, 30, 1)

	bot := NewBot(g, defs.TowerBasic)
	bot.Step()
	ids := g.ECS.TowerIDs()
	if len(ids) != 1 || g.ECS.Towers[ids[0]].Lane != 4 {
		t.Fatalf("towers = %v", ids)
	}
}
