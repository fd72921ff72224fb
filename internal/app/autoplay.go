// internal/app/autoplay.go
package app

import (
	"sort"

	"merge-towers/internal/defs"
	"merge-towers/internal/types"
	"merge-towers/pkg/lanemap"
)

// Bot — простой игрок для headless-прогонов: сливает одинаковые башни,
// а на свободные деньги строит новые на самой загруженной дорожке.
type Bot struct {
	game   *Game
	kind   defs.TowerKind
	Placed int
	Merged int
}

func NewBot(game *Game, kind defs.TowerKind) *Bot {
	return &Bot{game: game, kind: kind}
}

// Step делает не больше одного действия.
func (b *Bot) Step() {
	if b.game.IsOver() {
		return
	}
	if b.tryMerge() {
		return
	}
	b.tryPlace()
}

func (b *Bot) tryMerge() bool {
	type key struct {
		kind  defs.TowerKind
		level int
	}
	seen := make(map[key]types.EntityID)
	for _, id := range b.game.ECS.TowerIDs() {
		tower := b.game.ECS.Towers[id]
		k := key{tower.Kind, tower.Level}
		other, ok := seen[k]
		if !ok {
			seen[k] = id
			continue
		}
		target := b.game.ECS.Positions[other]
		if _, outcome := b.game.RelocateTower(id, target.X, target.Y); outcome == RelocationMerged {
			b.Merged++
			return true
		}
	}
	return false
}

func (b *Bot) tryPlace() bool {
	def, ok := defs.Tower(b.kind)
	if !ok || b.game.ECS.Player.Money < def.Cost {
		return false
	}
	for _, slot := range b.candidateSlots() {
		if _, outcome := b.game.PlaceTower(slot.X, slot.Y, b.kind); outcome == Placed {
			b.Placed++
			return true
		}
	}
	return false
}

// candidateSlots — свободные слоты, сначала на дорожках с большим числом врагов.
func (b *Bot) candidateSlots() []lanemap.Slot {
	pressure := make(map[int]int)
	for _, id := range b.game.ECS.EnemyIDs() {
		pressure[b.game.ECS.Enemies[id].Lane]++
	}

	var free []lanemap.Slot
	for _, slot := range b.game.Field.Slots() {
		if _, occupied := b.game.ECS.TowerAtSlot(slot, 0); !occupied {
			free = append(free, slot)
		}
	}
	sort.SliceStable(free, func(i, j int) bool {
		return pressure[free[i].Lane] > pressure[free[j].Lane]
	})
	return free
}

// Report — итог одного прогона.
type Report struct {
	MatchID  string
	Seed     int64
	Elapsed  float64
	Score    int
	Kills    int
	Breaches int
	Money    int
	Placed   int
	Merged   int
	Over     bool
}

// RunMatch играет матч ботом шагами по step секунд, пока игра не закончится
// или не пройдёт maxSeconds игрового времени.
func RunMatch(game *Game, kind defs.TowerKind, step, maxSeconds float64) Report {
	if step <= 0 {
		step = 1.0 / 60
	}
	bot := NewBot(game, kind)
	for !game.IsOver() && game.ElapsedSeconds() < maxSeconds {
		bot.Step()
		game.Tick(step)
	}
	player := game.Player()
	return Report{
		MatchID:  game.MatchID(),
		Seed:     game.Rng.Seed(),
		Elapsed:  game.ElapsedSeconds(),
		Score:    player.Score,
		Kills:    player.Kills,
		Breaches: player.Breaches,
		Money:    player.Money,
		Placed:   bot.Placed,
		Merged:   bot.Merged,
		Over:     game.IsOver(),
	}
}
