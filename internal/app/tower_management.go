// internal/app/tower_management.go
package app

import (
	"fmt"

	"merge-towers/internal/config"
	"merge-towers/internal/event"
	"merge-towers/internal/types"
	"merge-towers/pkg/lanemap"
)

// RelocationOutcome — чем закончилось перемещение башни.
type RelocationOutcome int

const (
	RelocationIgnored RelocationOutcome = iota // Нечего разрешать, состояние не менялось
	RelocationMoved
	RelocationMerged
	RelocationSnappedBack
)

func (o RelocationOutcome) String() string {
	switch o {
	case RelocationIgnored:
		return "ignored"
	case RelocationMoved:
		return "moved"
	case RelocationMerged:
		return "merged"
	case RelocationSnappedBack:
		return "snapped back"
	}
	return fmt.Sprintf("RelocationOutcome(%d)", int(o))
}

// BeginDrag поднимает башню. Пока башня перетаскивается, она не стреляет и
// не копит перезарядку, а её слот считается занятым.
func (g *Game) BeginDrag(id types.EntityID) bool {
	if g.over {
		return false
	}
	tower, ok := g.ECS.Towers[id]
	if !ok || tower.Dragging {
		return false
	}
	pos := g.ECS.Positions[id]
	tower.Dragging = true
	tower.OriginX, tower.OriginY = pos.X, pos.Y
	tower.OriginLane = tower.Lane
	return true
}

// DragTo двигает поднятую башню за указателем.
func (g *Game) DragTo(id types.EntityID, x, y float64) {
	tower, ok := g.ECS.Towers[id]
	if !ok || !tower.Dragging {
		return
	}
	pos := g.ECS.Positions[id]
	pos.X, pos.Y = x, y
}

// CancelDrag возвращает башню на исходный слот без событий.
func (g *Game) CancelDrag(id types.EntityID) bool {
	tower, ok := g.ECS.Towers[id]
	if !ok || !tower.Dragging {
		return false
	}
	g.snapBack(id)
	return true
}

// ReleaseDrag отпускает башню в точке (x, y) и возвращает идентификатор башни
// после разрешения: при слиянии это новая башня, исходные два идентификатора удалены.
//
//   - рядом нет чужого слота: башня возвращается, исходный слот не перекрывает
//     соседние в пределах притяжения;
//   - слот свободен: башня переезжает, дорожка меняется;
//   - на слоте башня того же типа и уровня: слияние в одну башню уровня L+1;
//   - иначе башня возвращается на исходное место.
func (g *Game) ReleaseDrag(id types.EntityID, x, y float64) (types.EntityID, RelocationOutcome) {
	tower, ok := g.ECS.Towers[id]
	if !ok || !tower.Dragging || g.over {
		return id, RelocationIgnored
	}

	slot, found := g.dropSlot(tower.OriginX, tower.OriginY, x, y)
	if !found {
		g.snapBack(id)
		if !g.nearOrigin(tower.OriginX, tower.OriginY, x, y) {
			g.dispatchRejected(id)
		}
		return id, RelocationSnappedBack
	}

	occupantID, occupied := g.ECS.TowerAtSlot(slot, id)
	if !occupied {
		g.moveTower(id, slot)
		return id, RelocationMoved
	}

	occupant := g.ECS.Towers[occupantID]
	if occupant.Kind == tower.Kind && occupant.Level == tower.Level {
		return g.mergeTowers(id, occupantID, slot), RelocationMerged
	}

	g.snapBack(id)
	g.dispatchRejected(id)
	return id, RelocationSnappedBack
}

// RelocateTower — перемещение одним шагом, например по команде извне.
// Повтор уже выполненного перемещения ничего не меняет.
func (g *Game) RelocateTower(id types.EntityID, x, y float64) (types.EntityID, RelocationOutcome) {
	pos, ok := g.ECS.Positions[id]
	if _, isTower := g.ECS.Towers[id]; !ok || !isTower {
		return id, RelocationIgnored
	}
	if _, found := g.dropSlot(pos.X, pos.Y, x, y); !found && g.nearOrigin(pos.X, pos.Y, x, y) {
		return id, RelocationIgnored
	}
	if !g.BeginDrag(id) {
		return id, RelocationIgnored
	}
	return g.ReleaseDrag(id, x, y)
}

// TowerAt возвращает башню, круг которой накрывает точку. Нужна вводу.
func (g *Game) TowerAt(x, y float64) (types.EntityID, bool) {
	for _, id := range g.ECS.TowerIDs() {
		pos := g.ECS.Positions[id]
		dx, dy := pos.X-x, pos.Y-y
		if dx*dx+dy*dy <= config.TowerRadius*config.TowerRadius*2.25 {
			return id, true
		}
	}
	return 0, false
}

// dropSlot — ближайший к точке слот в пределах притяжения, кроме исходного.
// Занятые слоты остаются кандидатами: на них разрешается слияние.
func (g *Game) dropSlot(originX, originY, x, y float64) (lanemap.Slot, bool) {
	return g.Field.NearestSlot(x, y, config.SnapDistance, func(s lanemap.Slot) bool {
		return s.X != originX || s.Y != originY
	})
}

// nearOrigin — точка в пределах притяжения исходного слота.
func (g *Game) nearOrigin(originX, originY, x, y float64) bool {
	slot, found := g.Field.NearestSlot(x, y, config.SnapDistance, nil)
	return found && slot.X == originX && slot.Y == originY
}

func (g *Game) moveTower(id types.EntityID, slot lanemap.Slot) {
	tower := g.ECS.Towers[id]
	pos := g.ECS.Positions[id]
	pos.X, pos.Y = slot.X, slot.Y
	tower.Lane = slot.Lane
	tower.Dragging = false

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerMoved, Data: event.TowerData{
		ID:    id,
		Kind:  tower.Kind,
		Level: tower.Level,
		Lane:  slot.Lane,
		Slot:  slot.Index,
	}})
}

// mergeTowers уничтожает обе башни и создаёт новую уровнем выше на слоте
// неподвижной. Новая башня наследует перезарядку неподвижной.
func (g *Game) mergeTowers(movedID, stationaryID types.EntityID, slot lanemap.Slot) types.EntityID {
	stationary := g.ECS.Towers[stationaryID]
	kind, level := stationary.Kind, stationary.Level+1
	cooldown := 0.0
	if combat, ok := g.ECS.Combats[stationaryID]; ok {
		cooldown = combat.Cooldown
	}

	g.ECS.RemoveEntity(movedID)
	g.ECS.RemoveEntity(stationaryID)

	resultID := g.createTowerEntity(kind, level, slot)
	g.ECS.Combats[resultID].Cooldown = cooldown

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerMerged, Data: event.MergeData{
		MovedID:      movedID,
		StationaryID: stationaryID,
		ResultID:     resultID,
		Kind:         kind,
		Level:        level,
	}})
	return resultID
}

func (g *Game) snapBack(id types.EntityID) {
	tower := g.ECS.Towers[id]
	pos := g.ECS.Positions[id]
	pos.X, pos.Y = tower.OriginX, tower.OriginY
	tower.Lane = tower.OriginLane
	tower.Dragging = false
}

func (g *Game) dispatchRejected(id types.EntityID) {
	tower := g.ECS.Towers[id]
	slotIndex := -1
	if slot, ok := g.Field.SlotAt(tower.OriginX, tower.OriginY); ok {
		slotIndex = slot.Index
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.RelocationRejected, Data: event.TowerData{
		ID:    id,
		Kind:  tower.Kind,
		Level: tower.Level,
		Lane:  tower.Lane,
		Slot:  slotIndex,
	}})
}
