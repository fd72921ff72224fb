// internal/system/visual_effect.go
package system

import (
	"image/color"

	"merge-towers/internal/entity"
	"merge-towers/internal/event"
	"merge-towers/internal/types"
	"merge-towers/pkg/lanemap"
)

const (
	damageFlashDuration = 0.1
	ringDuration        = 0.4
)

var (
	killRingColor   = color.RGBA{255, 200, 80, 255}
	mergeRingColor  = color.RGBA{255, 215, 0, 255}
	breachRingColor = color.RGBA{255, 60, 60, 255}
)

// Ring — расходящееся кольцо в точке события.
type Ring struct {
	X, Y      float64
	Timer     float64
	Duration  float64
	MaxRadius float64
	Color     color.RGBA
}

// Progress — доля прошедшего времени, 0..1.
func (r Ring) Progress() float64 {
	if r.Duration <= 0 {
		return 1
	}
	return r.Timer / r.Duration
}

// VisualEffectSystem управляет визуальными эффектами: вспышками урона и
// кольцами на убийствах, слияниях и прорывах. Эффекты живут вне ECS
// и на симуляцию не влияют.
type VisualEffectSystem struct {
	ecs     *entity.ECS
	field   *lanemap.Field
	flashes map[types.EntityID]float64
	lastPos map[types.EntityID][2]float64
	rings   []Ring
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, field *lanemap.Field) *VisualEffectSystem {
	return &VisualEffectSystem{
		ecs:     ecs,
		field:   field,
		flashes: make(map[types.EntityID]float64),
		lastPos: make(map[types.EntityID][2]float64),
	}
}

func (s *VisualEffectSystem) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(s, event.EnemyDamaged, event.EnemyKilled, event.TowerMerged, event.BarrierBreached)
}

// OnEvent реализует интерфейс event.Listener.
func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.EnemyData:
		switch e.Type {
		case event.EnemyDamaged:
			s.flashes[data.ID] = damageFlashDuration
			// Убитый враг удаляется до EnemyKilled, поэтому позицию запоминаем здесь
			if pos, ok := s.ecs.Positions[data.ID]; ok {
				s.lastPos[data.ID] = [2]float64{pos.X, pos.Y}
			}
		case event.EnemyKilled:
			if p, ok := s.lastPos[data.ID]; ok {
				s.addRing(p[0], p[1], 30, killRingColor)
			}
			delete(s.lastPos, data.ID)
			delete(s.flashes, data.ID)
		}
	case event.MergeData:
		if pos, ok := s.ecs.Positions[data.ResultID]; ok {
			s.addRing(pos.X, pos.Y, 40, mergeRingColor)
		}
	case event.BreachData:
		delete(s.lastPos, data.EnemyID)
		delete(s.flashes, data.EnemyID)
		if s.field.ValidLane(data.Lane) {
			s.addRing(s.field.LaneCenterX(data.Lane), s.field.BarrierY(), s.field.LaneWidth()/2, breachRingColor)
		}
	}
}

func (s *VisualEffectSystem) addRing(x, y, radius float64, c color.RGBA) {
	s.rings = append(s.rings, Ring{X: x, Y: y, Duration: ringDuration, MaxRadius: radius, Color: c})
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, timer := range s.flashes {
		timer -= deltaTime
		if timer <= 0 {
			delete(s.flashes, id)
			continue
		}
		s.flashes[id] = timer
	}

	alive := s.rings[:0]
	for _, r := range s.rings {
		r.Timer += deltaTime
		if r.Timer < r.Duration {
			alive = append(alive, r)
		}
	}
	s.rings = alive
}

// Flashing — мигает ли враг после попадания.
func (s *VisualEffectSystem) Flashing(id types.EntityID) bool {
	return s.flashes[id] > 0
}

// Rings — активные кольца, для отрисовки.
func (s *VisualEffectSystem) Rings() []Ring {
	return s.rings
}
