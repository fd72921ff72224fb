// pkg/lanemap/field.go
package lanemap

import "math"

// Slot — точка установки башни, создаётся один раз при построении поля.
type Slot struct {
	Index int
	X, Y  float64
	Lane  int
}

// Field — игровое поле, разбитое на N вертикальных дорожек.
type Field struct {
	Width, Height  float64
	Lanes          int
	BarrierOffset  float64
	TowerRowOffset float64
	TowerRowStep   float64
	slots          []Slot
}

// Options задаёт геометрию поля.
type Options struct {
	Width, Height  float64
	Lanes          int
	BarrierOffset  float64
	TowerRowOffset float64
	TowerRowStep   float64
	TowerRows      int
}

// NewField строит поле и заранее вычисляет все слоты: ряд за рядом, слева направо.
func NewField(opts Options) *Field {
	if opts.Lanes < 1 {
		opts.Lanes = 1
	}
	if opts.TowerRows < 1 {
		opts.TowerRows = 1
	}
	f := &Field{
		Width:          opts.Width,
		Height:         opts.Height,
		Lanes:          opts.Lanes,
		BarrierOffset:  opts.BarrierOffset,
		TowerRowOffset: opts.TowerRowOffset,
		TowerRowStep:   opts.TowerRowStep,
	}
	for row := 0; row < opts.TowerRows; row++ {
		y := f.TowerRowY(row)
		for lane := 0; lane < f.Lanes; lane++ {
			f.slots = append(f.slots, Slot{
				Index: len(f.slots),
				X:     f.LaneCenterX(lane),
				Y:     y,
				Lane:  lane,
			})
		}
	}
	return f
}

// LaneWidth — ширина одной дорожки.
func (f *Field) LaneWidth() float64 {
	return f.Width / float64(f.Lanes)
}

// LaneCenterX — x-координата центра дорожки.
func (f *Field) LaneCenterX(lane int) float64 {
	return float64(lane)*f.LaneWidth() + f.LaneWidth()/2
}

// LaneAt возвращает дорожку, в полосу которой попадает x.
func (f *Field) LaneAt(x float64) (int, bool) {
	if x < 0 || x >= f.Width {
		return 0, false
	}
	return int(x / f.LaneWidth()), true
}

// ValidLane проверяет индекс дорожки.
func (f *Field) ValidLane(lane int) bool {
	return lane >= 0 && lane < f.Lanes
}

// Contains — находится ли точка внутри поля.
func (f *Field) Contains(x, y float64) bool {
	return x >= 0 && x <= f.Width && y >= 0 && y <= f.Height
}

// BarrierY — линия барьера, пересечение которой считается прорывом.
func (f *Field) BarrierY() float64 {
	return f.Height - f.BarrierOffset
}

// TowerRowY — y-координата ряда слотов; ряд 0 ближе всего к барьеру.
func (f *Field) TowerRowY(row int) float64 {
	return f.BarrierY() - f.TowerRowOffset - float64(row)*f.TowerRowStep
}

// Slots возвращает копию списка слотов.
func (f *Field) Slots() []Slot {
	out := make([]Slot, len(f.slots))
	copy(out, f.slots)
	return out
}

// SlotAt возвращает слот, якорь которого совпадает с точкой.
func (f *Field) SlotAt(x, y float64) (Slot, bool) {
	for _, s := range f.slots {
		if s.X == x && s.Y == y {
			return s, true
		}
	}
	return Slot{}, false
}

// NearestSlot ищет ближайший слот не дальше maxDist, для которого accept вернул true.
// При равных расстояниях побеждает слот с меньшим индексом.
func (f *Field) NearestSlot(x, y, maxDist float64, accept func(Slot) bool) (Slot, bool) {
	var best Slot
	found := false
	minDist := math.Inf(1)
	for _, s := range f.slots {
		if accept != nil && !accept(s) {
			continue
		}
		d := math.Hypot(s.X-x, s.Y-y)
		if d < maxDist && d < minDist {
			minDist = d
			best = s
			found = true
		}
	}
	return best, found
}
