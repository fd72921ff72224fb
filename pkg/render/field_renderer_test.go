package render

import (
	"testing"

	"merge-towers/internal/entity"
	"merge-towers/pkg/lanemap"
)

func TestHoverLane(t *testing.T) {
	field := lanemap.NewField(lanemap.Options{
		Width:          390,
		Height:         844,
		Lanes:          6,
		BarrierOffset:  50,
		TowerRowOffset: 100,
		TowerRowStep:   100,
		TowerRows:      2,
	})
	r := NewFieldRenderer(entity.NewECS())
	if _, ok := r.hoverLane(field); ok {
		t.Fatal("no cursor yet, nothing must be highlighted")
	}

	tests := []struct {
		x, y float64
		lane int
		ok   bool
	}{
		{10, 300, 0, true},
		{200, 700, 3, true},
		{389, 10, 5, true},
		{200, 800, 0, false}, // ниже барьера, там интерфейс
		{400, 300, 0, false},
	}
	for _, tt := range tests {
		r.SetHover(tt.x, tt.y)
		lane, ok := r.hoverLane(field)
		if ok != tt.ok || (ok && lane != tt.lane) {
			t.Errorf("hover (%v, %v) = (%d, %v), want (%d, %v)", tt.x, tt.y, lane, ok, tt.lane, tt.ok)
		}
	}
}
