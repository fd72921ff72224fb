package lanemap

import "testing"

func newTestField() *Field {
	return NewField(Options{
		Width:          390,
		Height:         844,
		Lanes:          6,
		BarrierOffset:  50,
		TowerRowOffset: 100,
		TowerRowStep:   100,
		TowerRows:      2,
	})
}

func TestLaneGeometry(t *testing.T) {
	f := newTestField()
	if f.LaneWidth() != 65 {
		t.Fatalf("LaneWidth = %v, want 65", f.LaneWidth())
	}
	if got := f.LaneCenterX(0); got != 32.5 {
		t.Errorf("LaneCenterX(0) = %v", got)
	}
	if got := f.LaneCenterX(5); got != 357.5 {
		t.Errorf("LaneCenterX(5) = %v", got)
	}
	for lane := 0; lane < f.Lanes; lane++ {
		got, ok := f.LaneAt(f.LaneCenterX(lane))
		if !ok || got != lane {
			t.Errorf("LaneAt(center of %d) = %d, %v", lane, got, ok)
		}
	}
	if _, ok := f.LaneAt(-1); ok {
		t.Error("LaneAt(-1) should be outside")
	}
	if _, ok := f.LaneAt(390); ok {
		t.Error("LaneAt(width) should be outside")
	}
	if f.BarrierY() != 794 {
		t.Errorf("BarrierY = %v", f.BarrierY())
	}
}

func TestSlotsLayout(t *testing.T) {
	f := newTestField()
	slots := f.Slots()
	if len(slots) != 12 {
		t.Fatalf("len(slots) = %d, want 12", len(slots))
	}
	first, last := slots[0], slots[11]
	if first.Y != 694 || first.Lane != 0 || first.Index != 0 {
		t.Errorf("first slot = %+v", first)
	}
	if last.Y != 594 || last.Lane != 5 || last.Index != 11 {
		t.Errorf("last slot = %+v", last)
	}
	slots[0].X = -100
	if f.Slots()[0].X == -100 {
		t.Error("Slots must return a copy")
	}
}

func TestNearestSlot(t *testing.T) {
	f := newTestField()

	s, ok := f.NearestSlot(40, 690, 50, nil)
	if !ok || s.Index != 0 {
		t.Fatalf("NearestSlot near lane 0 = %+v, %v", s, ok)
	}

	if _, ok := f.NearestSlot(32.5, 400, 50, nil); ok {
		t.Error("no slot should be within snap distance of y=400")
	}

	s, ok = f.NearestSlot(40, 690, 50, func(s Slot) bool { return s.Index != 0 })
	if ok {
		t.Errorf("filtered search should find nothing nearby, got %+v", s)
	}

	// Ровно посередине между двумя слотами одной дорожки выигрывает меньший индекс.
	s, ok = f.NearestSlot(32.5, 644, 51, nil)
	if !ok || s.Index != 0 {
		t.Errorf("tie should resolve to index 0, got %+v", s)
	}
}

func TestContainsAndSlotAt(t *testing.T) {
	f := newTestField()
	if !f.Contains(0, 0) || !f.Contains(390, 844) {
		t.Error("corners are inside")
	}
	if f.Contains(-0.1, 10) || f.Contains(10, 845) {
		t.Error("points outside reported inside")
	}
	if s, ok := f.SlotAt(f.LaneCenterX(2), 694); !ok || s.Lane != 2 {
		t.Errorf("SlotAt = %+v, %v", s, ok)
	}
	if _, ok := f.SlotAt(1, 1); ok {
		t.Error("SlotAt(1,1) should miss")
	}
}
