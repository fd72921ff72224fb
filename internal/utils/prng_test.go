package utils

import "testing"

func TestPRNGReproducible(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(6), b.Intn(6); x != y {
			t.Fatalf("step %d: %d != %d", i, x, y)
		}
	}
	if a.Seed() != 42 {
		t.Errorf("Seed() = %d", a.Seed())
	}
	if NewPRNGService(0).Seed() == 0 {
		t.Error("zero seed must be replaced")
	}
}

func TestBetweenInclusive(t *testing.T) {
	s := NewPRNGService(7)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := s.Between(0, 5)
		if v < 0 || v > 5 {
			t.Fatalf("Between(0,5) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 6 {
		t.Errorf("expected all 6 lanes, saw %d", len(seen))
	}
	if s.Between(3, 3) != 3 || s.Between(4, 1) != 4 {
		t.Error("degenerate ranges return lo")
	}
}
