package render

import (
	"image/color"
	"testing"
)

var testHealth = HealthColors{
	High: color.RGBA{0, 255, 0, 255},
	Mid:  color.RGBA{255, 255, 0, 255},
	Low:  color.RGBA{255, 0, 0, 255},
}

func TestHealthColor(t *testing.T) {
	tests := []struct {
		ratio float64
		want  color.RGBA
	}{
		{1, testHealth.High},
		{0.5, testHealth.Mid},
		{0, testHealth.Low},
		{2, testHealth.High},
		{-1, testHealth.Low},
		{0.75, color.RGBA{128, 255, 0, 255}},
	}
	for _, tt := range tests {
		if got := testHealth.HealthColor(tt.ratio); got != tt.want {
			t.Errorf("HealthColor(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

func TestDarkenColorKeepsAlpha(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 77})
	if got != (color.RGBA{100, 50, 25, 77}) {
		t.Fatalf("DarkenColor = %v", got)
	}
}

func TestLevelTint(t *testing.T) {
	base := color.RGBA{0, 0, 255, 255}
	if LevelTint(base, 1) != base {
		t.Fatal("level 1 must keep the base color")
	}
	l2, l3 := LevelTint(base, 2), LevelTint(base, 3)
	if !(l3.R > l2.R && l2.R > base.R) {
		t.Fatalf("tint must grow with level: %v %v", l2, l3)
	}
	if LevelTint(base, 20) != (color.RGBA{255, 215, 0, 255}) {
		t.Fatal("tint must saturate at gold")
	}
	if WithAlpha(base, 10).A != 10 {
		t.Fatal("WithAlpha")
	}
}
