// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"merge-towers/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUD — строка состояния матча: деньги, очки, время и множитель сложности.
type HUD struct {
	X, Y         int
	Color        color.Color
	OutlineColor color.Color
}

func NewHUD(x, y int) *HUD {
	return &HUD{
		X:            x,
		Y:            y,
		Color:        color.RGBA{R: 240, G: 240, B: 240, A: 255},
		OutlineColor: color.Black,
	}
}

// FormatClock переводит секунды матча в мм:сс.
func FormatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// StatusLine собирает строку HUD.
func StatusLine(p component.PlayerState, elapsed, multiplier float64) string {
	return fmt.Sprintf("$%d  Score %d  %s  x%.2f", p.Money, p.Score, FormatClock(elapsed), multiplier)
}

func (h *HUD) Draw(screen *ebiten.Image, face font.Face, p component.PlayerState, elapsed, multiplier float64) {
	line := StatusLine(p, elapsed, multiplier)
	// Обводка в один пиксель
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		text.Draw(screen, line, face, h.X+d[0], h.Y+d[1], h.OutlineColor)
	}
	text.Draw(screen, line, face, h.X, h.Y, h.Color)
}
