// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var disabledText = color.RGBA{R: 110, G: 110, B: 110, A: 255}

// textOn подбирает читаемый цвет текста для фона.
func textOn(bg color.RGBA) color.Color {
	if int(bg.R)*299+int(bg.G)*587+int(bg.B)*114 > 150000 {
		return color.Black
	}
	return color.White
}

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect        image.Rectangle
	Text        string
	TextColor   color.Color
	BgColor     color.RGBA
	ActiveColor color.RGBA
	Active      bool
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, bg color.RGBA) *Button {
	return &Button{
		Rect:        rect,
		Text:        label,
		TextColor:   color.White,
		BgColor:     bg,
		ActiveColor: color.RGBA{R: 180, G: 140, B: 20, A: 255},
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	bg := b.BgColor
	if b.Active {
		bg = b.ActiveColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{R: 70, G: 130, B: 180, A: 255}, true)

	bounds := text.BoundString(face, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, face, textX, textY, b.TextColor)
}
