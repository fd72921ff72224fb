// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedMultipliers — скорости симуляции по порядку переключения.
var SpeedMultipliers = []float64{1, 2, 4}

// SpeedButton переключает скорость x1 -> x2 -> x4 -> x1.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

// Multiplier — текущий множитель скорости.
func (b *SpeedButton) Multiplier() float64 {
	return SpeedMultipliers[b.CurrentState%len(SpeedMultipliers)]
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	c := color.Color(color.White)
	if len(b.StateColors) > 0 {
		c = b.StateColors[b.CurrentState%len(b.StateColors)]
	}

	height := size * 1.2
	width := size
	offset := width * 0.8
	// Два треугольника, как на кнопке перемотки
	for _, dx := range []float32{0, offset} {
		var path vector.Path
		path.MoveTo(b.X-width+dx, b.Y-height/2)
		path.LineTo(b.X+dx, b.Y)
		path.LineTo(b.X-width+dx, b.Y+height/2)
		path.Close()
		fillPath(screen, &path, c)
	}
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	// Круг вместо точной формы
	return inCircle(x, y, b.X, b.Y, b.Size*1.5)
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(SpeedMultipliers)
	b.LastClickTime = time.Now()
}

// fillPath заливает путь одним цветом.
func fillPath(screen *ebiten.Image, path *vector.Path, c color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, bl, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(bl) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, whiteImage(), op)
}

var whitePixel *ebiten.Image

// whiteImage создаётся лениво, при первой отрисовке.
func whiteImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(3, 3)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

func inCircle(x, y int, cx, cy, r float32) bool {
	dx, dy := float32(x)-cx, float32(y)-cy
	return dx*dx+dy*dy <= r*r
}
