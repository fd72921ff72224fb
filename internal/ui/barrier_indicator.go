// internal/ui/barrier_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	BarrierCells        = 10
	BarrierCols         = 5
	BarrierCircleRadius = 6.0
	BarrierCircleGap    = 4.0
)

var (
	barrierFullColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	barrierLowColor  = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	barrierEmpty     = color.RGBA{A: 255}
)

// BarrierIndicator отображает здоровье барьера сеткой кружков: один кружок на
// BarrierCells-ю часть максимума.
type BarrierIndicator struct {
	X, Y float32
}

func NewBarrierIndicator(x, y float32) *BarrierIndicator {
	return &BarrierIndicator{X: x, Y: y}
}

// filledCells — сколько кружков закрашено, неполный кружок считается целым.
func filledCells(health, maxHealth int) int {
	if health <= 0 || maxHealth <= 0 {
		return 0
	}
	if health >= maxHealth {
		return BarrierCells
	}
	return (health*BarrierCells + maxHealth - 1) / maxHealth
}

// cellColor: на второй половине здоровья все закрашенные кружки красные.
func cellColor(i, health, maxHealth int) color.RGBA {
	filled := filledCells(health, maxHealth)
	switch {
	case i >= filled:
		return barrierEmpty
	case filled <= BarrierCells/2:
		return barrierLowColor
	default:
		return barrierFullColor
	}
}

func (b *BarrierIndicator) Draw(screen *ebiten.Image, face font.Face, health, maxHealth int) {
	step := float32(BarrierCircleRadius*2 + BarrierCircleGap)
	for i := 0; i < BarrierCells; i++ {
		row, col := i/BarrierCols, i%BarrierCols
		cx := b.X + float32(col)*step + BarrierCircleRadius
		cy := b.Y + float32(row)*step + BarrierCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, BarrierCircleRadius, cellColor(i, health, maxHealth), true)
		vector.StrokeCircle(screen, cx, cy, BarrierCircleRadius, 1, color.White, true)
	}

	label := fmt.Sprintf("%d/%d", health, maxHealth)
	bounds := text.BoundString(face, label)
	gridW := int(step * BarrierCols)
	text.Draw(screen, label, face, int(b.X)+(gridW-bounds.Dx())/2, int(b.Y)-4, color.White)
}

// Height — общая высота индикатора вместе с подписью.
func (b *BarrierIndicator) Height() float32 {
	return 16 + float32(BarrierCells/BarrierCols)*(BarrierCircleRadius*2+BarrierCircleGap)
}
