// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"merge-towers/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	indicatorIdle     = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	indicatorOK       = color.RGBA{R: 60, G: 180, B: 90, A: 255}
	indicatorMerge    = color.RGBA{R: 230, G: 190, B: 40, A: 255}
	indicatorRejected = color.RGBA{R: 220, G: 60, B: 60, A: 255}
)

// StateIndicator вспыхивает цветом последнего действия игрока с башнями.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
	Color         color.RGBA
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius, Color: indicatorIdle}
}

// Subscribe подписывает индикатор на события башен.
func (i *StateIndicator) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(i, event.TowerPlaced, event.TowerMoved, event.TowerMerged, event.RelocationRejected)
}

// OnEvent реализует интерфейс event.Listener.
func (i *StateIndicator) OnEvent(e event.Event) {
	switch e.Type {
	case event.TowerPlaced, event.TowerMoved:
		i.Flash(indicatorOK)
	case event.TowerMerged:
		i.Flash(indicatorMerge)
	case event.RelocationRejected:
		i.Flash(indicatorRejected)
	}
}

// Reject — вспышка отказа для действий, у которых нет своего события.
func (i *StateIndicator) Reject() {
	i.Flash(indicatorRejected)
}

// Flash меняет цвет и запускает пульсацию.
func (i *StateIndicator) Flash(c color.RGBA) {
	i.Color = c
	i.LastClickTime = time.Now()
}

func (i *StateIndicator) Draw(screen *ebiten.Image) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, i.Color, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}
