// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"merge-towers/internal/defs"
	"merge-towers/internal/entity"
	"merge-towers/internal/event"
	"merge-towers/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 110
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 16
	columnSpacing  = 180
)

// InfoPanel выезжает сверху и показывает параметры выбранной башни
// и то, какой она станет после следующего слияния.
type InfoPanel struct {
	IsVisible    bool
	TargetEntity types.EntityID
	fontFace     font.Face
	width        int
	currentY     float64
	targetY      float64
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(face font.Face, width int) *InfoPanel {
	return &InfoPanel{
		fontFace: face,
		width:    width,
		currentY: -panelHeight,
		targetY:  -panelHeight,
	}
}

// Subscribe следит за слияниями, чтобы панель не показывала удалённую башню.
func (p *InfoPanel) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.TowerMerged, p)
}

// OnEvent реализует интерфейс event.Listener.
func (p *InfoPanel) OnEvent(e event.Event) {
	data, ok := e.Data.(event.MergeData)
	if !ok || p.TargetEntity == 0 {
		return
	}
	if p.TargetEntity == data.MovedID || p.TargetEntity == data.StationaryID {
		p.TargetEntity = data.ResultID
	}
}

func (p *InfoPanel) SetTarget(id types.EntityID) {
	p.TargetEntity = id
	p.IsVisible = true
	p.targetY = 0
}

func (p *InfoPanel) Hide() {
	p.targetY = -panelHeight
}

// Contains — попадает ли точка в видимую часть панели.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && image.Pt(x, y).In(p.rect())
}

func (p *InfoPanel) Update(ecs *entity.ECS) {
	if p.TargetEntity != 0 {
		if _, ok := ecs.Towers[p.TargetEntity]; !ok {
			p.Hide()
		}
	}
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
	if p.currentY <= -panelHeight {
		p.IsVisible = false
		p.TargetEntity = 0
	}
}

func (p *InfoPanel) rect() image.Rectangle {
	return image.Rect(panelMargin, int(p.currentY)+panelMargin, p.width-panelMargin, int(p.currentY)+panelHeight-panelMargin)
}

func (p *InfoPanel) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	if !p.IsVisible {
		return
	}
	r := p.rect()
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), color.RGBA{R: 25, G: 35, B: 45, A: 230}, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, color.RGBA{R: 70, G: 130, B: 180, A: 255}, true)

	tower, ok := ecs.Towers[p.TargetEntity]
	if !ok {
		return
	}
	def, ok := defs.Tower(tower.Kind)
	if !ok {
		return
	}
	for i, line := range TowerInfoLines(def, tower.Level, ecs.Combats[p.TargetEntity].Cooldown) {
		col, row := i%2, i/2
		x := r.Min.X + 12 + col*columnSpacing
		y := r.Min.Y + 20 + row*lineHeight
		text.Draw(screen, line, p.fontFace, x, y, color.RGBA{R: 240, G: 240, B: 240, A: 255})
	}
}

// TowerInfoLines — строки панели, по две в ряд.
func TowerInfoLines(def defs.TowerDefinition, level int, cooldown float64) []string {
	damage, interval := defs.LevelStats(def, level)
	nextDamage, nextInterval := defs.LevelStats(def, level+1)
	return []string{
		fmt.Sprintf("%s Lvl %d", def.Name, level),
		fmt.Sprintf("Range: %.0f", def.Range),
		fmt.Sprintf("Damage: %d", damage),
		fmt.Sprintf("Interval: %dms", interval.Milliseconds()),
		fmt.Sprintf("Cooldown: %.2fs", cooldown),
		fmt.Sprintf("Next: %d / %dms", nextDamage, nextInterval.Milliseconds()),
	}
}
