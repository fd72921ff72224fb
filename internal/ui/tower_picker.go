// internal/ui/tower_picker.go
package ui

import (
	"fmt"
	"image"

	"merge-towers/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// TowerPicker — ряд кнопок выбора типа башни для установки кликом.
type TowerPicker struct {
	kinds    []defs.TowerKind
	buttons  []*Button
	selected int
}

// NewTowerPicker раскладывает кнопки по ширине width начиная с (x, y).
func NewTowerPicker(kinds []defs.TowerKind, x, y, width, height int) *TowerPicker {
	p := &TowerPicker{kinds: kinds}
	if len(kinds) == 0 {
		return p
	}
	const gap = 6
	w := (width - gap*(len(kinds)-1)) / len(kinds)
	for i, kind := range kinds {
		def, _ := defs.Tower(kind)
		left := x + i*(w+gap)
		label := fmt.Sprintf("%s $%d", def.Name, def.Cost)
		b := NewButton(image.Rect(left, y, left+w, y+height), label, def.Color)
		b.TextColor = textOn(def.Color)
		p.buttons = append(p.buttons, b)
	}
	p.buttons[0].Active = true
	return p
}

// Selected — выбранный тип башни.
func (p *TowerPicker) Selected() defs.TowerKind {
	if len(p.kinds) == 0 {
		return defs.TowerBasic
	}
	return p.kinds[p.selected]
}

// Select выбирает тип по индексу.
func (p *TowerPicker) Select(i int) {
	if i < 0 || i >= len(p.kinds) {
		return
	}
	p.buttons[p.selected].Active = false
	p.selected = i
	p.buttons[i].Active = true
}

// HandleClick возвращает true, если клик пришёлся на кнопку.
func (p *TowerPicker) HandleClick(x, y int) bool {
	for i, b := range p.buttons {
		if b.Contains(x, y) {
			p.Select(i)
			return true
		}
	}
	return false
}

// UpdateAffordable затемняет кнопки, на которые не хватает денег.
func (p *TowerPicker) UpdateAffordable(money int) {
	for i, kind := range p.kinds {
		def, _ := defs.Tower(kind)
		b := p.buttons[i]
		if money >= def.Cost {
			b.TextColor = textOn(def.Color)
		} else {
			b.TextColor = disabledText
		}
	}
}

func (p *TowerPicker) Draw(screen *ebiten.Image, face font.Face) {
	for _, b := range p.buttons {
		b.Draw(screen, face)
	}
}
