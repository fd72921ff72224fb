// internal/state/menu_state.go
package state

import (
	"fmt"

	"merge-towers/internal/config"
	"merge-towers/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState — стартовый экран с таблицей башен. Space начинает матч.
type MenuState struct {
	sm    *StateMachine
	start func() State
}

func NewMenuState(sm *StateMachine, start func() State) *MenuState {
	return &MenuState{sm: sm, start: start}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(m.start())
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	y := 200
	text.Draw(screen, "MERGE TOWERS", face, 40, y, config.TextLightColor)
	y += 40
	for _, kind := range defs.AllTowerKinds {
		def, ok := defs.Tower(kind)
		if !ok {
			continue
		}
		line := fmt.Sprintf("%-7s $%-4d dmg %-3d every %dms", def.Name, def.Cost, def.Damage, def.FireRateMs)
		text.Draw(screen, line, face, 40, y, def.Color)
		y += 20
	}
	y += 20
	text.Draw(screen, "Drag a tower onto its twin to merge.", face, 40, y, config.TextLightColor)
	text.Draw(screen, "Space - start", face, 40, y+40, config.TextLightColor)
}

func (m *MenuState) Exit() {}
