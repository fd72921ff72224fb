// internal/state/game_state.go
package state

import (
	"fmt"
	"math"

	"merge-towers/internal/app"
	"merge-towers/internal/config"
	"merge-towers/internal/defs"
	"merge-towers/internal/system"
	"merge-towers/internal/types"
	"merge-towers/internal/ui"
	"merge-towers/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// GameState — идущий матч: ввод мышью, тик симуляции и отрисовка.
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	restart  func() State
	renderer *render.FieldRenderer
	effects  *system.VisualEffectSystem
	fontFace font.Face

	hud       *ui.HUD
	barrier   *ui.BarrierIndicator
	indicator *ui.StateIndicator
	picker    *ui.TowerPicker
	speed     *ui.SpeedButton
	pause     *ui.PauseButton
	infoPanel *ui.InfoPanel

	// Нажатие на башню: пока курсор не ушёл дальше DragThreshold, это выбор
	pressed        types.EntityID
	pressX, pressY int
	dragging       bool
}

// NewGameState строит интерфейс вокруг уже созданного матча. restart может
// быть nil, тогда после конца игры новый матч не начинается.
func NewGameState(sm *StateMachine, g *app.Game, restart func() State) *GameState {
	face := basicfont.Face7x13
	w := config.ScreenWidth
	gs := &GameState{
		sm:        sm,
		game:      g,
		restart:   restart,
		renderer:  render.NewFieldRenderer(g.ECS),
		effects:   system.NewVisualEffectSystem(g.ECS, g.Field),
		fontFace:  face,
		hud:       ui.NewHUD(10, 20),
		barrier:   ui.NewBarrierIndicator(10, 46),
		indicator: ui.NewStateIndicator(float32(w-110), 18, 8),
		picker:    ui.NewTowerPicker(defs.AllTowerKinds, 10, config.ScreenHeight-config.PickerHeight-8, w-20, config.PickerHeight),
		speed:     ui.NewSpeedButton(float32(w-70), 18, config.UIButtonSize, config.SpeedButtonColors),
		pause:     ui.NewPauseButton(float32(w-25), 18, config.UIButtonSize, config.PauseButtonColor, config.PlayButtonColor),
		infoPanel: ui.NewInfoPanel(face, w),
	}
	gs.renderer.SetEffects(gs.effects)
	gs.effects.Subscribe(g.EventDispatcher)
	gs.indicator.Subscribe(g.EventDispatcher)
	gs.infoPanel.Subscribe(g.EventDispatcher)
	return gs
}

func (g *GameState) Enter() {
	g.pause.SetPaused(false)
}

// SetPaused нужен PauseState, чтобы вернуть кнопку в исходный вид.
func (g *GameState) SetPaused(paused bool) {
	g.pause.SetPaused(paused)
}

// PauseButtonAt — попадает ли точка в кнопку паузы.
func (g *GameState) PauseButtonAt(x, y int) bool {
	return g.pause.IsClicked(x, y)
}

func (g *GameState) Update(deltaTime float64) {
	if g.game.IsOver() {
		g.sm.SetState(NewGameOverState(g.sm, g, g.restart))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.enterPause()
		return
	}
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if inpututil.IsKeyJustPressed(key) {
			g.picker.Select(i)
		}
	}

	g.handleMouse()
	g.picker.UpdateAffordable(g.game.Player().Money)
	g.infoPanel.Update(g.game.ECS)

	// Ускорение — несколько обычных тиков, а не один длинный
	steps := int(math.Round(g.speed.Multiplier()))
	for i := 0; i < steps && !g.game.IsOver(); i++ {
		g.game.Tick(deltaTime)
	}
	g.effects.Update(deltaTime)
}

func (g *GameState) enterPause() {
	if g.dragging {
		g.game.CancelDrag(g.pressed)
	}
	g.resetPress()
	g.pause.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) handleMouse() {
	x, y := ebiten.CursorPosition()
	g.renderer.SetHover(float64(x), float64(y))

	if g.pressed != 0 && (inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)) {
		if g.dragging {
			g.game.CancelDrag(g.pressed)
		}
		g.resetPress()
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.handleUIClick(x, y) {
			return
		}
		if id, ok := g.game.TowerAt(float64(x), float64(y)); ok {
			g.pressed, g.pressX, g.pressY = id, x, y
			return
		}
		g.infoPanel.Hide()
		if _, outcome := g.game.PlaceTower(float64(x), float64(y), g.picker.Selected()); outcome != app.Placed && outcome != app.RejectedOutOfBounds {
			g.indicator.Reject()
		}
		return
	}

	if g.pressed == 0 {
		return
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !g.dragging && math.Hypot(float64(x-g.pressX), float64(y-g.pressY)) > config.DragThreshold {
			g.dragging = g.game.BeginDrag(g.pressed)
			if !g.dragging {
				// Башня исчезла или матч кончился
				g.resetPress()
				return
			}
		}
		if g.dragging {
			g.game.DragTo(g.pressed, float64(x), float64(y))
		}
		return
	}

	// Кнопка отпущена
	if !g.dragging {
		g.infoPanel.SetTarget(g.pressed)
	} else if id, outcome := g.game.ReleaseDrag(g.pressed, float64(x), float64(y)); outcome == app.RelocationMerged {
		g.infoPanel.SetTarget(id)
	}
	g.resetPress()
}

func (g *GameState) resetPress() {
	g.pressed, g.dragging = 0, false
}

// handleUIClick обрабатывает клики по элементам интерфейса.
func (g *GameState) handleUIClick(x, y int) bool {
	switch {
	case g.speed.IsClicked(x, y):
		g.speed.ToggleState()
	case g.pause.IsClicked(x, y):
		g.enterPause()
	case g.picker.HandleClick(x, y):
	case g.infoPanel.Contains(x, y):
		g.infoPanel.Hide()
	default:
		return false
	}
	return true
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.Field)

	player := g.game.Player()
	g.hud.Draw(screen, g.fontFace, player, g.game.ElapsedSeconds(), g.game.Multiplier())
	g.barrier.Draw(screen, g.fontFace, player.BarrierHealth, config.BarrierMaxHealth)
	g.indicator.Draw(screen)
	g.speed.Draw(screen)
	g.pause.Draw(screen)
	g.picker.Draw(screen, g.fontFace)
	g.infoPanel.Draw(screen, g.game.ECS)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("x%.0f", g.speed.Multiplier()), config.ScreenWidth-90, 30)
}

func (g *GameState) Exit() {}
