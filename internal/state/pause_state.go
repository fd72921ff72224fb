// internal/state/pause_state.go
package state

import (
	"image/color"

	"merge-towers/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// pausable — предыдущее состояние, которое знает о своей кнопке паузы.
type pausable interface {
	SetPaused(paused bool)
	PauseButtonAt(x, y int) bool
}

// PauseState замораживает матч: тик не вызывается, поле рисуется под затемнением.
// Сообщения сервера продолжают приходить и применятся на первом тике после паузы.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	font          font.Face
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		font:          basicfont.Face7x13,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)

	p, ok := s.previousState.(pausable)
	if ok && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if p.PauseButtonAt(ebiten.CursorPosition()) {
			unpause = true
		}
	}

	if unpause {
		if ok {
			p.SetPaused(false)
		}
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	pauseText := "PAUSED"
	bounds := text.BoundString(s.font, pauseText)
	text.Draw(screen, pauseText, s.font, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, color.White)
}

func (s *PauseState) Exit() {}
