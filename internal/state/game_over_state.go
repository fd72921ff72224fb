// internal/state/game_over_state.go
package state

import (
	"fmt"
	"image/color"

	"merge-towers/internal/config"
	"merge-towers/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог матча поверх замершего поля.
type GameOverState struct {
	sm      *StateMachine
	game    *GameState
	restart func() State
	font    font.Face
}

func NewGameOverState(sm *StateMachine, game *GameState, restart func() State) *GameOverState {
	return &GameOverState{sm: sm, game: game, restart: restart, font: basicfont.Face7x13}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if s.restart == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(s.restart())
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.GameOverColor, false)

	p := s.game.game.Player()
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", p.Score),
		fmt.Sprintf("Kills: %d", p.Kills),
		"Time: " + ui.FormatClock(s.game.game.ElapsedSeconds()),
	}
	if s.restart != nil {
		lines = append(lines, "", "R - new match")
	}
	y := config.ScreenHeight/2 - len(lines)*10
	for _, line := range lines {
		bounds := text.BoundString(s.font, line)
		text.Draw(screen, line, s.font, (config.ScreenWidth-bounds.Dx())/2, y, color.White)
		y += 20
	}
}

func (s *GameOverState) Exit() {}
