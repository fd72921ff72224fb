// Package termview — терминальный клиент матча на tcell.
package termview

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"merge-towers/internal/app"
	"merge-towers/internal/config"
	"merge-towers/internal/defs"
	"merge-towers/internal/types"
)

const hudRows = 2

var kindRunes = map[defs.TowerKind]rune{
	defs.TowerBasic:  'B',
	defs.TowerRapid:  'R',
	defs.TowerSniper: 'S',
}

var kindColors = map[defs.TowerKind]tcell.Color{
	defs.TowerBasic:  tcell.ColorWhite,
	defs.TowerRapid:  tcell.ColorGreen,
	defs.TowerSniper: tcell.ColorRed,
}

// View рисует поле в терминале и переводит клавиши в команды матча.
// Курсор ходит по слотам: стрелки меняют дорожку и ряд.
type View struct {
	screen   tcell.Screen
	game     *app.Game
	selected defs.TowerKind
	lane     int
	row      int
	carried  types.EntityID
	paused   bool
	status   string
}

func New(screen tcell.Screen, game *app.Game) *View {
	return &View{screen: screen, game: game, selected: defs.TowerBasic}
}

// Run крутит кадры до выхода по Esc или q. dt каждого тика ограничен MaxDeltaTime.
func (v *View) Run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !v.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			if !v.paused {
				v.game.Tick(dt)
			}
			v.Draw()
		}
	}
}

// HandleEvent возвращает false, когда пора выходить.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *View) handleKey(ev *tcell.EventKey) bool {
	field := v.game.Field
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		v.lane = max(0, v.lane-1)
	case tcell.KeyRight:
		v.lane = min(field.Lanes-1, v.lane+1)
	case tcell.KeyUp:
		v.row = min(config.TowerRows-1, v.row+1)
	case tcell.KeyDown:
		v.row = max(0, v.row-1)
	case tcell.KeyEnter:
		v.place()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case '1':
			v.selected = defs.TowerBasic
		case '2':
			v.selected = defs.TowerRapid
		case '3':
			v.selected = defs.TowerSniper
		case ' ':
			v.place()
		case 'm':
			v.carry()
		case 'p':
			v.paused = !v.paused
		}
	}
	if v.carried != 0 {
		x, y := v.cursorXY()
		v.game.DragTo(v.carried, x, y)
	}
	return true
}

func (v *View) cursorXY() (float64, float64) {
	return v.game.Field.LaneCenterX(v.lane), v.game.Field.TowerRowY(v.row)
}

func (v *View) place() {
	x, y := v.cursorXY()
	_, outcome := v.game.PlaceTower(x, y, v.selected)
	v.status = outcome.String()
}

// carry поднимает башню под курсором, а повторное нажатие отпускает её.
func (v *View) carry() {
	x, y := v.cursorXY()
	if v.carried != 0 {
		_, outcome := v.game.ReleaseDrag(v.carried, x, y)
		v.status = outcome.String()
		v.carried = 0
		return
	}
	id, ok := v.game.TowerAt(x, y)
	if !ok || !v.game.BeginDrag(id) {
		v.status = "no tower here"
		return
	}
	v.carried = id
	v.status = "carrying"
}

// cell переводит координаты поля в клетку экрана.
func (v *View) cell(x, y float64) (int, int) {
	w, h := v.screen.Size()
	h -= hudRows
	field := v.game.Field
	col := int(x / field.Width * float64(w))
	row := int(y / field.Height * float64(h))
	return min(max(col, 0), w-1), min(max(row, 0), h-1)
}

// Draw рисует кадр целиком.
func (v *View) Draw() {
	s := v.screen
	s.Clear()
	w, h := s.Size()
	field := v.game.Field
	ecs := v.game.ECS
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	for lane := 1; lane < field.Lanes; lane++ {
		col, _ := v.cell(field.LaneWidth()*float64(lane), 0)
		for row := 0; row < h-hudRows; row++ {
			s.SetContent(col, row, '│', nil, dim)
		}
	}
	_, barrierRow := v.cell(0, field.BarrierY())
	for col := 0; col < w; col++ {
		s.SetContent(col, barrierRow, '=', nil, tcell.StyleDefault.Foreground(tcell.ColorSilver))
	}
	for _, slot := range field.Slots() {
		col, row := v.cell(slot.X, slot.Y)
		s.SetContent(col, row, '·', nil, dim)
	}

	for _, id := range ecs.EnemyIDs() {
		pos := ecs.Positions[id]
		health := ecs.Healths[id]
		col, row := v.cell(pos.X, pos.Y)
		s.SetContent(col, row, 'v', nil, tcell.StyleDefault.Foreground(healthColor(health.Value, health.Max)))
	}
	for _, id := range ecs.TowerIDs() {
		pos := ecs.Positions[id]
		tower := ecs.Towers[id]
		col, row := v.cell(pos.X, pos.Y)
		style := tcell.StyleDefault.Foreground(kindColors[tower.Kind]).Bold(true)
		s.SetContent(col, row, kindRunes[tower.Kind], nil, style)
		if col+1 < w {
			s.SetContent(col+1, row, rune('0'+tower.Level%10), nil, style)
		}
	}
	for _, id := range ecs.ProjectileIDs() {
		pos := ecs.Positions[id]
		col, row := v.cell(pos.X, pos.Y)
		s.SetContent(col, row, '*', nil, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}

	cx, cy := v.cursorXY()
	col, row := v.cell(cx, cy)
	r, _, _, _ := s.GetContent(col, row)
	s.SetContent(col, row, r, nil, tcell.StyleDefault.Reverse(true))

	v.drawHUD(w, h)
	s.Show()
}

func (v *View) drawHUD(w, h int) {
	p := v.game.Player()
	line := fmt.Sprintf("$%d  score %d  barrier %d  x%.2f  %.0fs  [%s]",
		p.Money, p.Score, p.BarrierHealth, v.game.Multiplier(), v.game.ElapsedSeconds(), v.selected)
	drawText(v.screen, 0, h-2, line, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	status := v.status
	if v.game.IsOver() {
		status = fmt.Sprintf("GAME OVER  final score %d  (q to quit)", p.Score)
	} else if v.paused {
		status = "PAUSED"
	}
	drawText(v.screen, 0, h-1, status, tcell.StyleDefault.Foreground(tcell.ColorYellow))
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func healthColor(value, maxValue int) tcell.Color {
	if maxValue <= 0 {
		return tcell.ColorRed
	}
	ratio := float64(value) / float64(maxValue)
	switch {
	case ratio > 0.5:
		return tcell.ColorGreen
	case ratio > 0.25:
		return tcell.ColorYellow
	default:
		return tcell.ColorRed
	}
}
