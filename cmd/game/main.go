// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"merge-towers/internal/app"
	"merge-towers/internal/audio"
	"merge-towers/internal/config"
	"merge-towers/internal/defs"
	"merge-towers/internal/network"
	"merge-towers/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// matches создаёт матчи и подключает к ним звук и сервер.
type matches struct {
	cfg    config.Sim
	server string
	sound  *audio.Player
	link   *network.Link
}

func (m *matches) next() *app.Game {
	game := app.NewGame(m.cfg)
	if m.sound != nil {
		m.sound.Subscribe(game.EventDispatcher)
	}
	if m.server == "" {
		return game
	}
	if m.link != nil {
		m.link.Close()
		m.link = nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	link, err := network.Dial(ctx, m.server, game.MatchID(), game, network.DefaultOptions())
	if err != nil {
		log.Printf("match %s: playing offline: %v", game.MatchID(), err)
		return game
	}
	link.Subscribe(game.EventDispatcher)
	m.link = link
	return game
}

func (m *matches) close() {
	if m.link != nil {
		m.link.Close()
	}
	if m.sound != nil {
		m.sound.Close()
	}
}

func main() {
	cfg := config.Default()
	config.RegisterFlags(flag.CommandLine, &cfg)
	server := flag.String("server", "", "websocket URL of the match server (optional)")
	towersPath := flag.String("towers", "", "JSON file overriding tower definitions")
	mute := flag.Bool("mute", false, "disable sound")
	menu := flag.Bool("menu", false, "start from the title screen")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if *towersPath != "" {
		if err := defs.LoadTowerDefinitions(*towersPath); err != nil {
			log.Fatal(err)
		}
	}
	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	m := &matches{cfg: cfg, server: *server}
	if !*mute {
		player := audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			m.sound = player
		}
	}
	defer m.close()

	sm := state.NewStateMachine()
	var newMatch func() state.State
	newMatch = func() state.State {
		return state.NewGameState(sm, m.next(), newMatch)
	}
	if *menu {
		sm.SetState(state.NewMenuState(sm, newMatch))
	} else {
		sm.SetState(newMatch())
	}

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Merge Towers")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
