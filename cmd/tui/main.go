// cmd/tui/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"merge-towers/internal/app"
	"merge-towers/internal/audio"
	"merge-towers/internal/config"
	"merge-towers/internal/defs"
	"merge-towers/internal/network"
	"merge-towers/internal/termview"
)

func main() {
	cfg := config.Default()
	config.RegisterFlags(flag.CommandLine, &cfg)
	server := flag.String("server", "", "websocket URL of the match server (optional)")
	towersPath := flag.String("towers", "", "JSON file overriding tower definitions")
	logPath := flag.String("log", "merge-towers.log", "log file (the terminal is busy drawing)")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if *towersPath != "" {
		if err := defs.LoadTowerDefinitions(*towersPath); err != nil {
			log.Fatal(err)
		}
	}

	game := app.NewGame(cfg)

	if !*mute {
		player := audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			player.Subscribe(game.EventDispatcher)
			defer player.Close()
		}
	}

	if *server != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		link, err := network.Dial(ctx, *server, game.MatchID(), game, network.DefaultOptions())
		cancel()
		if err != nil {
			log.Printf("playing offline: %v", err)
		} else {
			link.Subscribe(game.EventDispatcher)
			defer link.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()

	termview.New(screen, game).Run()
}
