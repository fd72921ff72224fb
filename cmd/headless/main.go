// cmd/headless/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"merge-towers/internal/app"
	"merge-towers/internal/config"
	"merge-towers/internal/defs"
)

type summary struct {
	runs      int
	overs     int
	avgScore  float64
	avgKills  float64
	avgTime   float64
	bestScore int
	bestSeed  int64
}

func main() {
	cfg := config.Default()
	var runs int
	var seconds float64
	var step float64
	var seedStep int64
	var kindName string
	var towersPath string

	fs := flag.CommandLine
	config.RegisterFlags(fs, &cfg)
	fs.IntVar(&runs, "runs", 5, "number of headless matches")
	fs.Float64Var(&seconds, "seconds", 300, "simulated seconds per match")
	fs.Float64Var(&step, "step", 1.0/60, "tick length in seconds")
	fs.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	fs.StringVar(&kindName, "kind", "basic", "tower kind the bot builds")
	fs.StringVar(&towersPath, "towers", "", "JSON file overriding tower definitions")
	flag.Parse()

	if cfg.Seed == 0 {
		cfg.Seed = 42
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if runs <= 0 || seconds <= 0 || step <= 0 {
		log.Fatal("-runs, -seconds and -step must be > 0")
	}
	kind, err := defs.ParseTowerKind(kindName)
	if err != nil {
		log.Fatal(err)
	}
	if towersPath != "" {
		if err := defs.LoadTowerDefinitions(towersPath); err != nil {
			log.Fatal(err)
		}
	}
	log.SetOutput(io.Discard)

	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("runs=%d seconds=%.0f step=%.4f seed=%d kind=%s difficulty=%s\n\n",
		runs, seconds, step, cfg.Seed, kind, cfg.Difficulty)

	reports := make([]app.Report, 0, runs)
	base := cfg.Seed
	for i := 0; i < runs; i++ {
		cfg.Seed = base + int64(i)*seedStep
		r := app.RunMatch(app.NewGame(cfg), kind, step, seconds)
		reports = append(reports, r)
		printRun(os.Stdout, i+1, r)
	}
	printSummary(os.Stdout, summarize(reports))
}

func printRun(w io.Writer, index int, r app.Report) {
	state := "survived"
	if r.Over {
		state = "overrun"
	}
	fmt.Fprintf(w, "run %d seed=%d %s at %.1fs score=%d kills=%d breaches=%d placed=%d merged=%d money=%d\n",
		index, r.Seed, state, r.Elapsed, r.Score, r.Kills, r.Breaches, r.Placed, r.Merged, r.Money)
}

func summarize(reports []app.Report) summary {
	s := summary{runs: len(reports)}
	if len(reports) == 0 {
		return s
	}
	for i, r := range reports {
		if r.Over {
			s.overs++
		}
		s.avgScore += float64(r.Score)
		s.avgKills += float64(r.Kills)
		s.avgTime += r.Elapsed
		if i == 0 || r.Score > s.bestScore {
			s.bestScore = r.Score
			s.bestSeed = r.Seed
		}
	}
	n := float64(len(reports))
	s.avgScore /= n
	s.avgKills /= n
	s.avgTime /= n
	return s
}

func printSummary(w io.Writer, s summary) {
	fmt.Fprintf(w, "\n--- aggregate ---\n")
	fmt.Fprintf(w, "runs=%d overrun=%d avg_score=%.1f avg_kills=%.1f avg_time=%.1fs best_score=%d (seed %d)\n",
		s.runs, s.overs, s.avgScore, s.avgKills, s.avgTime, s.bestScore, s.bestSeed)
}
