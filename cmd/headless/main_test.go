package main

import (
	"bytes"
	"strings"
	"testing"

	"merge-towers/internal/app"
)

func TestSummarize(t *testing.T) {
	reports := []app.Report{
		{Seed: 1, Score: 100, Kills: 10, Elapsed: 60, Over: true},
		{Seed: 2, Score: 300, Kills: 30, Elapsed: 120},
		{Seed: 3, Score: 200, Kills: 20, Elapsed: 90, Over: true},
	}
	s := summarize(reports)
	if s.runs != 3 || s.overs != 2 {
		t.Fatalf("runs=%d overs=%d", s.runs, s.overs)
	}
	if s.avgScore != 200 || s.avgKills != 20 || s.avgTime != 90 {
		t.Fatalf("averages = %+v", s)
	}
	if s.bestScore != 300 || s.bestSeed != 2 {
		t.Fatalf("best = %d (seed %d)", s.bestScore, s.bestSeed)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := summarize(nil); s.runs != 0 || s.avgScore != 0 {
		t.Fatalf("summary = %+v", s)
	}
}

func TestPrintRun(t *testing.T) {
	var buf bytes.Buffer
	printRun(&buf, 1, app.Report{Seed: 7, Elapsed: 42, Score: 50, Over: true})
	out := buf.String()
	if !strings.Contains(out, "seed=7") || !strings.Contains(out, "overrun") {
		t.Fatalf("output = %q", out)
	}
}
