package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"merge-towers/internal/defs"
	"merge-towers/internal/event"
)

// Cue — короткий звук на игровое событие.
type Cue struct {
	Freq     float64
	Duration time.Duration
	Volume   float64 // В единицах effects.Volume, 0 — без изменений
}

// cueFor выбирает звук для события. Выстрелы разных башен звучат по-разному.
func cueFor(e event.Event) (Cue, bool) {
	switch e.Type {
	case event.ProjectileFired:
		freq := 880.0
		if shot, ok := e.Data.(event.ShotData); ok {
			switch shot.Kind {
			case defs.TowerRapid:
				freq = 1320
			case defs.TowerSniper:
				freq = 440
			}
		}
		return Cue{Freq: freq, Duration: 40 * time.Millisecond, Volume: -2}, true
	case event.EnemyKilled:
		return Cue{Freq: 660, Duration: 120 * time.Millisecond, Volume: -1}, true
	case event.TowerMerged:
		return Cue{Freq: 990, Duration: 200 * time.Millisecond}, true
	case event.BarrierBreached:
		return Cue{Freq: 110, Duration: 250 * time.Millisecond}, true
	case event.GameOver:
		return Cue{Freq: 82.5, Duration: 800 * time.Millisecond}, true
	}
	return Cue{}, false
}

// Streamer собирает готовый к проигрыванию поток: синус, обрезанный по длительности,
// с линейным затуханием до нуля. Частота выше половины
// частоты дискретизации даёт тишину той же длины.
func (c Cue) Streamer(rate beep.SampleRate) beep.Streamer {
	n := rate.N(c.Duration)
	sine, err := generators.SineTone(rate, c.Freq)
	if err != nil {
		return generators.Silence(n)
	}
	var s beep.Streamer = effects.Transition(beep.Take(n, sine), n, 1, 0, effects.TransitionLinear)
	if c.Volume == 0 {
		return s
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: c.Volume}
}
